package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/asanchezgar/rehaplan/internal/capture"
	"github.com/asanchezgar/rehaplan/internal/logger"
	"github.com/asanchezgar/rehaplan/internal/recognition"
	"github.com/asanchezgar/rehaplan/internal/schedule"
	"github.com/asanchezgar/rehaplan/internal/speech"
)

type RecognizeCmd struct {
	Image   string `short:"i" help:"Use this JPEG file instead of capturing from the camera." type:"existingfile"`
	Offline bool   `help:"Skip the webhook and resolve the patient from the configured schedule file."`
	Speak   bool   `help:"Narrate the result via the configured speak command."`
}

func (c *RecognizeCmd) Run(ctx *Context) error {
	now, err := ctx.Now()
	if err != nil {
		return err
	}
	runCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(ctx.Config.RequestTimeoutSec)*time.Second)
	defer cancel()

	client := ctx.Recognizer()
	var jpeg []byte
	if c.Offline {
		patient, err := ctx.LoadPatient("")
		if err != nil {
			return err
		}
		client = recognition.NewStubClient(patient)
	} else {
		var grabber capture.Grabber = capture.NewCommandGrabber(ctx.Config.CaptureCommand)
		if c.Image != "" {
			grabber = &capture.FileGrabber{Path: c.Image}
		}
		if jpeg, err = grabber.Grab(runCtx); err != nil {
			return err
		}
	}

	result, err := client.Recognize(runCtx, jpeg)
	if err != nil {
		return err
	}

	if !result.Recognized {
		logger.Info("Recognition returned no match", "message", result.Message)
		if result.Message != "" {
			fmt.Printf("Paciente no reconocido: %s\n", result.Message)
		} else {
			fmt.Println("Paciente no reconocido.")
		}
		return nil
	}

	day, err := ctx.ResolveDay("", now)
	if err != nil {
		return err
	}

	dayCtx := schedule.InferContext(result.Patient.Week, day, now)
	fmt.Printf("Paciente: %s\n", result.Patient.Name)
	PrintContext(day, now, dayCtx)

	if c.Speak {
		sentence := speech.Narrate(result.Patient.Name, dayCtx)
		return ctx.Synthesizer().Speak(context.Background(), sentence)
	}
	return nil
}
