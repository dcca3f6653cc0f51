package system

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/asanchezgar/rehaplan/internal/capture"
	"github.com/asanchezgar/rehaplan/internal/cli"
	"github.com/asanchezgar/rehaplan/internal/models"
	"github.com/asanchezgar/rehaplan/internal/tui"
	"github.com/asanchezgar/rehaplan/internal/utils"
)

type KioskCmd struct {
	Image   string `short:"i" help:"Use this JPEG file instead of capturing from the camera." type:"existingfile"`
	Offline bool   `help:"Skip recognition and load the configured schedule file."`
}

// Run resolves a patient (camera capture + webhook, or the local schedule
// file) and launches the full-screen kiosk.
func (c *KioskCmd) Run(ctx *cli.Context) error {
	patient, err := c.resolvePatient(ctx)
	if err != nil {
		return err
	}

	loc, err := utils.LoadLocation(ctx.Config.Timezone)
	if err != nil {
		return err
	}

	model := tui.NewModel(patient, ctx.Synthesizer(), loc)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("kiosk failed: %w", err)
	}
	return nil
}

func (c *KioskCmd) resolvePatient(ctx *cli.Context) (models.Patient, error) {
	if c.Offline {
		return ctx.LoadPatient("")
	}

	runCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(ctx.Config.RequestTimeoutSec)*time.Second)
	defer cancel()

	var grabber capture.Grabber = capture.NewCommandGrabber(ctx.Config.CaptureCommand)
	if c.Image != "" {
		grabber = &capture.FileGrabber{Path: c.Image}
	}
	jpeg, err := grabber.Grab(runCtx)
	if err != nil {
		return models.Patient{}, err
	}

	result, err := ctx.Recognizer().Recognize(runCtx, jpeg)
	if err != nil {
		return models.Patient{}, err
	}
	if !result.Recognized {
		return models.Patient{}, fmt.Errorf("patient not recognized: %s", result.Message)
	}
	return result.Patient, nil
}
