package cli

import (
	"context"
	"fmt"

	"github.com/asanchezgar/rehaplan/internal/schedule"
	"github.com/asanchezgar/rehaplan/internal/speech"
	"github.com/asanchezgar/rehaplan/internal/utils"
)

type NowCmd struct {
	Schedule string `short:"s" help:"Week schedule file (YAML or JSON). Defaults to the configured schedule_file."`
	Day      string `short:"d" help:"Weekday to resolve (Lunes..Domingo). Defaults to today."`
	At       string `short:"t" help:"Reference time (HH:MM). Defaults to the current time."`
	Speak    bool   `help:"Narrate the result via the configured speak command."`
}

func (c *NowCmd) Run(ctx *Context) error {
	patient, err := ctx.LoadPatient(c.Schedule)
	if err != nil {
		return err
	}

	now, err := ctx.Now()
	if err != nil {
		return err
	}
	if c.At != "" {
		if now, err = utils.AtClock(now, c.At); err != nil {
			return err
		}
	}

	day, err := ctx.ResolveDay(c.Day, now)
	if err != nil {
		return err
	}

	dayCtx := schedule.InferContext(patient.Week, day, now)
	if patient.Name != "" {
		fmt.Printf("Paciente: %s\n", patient.Name)
	}
	PrintContext(day, now, dayCtx)

	if c.Speak {
		sentence := speech.Narrate(patient.Name, dayCtx)
		return ctx.Synthesizer().Speak(context.Background(), sentence)
	}
	return nil
}
