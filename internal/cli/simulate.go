package cli

import (
	"github.com/charmbracelet/huh"

	"github.com/asanchezgar/rehaplan/internal/constants"
	"github.com/asanchezgar/rehaplan/internal/schedule"
	"github.com/asanchezgar/rehaplan/internal/utils"
)

type SimulateCmd struct {
	Schedule string `short:"s" help:"Week schedule file (YAML or JSON). Defaults to the configured schedule_file."`
}

// Run asks for a weekday and a clock time, then resolves the context at that
// instant. Useful for checking what the kiosk would show without touching
// the system clock.
func (c *SimulateCmd) Run(ctx *Context) error {
	patient, err := ctx.LoadPatient(c.Schedule)
	if err != nil {
		return err
	}

	now, err := ctx.Now()
	if err != nil {
		return err
	}

	day, _ := ctx.ResolveDay("", now)
	at := now.Format(constants.TimeFormat)

	dayOptions := make([]huh.Option[string], 0, len(constants.WeekDays))
	for _, d := range constants.WeekDays {
		dayOptions = append(dayOptions, huh.NewOption(d, d))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Día").
				Options(dayOptions...).
				Value(&day),
			huh.NewInput().
				Title("Hora (HH:MM)").
				Value(&at).
				Validate(func(s string) error {
					_, err := utils.ParseClock(s)
					return err
				}),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return err
	}

	when, err := utils.AtClock(now, at)
	if err != nil {
		return err
	}

	dayCtx := schedule.InferContext(patient.Week, day, when)
	PrintContext(day, when, dayCtx)
	return nil
}
