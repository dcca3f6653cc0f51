package cli

import (
	"fmt"

	"github.com/asanchezgar/rehaplan/internal/constants"
	"github.com/asanchezgar/rehaplan/internal/schedule"
)

type WeekCmd struct {
	Schedule string `short:"s" help:"Week schedule file (YAML or JSON). Defaults to the configured schedule_file."`
	Images   bool   `help:"Show resolved image references per activity."`
}

func (c *WeekCmd) Run(ctx *Context) error {
	patient, err := ctx.LoadPatient(c.Schedule)
	if err != nil {
		return err
	}

	if patient.Name != "" {
		fmt.Printf("Horario semanal de %s:\n", patient.Name)
	} else {
		fmt.Println("Horario semanal:")
	}

	for _, day := range constants.WeekDays {
		activities := schedule.DayActivities(patient.Week, day)
		if len(activities) == 0 {
			fmt.Printf("  %-10s descanso\n", day)
			continue
		}
		fmt.Printf("  %s\n", day)
		for _, act := range activities {
			line := fmt.Sprintf("    %s  %s", act.Time, act.FullDescription)
			if c.Images {
				imgs := resolveActivityImages(act)
				line += fmt.Sprintf("  [%s | %s]", imgs.Activity, imgs.Room)
			}
			fmt.Println(line)
		}
	}

	return nil
}
