package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/asanchezgar/rehaplan/internal/config"
	"github.com/asanchezgar/rehaplan/internal/constants"
	"github.com/asanchezgar/rehaplan/internal/display"
	"github.com/asanchezgar/rehaplan/internal/keyring"
	"github.com/asanchezgar/rehaplan/internal/models"
	"github.com/asanchezgar/rehaplan/internal/recognition"
	"github.com/asanchezgar/rehaplan/internal/speech"
	"github.com/asanchezgar/rehaplan/internal/utils"
)

// Context carries shared dependencies into every command.
type Context struct {
	ConfigPath string
	Config     *config.Config
}

// Recognizer builds the recognition client from configuration. The API key
// is optional; a keyring miss just means the webhook is called without one.
func (c *Context) Recognizer() recognition.Client {
	apiKey, err := keyring.GetAPIKey()
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		apiKey = ""
	}
	return recognition.NewWebhookClient(
		c.Config.WebhookURL,
		apiKey,
		time.Duration(c.Config.RequestTimeoutSec)*time.Second,
	)
}

// Synthesizer builds the configured TTS backend.
func (c *Context) Synthesizer() speech.Synthesizer {
	return speech.NewCommandSynthesizer(c.Config.SpeakCommand)
}

// Now returns the current instant in the configured timezone.
func (c *Context) Now() (time.Time, error) {
	return utils.NowInTimezone(c.Config.Timezone)
}

// LoadPatient reads the local schedule file, preferring an explicit path
// over the configured one.
func (c *Context) LoadPatient(override string) (models.Patient, error) {
	path := override
	if path == "" {
		path = c.Config.ScheduleFile
	}
	if path == "" {
		return models.Patient{}, errors.New("no schedule file configured (set schedule_file or pass --schedule)")
	}
	return recognition.LoadPatientFile(path)
}

// ResolveDay picks the weekday to show: an explicit name when given,
// otherwise today in the configured timezone.
func (c *Context) ResolveDay(override string, now time.Time) (string, error) {
	if override != "" {
		canon := models.CanonicalDay(override)
		if canon == "" {
			return "", fmt.Errorf("unknown day %q (expected Lunes..Domingo)", override)
		}
		return canon, nil
	}
	// time.Weekday is Sunday-based; WeekDays is Monday-first.
	return constants.WeekDays[(int(now.Weekday())+6)%7], nil
}

// resolveActivityImages looks up the images for an activity, falling back
// to the raw description when the name is empty.
func resolveActivityImages(act models.Activity) display.Images {
	key := act.Name
	if key == "" {
		key = act.Description
	}
	return display.ResolveImages(key, act.Room)
}

// PrintContext renders a day context for terminal output, including the
// resolved image references.
func PrintContext(day string, now time.Time, dayCtx models.DayContext) {
	fmt.Printf("%s %s: %d actividades (%d pasadas, %d pendientes)\n",
		day, now.Format(constants.TimeFormat), dayCtx.Total, dayCtx.Completed, dayCtx.Upcoming)

	if dayCtx.Current != nil {
		imgs := resolveActivityImages(*dayCtx.Current)
		fmt.Printf("  Ahora:   %s  %s  [%s | %s]\n",
			dayCtx.Current.Time, dayCtx.Current.FullDescription, imgs.Activity, imgs.Room)
	} else {
		fmt.Println("  Ahora:   sin actividad")
	}

	if dayCtx.Next != nil {
		fmt.Printf("  Después: %s  %s\n", dayCtx.Next.Time, dayCtx.Next.FullDescription)
	} else {
		fmt.Println("  Después: nada más hoy")
	}
}
