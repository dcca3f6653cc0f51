// Package speech phrases a day context as a narration sentence and hands it
// to a text-to-speech synthesizer.
package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/asanchezgar/rehaplan/internal/logger"
	"github.com/asanchezgar/rehaplan/internal/models"
)

// Narrate builds the spoken sentence for a day context. Pure: the same
// context and name always produce the same sentence.
func Narrate(patientName string, dayCtx models.DayContext) string {
	var parts []string

	if patientName != "" {
		parts = append(parts, fmt.Sprintf("Hola, %s.", patientName))
	}

	switch {
	case dayCtx.Current != nil && dayCtx.Current.HasRoom():
		parts = append(parts, fmt.Sprintf("Ahora toca %s en la %s.", dayCtx.Current.Name, dayCtx.Current.Room))
	case dayCtx.Current != nil:
		parts = append(parts, fmt.Sprintf("Ahora toca %s.", dayCtx.Current.Name))
	case dayCtx.Total == 0:
		parts = append(parts, "Hoy es día de descanso.")
	default:
		parts = append(parts, "Ahora no hay ninguna actividad.")
	}

	if dayCtx.Next != nil {
		parts = append(parts, fmt.Sprintf("A continuación, a las %s, %s.", dayCtx.Next.Time, dayCtx.Next.Name))
	} else if dayCtx.Total > 0 && dayCtx.Current != nil {
		parts = append(parts, "No hay más actividades por hoy.")
	}

	return strings.Join(parts, " ")
}

// Synthesizer speaks a sentence out loud.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

// CommandSynthesizer shells out to an external TTS tool (espeak-ng, say,
// ...). The token "{text}" in the command is replaced with the sentence; if
// no argument carries it, the sentence is appended.
type CommandSynthesizer struct {
	Command []string
}

// NewCommandSynthesizer creates a synthesizer around the given command.
func NewCommandSynthesizer(command []string) *CommandSynthesizer {
	return &CommandSynthesizer{Command: command}
}

// Speak runs the TTS command with the sentence.
func (s *CommandSynthesizer) Speak(ctx context.Context, text string) error {
	if len(s.Command) == 0 {
		return fmt.Errorf("speak command is not configured")
	}

	args := make([]string, 0, len(s.Command))
	replaced := false
	for _, a := range s.Command[1:] {
		if a == "{text}" {
			a = text
			replaced = true
		}
		args = append(args, a)
	}
	if !replaced {
		args = append(args, text)
	}

	logger.Debug("Running speak command", "command", s.Command[0])

	if out, err := exec.CommandContext(ctx, s.Command[0], args...).CombinedOutput(); err != nil {
		return fmt.Errorf("speak command failed: %w (%s)", err, string(out))
	}
	return nil
}

// StubSynthesizer records spoken sentences instead of producing audio.
type StubSynthesizer struct {
	Spoken []string
	Err    error
}

// Speak appends the sentence to Spoken.
func (s *StubSynthesizer) Speak(_ context.Context, text string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Spoken = append(s.Spoken, text)
	return nil
}
