// Package recognition talks to the remote face-recognition webhook and
// validates its loosely-typed payload into the internal data model at the
// boundary, so the rest of the program only ever sees canonical types.
package recognition

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/asanchezgar/rehaplan/internal/models"
)

// Result is the validated outcome of one recognition attempt.
type Result struct {
	// Recognized reports whether the webhook matched a known patient.
	Recognized bool
	// Patient is populated only when Recognized is true.
	Patient models.Patient
	// Message carries the webhook's human-readable note, if any.
	Message string
}

// Client submits a captured JPEG and returns the recognition outcome.
// A negative match is a Result with Recognized=false, not an error; errors
// are reserved for transport and payload failures.
type Client interface {
	Recognize(ctx context.Context, jpeg []byte) (*Result, error)
}

// payload mirrors the webhook's wire shape. The schedule keys are weekday
// names in whatever casing the upstream system produces.
type payload struct {
	Recognized bool              `json:"recognized"`
	PatientID  string            `json:"patient_id"`
	Name       string            `json:"name"`
	Schedule   map[string]string `json:"schedule"`
	Message    string            `json:"message"`
}

// ParseResult validates a raw webhook response body. Positive matches must
// carry a patient ID and name; the schedule map is normalized onto canonical
// weekday keys, silently dropping keys that match no weekday.
func ParseResult(body []byte) (*Result, error) {
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("malformed recognition payload: %w", err)
	}

	if !p.Recognized {
		return &Result{Recognized: false, Message: p.Message}, nil
	}

	id := strings.TrimSpace(p.PatientID)
	name := strings.TrimSpace(p.Name)
	if id == "" || name == "" {
		return nil, fmt.Errorf("recognition payload missing patient identity (id=%q, name=%q)", p.PatientID, p.Name)
	}

	return &Result{
		Recognized: true,
		Patient: models.Patient{
			ID:   id,
			Name: name,
			Week: models.WeekSchedule(p.Schedule).Normalize(),
		},
		Message: p.Message,
	}, nil
}
