package recognition

import (
	"context"

	"github.com/asanchezgar/rehaplan/internal/models"
)

// StubClient is a deterministic Client used by tests and by the offline
// commands, which resolve a patient from a local schedule file instead of
// the webhook.
type StubClient struct {
	// Result is returned verbatim by Recognize when Err is nil.
	Result Result
	// Err, when set, is returned instead.
	Err error
}

// NewStubClient builds a stub that always recognizes the given patient.
func NewStubClient(patient models.Patient) *StubClient {
	return &StubClient{Result: Result{Recognized: true, Patient: patient}}
}

// Recognize returns the canned result regardless of the submitted image.
func (s *StubClient) Recognize(ctx context.Context, jpeg []byte) (*Result, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	res := s.Result
	return &res, nil
}
