package recognition

import (
	"context"
	"testing"
)

func TestParseResult(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantErr        bool
		wantRecognized bool
		wantPatientID  string
		wantMonday     string
	}{
		{
			name:           "positive match with schedule",
			body:           `{"recognized":true,"patient_id":"p-17","name":"María","schedule":{"lunes":"09:00-Fisioterapia-Sala A"}}`,
			wantRecognized: true,
			wantPatientID:  "p-17",
			wantMonday:     "09:00-Fisioterapia-Sala A",
		},
		{
			name:           "negative match is not an error",
			body:           `{"recognized":false,"message":"no match"}`,
			wantRecognized: false,
		},
		{
			name:    "positive match without identity is rejected",
			body:    `{"recognized":true,"name":"  "}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			body:    `{"recognized":`,
			wantErr: true,
		},
		{
			name:           "schedule keys outside the week are dropped",
			body:           `{"recognized":true,"patient_id":"p-1","name":"Ana","schedule":{"Lunes":"09:00-Terapia","Festivo":"junk"}}`,
			wantRecognized: true,
			wantPatientID:  "p-1",
			wantMonday:     "09:00-Terapia",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResult([]byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseResult() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Recognized != tt.wantRecognized {
				t.Errorf("Recognized = %v, want %v", got.Recognized, tt.wantRecognized)
			}
			if tt.wantRecognized {
				if got.Patient.ID != tt.wantPatientID {
					t.Errorf("Patient.ID = %q, want %q", got.Patient.ID, tt.wantPatientID)
				}
				if raw := got.Patient.Week.Day("Lunes"); raw != tt.wantMonday {
					t.Errorf("Week.Day(Lunes) = %q, want %q", raw, tt.wantMonday)
				}
				if len(got.Patient.Week) > 0 {
					for k := range got.Patient.Week {
						if k == "Festivo" || k == "festivo" {
							t.Errorf("non-weekday key survived normalization: %q", k)
						}
					}
				}
			}
		})
	}
}

func TestStubClient(t *testing.T) {
	stub := &StubClient{Result: Result{Recognized: false, Message: "nobody home"}}
	got, err := stub.Recognize(context.Background(), []byte("jpeg"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Recognized {
		t.Error("expected unrecognized result")
	}
	if got.Message != "nobody home" {
		t.Errorf("Message = %q", got.Message)
	}
}
