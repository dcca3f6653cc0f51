package recognition

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/asanchezgar/rehaplan/internal/models"
)

// LoadPatientFile reads a patient record with its week schedule from a local
// YAML or JSON file. Offline commands use this in place of the webhook.
func LoadPatientFile(path string) (models.Patient, error) {
	var patient models.Patient

	data, err := os.ReadFile(path)
	if err != nil {
		return patient, fmt.Errorf("reading schedule file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &patient)
	default:
		err = yaml.Unmarshal(data, &patient)
	}
	if err != nil {
		return patient, fmt.Errorf("parsing schedule file %s: %w", path, err)
	}

	patient.Week = patient.Week.Normalize()
	return patient, nil
}
