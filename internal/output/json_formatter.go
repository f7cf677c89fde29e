package output

import (
	"encoding/json"
	"fmt"

	"github.com/nbsecon/catchment-calculator/internal/domain"
)

// JSONFormatter emits the full assessment report as indented JSON, suitable
// for piping into downstream tooling.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.AssessmentReport) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling assessment report: %w", err)
	}
	return append(data, '\n'), nil
}
