package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/nbsecon/catchment-calculator/internal/domain"
)

// CSVSummarizer writes one row per comparison entry (baseline first), which is
// the shape spreadsheet users want for quick charting.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.AssessmentReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Configuration",
		"NPV (EUR millions)",
		"Benefit-Cost Ratio",
		"Flood Peak Reduction (%)",
		"Pollution Reduction (%)",
		"Extreme Resilience (%)",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}

	for _, row := range report.Comparison {
		record := []string{
			row.Configuration,
			row.NPVMillions.StringFixed(1),
			emptyIfNil(formatOptional(row.BenefitCostRatio, 2)),
			emptyIfNil(formatOptional(row.FloodReductionPct, 0)),
			emptyIfNil(formatOptional(row.PollutionReductionPct, 0)),
			emptyIfNil(formatOptional(row.ExtremeResiliencePct, 0)),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing csv row for %s: %w", row.Configuration, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}

func emptyIfNil(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
