package output

import (
	"bytes"
	"fmt"

	"github.com/nbsecon/catchment-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.AssessmentReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "CATCHMENT NBS ASSESSMENT SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Cost of inaction (30yr, undiscounted): %s\n", FormatCurrency(report.Baseline.TotalUndiscounted30Yr))
	fmt.Fprintf(&buf, "NPV of damages: %s (structural liability %s of exposed assets)\n",
		FormatCurrency(report.Baseline.NPVDamages), FormatPercentage(report.StructuralLiabilityPct))
	fmt.Fprintln(&buf)

	for _, v := range report.Verifications {
		fmt.Fprintf(&buf, "%s: NPV=%s BCR=%s (derived %s, Δ %s)\n",
			v.ConfigName,
			FormatMillions(v.ReportedNPV),
			v.ReportedBCR.StringFixed(2),
			v.DerivedBCR.StringFixed(2),
			FormatCurrency(v.NPVDelta),
		)
	}

	if len(report.Ranked) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (NPV %s, BCR %s, payback %d years)\n",
			report.Ranked[0].Name,
			FormatMillions(report.Ranked[0].NetPresentValue),
			report.Ranked[0].BenefitCostRatio.StringFixed(2),
			report.Ranked[0].PaybackYears,
		)
	}
	return buf.Bytes(), nil
}
