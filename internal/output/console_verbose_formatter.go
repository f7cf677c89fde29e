package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nbsecon/catchment-calculator/internal/domain"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// ConsoleVerboseFormatter renders the full assessment report, section by
// section, in the layout of the source policy report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func writeSection(buf *bytes.Buffer, title string) {
	divider := strings.Repeat("=", 72)
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, dimStyle.Render(divider))
	fmt.Fprintln(buf, sectionStyle.Render("  "+title))
	fmt.Fprintln(buf, dimStyle.Render(divider))
}

func orDash(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

func (c ConsoleVerboseFormatter) Format(report *domain.AssessmentReport) ([]byte, error) {
	var buf bytes.Buffer

	writeSection(&buf, "MODEL PARAMETERS")
	p := report.Parameters
	fmt.Fprintf(&buf, "  Catchment area            : %s km²\n", p.AreaKm2)
	fmt.Fprintf(&buf, "  Population                : %d\n", p.Population)
	fmt.Fprintf(&buf, "  Exposed assets            : %s\n", FormatCurrency(p.ExposedAssets))
	fmt.Fprintf(&buf, "  Baseline flood probability: %s (1-in-10 year)\n", FormatPercentage(p.BaselineFloodProb.Mul(hundredDec)))
	fmt.Fprintf(&buf, "  Intervention budget       : %s\n", FormatCurrency(p.InterventionBudget))
	fmt.Fprintf(&buf, "  Discount rate             : %s\n", FormatPercentage(p.DiscountRate.Mul(hundredDec)))
	fmt.Fprintf(&buf, "  Horizon                   : %d years\n", p.HorizonYears)

	writeSection(&buf, "NBS UNIT COUNTS (FULL BUDGET)")
	for _, ua := range report.UnitAffordability {
		fmt.Fprintf(&buf, "  %-20s : %5s units  (cost %s each)\n",
			ua.Spec.Name, int64ToString(ua.Units), FormatCurrency(ua.Spec.ImplementationCost))
	}

	writeSection(&buf, "BASELINE — COST OF INACTION")
	b := report.Baseline
	fmt.Fprintf(&buf, "  Expected flood events (%dyr)      : %s\n", p.HorizonYears, b.ExpectedFloodEvents)
	fmt.Fprintf(&buf, "  Cumulative direct flood damage    : %s\n", FormatCurrency(b.DirectFloodDamage30Yr))
	fmt.Fprintf(&buf, "  Cumulative productivity losses    : %s\n", FormatCurrency(b.ProductivityLosses30Yr))
	fmt.Fprintf(&buf, "  Infrastructure restoration costs  : %s  (%sx direct)\n",
		FormatCurrency(b.RestorationCosts30Yr), p.RestorationMultiplier)
	fmt.Fprintf(&buf, "  Annual pollution treatment cost   : %s / yr\n", FormatCurrency(b.AnnualPollutionCost))
	fmt.Fprintf(&buf, "  Total economic impact             : %s  (undiscounted)\n", FormatCurrency(b.TotalUndiscounted30Yr))
	fmt.Fprintf(&buf, "  NPV of damages                    : %s  (simulation, authoritative)\n", FormatCurrency(b.NPVDamages))
	fmt.Fprintf(&buf, "  NPV cross-check (annuity)         : %s\n", FormatCurrency(b.AnnuityCrossCheckNPV))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "  Cost-of-Inaction Breakdown:")
	fmt.Fprintf(&buf, "    Infrastructure Restoration : %5s %%\n", report.Breakdown.RestorationPct.StringFixed(1))
	fmt.Fprintf(&buf, "    Direct Flood Damage        : %5s %%\n", report.Breakdown.DirectDamagePct.StringFixed(1))
	fmt.Fprintf(&buf, "    Productivity Losses        : %5s %%\n", report.Breakdown.ProductivityPct.StringFixed(1))
	fmt.Fprintf(&buf, "    Pollution Costs            : %5s %%\n", report.Breakdown.PollutionPct.StringFixed(1))
	fmt.Fprintf(&buf, "\n  Structural liability (annual / assets): %s\n", FormatPercentage(report.StructuralLiabilityPct))

	writeSection(&buf, "FLOOD DAMAGE FUNCTION — EXAMPLES")
	fmt.Fprintf(&buf, "  %-15s %10s %10s %16s\n", "Land Use", "Area (m²)", "Depth (m)", "Damage")
	for _, ex := range report.DamageExamples {
		fmt.Fprintf(&buf, "  %-15s %10s %10s %16s\n",
			ex.LandUse, ex.AreaM2.StringFixed(0), ex.DepthM.StringFixed(1), FormatCurrency(ex.Damage))
	}

	writeSection(&buf, "PRODUCTIVITY-LOSS FUNCTION — EXAMPLES")
	for _, ex := range report.ProductivityExamples {
		fmt.Fprintf(&buf, "  Depth %s m  →  productivity loss : %s\n", ex.DepthM.StringFixed(1), FormatCurrency(ex.Loss))
	}

	writeSection(&buf, "STRATEGIC CONFIGURATIONS — FULL ECONOMICS")
	verifications := make(map[string]domain.VerificationResult, len(report.Verifications))
	for _, v := range report.Verifications {
		verifications[v.ConfigName] = v
	}
	for _, cfg := range report.Ranked {
		v := verifications[cfg.Name]
		fmt.Fprintf(&buf, "\n  ── %s (%s) ──\n", cfg.Name, cfg.UnitsDescription)
		fmt.Fprintf(&buf, "    Flood-peak reduction        : %s %%\n", cfg.FloodPeakReductionPct)
		if cfg.ExtremeResiliencePct != nil {
			fmt.Fprintf(&buf, "    Extreme-event resilience    : %s %% (1-in-50 yr peak)\n", cfg.ExtremeResiliencePct)
		}
		if cfg.PollutionReductionPct != nil {
			fmt.Fprintf(&buf, "    Pollution (N) reduction     : %s %%\n", cfg.PollutionReductionPct)
		}
		fmt.Fprintf(&buf, "    Direct damage avoided (NPV) : %s\n", FormatCurrency(cfg.DirectDamageAvoidedNPV))
		fmt.Fprintf(&buf, "    Productivity avoided (NPV)  : %s\n", FormatCurrency(cfg.ProductivityAvoidedNPV))
		fmt.Fprintf(&buf, "    Restoration avoided (NPV)   : %s\n", FormatCurrency(cfg.RestorationAvoidedNPV))
		if cfg.TreatmentSavingsNPV.IsPositive() {
			fmt.Fprintf(&buf, "    Treatment savings (NPV)     : %s\n", FormatCurrency(cfg.TreatmentSavingsNPV))
		}
		fmt.Fprintf(&buf, "    Total benefits (NPV)        : %s\n", FormatCurrency(cfg.TotalBenefitsNPV))
		fmt.Fprintf(&buf, "    Total cost (impl + maint)   : %s\n", FormatCurrency(v.TotalCost))
		fmt.Fprintf(&buf, "    Net present value           : %s  (reported)\n", FormatCurrency(cfg.NetPresentValue))
		fmt.Fprintf(&buf, "    NPV derived from components : %s  (Δ = %s)\n", FormatCurrency(v.DerivedNPV), FormatCurrency(v.NPVDelta))
		fmt.Fprintf(&buf, "    Benefit-cost ratio          : %s  (derived: %s)\n", cfg.BenefitCostRatio.StringFixed(2), v.DerivedBCR.StringFixed(2))
		fmt.Fprintf(&buf, "    Payback period              : %d years\n", cfg.PaybackYears)
	}

	writeSection(&buf, "HYBRID BUDGET BREAKDOWN")
	hb := report.HybridBudget
	fmt.Fprintf(&buf, "  Wetlands (5 units)          : %s\n", FormatCurrency(hb.WetlandsCost))
	fmt.Fprintf(&buf, "  Bioswales (100 units)       : %s\n", FormatCurrency(hb.BioswalesCost))
	fmt.Fprintf(&buf, "  Buffers (50 km)             : %s\n", FormatCurrency(hb.BuffersCost))
	fmt.Fprintf(&buf, "  Total implementation cost   : %s\n", FormatCurrency(hb.TotalImplementation))
	fmt.Fprintf(&buf, "  Remaining budget            : %s\n", FormatCurrency(hb.RemainingBudget))

	writeSection(&buf, "STRATEGIC SCENARIO COMPARISON")
	fmt.Fprintf(&buf, "  %-25s %10s %6s %7s %6s %7s\n", "Configuration", "NPV (€M)", "B/C", "Flood%", "Poll%", "Resil%")
	fmt.Fprintln(&buf, "  "+strings.Repeat("-", 68))
	for _, row := range report.Comparison {
		bcr := formatOptional(row.BenefitCostRatio, 2)
		flood := formatOptional(row.FloodReductionPct, 0)
		poll := formatOptional(row.PollutionReductionPct, 0)
		resil := formatOptional(row.ExtremeResiliencePct, 0)
		fmt.Fprintf(&buf, "  %-25s %10s %6s %7s %6s %7s\n",
			row.Configuration, row.NPVMillions.StringFixed(1), orDash(bcr), orDash(flood), orDash(poll), orDash(resil))
	}

	writeSection(&buf, "CLIMATE SCENARIO ESCALATION")
	fmt.Fprintf(&buf, "  %-18s %9s %8s %20s %11s\n", "Scenario", "Precip ×", "Freq ×", "Baseline NPV", "Multiplier")
	for _, esc := range report.Climate {
		fmt.Fprintf(&buf, "  %-18s %9s %8s %20s %10s×\n",
			esc.Scenario.Name,
			esc.Scenario.PrecipIntensityFactor.StringFixed(2),
			esc.Scenario.EventFreqFactor.StringFixed(3),
			FormatCurrency(esc.Scenario.BaselineNPVDamages),
			esc.Multiplier.StringFixed(2))
	}

	writeSection(&buf, "TERRITORIAL COMPETITIVENESS")
	fmt.Fprintln(&buf, "  (a) Business-Interruption Savings")
	for _, s := range report.Interruption {
		fmt.Fprintf(&buf, "    %s:\n", s.Strategy)
		fmt.Fprintf(&buf, "      Days avoided / year            : %d\n", s.DaysAvoidedPerYear)
		fmt.Fprintf(&buf, "      Computed per firm (raw arith.) : %s\n", FormatCurrency(s.ComputedPerFirm))
		fmt.Fprintf(&buf, "      Reported per firm              : %s\n", FormatCurrency(s.ReportedPerFirm))
		fmt.Fprintf(&buf, "      Reported total annual          : %s\n", FormatCurrency(s.ReportedTotalAnnual))
	}
	pvp := report.PropertyProtection
	fmt.Fprintln(&buf, "  (b) Property-Value Protection")
	fmt.Fprintf(&buf, "      Flood-prob reduction           : %s pp\n", pvp.FloodProbReductionPP)
	fmt.Fprintf(&buf, "      Protected value (low – high)   : %s – %s\n",
		FormatCurrency(pvp.ProtectedValueLow), FormatCurrency(pvp.ProtectedValueHigh))
	ins := report.InsuranceSavings
	fmt.Fprintln(&buf, "  (c) Insurance-Premium Savings")
	fmt.Fprintf(&buf, "      Properties                     : %d\n", ins.Properties)
	fmt.Fprintf(&buf, "      Total annual (low – high)      : %s – %s\n",
		FormatCurrency(ins.TotalAnnualLow), FormatCurrency(ins.TotalAnnualHigh))

	writeSection(&buf, "TERRITORIAL ATTRACTIVENESS INDEX (0-100)")
	for _, a := range report.Attractiveness {
		fmt.Fprintf(&buf, "  %-28s : %3d  %s\n", a.Label, a.Score, strings.Repeat("█", a.Score/2))
	}

	writeSection(&buf, "RANKING BY NET PRESENT VALUE")
	for i, cfg := range report.Ranked {
		fmt.Fprintf(&buf, "  %d.  %-28s NPV = %s   BCR = %s\n",
			i+1, cfg.Name, FormatCurrency(cfg.NetPresentValue), cfg.BenefitCostRatio.StringFixed(2))
	}

	fmt.Fprintln(&buf)
	return buf.Bytes(), nil
}
