package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/nbsecon/catchment-calculator/internal/calculation"
	"github.com/nbsecon/catchment-calculator/internal/config"
	"github.com/nbsecon/catchment-calculator/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "nbsecon %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "nbsecon",
	Short: "Flood-risk economics calculator for catchment NbS planning",
	Long: `Economic assessment of flood risk and Nature-based Solutions for a
river catchment: cost of inaction, configuration cost-benefit audits,
climate escalation and territorial competitiveness indicators.`,
}

// buildEngine constructs the calculation engine, optionally overriding the
// built-in assumptions from a YAML file.
func buildEngine(cmd *cobra.Command) (*calculation.CalculationEngine, error) {
	inputFile, _ := cmd.Flags().GetString("config")

	var engine *calculation.CalculationEngine
	if inputFile != "" {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(inputFile)
		if err != nil {
			return nil, err
		}
		engine, err = parser.BuildEngine(input)
		if err != nil {
			return nil, err
		}
	} else {
		engine = calculation.NewCalculationEngine()
	}

	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine, nil
}

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run the full catchment assessment",
	Long: `Run the complete assessment: baseline cost of inaction, worked damage
and productivity examples, configuration audits, hybrid budget breakdown,
scenario comparison, climate escalation and competitiveness indicators.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := buildEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		report, err := engine.RunAssessment()
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		outFile, _ := cmd.Flags().GetString("out")
		if err := output.GenerateReport(report, format, outFile); err != nil {
			log.Fatal(err)
		}
	},
}

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Show the cost-of-inaction baseline",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := buildEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		b := engine.ComputeBaseline()
		breakdown := engine.BaselineCostBreakdown(b)

		fmt.Printf("Expected flood events (%dyr): %s\n", engine.Params.HorizonYears, b.ExpectedFloodEvents)
		fmt.Printf("Direct flood damage:          %s\n", output.FormatCurrency(b.DirectFloodDamage30Yr))
		fmt.Printf("Productivity losses:          %s\n", output.FormatCurrency(b.ProductivityLosses30Yr))
		fmt.Printf("Restoration costs:            %s\n", output.FormatCurrency(b.RestorationCosts30Yr))
		fmt.Printf("Pollution cost (annual):      %s\n", output.FormatCurrency(b.AnnualPollutionCost))
		fmt.Printf("Total (undiscounted):         %s\n", output.FormatCurrency(b.TotalUndiscounted30Yr))
		fmt.Printf("NPV of damages:               %s\n", output.FormatCurrency(b.NPVDamages))
		fmt.Printf("NPV cross-check (annuity):    %s\n", output.FormatCurrency(b.AnnuityCrossCheckNPV))
		fmt.Println()
		fmt.Printf("Breakdown: restoration %s%% / direct %s%% / productivity %s%% / pollution %s%%\n",
			breakdown.RestorationPct.StringFixed(1),
			breakdown.DirectDamagePct.StringFixed(1),
			breakdown.ProductivityPct.StringFixed(1),
			breakdown.PollutionPct.StringFixed(1))
		fmt.Printf("Structural liability: %s of exposed assets per year\n",
			output.FormatPercentage(engine.StructuralLiability(b)))
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Audit each configuration's stated NPV and BCR against its components",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := buildEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		results, err := engine.VerifyAllConfigs()
		if err != nil {
			log.Fatal(err)
		}

		for _, v := range results {
			status := "OK"
			if !v.NPVDelta.IsZero() {
				status = "MISMATCH"
			}
			fmt.Printf("%-26s NPV %s (derived %s, Δ %s)  BCR %s (derived %s)  [%s]\n",
				v.ConfigName,
				output.FormatMillions(v.ReportedNPV),
				output.FormatMillions(v.DerivedNPV),
				output.FormatCurrency(v.NPVDelta),
				v.ReportedBCR.StringFixed(2),
				v.DerivedBCR.StringFixed(2),
				status)
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare baseline and configurations, ranked by net present value",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := buildEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("%-26s %10s\n", "Configuration", "NPV (€M)")
		for _, row := range engine.ComparisonTable() {
			fmt.Printf("%-26s %10s\n", row.Configuration, row.NPVMillions.StringFixed(1))
		}

		ranked := calculation.RankByNPV(engine.Configs)
		fmt.Println()
		for i, cfg := range ranked {
			fmt.Printf("%d. %s (NPV %s, BCR %s, payback %d years)\n",
				i+1, cfg.Name,
				output.FormatMillions(cfg.NetPresentValue),
				cfg.BenefitCostRatio.StringFixed(2),
				cfg.PaybackYears)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an assessment input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Input file %s is valid\n", args[0])
	},
}

func init() {
	for _, c := range []*cobra.Command{assessCmd, baselineCmd, verifyCmd, compareCmd} {
		c.Flags().StringP("config", "c", "", "YAML file overriding the built-in assumptions")
		c.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	}
	assessCmd.Flags().StringP("format", "f", "console", "Output format (console, console-lite, json, csv)")
	assessCmd.Flags().StringP("out", "o", "", "Write output to file instead of stdout")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(baselineCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
