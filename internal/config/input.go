package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/nbsecon/catchment-calculator/internal/calculation"
	"github.com/nbsecon/catchment-calculator/internal/domain"
)

// AssessmentInput is the optional override file for an assessment run. Any
// section left empty falls back to the compiled-in report tables, which
// remain the authoritative reference data.
type AssessmentInput struct {
	Catchment         *domain.CatchmentParameters `yaml:"catchment,omitempty"`
	DamageTable       []domain.DamageTableEntry   `yaml:"damage_table,omitempty"`
	ProductivityTiers []domain.ProductivityTier   `yaml:"productivity_tiers,omitempty"`
}

// InputParser handles parsing and validation of assessment input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an assessment input from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*AssessmentInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input AssessmentInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// BuildEngine turns a validated input into a calculation engine, filling any
// missing section with the built-in tables.
func (ip *InputParser) BuildEngine(input *AssessmentInput) (*calculation.CalculationEngine, error) {
	params := calculation.DefaultCatchmentParameters()
	if input.Catchment != nil {
		params = *input.Catchment
	}

	table := calculation.DefaultDamageTable()
	if len(input.DamageTable) > 0 {
		table = make(domain.DamageTable, len(input.DamageTable))
		for _, entry := range input.DamageTable {
			table[entry.LandUse] = entry
		}
	}

	tiers := calculation.DefaultProductivityTiers()
	if len(input.ProductivityTiers) > 0 {
		tiers = input.ProductivityTiers
	}

	return calculation.NewCalculationEngineWithTables(params, table, tiers)
}

// ValidateInput validates every provided section against the model
// invariants.
func (ip *InputParser) ValidateInput(input *AssessmentInput) error {
	if input.Catchment != nil {
		if err := ip.validateCatchment(input.Catchment); err != nil {
			return fmt.Errorf("catchment validation failed: %w", err)
		}
	}
	for i, entry := range input.DamageTable {
		if err := ip.validateDamageEntry(&entry); err != nil {
			return fmt.Errorf("damage table entry %d (%s) validation failed: %w", i, entry.LandUse, err)
		}
	}
	if len(input.ProductivityTiers) > 0 {
		if err := ip.validateProductivityTiers(input.ProductivityTiers); err != nil {
			return fmt.Errorf("productivity tiers validation failed: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateCatchment(c *domain.CatchmentParameters) error {
	if !c.ExposedAssets.IsPositive() {
		return fmt.Errorf("exposed assets must be positive")
	}
	if !c.InterventionBudget.IsPositive() {
		return fmt.Errorf("intervention budget must be positive")
	}
	if c.DiscountRate.IsNegative() {
		return fmt.Errorf("discount rate cannot be negative")
	}
	if c.HorizonYears <= 0 {
		return fmt.Errorf("horizon years must be positive")
	}
	if c.BaselineFloodProb.IsNegative() || c.BaselineFloodProb.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("baseline flood probability must be between 0 and 1")
	}
	if !c.RestorationMultiplier.IsPositive() {
		return fmt.Errorf("restoration multiplier must be positive")
	}
	return nil
}

func (ip *InputParser) validateDamageEntry(entry *domain.DamageTableEntry) error {
	one := decimal.NewFromInt(1)
	if entry.LandUse == "" {
		return fmt.Errorf("land use is required")
	}
	if entry.AssetDensity.IsNegative() {
		return fmt.Errorf("asset density cannot be negative")
	}
	if entry.DamageFraction05.IsNegative() || entry.DamageFraction05.GreaterThan(one) {
		return fmt.Errorf("0.5m damage fraction must be between 0 and 1")
	}
	if entry.DamageFraction15.IsNegative() || entry.DamageFraction15.GreaterThan(one) {
		return fmt.Errorf("1.5m damage fraction must be between 0 and 1")
	}
	if entry.DamageFraction15.LessThan(entry.DamageFraction05) {
		return fmt.Errorf("1.5m damage fraction must be at least the 0.5m fraction")
	}
	return nil
}

func (ip *InputParser) validateProductivityTiers(tiers []domain.ProductivityTier) error {
	one := decimal.NewFromInt(1)
	for i, tier := range tiers {
		if tier.DisruptionFraction.IsNegative() || tier.DisruptionFraction.GreaterThan(one) {
			return fmt.Errorf("tier %d disruption fraction must be between 0 and 1", i)
		}
		if tier.DurationDays <= 0 {
			return fmt.Errorf("tier %d duration must be positive", i)
		}
		if i > 0 && !tier.DepthCeilingM.GreaterThan(tiers[i-1].DepthCeilingM) {
			return fmt.Errorf("tier %d ceiling must exceed tier %d ceiling", i, i-1)
		}
	}
	return nil
}
