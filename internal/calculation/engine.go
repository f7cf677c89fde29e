package calculation

import (
	"github.com/nbsecon/catchment-calculator/internal/domain"
)

// CalculationEngine evaluates the catchment economics: baseline cost of
// inaction, per-configuration audits, the strategic comparison, and the
// territorial indicators. All methods are pure over the engine's immutable
// reference data, so a single engine is safe for concurrent use.
type CalculationEngine struct {
	Params           domain.CatchmentParameters
	DamageCalc       *DamageCalculator
	ProductivityCalc *ProductivityCalculator
	UnitSpecs        []domain.NbSUnitSpec
	Configs          []domain.NbSConfig
	Climate          []domain.ClimateScenario
	Logger           Logger
}

// NewCalculationEngine creates an engine over the built-in report tables.
func NewCalculationEngine() *CalculationEngine {
	engine, err := NewCalculationEngineWithTables(
		DefaultCatchmentParameters(),
		DefaultDamageTable(),
		DefaultProductivityTiers(),
	)
	if err != nil {
		// The built-in tables satisfy every invariant; a failure here is a
		// programming error.
		panic(err)
	}
	return engine
}

// NewCalculationEngineWithTables creates an engine over caller-supplied
// parameters and tables, validating the productivity tier ordering.
func NewCalculationEngineWithTables(params domain.CatchmentParameters, table domain.DamageTable, tiers []domain.ProductivityTier) (*CalculationEngine, error) {
	prodCalc, err := NewProductivityCalculator(tiers)
	if err != nil {
		return nil, err
	}
	return &CalculationEngine{
		Params:           params,
		DamageCalc:       NewDamageCalculator(table),
		ProductivityCalc: prodCalc,
		UnitSpecs:        BuiltinUnitSpecs(),
		Configs:          BuiltinConfigs(),
		Climate:          BuiltinClimateScenarios(),
		Logger:           NopLogger{},
	}, nil
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a
// no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}
