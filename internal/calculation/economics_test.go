package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbsecon/catchment-calculator/internal/domain"
)

func configByName(t *testing.T, name string) domain.NbSConfig {
	t.Helper()
	for _, cfg := range BuiltinConfigs() {
		if cfg.Name == name {
			return cfg
		}
	}
	t.Fatalf("config %q not found", name)
	panic("unreachable")
}

func TestVerifyConfigEconomicsWetlands(t *testing.T) {
	cfg := configByName(t, "Strategic Wetlands")

	res, err := VerifyConfigEconomics(cfg)
	require.NoError(t, err)

	assert.True(t, res.TotalCost.Equal(decimal.NewFromInt(17_800_000)), "got %s", res.TotalCost)
	assert.True(t, res.DerivedNPV.Equal(decimal.NewFromInt(64_700_000)), "got %s", res.DerivedNPV)
	assert.True(t, res.NPVDelta.IsZero(), "wetlands NPV should reconcile exactly, delta %s", res.NPVDelta)
	assert.True(t, res.DerivedBCR.Equal(decimal.NewFromFloat(4.63)), "got %s", res.DerivedBCR)
	assert.True(t, res.ReportedBCR.Equal(res.DerivedBCR))
}

func TestVerifyConfigEconomicsAllConfigsReconcile(t *testing.T) {
	ce := NewCalculationEngine()

	results, err := ce.VerifyAllConfigs()
	require.NoError(t, err)
	require.Len(t, results, 4)

	expectedBCR := map[string]decimal.Decimal{
		"Distributed Bioswales":   decimal.NewFromFloat(2.45),
		"Riparian Buffer Network": decimal.NewFromFloat(3.00),
		"Strategic Wetlands":      decimal.NewFromFloat(4.63),
		"Hybrid Approach":         decimal.NewFromFloat(3.77),
	}

	for _, res := range results {
		assert.True(t, res.NPVDelta.IsZero(), "%s: delta %s", res.ConfigName, res.NPVDelta)
		assert.True(t, res.DerivedBCR.Equal(expectedBCR[res.ConfigName]),
			"%s: expected BCR %s, got %s", res.ConfigName, expectedBCR[res.ConfigName], res.DerivedBCR)
	}
}

func TestVerifyConfigEconomicsZeroCost(t *testing.T) {
	cfg := configByName(t, "Strategic Wetlands")
	cfg.ImplementationCost = decimal.Zero
	cfg.MaintenanceCostNPV = decimal.Zero

	_, err := VerifyConfigEconomics(cfg)
	assert.ErrorIs(t, err, ErrZeroCost)
}

func TestUnitsFromBudget(t *testing.T) {
	budget := decimal.NewFromInt(10_000_000)

	expected := map[string]int64{
		"Wetland":         13,
		"Riparian Buffer": 333,
		"Bioswale":        400,
		"Green Corridor":  50,
	}

	for _, spec := range BuiltinUnitSpecs() {
		units, err := UnitsFromBudget(spec, budget)
		require.NoError(t, err)
		assert.Equal(t, expected[spec.Name], units, spec.Name)
	}
}

func TestUnitsFromBudgetRejectsNonPositiveCost(t *testing.T) {
	spec := BuiltinUnitSpecs()[0]
	spec.ImplementationCost = decimal.Zero

	_, err := UnitsFromBudget(spec, decimal.NewFromInt(1_000_000))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHybridBudgetBreakdown(t *testing.T) {
	ce := NewCalculationEngine()

	hb, err := ce.HybridBudgetBreakdown()
	require.NoError(t, err)

	assert.True(t, hb.WetlandsCost.Equal(decimal.NewFromInt(3_750_000)), "got %s", hb.WetlandsCost)
	assert.True(t, hb.BioswalesCost.Equal(decimal.NewFromInt(2_500_000)), "got %s", hb.BioswalesCost)
	assert.True(t, hb.BuffersCost.Equal(decimal.NewFromInt(1_500_000)), "got %s", hb.BuffersCost)
	assert.True(t, hb.TotalImplementation.Equal(decimal.NewFromInt(7_750_000)), "got %s", hb.TotalImplementation)
	assert.True(t, hb.RemainingBudget.Equal(decimal.NewFromInt(2_250_000)), "got %s", hb.RemainingBudget)
}
