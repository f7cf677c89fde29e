package domain

import (
	"github.com/shopspring/decimal"
)

// DamageTableEntry holds the depth-damage calibration for one land-use
// category: asset density in EUR per square metre plus damage fractions at the
// two benchmark inundation depths (0.5 m and 1.5 m). Fractions must lie in
// [0,1] with the 1.5 m fraction at least the 0.5 m fraction.
type DamageTableEntry struct {
	LandUse          string          `yaml:"land_use" json:"land_use"`
	AssetDensity     decimal.Decimal `yaml:"asset_density_eur_m2" json:"asset_density_eur_m2"`
	DamageFraction05 decimal.Decimal `yaml:"damage_fraction_05m" json:"damage_fraction_05m"`
	DamageFraction15 decimal.Decimal `yaml:"damage_fraction_15m" json:"damage_fraction_15m"`
}

// DamageTable is the full depth-damage calibration keyed by land use.
type DamageTable map[string]DamageTableEntry

// ProductivityTier defines economic disruption for flood depths up to
// DepthCeilingM. Tiers are evaluated in order; the first ceiling at or above
// the depth wins, and the last tier's ceiling is an effectively unbounded
// sentinel so every depth matches.
type ProductivityTier struct {
	DepthCeilingM      decimal.Decimal `yaml:"depth_ceiling_m" json:"depth_ceiling_m"`
	DisruptionFraction decimal.Decimal `yaml:"disruption_fraction" json:"disruption_fraction"`
	DurationDays       int             `yaml:"duration_days" json:"duration_days"`
}
