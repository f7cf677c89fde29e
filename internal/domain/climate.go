package domain

import (
	"github.com/shopspring/decimal"
)

// ClimateScenario holds one climate future's forcing factors and the baseline
// NPV of damages simulated under it.
type ClimateScenario struct {
	Name                  string          `yaml:"name" json:"name"`
	PrecipIntensityFactor decimal.Decimal `yaml:"precip_intensity_factor" json:"precip_intensity_factor"`
	EventFreqFactor       decimal.Decimal `yaml:"event_freq_factor" json:"event_freq_factor"`
	BaselineNPVDamages    decimal.Decimal `yaml:"baseline_npv_damages" json:"baseline_npv_damages"`
}
