package properties

import (
	"math"

	"TapeLab/internal/calc/adhesion"
	"TapeLab/internal/calc/aging"
	"TapeLab/internal/calc/temperature"
	"TapeLab/internal/materials"
	"TapeLab/internal/tape"
)

type Result struct {
	PeelAdhesionNcm   float64        `json:"peel_adhesion_ncm"`
	HoldStrengthNcm2  float64        `json:"hold_strength_ncm2"`
	StretchPct        float64        `json:"stretch_pct"`
	TotalThicknessUm  float64        `json:"total_thickness_um"`
	TemperatureFactor float64        `json:"temperature_factor"`
	Aging             *aging.Effects `json:"aging,omitempty"`
	Notes             string         `json:"notes"`
}

// Calculate is the single entry point assembling the adhesion, aging, and
// temperature models into the reported property set for one configuration.
// Pure function: identical input yields identical output.
func Calculate(cfg tape.Config) (Result, error) {
	adh := materials.AdhesiveFor(cfg.Adhesive)
	back := materials.BackingFor(cfg.Backing)
	env := materials.EnvironmentFor(cfg.Environment)

	thickness := cfg.ThicknessUm
	if thickness <= 0 {
		thickness = adh.StandardThicknessUm
	}

	peel := adhesion.PeelAdhesion(cfg)
	hold := adhesion.HoldStrength(cfg)
	stretch := adhesion.Stretch(cfg)

	tempFactor := temperature.Multiplier(env.TempTypicalC, cfg.Adhesive)
	peel = math.Max(adhesion.MinPeelNcm, peel*tempFactor)
	hold = math.Max(adhesion.MinHoldNcm2, hold*tempFactor)

	var effects *aging.Effects
	if cfg.TimeImpactDays > 0 {
		e := aging.CalculateEffects(cfg)
		effects = &e
		stretch = math.Max(adhesion.MinStretch, stretch*e.StretchChange)
	}

	return Result{
		PeelAdhesionNcm:   peel,
		HoldStrengthNcm2:  hold,
		StretchPct:        stretch,
		TotalThicknessUm:  back.StandardThicknessUm + thickness,
		TemperatureFactor: tempFactor,
		Aging:             effects,
		Notes:             "Parametric estimate from reference tables, not laboratory data.",
	}, nil
}
