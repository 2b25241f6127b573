package adhesion

import (
	"math"

	"TapeLab/internal/calc/aging"
	"TapeLab/internal/materials"
	"TapeLab/internal/tape"
)

// Floors keep degenerate configurations physically plausible.
const (
	MinPeelNcm  = 0.1
	MinHoldNcm2 = 0.5
	MinStretch  = 1.0
)

// Shear/hold multiplier per adhesive: cohesive bulk resists sliding.
var shearMultiplier = map[string]float64{
	"Acrylic":  2.5,
	"Rubber":   2.0,
	"Silicone": 3.5,
}

const defaultShearMultiplier = 2.5

var elasticityMultiplier = map[string]float64{
	"Acrylic":  1.0,
	"Rubber":   1.15,
	"Silicone": 0.95,
}

// Penalty on low-energy substrates. Silicone wets low-energy surfaces and
// carries none.
var lowEnergyPenalty = map[string]float64{
	"Acrylic": 0.5,
	"Rubber":  0.8,
}

type Result struct {
	PeelAdhesionNcm  float64 `json:"peel_adhesion_ncm"`
	HoldStrengthNcm2 float64 `json:"hold_strength_ncm2"`
	StretchPct       float64 `json:"stretch_pct"`
	Notes            string  `json:"notes"`
}

// Calculate bundles the three instantaneous adhesion figures for one
// configuration. Temperature and aging growth are aggregator concerns.
func Calculate(cfg tape.Config) (Result, error) {
	return Result{
		PeelAdhesionNcm:  PeelAdhesion(cfg),
		HoldStrengthNcm2: HoldStrength(cfg),
		StretchPct:       Stretch(cfg),
		Notes:            "Instantaneous adhesion figures before temperature correction.",
	}, nil
}

// effectiveThickness default-fills a non-positive adhesive thickness with
// the adhesive's standard coating weight.
func effectiveThickness(cfg tape.Config, adh materials.Adhesive) float64 {
	if cfg.ThicknessUm <= 0 {
		return adh.StandardThicknessUm
	}
	return cfg.ThicknessUm
}

// PeelAdhesion computes peel adhesion in N/cm. The adhesive's datasheet
// value is normalized to N/cm, then scaled by the surface and environment
// multipliers, a sub-linear thickness factor, the low-energy-substrate
// penalty, and (when elapsed days are set) the aging retention factor.
func PeelAdhesion(cfg tape.Config) float64 {
	adh := materials.AdhesiveFor(cfg.Adhesive)
	surf := materials.SurfaceFor(cfg.Surface)
	env := materials.EnvironmentFor(cfg.Environment)

	t := effectiveThickness(cfg, adh)
	peel := adh.BasePeelNcm() *
		surf.AdhesionMultiplier *
		env.AdhesionMultiplier *
		math.Pow(t/adh.StandardThicknessUm, 0.3)

	if surf.Energy == materials.EnergyLow {
		if p, ok := lowEnergyPenalty[cfg.Adhesive]; ok {
			peel *= p
		}
	}

	if cfg.TimeImpactDays > 0 {
		peel *= aging.CalculateEffects(cfg).PeelRetention
	}

	return math.Max(MinPeelNcm, peel)
}

// HoldStrength computes shear/hold strength in N/cm². Hold scales faster
// with thickness than peel (exponent 0.4 vs 0.3) and degrades slightly
// faster under aging (the extra 0.95 realizes holdRetention exactly).
func HoldStrength(cfg tape.Config) float64 {
	adh := materials.AdhesiveFor(cfg.Adhesive)
	t := effectiveThickness(cfg, adh)

	mult, ok := shearMultiplier[cfg.Adhesive]
	if !ok {
		mult = defaultShearMultiplier
	}

	hold := PeelAdhesion(cfg) * mult * math.Pow(t/adh.StandardThicknessUm, 0.4)
	if cfg.TimeImpactDays > 0 {
		hold *= 0.95
	}

	return math.Max(MinHoldNcm2, hold)
}

// Stretch computes elongation at break in percent from the backing's base
// elongation, the adhesive elasticity multiplier, and an inverse thickness
// factor. Aging growth is applied by the aggregator, not here.
func Stretch(cfg tape.Config) float64 {
	back := materials.BackingFor(cfg.Backing)
	adh := materials.AdhesiveFor(cfg.Adhesive)
	t := effectiveThickness(cfg, adh)

	mult, ok := elasticityMultiplier[cfg.Adhesive]
	if !ok {
		mult = 1.0
	}

	stretch := back.ElongationPct * mult * math.Pow(back.StandardThicknessUm/t, 0.15)
	return math.Max(MinStretch, stretch)
}
