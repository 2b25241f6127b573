package aging

import (
	"math"

	"TapeLab/internal/materials"
	"TapeLab/internal/tape"
)

// Normalization span for the time curves: one year of exposure.
const yearDays = 366

// Fraction of strength retained per day, before environmental adjustment.
var dailyRetention = map[string]float64{
	"Acrylic":  0.995,
	"Rubber":   0.980,
	"Silicone": 0.997,
}

const defaultDailyRetention = 0.990

// Visual degradation rate per UV-resistance tier.
var uvRate = map[materials.UVResistance]float64{
	materials.UVExcellent: 0.05,
	materials.UVGood:      0.15,
	materials.UVFair:      0.35,
	materials.UVPoor:      0.65,
}

// Residue migration propensity per adhesive.
var residuePropensity = map[string]float64{
	"Acrylic":  0.3,
	"Rubber":   0.8,
	"Silicone": 0.1,
}

const defaultResiduePropensity = 0.4

// Effects are the time-dependent retention factors. Only meaningful for
// elapsed days > 0; the aggregator skips aging entirely at zero.
type Effects struct {
	PeelRetention float64 `json:"peel_retention"`
	HoldRetention float64 `json:"hold_retention"`
	StretchChange float64 `json:"stretch_change"`
}

// CalculateEffects raises the adhesive's daily retention to the power of the
// environment's aging factor, then to the elapsed days. Shear degrades
// slightly faster than peel; stretch grows as the material creeps.
func CalculateEffects(cfg tape.Config) Effects {
	env := materials.EnvironmentFor(cfg.Environment)

	base, ok := dailyRetention[cfg.Adhesive]
	if !ok {
		base = defaultDailyRetention
	}

	daily := math.Pow(base, env.AgingFactor)
	peel := math.Pow(daily, cfg.TimeImpactDays)

	return Effects{
		PeelRetention: peel,
		HoldRetention: peel * 0.95,
		StretchChange: 1 + (1-peel)*0.3,
	}
}

// UVDegradation returns the yellowing intensity in [0,1]. Adhesive yellowing
// dominates visually, so it carries the larger weight. The logarithmic time
// curve gives fast initial yellowing that decelerates.
func UVDegradation(cfg tape.Config) float64 {
	if cfg.TimeImpactDays <= 0 {
		return 0
	}

	back := materials.BackingFor(cfg.Backing)
	adh := materials.AdhesiveFor(cfg.Adhesive)
	env := materials.EnvironmentFor(cfg.Environment)

	rate := (0.4*uvRate[back.UVResistance] + 0.6*uvRate[adh.UVResistance]) * env.UVExposure
	fraction := cfg.TimeImpactDays / yearDays

	return math.Min(1, rate*(0.3+0.7*math.Log10(1+9*fraction)))
}

// AdhesiveResidue returns the residue-staining intensity in [0,1]. Unlike
// the UV curve, buildup follows a square-root time curve: slow at first.
func AdhesiveResidue(cfg tape.Config) float64 {
	if cfg.TimeImpactDays <= 0 {
		return 0
	}

	surf := materials.SurfaceFor(cfg.Surface)
	env := materials.EnvironmentFor(cfg.Environment)

	propensity, ok := residuePropensity[cfg.Adhesive]
	if !ok {
		propensity = defaultResiduePropensity
	}

	tempFactor := clamp(env.TempTypicalC/20, 0.5, 2.0)
	v := propensity * surf.Absorption * tempFactor * math.Sqrt(cfg.TimeImpactDays/yearDays)

	return math.Min(1, v*1.2)
}

// Tint is the visual descriptor consumed by the renderer. Combined is the
// contractual scalar; the filter parameters are monotone maps of it.
type Tint struct {
	UV         float64 `json:"uv"`
	Residue    float64 `json:"residue"`
	Combined   float64 `json:"combined"`
	Alpha      float64 `json:"alpha"`
	Sepia      float64 `json:"sepia"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
}

// YellowTint blends the two intensities non-additively: the dominant effect
// sets the tone, the sum only reinforces it.
func YellowTint(cfg tape.Config) Tint {
	uv := UVDegradation(cfg)
	residue := AdhesiveResidue(cfg)
	combined := math.Min(1, math.Max(uv, residue)*0.7+(uv+residue)*0.3)

	return Tint{
		UV:         uv,
		Residue:    residue,
		Combined:   combined,
		Alpha:      math.Min(0.6, combined*0.6),
		Sepia:      combined * 0.8,
		Saturation: 1 - combined*0.35,
		Brightness: 1 - combined*0.15,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
