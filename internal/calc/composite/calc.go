package composite

import (
	"fmt"
	"math"

	"TapeLab/internal/calc/adhesion"
	"TapeLab/internal/calc/aging"
	"TapeLab/internal/calc/temperature"
	"TapeLab/internal/materials"
	"TapeLab/internal/tape"
)

// Blend weights favor backing 1: the surface-contact layer dominates bond
// behavior.
const (
	weightLayer1 = 0.6
	weightLayer2 = 0.4
)

type Layer struct {
	Backing    string  `json:"backing"`
	PeelNcm    float64 `json:"peel_ncm"`
	HoldNcm2   float64 `json:"hold_ncm2"`
	StretchPct float64 `json:"stretch_pct"`
}

type Result struct {
	PeelAdhesionNcm   float64 `json:"peel_adhesion_ncm"`
	HoldStrengthNcm2  float64 `json:"hold_strength_ncm2"`
	StretchPct        float64 `json:"stretch_pct"`
	TotalThicknessUm  float64 `json:"total_thickness_um"`
	TemperatureFactor float64 `json:"temperature_factor"`
	Layers            []Layer `json:"layers"`
	Notes             string  `json:"notes"`
}

// Calculate evaluates a two-layer composite tape: the full adhesion+aging
// pipeline runs independently per backing, each layer receiving half the
// configured adhesive thickness, and the outputs are blended.
func Calculate(cfg tape.Config) (Result, error) {
	if cfg.SecondBacking == "" {
		return Result{}, fmt.Errorf("second backing required")
	}

	adh := materials.AdhesiveFor(cfg.Adhesive)
	env := materials.EnvironmentFor(cfg.Environment)

	thickness := cfg.ThicknessUm
	if thickness <= 0 {
		thickness = adh.StandardThicknessUm
	}

	layer1 := evaluateLayer(cfg, cfg.Backing, thickness/2)
	layer2 := evaluateLayer(cfg, cfg.SecondBacking, thickness/2)

	tempFactor := temperature.Multiplier(env.TempTypicalC, cfg.Adhesive)
	peel := (weightLayer1*layer1.PeelNcm + weightLayer2*layer2.PeelNcm) * tempFactor
	hold := (weightLayer1*layer1.HoldNcm2 + weightLayer2*layer2.HoldNcm2) * tempFactor

	// Harmonic mean: the less-extensible layer limits overall extension.
	stretch := harmonicMean(layer1.StretchPct, layer2.StretchPct)

	back1 := materials.BackingFor(cfg.Backing)
	back2 := materials.BackingFor(cfg.SecondBacking)

	return Result{
		PeelAdhesionNcm:   math.Max(adhesion.MinPeelNcm, peel),
		HoldStrengthNcm2:  math.Max(adhesion.MinHoldNcm2, hold),
		StretchPct:        math.Max(adhesion.MinStretch, stretch),
		TotalThicknessUm:  back1.StandardThicknessUm + back2.StandardThicknessUm + adh.StandardThicknessUm,
		TemperatureFactor: tempFactor,
		Layers:            []Layer{layer1, layer2},
		Notes:             "Two-layer composite: 60/40 peel and hold blend, harmonic-mean stretch.",
	}, nil
}

func evaluateLayer(cfg tape.Config, backing string, thicknessUm float64) Layer {
	layer := cfg
	layer.Backing = backing
	layer.SecondBacking = ""
	layer.ThicknessUm = thicknessUm

	stretch := adhesion.Stretch(layer)
	if layer.TimeImpactDays > 0 {
		stretch *= aging.CalculateEffects(layer).StretchChange
	}

	return Layer{
		Backing:    backing,
		PeelNcm:    adhesion.PeelAdhesion(layer),
		HoldNcm2:   adhesion.HoldStrength(layer),
		StretchPct: stretch,
	}
}

func harmonicMean(a, b float64) float64 {
	if a+b <= 0 {
		return 0
	}
	return 2 * a * b / (a + b)
}
