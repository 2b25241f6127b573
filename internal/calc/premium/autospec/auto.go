package autospec

import (
	"fmt"
	"math"

	"TapeLab/internal/calc/adhesion"
	"TapeLab/internal/materials"
	"TapeLab/internal/tape"
)

// Manufacturable coating-weight range, µm.
const (
	minThicknessUm = 5
	maxThicknessUm = 500
)

type Input struct {
	Backing        string  `json:"backing"`
	Adhesive       string  `json:"adhesive"`
	Surface        string  `json:"surface"`
	Environment    string  `json:"environment"`
	TargetHoldNcm2 float64 `json:"target_hold_ncm2"`
	TimeImpactDays float64 `json:"time_impact_days,omitempty"`
}

type Result struct {
	RequiredThicknessUm float64 `json:"required_thickness_um"`
	AchievedHoldNcm2    float64 `json:"achieved_hold_ncm2"`
	Feasible            bool    `json:"feasible"`
	Notes               string  `json:"notes"`
}

// Design solves for the minimum adhesive thickness reaching the target hold
// strength. Hold scales as (t/std)^0.7 (peel exponent 0.3 plus the shear
// thickness exponent 0.4), so the power law inverts in closed form.
func Design(in Input) (Result, error) {
	if in.TargetHoldNcm2 <= 0 {
		return Result{}, fmt.Errorf("invalid target hold strength")
	}

	adh := materials.AdhesiveFor(in.Adhesive)
	cfg := tape.Config{
		Backing:        in.Backing,
		Adhesive:       in.Adhesive,
		Surface:        in.Surface,
		Environment:    in.Environment,
		ThicknessUm:    adh.StandardThicknessUm,
		TimeImpactDays: in.TimeImpactDays,
	}

	holdAtStd := adhesion.HoldStrength(cfg)
	required := adh.StandardThicknessUm * math.Pow(in.TargetHoldNcm2/holdAtStd, 1/0.7)

	clamped := required
	if clamped < minThicknessUm {
		clamped = minThicknessUm
	}
	if clamped > maxThicknessUm {
		clamped = maxThicknessUm
	}

	cfg.ThicknessUm = clamped
	achieved := adhesion.HoldStrength(cfg)

	return Result{
		RequiredThicknessUm: clamped,
		AchievedHoldNcm2:    achieved,
		Feasible:            achieved >= in.TargetHoldNcm2*0.999,
		Notes:               fmt.Sprintf("Coating weight solved within the %d-%d um manufacturable range.", minThicknessUm, maxThicknessUm),
	}, nil
}
