package recommend

import (
	"fmt"
	"sort"

	"TapeLab/internal/calc/damage"
	"TapeLab/internal/calc/properties"
	"TapeLab/internal/materials"
	"TapeLab/internal/tape"
)

type Input struct {
	Surface     string  `json:"surface"`
	Environment string  `json:"environment"`
	MinPeelNcm  float64 `json:"min_peel_ncm"`
	MaxOptions  int     `json:"max_options"`

	// Exposure horizon the recommendation should survive, days.
	TimeImpactDays float64 `json:"time_impact_days,omitempty"`
}

type Option struct {
	Backing          string      `json:"backing"`
	Adhesive         string      `json:"adhesive"`
	PeelAdhesionNcm  float64     `json:"peel_adhesion_ncm"`
	HoldStrengthNcm2 float64     `json:"hold_strength_ncm2"`
	Risk             damage.Risk `json:"risk"`
	Affinity         string      `json:"affinity"`
}

type Result struct {
	Options []Option `json:"options"`
	Notes   string   `json:"notes"`
}

// Recommend ranks every backing x adhesive construction at standard
// thickness for the given surface and environment. Constructions likely to
// tear the surface on removal are excluded.
func Recommend(in Input) (Result, error) {
	if in.Surface == "" || in.Environment == "" {
		return Result{}, fmt.Errorf("surface and environment required")
	}
	if in.MaxOptions <= 0 {
		in.MaxOptions = 5
	}

	var options []Option
	for _, backing := range materials.BackingNames() {
		for _, name := range materials.AdhesiveNames() {
			adh := materials.AdhesiveFor(name)
			cfg := tape.Config{
				Backing:        backing,
				Adhesive:       name,
				Surface:        in.Surface,
				Environment:    in.Environment,
				ThicknessUm:    adh.StandardThicknessUm,
				TimeImpactDays: in.TimeImpactDays,
			}

			props, err := properties.Calculate(cfg)
			if err != nil {
				return Result{}, err
			}
			if props.PeelAdhesionNcm < in.MinPeelNcm {
				continue
			}

			risk, err := damage.Calculate(cfg)
			if err != nil {
				return Result{}, err
			}
			if risk.Risk == damage.RiskHigh || risk.Risk == damage.RiskCritical {
				continue
			}

			surf := materials.SurfaceFor(in.Surface)
			options = append(options, Option{
				Backing:          backing,
				Adhesive:         name,
				PeelAdhesionNcm:  props.PeelAdhesionNcm,
				HoldStrengthNcm2: props.HoldStrengthNcm2,
				Risk:             risk.Risk,
				Affinity:         adh.Affinity[surf.Energy],
			})
		}
	}

	// Strongest bond first; name order breaks ties deterministically.
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].PeelAdhesionNcm > options[j].PeelAdhesionNcm
	})
	if len(options) > in.MaxOptions {
		options = options[:in.MaxOptions]
	}

	return Result{
		Options: options,
		Notes:   "Ranked by peel adhesion at standard thickness; high-risk constructions excluded.",
	}, nil
}
