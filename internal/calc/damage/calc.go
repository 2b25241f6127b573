package damage

import (
	"fmt"

	"TapeLab/internal/calc/adhesion"
	"TapeLab/internal/materials"
	"TapeLab/internal/tape"
)

type Risk string

const (
	RiskNone     Risk = "none"
	RiskLow      Risk = "low"
	RiskModerate Risk = "moderate"
	RiskHigh     Risk = "high"
	RiskCritical Risk = "critical"
)

// Default tape width when the caller omits dimensions, mm.
const defaultWidthMm = 50

type Assessment struct {
	CanDamage          bool    `json:"can_damage"`
	Risk               Risk    `json:"risk"`
	TapeForceNcm       float64 `json:"tape_force_ncm"`
	SurfaceStrengthNcm float64 `json:"surface_strength_ncm,omitempty"`
	SafetyFactor       float64 `json:"safety_factor,omitempty"`
	Notes              string  `json:"notes"`
}

// Calculate compares the tape's hold-derived pull force against the
// surface's rupture strength. Surfaces without a rupture entry cannot be
// damaged: the adhesive bond always fails first.
func Calculate(cfg tape.Config) (Assessment, error) {
	width := cfg.WidthMm
	if width <= 0 {
		width = defaultWidthMm
	}

	hold := adhesion.HoldStrength(cfg)
	force := hold * (width / 10) // N/cm of pull along the bond line

	rupture := materials.RuptureFor(cfg.Surface)
	if rupture == nil {
		return Assessment{
			CanDamage:    false,
			Risk:         RiskNone,
			TapeForceNcm: force,
			Notes:        fmt.Sprintf("Surface withstands far more than the %.2f N/cm the tape can apply; the bond fails first.", force),
		}, nil
	}

	safety := rupture.TypicalNcm / force
	risk := riskTier(safety)

	return Assessment{
		CanDamage:          true,
		Risk:               risk,
		TapeForceNcm:       force,
		SurfaceStrengthNcm: rupture.TypicalNcm,
		SafetyFactor:       safety,
		Notes: fmt.Sprintf("Tape applies %.2f N/cm against a surface strength of %.2f N/cm (safety factor %.2f).",
			force, rupture.TypicalNcm, safety),
	}, nil
}

// riskTier maps the safety factor onto the discrete tiers:
// >3 low, (1.5,3] moderate, (1,1.5] high, <=1 critical.
func riskTier(safety float64) Risk {
	switch {
	case safety > 3:
		return RiskLow
	case safety > 1.5:
		return RiskModerate
	case safety > 1:
		return RiskHigh
	default:
		return RiskCritical
	}
}
