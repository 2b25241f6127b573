package adhesion

import (
	"testing"

	"TapeLab/internal/tape"
	"github.com/stretchr/testify/assert"
)

// Catalog reference: Acrylic on steel in a dry climate at standard coating
// weight reproduces the 2.6 N/cm datasheet value.
func TestPeelAdhesionReferenceAnchor(t *testing.T) {
	cfg := tape.Config{
		Backing:     "BOPP",
		Adhesive:    "Acrylic",
		Surface:     "Steel",
		Environment: "Dry",
		ThicknessUm: 25,
	}
	assert.InDelta(t, 2.6, PeelAdhesion(cfg), 1e-9)
}

func TestPeelAdhesionRubberUnitNormalization(t *testing.T) {
	cfg := tape.Config{
		Backing:     "Cloth",
		Adhesive:    "Rubber",
		Surface:     "Steel",
		Environment: "Dry",
		ThicknessUm: 20, // Rubber standard thickness
	}
	// 28 N/100mm = 2.8 N/cm, all multipliers at baseline.
	assert.InDelta(t, 2.8, PeelAdhesion(cfg), 1e-9)
}

func TestLowEnergyPenalty(t *testing.T) {
	base := tape.Config{
		Backing:     "PET",
		Surface:     "Plastic Bag",
		Environment: "Dry",
	}

	acrylic := base
	acrylic.Adhesive = "Acrylic"
	acrylic.ThicknessUm = 25
	// 2.6 x 0.6 (surface) x 0.5 (low-energy acrylic penalty)
	assert.InDelta(t, 0.78, PeelAdhesion(acrylic), 1e-9)

	rubber := base
	rubber.Adhesive = "Rubber"
	rubber.ThicknessUm = 20
	// 2.8 x 0.6 x 0.8
	assert.InDelta(t, 1.344, PeelAdhesion(rubber), 1e-9)

	silicone := base
	silicone.Adhesive = "Silicone"
	silicone.ThicknessUm = 40
	// Silicone carries no low-energy penalty: 1.2 x 0.6.
	assert.InDelta(t, 0.72, PeelAdhesion(silicone), 1e-9)
}

func TestHoldStrengthShearMultiplierAtStandardThickness(t *testing.T) {
	cfg := tape.Config{
		Backing:     "BOPP",
		Adhesive:    "Acrylic",
		Surface:     "Steel",
		Environment: "Dry",
		ThicknessUm: 25,
	}
	// Both thickness factors are 1 at standard thickness.
	assert.InDelta(t, 2.6*2.5, HoldStrength(cfg), 1e-9)

	cfg.Adhesive = "Silicone"
	cfg.ThicknessUm = 40
	assert.InDelta(t, 1.2*3.5, HoldStrength(cfg), 1e-9)
}

func TestThicknessMonotonicity(t *testing.T) {
	cfg := tape.Config{Backing: "PVC", Adhesive: "Acrylic", Surface: "Steel", Environment: "Dry"}

	var lastPeel, lastHold float64
	for _, th := range []float64{10, 25, 50, 100, 200} {
		cfg.ThicknessUm = th
		peel, hold := PeelAdhesion(cfg), HoldStrength(cfg)
		assert.Greater(t, peel, lastPeel, "peel at %v um", th)
		assert.Greater(t, hold, lastHold, "hold at %v um", th)
		lastPeel, lastHold = peel, hold
	}

	// Sub-linear: quadrupling thickness less than doubles peel.
	cfg.ThicknessUm = 25
	p1 := PeelAdhesion(cfg)
	cfg.ThicknessUm = 100
	assert.Less(t, PeelAdhesion(cfg), 2*p1)
}

func TestStretchInverseThickness(t *testing.T) {
	cfg := tape.Config{Backing: "PVC", Adhesive: "Acrylic", Surface: "Steel", Environment: "Dry", ThicknessUm: 25}
	thin := Stretch(cfg)
	cfg.ThicknessUm = 100
	thick := Stretch(cfg)
	assert.Greater(t, thin, thick)

	// Rubber adhesive stretches more, silicone less.
	cfg.ThicknessUm = 25
	acrylic := Stretch(cfg)
	cfg.Adhesive = "Rubber"
	assert.Greater(t, Stretch(cfg), acrylic)
	cfg.Adhesive = "Silicone"
	assert.Less(t, Stretch(cfg), acrylic)
}

func TestFloors(t *testing.T) {
	// A heavily aged rubber tape in a tropical climate bottoms out at the
	// documented minimums instead of going non-physical.
	cfg := tape.Config{
		Backing:        "Paper",
		Adhesive:       "Rubber",
		Surface:        "Plastic Bag",
		Environment:    "Tropical",
		ThicknessUm:    5,
		TimeImpactDays: 366,
	}
	assert.GreaterOrEqual(t, PeelAdhesion(cfg), MinPeelNcm)
	assert.GreaterOrEqual(t, HoldStrength(cfg), MinHoldNcm2)
	assert.GreaterOrEqual(t, Stretch(cfg), MinStretch)
}

func TestNonPositiveThicknessDefaultsToStandard(t *testing.T) {
	cfg := tape.Config{Backing: "BOPP", Adhesive: "Acrylic", Surface: "Steel", Environment: "Dry"}
	zero := PeelAdhesion(cfg)
	cfg.ThicknessUm = 25
	assert.InDelta(t, PeelAdhesion(cfg), zero, 1e-9)
}

func TestUnknownAdhesiveUsesDefaultMultipliers(t *testing.T) {
	cfg := tape.Config{Backing: "PVC", Adhesive: "Mystery", Surface: "Steel", Environment: "Dry", ThicknessUm: 25}
	// Unknown adhesive falls back to Acrylic's table entry, so the shear
	// multiplier default (2.5) applies on top of the fallback peel.
	assert.InDelta(t, PeelAdhesion(cfg)*2.5, HoldStrength(cfg), 1e-9)
}

func TestAgedPeelBelowFreshPeel(t *testing.T) {
	fresh := tape.Config{Backing: "PVC", Adhesive: "Rubber", Surface: "Steel", Environment: "Humid", ThicknessUm: 20}
	aged := fresh
	aged.TimeImpactDays = 90
	assert.Less(t, PeelAdhesion(aged), PeelAdhesion(fresh))
	assert.Less(t, HoldStrength(aged), HoldStrength(fresh))
}
