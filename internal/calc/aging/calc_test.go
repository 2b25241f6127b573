package aging

import (
	"math"
	"testing"

	"TapeLab/internal/tape"
	"github.com/stretchr/testify/assert"
)

func baseConfig() tape.Config {
	return tape.Config{
		Backing:     "BOPP",
		Adhesive:    "Acrylic",
		Surface:     "Steel",
		Environment: "Dry",
		ThicknessUm: 25,
	}
}

func TestCalculateEffectsRelations(t *testing.T) {
	cfg := baseConfig()
	cfg.TimeImpactDays = 100

	e := CalculateEffects(cfg)
	assert.Greater(t, e.PeelRetention, 0.0)
	assert.Less(t, e.PeelRetention, 1.0)
	assert.InDelta(t, e.PeelRetention*0.95, e.HoldRetention, 1e-12)
	assert.InDelta(t, 1+(1-e.PeelRetention)*0.3, e.StretchChange, 1e-12)
}

func TestCalculateEffectsDryAcrylicValue(t *testing.T) {
	// Dry has aging factor 1, so retention is simply 0.995^days.
	cfg := baseConfig()
	cfg.TimeImpactDays = 100
	assert.InDelta(t, math.Pow(0.995, 100), CalculateEffects(cfg).PeelRetention, 1e-12)
}

func TestEnvironmentAcceleratesAging(t *testing.T) {
	dry := baseConfig()
	dry.TimeImpactDays = 180
	tropical := dry
	tropical.Environment = "Tropical"
	assert.Less(t, CalculateEffects(tropical).PeelRetention, CalculateEffects(dry).PeelRetention)
}

func TestRubberAgesFasterThanSilicone(t *testing.T) {
	rubber := baseConfig()
	rubber.Adhesive = "Rubber"
	rubber.TimeImpactDays = 180
	silicone := rubber
	silicone.Adhesive = "Silicone"
	assert.Less(t, CalculateEffects(rubber).PeelRetention, CalculateEffects(silicone).PeelRetention)
}

func TestUVDegradationZeroAtDayZero(t *testing.T) {
	cfg := baseConfig()
	assert.Zero(t, UVDegradation(cfg))
	assert.Zero(t, AdhesiveResidue(cfg))
}

func TestUVDegradationMonotoneAndBounded(t *testing.T) {
	cfg := baseConfig()
	cfg.Adhesive = "Rubber" // poor UV resistance, visible effect
	cfg.Environment = "Tropical"

	last := 0.0
	for _, days := range []float64{1, 10, 30, 90, 180, 366, 1000} {
		cfg.TimeImpactDays = days
		v := UVDegradation(cfg)
		assert.GreaterOrEqual(t, v, last, "days=%v", days)
		assert.LessOrEqual(t, v, 1.0, "days=%v", days)
		last = v
	}
}

func TestUVDegradationTierOrdering(t *testing.T) {
	// Poor-UV rubber adhesive yellows more than excellent-UV acrylic on the
	// same backing and horizon.
	acrylic := baseConfig()
	acrylic.TimeImpactDays = 180
	rubber := acrylic
	rubber.Adhesive = "Rubber"
	assert.Greater(t, UVDegradation(rubber), UVDegradation(acrylic))
}

func TestAdhesiveResidueMonotoneAndBounded(t *testing.T) {
	cfg := baseConfig()
	cfg.Adhesive = "Rubber"
	cfg.Surface = "Paper"

	last := 0.0
	for _, days := range []float64{1, 30, 180, 366, 2000} {
		cfg.TimeImpactDays = days
		v := AdhesiveResidue(cfg)
		assert.GreaterOrEqual(t, v, last, "days=%v", days)
		assert.LessOrEqual(t, v, 1.0, "days=%v", days)
		last = v
	}
}

func TestAdhesiveResidueOrdering(t *testing.T) {
	cfg := baseConfig()
	cfg.TimeImpactDays = 180

	// Rubber smears far more than silicone.
	rubber, silicone := cfg, cfg
	rubber.Adhesive = "Rubber"
	silicone.Adhesive = "Silicone"
	assert.Greater(t, AdhesiveResidue(rubber), AdhesiveResidue(silicone))

	// Absorbent paper stains more than glass.
	paper, glass := cfg, cfg
	paper.Surface = "Paper"
	glass.Surface = "Glass"
	assert.Greater(t, AdhesiveResidue(paper), AdhesiveResidue(glass))
}

func TestYellowTintCombination(t *testing.T) {
	cfg := baseConfig()
	cfg.Adhesive = "Rubber"
	cfg.Surface = "Paper"
	cfg.Environment = "Tropical"
	cfg.TimeImpactDays = 180

	tint := YellowTint(cfg)
	uv, residue := UVDegradation(cfg), AdhesiveResidue(cfg)
	want := math.Min(1, math.Max(uv, residue)*0.7+(uv+residue)*0.3)
	assert.InDelta(t, want, tint.Combined, 1e-12)
	assert.LessOrEqual(t, tint.Alpha, 0.6)
	assert.InDelta(t, tint.Combined*0.6, tint.Alpha, 1e-12)
}

func TestYellowTintZeroWhenUnaged(t *testing.T) {
	tint := YellowTint(baseConfig())
	assert.Zero(t, tint.Combined)
	assert.Zero(t, tint.Alpha)
	assert.Equal(t, 1.0, tint.Saturation)
	assert.Equal(t, 1.0, tint.Brightness)
}

func TestYellowTintMonotoneInTime(t *testing.T) {
	cfg := baseConfig()
	cfg.Adhesive = "Rubber"
	cfg.Surface = "Cardboard"

	last := 0.0
	for _, days := range []float64{0, 7, 30, 120, 366} {
		cfg.TimeImpactDays = days
		v := YellowTint(cfg).Combined
		assert.GreaterOrEqual(t, v, last, "days=%v", days)
		last = v
	}
}
