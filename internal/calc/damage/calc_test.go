package damage

import (
	"testing"

	"TapeLab/internal/tape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskTierBoundaries(t *testing.T) {
	tests := []struct {
		safety float64
		want   Risk
	}{
		{10, RiskLow},
		{3.0001, RiskLow},
		{3.0, RiskModerate}, // boundary falls on the moderate side
		{2.0, RiskModerate},
		{1.5001, RiskModerate},
		{1.5, RiskHigh}, // boundary falls on the high side
		{1.2, RiskHigh},
		{1.0001, RiskHigh},
		{1.0, RiskCritical},
		{0.3, RiskCritical},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, riskTier(tc.safety), "safetyFactor=%v", tc.safety)
	}
}

func TestStrongSurfacesNeverDamaged(t *testing.T) {
	for _, surface := range []string{"Steel", "Glass", "Aluminum"} {
		for _, width := range []float64{10, 50, 500} {
			for _, adhesive := range []string{"Acrylic", "Rubber", "Silicone"} {
				cfg := tape.Config{
					Backing:     "Cloth",
					Adhesive:    adhesive,
					Surface:     surface,
					Environment: "Dry",
					ThicknessUm: 100,
					WidthMm:     width,
					HeightMm:    width,
				}
				res, err := Calculate(cfg)
				require.NoError(t, err)
				assert.False(t, res.CanDamage, "%s %.0fmm %s", surface, width, adhesive)
				assert.Equal(t, RiskNone, res.Risk)
				assert.Zero(t, res.SafetyFactor)
			}
		}
	}
}

func TestFragileSurfaceCritical(t *testing.T) {
	// A wide acrylic tape pulls far more than wallpaper withstands.
	cfg := tape.Config{
		Backing:     "PVC",
		Adhesive:    "Acrylic",
		Surface:     "Wallpaper",
		Environment: "Dry",
		ThicknessUm: 25,
		WidthMm:     50,
	}
	res, err := Calculate(cfg)
	require.NoError(t, err)
	assert.True(t, res.CanDamage)
	assert.Equal(t, RiskCritical, res.Risk)
	assert.Equal(t, 2.0, res.SurfaceStrengthNcm)
	assert.Greater(t, res.TapeForceNcm, res.SurfaceStrengthNcm)
	assert.NotEmpty(t, res.Notes)
}

func TestNarrowWeakTapeLowRisk(t *testing.T) {
	// A thin silicone tape on sturdy cardboard applies little force.
	cfg := tape.Config{
		Backing:     "Paper",
		Adhesive:    "Silicone",
		Surface:     "Cardboard",
		Environment: "Dry",
		ThicknessUm: 10,
		WidthMm:     10,
	}
	res, err := Calculate(cfg)
	require.NoError(t, err)
	assert.True(t, res.CanDamage)
	assert.Greater(t, res.SafetyFactor, 1.0)
}

func TestDefaultWidthApplied(t *testing.T) {
	cfg := tape.Config{Backing: "PVC", Adhesive: "Acrylic", Surface: "Wall Paint", Environment: "Dry", ThicknessUm: 25}
	withDefault, err := Calculate(cfg)
	require.NoError(t, err)

	cfg.WidthMm = 50
	explicit, err := Calculate(cfg)
	require.NoError(t, err)
	assert.Equal(t, explicit, withDefault)
}
