package recommend

import (
	"testing"

	"TapeLab/internal/calc/damage"
	"TapeLab/internal/materials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendRequiresSurfaceAndEnvironment(t *testing.T) {
	_, err := Recommend(Input{Surface: "Steel"})
	assert.Error(t, err)
	_, err = Recommend(Input{Environment: "Dry"})
	assert.Error(t, err)
}

func TestRecommendRankedByPeel(t *testing.T) {
	res, err := Recommend(Input{Surface: "Steel", Environment: "Dry", MaxOptions: 10})
	require.NoError(t, err)
	require.NotEmpty(t, res.Options)
	assert.LessOrEqual(t, len(res.Options), 10)

	for i := 1; i < len(res.Options); i++ {
		assert.GreaterOrEqual(t, res.Options[i-1].PeelAdhesionNcm, res.Options[i].PeelAdhesionNcm)
	}
	// Steel has no rupture entry, so nothing is risk-filtered.
	for _, opt := range res.Options {
		assert.Equal(t, damage.RiskNone, opt.Risk)
	}
}

func TestRecommendDefaultsToFiveOptions(t *testing.T) {
	res, err := Recommend(Input{Surface: "Glass", Environment: "Humid"})
	require.NoError(t, err)
	assert.Len(t, res.Options, 5)
}

func TestRecommendMinPeelFilter(t *testing.T) {
	res, err := Recommend(Input{Surface: "Steel", Environment: "Dry", MinPeelNcm: 1000})
	require.NoError(t, err)
	assert.Empty(t, res.Options)
}

func TestRecommendExcludesDamagingConstructions(t *testing.T) {
	res, err := Recommend(Input{Surface: "Wallpaper", Environment: "Dry", MaxOptions: 50})
	require.NoError(t, err)
	for _, opt := range res.Options {
		assert.NotEqual(t, damage.RiskHigh, opt.Risk)
		assert.NotEqual(t, damage.RiskCritical, opt.Risk)
	}
}

func TestRecommendCarriesAffinityNote(t *testing.T) {
	res, err := Recommend(Input{Surface: "Wood", Environment: "Dry", MaxOptions: 50})
	require.NoError(t, err)
	require.NotEmpty(t, res.Options)
	surf := materials.SurfaceFor("Wood")
	for _, opt := range res.Options {
		adh := materials.AdhesiveFor(opt.Adhesive)
		assert.Equal(t, adh.Affinity[surf.Energy], opt.Affinity)
	}
}

func TestRecommendIsDeterministic(t *testing.T) {
	a, err := Recommend(Input{Surface: "Wood", Environment: "Semiarid", TimeImpactDays: 90})
	require.NoError(t, err)
	b, err := Recommend(Input{Surface: "Wood", Environment: "Semiarid", TimeImpactDays: 90})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
