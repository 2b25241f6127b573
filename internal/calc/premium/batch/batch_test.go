package batch

import (
	"testing"

	"TapeLab/internal/calc/properties"
	"TapeLab/internal/tape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRejectsEmpty(t *testing.T) {
	_, err := Calculate(Input{})
	assert.Error(t, err)
}

func TestCalculatePreservesOrder(t *testing.T) {
	items := []tape.Config{
		{Backing: "BOPP", Adhesive: "Acrylic", Surface: "Steel", Environment: "Dry", ThicknessUm: 25},
		{Backing: "Cloth", Adhesive: "Rubber", Surface: "Wood", Environment: "Humid", ThicknessUm: 40, TimeImpactDays: 90},
		{Backing: "PET", Adhesive: "Silicone", Surface: "Glass", Environment: "Arid", ThicknessUm: 40},
	}
	res, err := Calculate(Input{Items: items})
	require.NoError(t, err)
	require.Len(t, res.Results, len(items))

	for i, item := range items {
		want, err := properties.Calculate(item)
		require.NoError(t, err)
		assert.Equal(t, want, res.Results[i], "item %d", i)
	}
}
