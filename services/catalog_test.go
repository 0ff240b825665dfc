package services

import (
	"testing"

	"racing-league/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Lookup(t *testing.T) {
	c := MustDefaultCatalog()

	v, err := c.Lookup(3)
	require.NoError(t, err)
	assert.Equal(t, "Street Racer", v.Name)
	assert.Equal(t, int64(15000), v.Price)

	_, err = c.Lookup(42)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestCatalog_LookupOrDefault_FallsBackToStarter(t *testing.T) {
	c := MustDefaultCatalog()

	assert.Equal(t, 4, c.LookupOrDefault(4).ID)
	assert.Equal(t, models.StarterVehicleID, c.LookupOrDefault(0).ID)
	assert.Equal(t, models.StarterVehicleID, c.LookupOrDefault(99).ID)
}

func TestCatalog_AllInIDOrder(t *testing.T) {
	c := MustDefaultCatalog()

	all := c.All()
	require.Len(t, all, 5)
	for i, v := range all {
		assert.Equal(t, i+1, v.ID)
	}
	assert.Equal(t, int64(0), all[0].Price, "starter vehicle is free")
}

func TestCatalog_Slugs(t *testing.T) {
	c := MustDefaultCatalog()

	v, err := c.BySlug("old-sedan")
	require.NoError(t, err)
	assert.Equal(t, 1, v.ID)

	v, err = c.BySlug("formula-racer")
	require.NoError(t, err)
	assert.Equal(t, 5, v.ID)

	_, err = c.BySlug("hovercraft")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestCatalog_RandomUsesWholeCatalog(t *testing.T) {
	c := MustDefaultCatalog()

	for idx := 0; idx < c.Len(); idx++ {
		v := c.Random(newSeqDice(t, idx))
		assert.Equal(t, idx+1, v.ID)
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	_, err := NewCatalog([]models.Vehicle{{ID: 2, Name: "Only Fast"}})
	assert.Error(t, err, "starter vehicle is mandatory")

	_, err = NewCatalog([]models.Vehicle{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}})
	assert.Error(t, err)
}
