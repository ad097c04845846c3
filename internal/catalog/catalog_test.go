package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/tablebook/internal/reservation"
)

func TestListBostonItalian(t *testing.T) {
	c := NewSeeded()

	got := c.List(Filter{City: "Boston", Cuisine: "Italian"})
	require.Len(t, got, 1)
	assert.Equal(t, "rest_001", got[0].ID)
	assert.Equal(t, "Trattoria di Mare", got[0].Name)
}

func TestListCityCaseInsensitive(t *testing.T) {
	c := NewSeeded()

	upper := c.List(Filter{City: "BOSTON"})
	lower := c.List(Filter{City: "boston"})
	require.NotEmpty(t, upper)
	assert.Equal(t, upper, lower)
	for _, r := range upper {
		assert.Equal(t, "Boston", r.Location.City)
	}
}

func TestListPriceTier(t *testing.T) {
	c := NewSeeded()

	got := c.List(Filter{City: "Boston", PriceTier: 4})
	require.Len(t, got, 1)
	assert.Equal(t, "The Steakhouse", got[0].Name)
}

func TestListPreservesCatalogOrder(t *testing.T) {
	c := NewSeeded()

	got := c.List(Filter{City: "Boston"})
	require.Len(t, got, 5)
	var ids []string
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"rest_001", "rest_002", "rest_003", "rest_004", "rest_005"}, ids)
}

func TestListNoMatchesIsEmptyNotError(t *testing.T) {
	c := NewSeeded()

	got := c.List(Filter{City: "Gotham"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListDistanceFilter(t *testing.T) {
	c := NewSeeded()
	downtownBoston := &reservation.Point{Latitude: 42.3601, Longitude: -71.0589}

	got := c.List(Filter{Near: downtownBoston, DistanceKM: 10})
	require.NotEmpty(t, got)
	for _, r := range got {
		assert.Equal(t, "Boston", r.Location.City, "10km of downtown Boston should only reach Boston venues")
	}

	// Without a reference point the distance value is ignored.
	all := c.List(Filter{DistanceKM: 10})
	assert.Len(t, all, 10)
}

func TestGet(t *testing.T) {
	c := NewSeeded()

	r, err := c.Get("rest_007")
	require.NoError(t, err)
	assert.Equal(t, "Bella Napoli", r.Name)

	_, err = c.Get("rest_999")
	require.Error(t, err)
	assert.ErrorIs(t, err, reservation.ErrNotFound)
	assert.Contains(t, err.Error(), "rest_999")
}
