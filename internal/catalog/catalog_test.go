package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip_planner/internal/catalog"
)

func TestKnownDistance_ExactReversedPartial(t *testing.T) {
	c := catalog.Default()

	km, ok := c.KnownDistance("hyderabad", "goa")
	require.True(t, ok)
	assert.Equal(t, 635.0, km)

	km, ok = c.KnownDistance("goa", "hyderabad")
	require.True(t, ok)
	assert.Equal(t, 635.0, km)

	// "north goa" contains "goa"
	km, ok = c.KnownDistance("hyderabad", "north goa")
	require.True(t, ok)
	assert.Equal(t, 635.0, km)

	km, ok = c.KnownDistance("bengaluru", "chennai")
	require.True(t, ok, "alias resolves before lookup")
	assert.Equal(t, 350.0, km)

	_, ok = c.KnownDistance("pune", "nashik")
	assert.False(t, ok)
}

func TestIntermediateTowns_Direction(t *testing.T) {
	c := catalog.Default()

	assert.Equal(t, []string{"nagpur", "jabalpur", "prayagraj"}, c.IntermediateTowns("hyderabad", "varanasi"))
	assert.Equal(t, []string{"prayagraj", "jabalpur", "nagpur"}, c.IntermediateTowns("varanasi", "hyderabad"))
	assert.Empty(t, c.IntermediateTowns("atlantis", "lemuria"))
}

func TestIntermediateTowns_DoesNotAliasTable(t *testing.T) {
	c := catalog.Default()
	got := c.IntermediateTowns("hyderabad", "goa")
	got[0] = "mutated"
	assert.Equal(t, "belgaum", c.IntermediateTowns("hyderabad", "goa")[0])
}

func TestCityAttractions_Alias(t *testing.T) {
	c := catalog.Default()
	ps, ok := c.CityAttractions("Bengaluru")
	require.True(t, ok)
	assert.Len(t, ps, 5)
	assert.Equal(t, "Lalbagh Botanical Garden", ps[0].Name)

	_, ok = c.CityAttractions("kolkata")
	assert.False(t, ok)
}

func TestIsDestinationPlace(t *testing.T) {
	c := catalog.Default()
	assert.True(t, c.IsDestinationPlace("delhi", "red fort"))
	assert.True(t, c.IsDestinationPlace("new delhi", "Red Fort"))
	assert.False(t, c.IsDestinationPlace("delhi", "Hampi"))
}

func TestTips_ModeAndDestination(t *testing.T) {
	c := catalog.Default()
	assert.Len(t, c.Tips("goa", "car"), 12)
	assert.Len(t, c.Tips("shillong", "flight"), 8)
}

func TestRouteSpecificPlaces_Reverse(t *testing.T) {
	c := catalog.Default()
	ps, ok := c.RouteSpecificPlaces("goa", "mumbai")
	require.True(t, ok)
	assert.Equal(t, "Ratnagiri Beaches", ps[0].Name)
}
