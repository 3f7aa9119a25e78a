package geo

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountyCentroidKnown(t *testing.T) {
	c, ok := CountyCentroid("Butte")
	require.True(t, ok)
	assert.InDelta(t, 39.6670, c.Lat, 1e-4)
	assert.InDelta(t, -121.6008, c.Lon, 1e-4)
}

func TestCountyCentroidUnknown(t *testing.T) {
	_, ok := CountyCentroid("Atlantis")
	assert.False(t, ok)
}

func TestCountiesSortedAndComplete(t *testing.T) {
	names := Counties()
	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names))

	for _, name := range names {
		c, ok := CountyCentroid(name)
		require.True(t, ok)
		// All centroids lie inside California's bounding box.
		assert.Greater(t, c.Lat, 32.0)
		assert.Less(t, c.Lat, 42.5)
		assert.Greater(t, c.Lon, -125.0)
		assert.Less(t, c.Lon, -114.0)
	}
}
