package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testResolver() *Resolver {
	return NewResolver(
		map[string]Point{
			"CHARLESTON": {Lat: 32.7765, Lon: -79.9253},
		},
		map[string]Point{
			"CHARLESTON|BEAUFORT": {Lat: 32.3539, Lon: -80.6703},
		},
	)
}

func TestResolveCuratedSubPort(t *testing.T) {
	t.Parallel()

	r := testResolver()
	lat, lon := r.Resolve("Charleston", "Beaufort", 3)
	assert.Equal(t, 32.3539, lat)
	assert.Equal(t, -80.6703, lon)
}

func TestResolveNudgesUnknownSubPort(t *testing.T) {
	t.Parallel()

	r := testResolver()

	// index 0 sits two steps south, one step west of the centroid
	lat, lon := r.Resolve("CHARLESTON", "Edisto Beach", 0)
	assert.InDelta(t, 32.7765-0.10, lat, 1e-9)
	assert.InDelta(t, -79.9253-0.05, lon, 1e-9)

	// index 7 wraps to the second grid column
	lat, lon = r.Resolve("CHARLESTON", "Awendaw", 7)
	assert.InDelta(t, 32.7765+0.0, lat, 1e-9)
	assert.InDelta(t, -79.9253+0.0, lon, 1e-9)
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	r := testResolver()
	lat1, lon1 := r.Resolve("CHARLESTON", "Edisto Beach", 4)
	lat2, lon2 := r.Resolve("CHARLESTON", "Edisto Beach", 4)
	assert.Equal(t, lat1, lat2)
	assert.Equal(t, lon1, lon2)

	// distinct indexes land on distinct points
	lat3, lon3 := r.Resolve("CHARLESTON", "Rockville", 5)
	assert.False(t, lat1 == lat3 && lon1 == lon3)
}

func TestZoneCentroidFallback(t *testing.T) {
	t.Parallel()

	r := testResolver()
	lat, lon := r.ZoneCentroid("NOWHERE")
	assert.Equal(t, 39.8283, lat)
	assert.Equal(t, -98.5795, lon)
}
