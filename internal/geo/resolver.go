package geo

import (
	"PortStatusMonitor/internal/domain"
	"PortStatusMonitor/internal/ports"
)

// Continental US fallback when a zone has no registered centroid.
const (
	fallbackLat = 39.8283
	fallbackLon = -98.5795
)

// Degrees between nudged positions for sub-ports without curated coordinates.
const nudgeStep = 0.05

// Point is a single lat/lon pair from the curated tables.
type Point struct {
	Lat float64
	Lon float64
}

// Resolver answers coordinate lookups from injected, read-only tables: zone
// centroids keyed by upper-cased zone name and sub-port overrides keyed by
// "ZONE|SUBPORT". Misses resolve to a deterministic grid nudge off the zone
// centroid so unresolved sub-ports do not stack on one map point. This is a
// visual de-collision heuristic, not a geolocation service.
type Resolver struct {
	centroids map[string]Point
	subPorts  map[string]Point
}

var _ ports.CoordinateResolver = (*Resolver)(nil)

// NewResolver copies the provided tables; the resolver never mutates them.
func NewResolver(centroids, subPorts map[string]Point) *Resolver {
	r := &Resolver{
		centroids: make(map[string]Point, len(centroids)),
		subPorts:  make(map[string]Point, len(subPorts)),
	}
	for name, pt := range centroids {
		r.centroids[zoneKey(name)] = pt
	}
	for key, pt := range subPorts {
		r.subPorts[normalizeKey(key)] = pt
	}
	return r
}

// ZoneCentroid returns the registered centroid for a zone, or the continental
// fallback when the zone is unknown.
func (r *Resolver) ZoneCentroid(zoneName string) (float64, float64) {
	if pt, ok := r.centroids[zoneKey(zoneName)]; ok {
		return pt.Lat, pt.Lon
	}
	return fallbackLat, fallbackLon
}

// Resolve looks up curated coordinates for the sub-port. On a miss it places
// the sub-port on a small 5-wide grid around the zone centroid using its
// index within the zone, so re-runs are stable for a stable table order.
func (r *Resolver) Resolve(zoneName, subPortName string, indexWithinZone int) (float64, float64) {
	if pt, ok := r.subPorts[domain.PortKey(zoneName, subPortName)]; ok {
		return pt.Lat, pt.Lon
	}

	lat, lon := r.ZoneCentroid(zoneName)
	lat += nudgeStep * float64((indexWithinZone%5)-2)
	lon += nudgeStep * float64((indexWithinZone/5)-1)
	return lat, lon
}

func zoneKey(name string) string {
	key := domain.PortKey(name, "")
	return key[:len(key)-1] // trim the trailing separator
}

func normalizeKey(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] == '|' {
			return domain.PortKey(key[:i], key[i+1:])
		}
	}
	return domain.PortKey(key, "")
}
