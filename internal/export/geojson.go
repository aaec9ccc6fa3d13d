package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"PortStatusMonitor/internal/domain"
	"PortStatusMonitor/internal/ports"
)

// FeatureCollection is the GeoJSON document consumed by the map frontend.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single GeoJSON point feature.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Geometry carries the point position as [lon, lat] per the GeoJSON spec.
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Feature kinds distinguish zone dots from sub-port dots on the map.
const (
	KindZone    = "zone"
	KindSubPort = "subport"
)

func pointFeature(lat, lon float64, props map[string]any) Feature {
	return Feature{
		Type:       "Feature",
		Geometry:   Geometry{Type: "Point", Coordinates: [2]float64{lon, lat}},
		Properties: props,
	}
}

// BuildFeatureCollection renders the scraped zones into point features: one
// zone-level feature carrying the aggregate condition, and one feature per
// sub-port. The latest persisted timestamps come from the read projection.
func BuildFeatureCollection(zones []domain.Zone, latest []domain.PortStatus, resolver ports.CoordinateResolver) FeatureCollection {
	recordedAt := map[string]time.Time{}
	for _, st := range latest {
		recordedAt[domain.PortKey(st.Port.ZoneName, st.Port.Name)] = st.RecordedAt
	}

	fc := FeatureCollection{Type: "FeatureCollection"}
	for _, zone := range zones {
		zoneLat, zoneLon := resolver.ZoneCentroid(zone.Name)

		var zoneStamp time.Time
		summary := make([]string, 0, len(zone.SubPorts))
		for _, sp := range zone.SubPorts {
			summary = append(summary, fmt.Sprintf("%s: %s", sp.Name, sp.Condition))
			if ts := recordedAt[domain.PortKey(zone.Name, sp.Name)]; ts.After(zoneStamp) {
				zoneStamp = ts
			}
		}

		fc.Features = append(fc.Features, pointFeature(zoneLat, zoneLon, map[string]any{
			"kind":         KindZone,
			"name":         zone.Name,
			"condition":    string(zone.Aggregate()),
			"subPorts":     summary,
			"marsecLevel":  zone.MarsecLevel,
			"sectorInfo":   zone.SectorInfo,
			"sourceUrl":    zone.SourceURL,
			"synthetic":    zone.Synthetic,
			"lastRecorded": timestamp(zoneStamp),
		}))

		for _, sp := range zone.SubPorts {
			fc.Features = append(fc.Features, pointFeature(sp.Latitude, sp.Longitude, map[string]any{
				"kind":         KindSubPort,
				"name":         sp.Name,
				"zone":         zone.Name,
				"condition":    string(sp.Condition),
				"comments":     sp.Comments,
				"lastChanged":  sp.LastChanged,
				"lastRecorded": timestamp(recordedAt[domain.PortKey(zone.Name, sp.Name)]),
			}))
		}
	}

	return fc
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// FileWriter renders feature collections to a JSON file for the frontend.
type FileWriter struct {
	path     string
	resolver ports.CoordinateResolver
	logger   *slog.Logger
}

var _ ports.FeatureWriter = (*FileWriter)(nil)

// NewFileWriter writes the collection to path on every cycle.
func NewFileWriter(path string, resolver ports.CoordinateResolver, logger *slog.Logger) *FileWriter {
	return &FileWriter{path: path, resolver: resolver, logger: logger}
}

// WriteFeatures builds and writes the collection. The file is replaced
// atomically via a temp file so the frontend never reads a partial document.
func (w *FileWriter) WriteFeatures(zones []domain.Zone, latest []domain.PortStatus) error {
	fc := BuildFeatureCollection(zones, latest, w.resolver)

	payload, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal feature collection: %w", err)
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write feature collection: %w", err)
	}
	if err := os.Rename(tmp, w.path); err != nil {
		return fmt.Errorf("replace feature collection: %w", err)
	}

	if w.logger != nil {
		w.logger.Info("wrote feature collection", "path", w.path, "features", len(fc.Features))
	}
	return nil
}
