package ports

import (
	"context"
	"time"

	"PortStatusMonitor/internal/domain"
)

// ZoneSource discovers COTP zone identifiers and scrapes per-zone pages.
type ZoneSource interface {
	ListZones(ctx context.Context) ([]string, error)
	ScrapeZone(ctx context.Context, zoneName string) (domain.Zone, error)
}

// StatusRepository owns the port registry and the append-only status history.
type StatusRepository interface {
	InitSchema(ctx context.Context) error
	RecordScrape(ctx context.Context, zone domain.Zone, recordedAt time.Time) error
	LatestStatuses(ctx context.Context) ([]domain.PortStatus, error)
	PortHistory(ctx context.Context, zoneName, portName string, since time.Time) ([]domain.StatusRecord, error)
	ChangesSince(ctx context.Context, since time.Time) ([]domain.StatusChange, error)
}

// CoordinateResolver maps a (zone, sub-port) identity to map coordinates,
// falling back to a deterministic offset when no curated entry exists.
type CoordinateResolver interface {
	Resolve(zoneName, subPortName string, indexWithinZone int) (lat, lon float64)
	ZoneCentroid(zoneName string) (lat, lon float64)
}

// FeatureWriter hands the rendered geospatial collection to the map frontend.
type FeatureWriter interface {
	WriteFeatures(zones []domain.Zone, latest []domain.PortStatus) error
}
