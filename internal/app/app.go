package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"PortStatusMonitor/internal/config"
	"PortStatusMonitor/internal/export"
	"PortStatusMonitor/internal/geo"
	"PortStatusMonitor/internal/infrastructure/fetch"
	"PortStatusMonitor/internal/infrastructure/navcen"
	"PortStatusMonitor/internal/infrastructure/storage"
	"PortStatusMonitor/internal/observability"
	"PortStatusMonitor/internal/ports"
	"PortStatusMonitor/internal/usecase"
)

// Application wires config into the scrape pipeline and its adapters.
type Application struct {
	cfg        config.Config
	logger     *slog.Logger
	pipeline   *usecase.Pipeline
	repository ports.StatusRepository
	closeDB    func() error
}

// New builds a runnable application instance.
func New(cfg config.Config, logger *slog.Logger) (*Application, error) {
	resolver := geo.NewResolver(toPoints(cfg.Coordinates.Zones), toPoints(cfg.Coordinates.SubPorts))

	fetcher := fetch.NewClient(nil, clockwork.NewRealClock(), fetch.Options{
		RateLimit:      cfg.Fetch.RateLimit.Std(),
		Timeout:        cfg.Fetch.Timeout.Std(),
		MaxRetries:     cfg.Fetch.MaxRetries,
		BackoffBase:    cfg.Fetch.BackoffBase.Std(),
		RetryableCodes: cfg.Fetch.RetryableCodes,
		UserAgent:      cfg.Source.UserAgent,
	}, logger.With("component", "fetch"))

	source := navcen.NewClient(fetcher, cfg.Source.BaseURL, resolver, logger.With("component", "navcen"))

	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	repository := storage.NewSQLiteRepository(db, logger.With("component", "storage"))

	writer := export.NewFileWriter(cfg.Export.GeoJSONPath, resolver, logger.With("component", "export"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     source,
		Repository: repository,
		Writer:     writer,
		Metrics:    observability.NewMetrics(),
		Logger:     logger.With("component", "pipeline"),
	})

	return &Application{
		cfg:        cfg,
		logger:     logger,
		pipeline:   pipeline,
		repository: repository,
		closeDB:    db.Close,
	}, nil
}

// Run executes one scrape cycle and reports condition transitions from the
// last day. Scheduling across cycles is the operator's concern (cron etc.).
func (a *Application) Run(ctx context.Context) error {
	defer a.closeDB()

	a.serveMetrics()

	now := time.Now().UTC()
	report, err := a.pipeline.Run(ctx, now)
	if err != nil {
		return err
	}

	changes, err := a.repository.ChangesSince(ctx, now.Add(-24*time.Hour))
	if err != nil {
		return fmt.Errorf("derive changes: %w", err)
	}
	for _, ch := range changes {
		a.logger.Info("condition change",
			"zone", ch.ZoneName,
			"port", ch.PortName,
			"old", ch.OldCondition,
			"new", ch.NewCondition,
			"at", ch.ChangedAt)
	}

	a.logger.Info("update complete",
		"zones", report.ZonesScraped,
		"skipped", report.ZonesSkipped,
		"ports", report.PortsRecorded,
		"changes_24h", len(changes))
	return nil
}

// serveMetrics exposes /metrics when an address is configured. The listener
// lives for the remainder of the process; per-run teardown is not needed.
func (a *Application) serveMetrics() {
	addr := a.cfg.Metrics.ListenAddr
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			a.logger.Warn("metrics listener stopped", "addr", addr, "error", err)
		}
	}()
}

func toPoints(table map[string]config.Coordinate) map[string]geo.Point {
	points := make(map[string]geo.Point, len(table))
	for key, c := range table {
		points[key] = geo.Point{Lat: c.Lat, Lon: c.Lon}
	}
	return points
}
