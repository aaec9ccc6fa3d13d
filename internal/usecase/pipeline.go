package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"PortStatusMonitor/internal/domain"
	"PortStatusMonitor/internal/observability"
	"PortStatusMonitor/internal/ports"
)

// PipelineDeps wires the driven adapters into the scrape pipeline.
type PipelineDeps struct {
	Source     ports.ZoneSource
	Repository ports.StatusRepository
	Writer     ports.FeatureWriter
	Metrics    *observability.Metrics
	Logger     *slog.Logger
}

// Report summarizes one scrape run for logging and operators.
type Report struct {
	ZonesScraped   int
	ZonesSkipped   int
	SyntheticZones int
	PortsRecorded  int
	StartedAt      time.Time
}

// Pipeline runs one full scrape cycle: discover zones, scrape each
// sequentially, persist every sub-port snapshot, then hand the feature
// collection to the frontend writer. Zones fail independently; a bad zone is
// logged and skipped, never aborting the run.
type Pipeline struct {
	source     ports.ZoneSource
	repository ports.StatusRepository
	writer     ports.FeatureWriter
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:     deps.Source,
		repository: deps.Repository,
		writer:     deps.Writer,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}
}

// Run executes one scrape cycle stamped with the given time.
func (p *Pipeline) Run(ctx context.Context, now time.Time) (Report, error) {
	report := Report{StartedAt: now}

	if err := p.repository.InitSchema(ctx); err != nil {
		return report, fmt.Errorf("init schema: %w", err)
	}

	zoneNames, err := p.source.ListZones(ctx)
	if err != nil {
		return report, fmt.Errorf("list zones: %w", err)
	}
	if len(zoneNames) == 0 {
		return report, fmt.Errorf("index page listed no zones")
	}

	var zones []domain.Zone
	for _, name := range zoneNames {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		zone, ok := p.processZone(ctx, name, now, &report)
		if !ok {
			report.ZonesSkipped++
			continue
		}
		zones = append(zones, zone)
		report.ZonesScraped++
	}

	if p.writer != nil && len(zones) > 0 {
		latest, err := p.repository.LatestStatuses(ctx)
		if err != nil {
			return report, fmt.Errorf("load latest statuses: %w", err)
		}
		if err := p.writer.WriteFeatures(zones, latest); err != nil {
			return report, fmt.Errorf("write features: %w", err)
		}
	}

	p.info("run complete",
		"zones_scraped", report.ZonesScraped,
		"zones_skipped", report.ZonesSkipped,
		"synthetic_zones", report.SyntheticZones,
		"ports_recorded", report.PortsRecorded)
	return report, nil
}

// processZone scrapes and persists one zone. All failures are contained
// here: the return flag tells the caller whether the zone made it into this
// cycle's record set.
func (p *Pipeline) processZone(ctx context.Context, name string, now time.Time, report *Report) (domain.Zone, bool) {
	started := time.Now()

	zone, err := p.source.ScrapeZone(ctx, name)
	if err != nil {
		p.warn("zone skipped", "zone", name, "error", err)
		p.count(func(m *observability.Metrics) { m.ZonesSkipped.Inc() })
		return domain.Zone{}, false
	}

	if zone.Synthetic {
		report.SyntheticZones++
		p.count(func(m *observability.Metrics) { m.SyntheticZones.Inc() })
	}

	if err := p.repository.RecordScrape(ctx, zone, now); err != nil {
		// Some ports may still have been committed; the zone stays in the
		// record set so the export reflects everything we saw.
		p.warn("partial persistence failure", "zone", name, "error", err)
		p.count(func(m *observability.Metrics) { m.PersistFailures.Inc() })
	}

	report.PortsRecorded += len(zone.SubPorts)
	p.count(func(m *observability.Metrics) {
		m.ZonesScraped.Inc()
		m.RecordsAppended.Add(float64(len(zone.SubPorts)))
		for _, sp := range zone.SubPorts {
			m.ConditionsByCode.WithLabelValues(string(sp.Condition)).Inc()
		}
		m.ZoneScrapeTime.Observe(time.Since(started).Seconds())
	})

	p.debug("zone scraped", "zone", name, "sub_ports", len(zone.SubPorts), "condition", zone.Aggregate())
	return zone, true
}

func (p *Pipeline) count(fn func(*observability.Metrics)) {
	if p.metrics != nil {
		fn(p.metrics)
	}
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
