package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PortStatusMonitor/internal/domain"
	"PortStatusMonitor/internal/observability"
)

type fakeSource struct {
	zones  []string
	pages  map[string]domain.Zone
	failed map[string]error
}

func (f *fakeSource) ListZones(context.Context) ([]string, error) {
	return f.zones, nil
}

func (f *fakeSource) ScrapeZone(_ context.Context, name string) (domain.Zone, error) {
	if err, ok := f.failed[name]; ok {
		return domain.Zone{}, err
	}
	return f.pages[name], nil
}

type fakeRepo struct {
	initCalls  int
	recorded   []domain.Zone
	recordErr  map[string]error
	latestErr  error
	timestamps []time.Time
}

func (f *fakeRepo) InitSchema(context.Context) error { f.initCalls++; return nil }

func (f *fakeRepo) RecordScrape(_ context.Context, zone domain.Zone, recordedAt time.Time) error {
	f.recorded = append(f.recorded, zone)
	f.timestamps = append(f.timestamps, recordedAt)
	if err, ok := f.recordErr[zone.Name]; ok {
		return err
	}
	return nil
}

func (f *fakeRepo) LatestStatuses(context.Context) ([]domain.PortStatus, error) {
	return nil, f.latestErr
}

func (f *fakeRepo) PortHistory(context.Context, string, string, time.Time) ([]domain.StatusRecord, error) {
	return nil, nil
}

func (f *fakeRepo) ChangesSince(context.Context, time.Time) ([]domain.StatusChange, error) {
	return nil, nil
}

type fakeWriter struct {
	zones []domain.Zone
	calls int
}

func (f *fakeWriter) WriteFeatures(zones []domain.Zone, _ []domain.PortStatus) error {
	f.zones = zones
	f.calls++
	return nil
}

func testZonePage(name string, cond domain.Condition) domain.Zone {
	return domain.Zone{
		Name:     name,
		SubPorts: []domain.SubPort{{Name: name, Condition: cond}},
	}
}

func newTestPipeline(source *fakeSource, repo *fakeRepo, writer *fakeWriter) *Pipeline {
	return NewPipeline(PipelineDeps{
		Source:     source,
		Repository: repo,
		Writer:     writer,
		Metrics:    observability.NewMetricsForTesting(),
	})
}

func TestRunProcessesAllZones(t *testing.T) {
	t.Parallel()

	source := &fakeSource{
		zones: []string{"CHARLESTON", "MIAMI"},
		pages: map[string]domain.Zone{
			"CHARLESTON": testZonePage("CHARLESTON", domain.ConditionNormal),
			"MIAMI":      testZonePage("MIAMI", domain.ConditionWhiskey),
		},
	}
	repo := &fakeRepo{}
	writer := &fakeWriter{}

	now := time.Date(2025, 10, 1, 6, 0, 0, 0, time.UTC)
	report, err := newTestPipeline(source, repo, writer).Run(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 2, report.ZonesScraped)
	assert.Equal(t, 0, report.ZonesSkipped)
	assert.Equal(t, 2, report.PortsRecorded)
	assert.Equal(t, 1, repo.initCalls)
	require.Len(t, repo.recorded, 2)
	for _, ts := range repo.timestamps {
		assert.Equal(t, now, ts, "all appends in a cycle share one timestamp")
	}
	assert.Equal(t, 1, writer.calls)
	assert.Len(t, writer.zones, 2)
}

func TestRunIsolatesZoneFailures(t *testing.T) {
	t.Parallel()

	source := &fakeSource{
		zones: []string{"CHARLESTON", "BROKEN", "MIAMI"},
		pages: map[string]domain.Zone{
			"CHARLESTON": testZonePage("CHARLESTON", domain.ConditionNormal),
			"MIAMI":      testZonePage("MIAMI", domain.ConditionNormal),
		},
		failed: map[string]error{"BROKEN": errors.New("target unavailable")},
	}
	repo := &fakeRepo{}
	writer := &fakeWriter{}

	report, err := newTestPipeline(source, repo, writer).Run(context.Background(), time.Now())
	require.NoError(t, err, "one broken zone must not fail the run")

	assert.Equal(t, 2, report.ZonesScraped)
	assert.Equal(t, 1, report.ZonesSkipped)
	assert.Len(t, writer.zones, 2, "skipped zone stays out of the export")
}

func TestRunKeepsZoneOnPartialPersistFailure(t *testing.T) {
	t.Parallel()

	source := &fakeSource{
		zones: []string{"CHARLESTON"},
		pages: map[string]domain.Zone{
			"CHARLESTON": testZonePage("CHARLESTON", domain.ConditionNormal),
		},
	}
	repo := &fakeRepo{recordErr: map[string]error{"CHARLESTON": errors.New("disk full")}}
	writer := &fakeWriter{}

	report, err := newTestPipeline(source, repo, writer).Run(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, 1, report.ZonesScraped, "persistence trouble does not drop the scraped zone")
	assert.Len(t, writer.zones, 1)
}

func TestRunCountsSyntheticZones(t *testing.T) {
	t.Parallel()

	synthetic := testZonePage("GUAM", domain.ConditionNormal)
	synthetic.Synthetic = true

	source := &fakeSource{
		zones: []string{"GUAM"},
		pages: map[string]domain.Zone{"GUAM": synthetic},
	}

	report, err := newTestPipeline(source, &fakeRepo{}, &fakeWriter{}).Run(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, 1, report.SyntheticZones)
}

func TestRunFailsWithoutZones(t *testing.T) {
	t.Parallel()

	_, err := newTestPipeline(&fakeSource{}, &fakeRepo{}, &fakeWriter{}).Run(context.Background(), time.Now())
	require.Error(t, err)
}
