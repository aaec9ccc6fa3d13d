package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"PortStatusMonitor/internal/domain"
	"PortStatusMonitor/internal/ports"
)

// schema is idempotent so every run can invoke InitSchema safely.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS ports (
		port_id     INTEGER PRIMARY KEY AUTOINCREMENT,
		port_name   TEXT NOT NULL,
		zone_name   TEXT NOT NULL,
		latitude    REAL NOT NULL,
		longitude   REAL NOT NULL,
		sector_info TEXT,
		created_at  TIMESTAMP NOT NULL,
		UNIQUE (zone_name, port_name)
	)`,
	`CREATE TABLE IF NOT EXISTS status_history (
		history_id   INTEGER PRIMARY KEY AUTOINCREMENT,
		port_id      INTEGER NOT NULL,
		condition    TEXT NOT NULL,
		details      TEXT,
		marsec_level TEXT,
		restrictions TEXT,
		source_url   TEXT,
		recorded_at  TIMESTAMP NOT NULL,
		FOREIGN KEY (port_id) REFERENCES ports (port_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_status_port_date
		ON status_history (port_id, recorded_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_status_date
		ON status_history (recorded_at DESC)`,
}

// SQLiteRepository persists the port registry and the append-only status
// history. It is single-writer per run; concurrent writers are out of scope.
type SQLiteRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	logger  *slog.Logger
}

var _ ports.StatusRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository wires an opened sql.DB (modernc.org/sqlite driver).
func NewSQLiteRepository(db *sql.DB, logger *slog.Logger) *SQLiteRepository {
	return &SQLiteRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  logger,
	}
}

// Open opens (and creates if needed) the SQLite database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// The driver serializes access; a single connection avoids table locks.
	db.SetMaxOpenConns(1)
	return db, nil
}

// InitSchema creates tables and indexes when missing. Safe to call on every
// run.
func (r *SQLiteRepository) InitSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// RecordScrape appends one status record per sub-port of the zone,
// unconditionally, resolving or creating the registry entry first. Each port
// is one transaction: a failing port leaves no partial state and does not
// block the remaining ports; their errors are joined and returned.
func (r *SQLiteRepository) RecordScrape(ctx context.Context, zone domain.Zone, recordedAt time.Time) error {
	var errs []error
	for _, sp := range zone.SubPorts {
		if err := r.recordPort(ctx, zone, sp, recordedAt); err != nil {
			errs = append(errs, fmt.Errorf("port %s: %w", domain.PortKey(zone.Name, sp.Name), err))
			r.warn("port append failed", "zone", zone.Name, "port", sp.Name, "error", err)
		}
	}
	return errors.Join(errs...)
}

func (r *SQLiteRepository) recordPort(ctx context.Context, zone domain.Zone, sp domain.SubPort, recordedAt time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	portID, err := r.upsertPort(ctx, tx, zone, sp, recordedAt)
	if err != nil {
		return err
	}

	insert := r.builder.
		Insert("status_history").
		Columns("port_id", "condition", "details", "marsec_level", "restrictions", "source_url", "recorded_at").
		Values(portID, string(sp.Condition), sp.Comments, zone.MarsecLevel, restrictionsText(sp), zone.SourceURL, recordedAt.UTC())

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build history insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append history: %w", err)
	}

	return tx.Commit()
}

// restrictionsText carries the comment text into the restrictions column
// only when the port is actually operating under a restriction.
func restrictionsText(sp domain.SubPort) string {
	if sp.Condition == domain.ConditionNormal {
		return ""
	}
	return sp.Comments
}

// upsertPort creates the registry entry on first sight and refreshes the
// mutable columns afterwards; the durable port_id never changes.
func (r *SQLiteRepository) upsertPort(ctx context.Context, tx *sql.Tx, zone domain.Zone, sp domain.SubPort, seenAt time.Time) (int64, error) {
	const upsert = `
		INSERT INTO ports (port_name, zone_name, latitude, longitude, sector_info, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (zone_name, port_name) DO UPDATE SET
			latitude    = excluded.latitude,
			longitude   = excluded.longitude,
			sector_info = excluded.sector_info`

	if _, err := tx.ExecContext(ctx, upsert,
		sp.Name, zone.Name, sp.Latitude, sp.Longitude, zone.SectorInfo, seenAt.UTC()); err != nil {
		return 0, fmt.Errorf("upsert port: %w", err)
	}

	query, args, err := r.builder.
		Select("port_id").
		From("ports").
		Where(sq.Eq{"zone_name": zone.Name, "port_name": sp.Name}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build port lookup: %w", err)
	}

	var portID int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&portID); err != nil {
		return 0, fmt.Errorf("lookup port id: %w", err)
	}
	return portID, nil
}

// LatestStatuses returns the most recent record per registered port, derived
// on read from the history log.
func (r *SQLiteRepository) LatestStatuses(ctx context.Context) ([]domain.PortStatus, error) {
	const query = `
		SELECT p.port_id, p.port_name, p.zone_name, p.latitude, p.longitude,
		       COALESCE(p.sector_info, ''), p.created_at,
		       COALESCE(s.condition, 'NORMAL'), COALESCE(s.details, ''),
		       COALESCE(s.marsec_level, ''), COALESCE(s.source_url, ''), s.recorded_at
		FROM ports p
		LEFT JOIN (
			SELECT port_id, condition, details, marsec_level, source_url, recorded_at,
			       ROW_NUMBER() OVER (PARTITION BY port_id ORDER BY recorded_at DESC, history_id DESC) AS rn
			FROM status_history
		) s ON p.port_id = s.port_id AND s.rn = 1
		ORDER BY p.zone_name, p.port_name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query latest statuses: %w", err)
	}
	defer rows.Close()

	var statuses []domain.PortStatus
	for rows.Next() {
		var (
			st         domain.PortStatus
			condition  string
			recordedAt sql.NullTime
		)
		if err := rows.Scan(
			&st.Port.ID, &st.Port.Name, &st.Port.ZoneName,
			&st.Port.Latitude, &st.Port.Longitude, &st.Port.SectorInfo, &st.Port.CreatedAt,
			&condition, &st.Details, &st.MarsecLevel, &st.SourceURL, &recordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan latest status: %w", err)
		}
		st.Condition = domain.Condition(condition)
		if recordedAt.Valid {
			st.RecordedAt = recordedAt.Time.UTC()
		}
		statuses = append(statuses, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate latest statuses: %w", err)
	}
	return statuses, nil
}

// PortHistory returns a port's records since the given time, newest first.
func (r *SQLiteRepository) PortHistory(ctx context.Context, zoneName, portName string, since time.Time) ([]domain.StatusRecord, error) {
	query, args, err := r.builder.
		Select("s.history_id", "s.port_id", "s.condition",
			"COALESCE(s.details, '')", "COALESCE(s.marsec_level, '')",
			"COALESCE(s.restrictions, '')", "COALESCE(s.source_url, '')", "s.recorded_at").
		From("status_history s").
		Join("ports p ON p.port_id = s.port_id").
		Where(sq.Eq{"p.zone_name": zoneName, "p.port_name": portName}).
		Where(sq.GtOrEq{"s.recorded_at": since.UTC()}).
		OrderBy("s.recorded_at DESC", "s.history_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query port history: %w", err)
	}
	defer rows.Close()

	var records []domain.StatusRecord
	for rows.Next() {
		var (
			rec       domain.StatusRecord
			condition string
		)
		if err := rows.Scan(&rec.ID, &rec.PortID, &condition, &rec.Details,
			&rec.MarsecLevel, &rec.Restrictions, &rec.SourceURL, &rec.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan history record: %w", err)
		}
		rec.Condition = domain.Condition(condition)
		rec.RecordedAt = rec.RecordedAt.UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate port history: %w", err)
	}
	return records, nil
}

// ChangesSince derives condition transitions from the append-only log: each
// port's records are ordered by time and a transition is emitted wherever
// consecutive conditions differ. Transitions are never stored.
func (r *SQLiteRepository) ChangesSince(ctx context.Context, since time.Time) ([]domain.StatusChange, error) {
	const query = `
		SELECT port_name, zone_name, old_condition, condition, recorded_at
		FROM (
			SELECT p.port_name, p.zone_name, s.condition, s.recorded_at,
			       LAG(s.condition) OVER (
			           PARTITION BY s.port_id ORDER BY s.recorded_at, s.history_id
			       ) AS old_condition
			FROM status_history s
			JOIN ports p ON p.port_id = s.port_id
		)
		WHERE old_condition IS NOT NULL
		  AND old_condition != condition
		  AND recorded_at >= ?
		ORDER BY recorded_at, port_name`

	rows, err := r.db.QueryContext(ctx, query, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("query changes: %w", err)
	}
	defer rows.Close()

	var changes []domain.StatusChange
	for rows.Next() {
		var (
			ch       domain.StatusChange
			oldC, nc string
		)
		if err := rows.Scan(&ch.PortName, &ch.ZoneName, &oldC, &nc, &ch.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan change: %w", err)
		}
		ch.OldCondition = domain.Condition(oldC)
		ch.NewCondition = domain.Condition(nc)
		ch.ChangedAt = ch.ChangedAt.UTC()
		changes = append(changes, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate changes: %w", err)
	}
	return changes, nil
}

func (r *SQLiteRepository) warn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}
