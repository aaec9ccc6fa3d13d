package domain

import "time"

// PortEntry is the durable registry row for a sub-port identity. The ID is
// assigned on first sight and referenced by every later status record.
type PortEntry struct {
	ID         int64
	Name       string
	ZoneName   string
	Latitude   float64
	Longitude  float64
	SectorInfo string
	CreatedAt  time.Time
}

// StatusRecord is one immutable history fact. One record is appended per
// tracked port on every successful scrape of its zone, changed or not.
type StatusRecord struct {
	ID           int64
	PortID       int64
	Condition    Condition
	Details      string
	MarsecLevel  string
	Restrictions string
	SourceURL    string
	RecordedAt   time.Time
}

// PortStatus is the read-side projection joining a registry entry with its
// most recent status record.
type PortStatus struct {
	Port        PortEntry
	Condition   Condition
	Details     string
	MarsecLevel string
	SourceURL   string
	RecordedAt  time.Time
}

// StatusChange is a derived condition transition for one port. Transitions
// are recomputed from the append-only history, never stored.
type StatusChange struct {
	PortName     string
	ZoneName     string
	OldCondition Condition
	NewCondition Condition
	ChangedAt    time.Time
}
