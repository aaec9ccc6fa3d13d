package domain

import "strings"

// SubPort is one tracked location inside a COTP zone. Snapshots are rebuilt
// on every scrape cycle and never mutated in place; identity for history
// linkage is (zone name, sub-port name), case-normalized.
type SubPort struct {
	Name        string
	Condition   Condition
	Comments    string
	LastChanged string // date string as reported by the source, best effort
	Latitude    float64
	Longitude   float64
}

// Zone is a COTP jurisdiction and its sub-port table. It is a per-cycle view
// over sub-ports, never persisted directly.
type Zone struct {
	Name        string
	MarsecLevel string
	SectorInfo  string
	SourceURL   string
	SubPorts    []SubPort

	// Synthetic marks a zone whose page had no usable status table. Such a
	// zone carries exactly one placeholder sub-port named after the zone,
	// condition NORMAL, at the zone centroid.
	Synthetic bool
}

// Aggregate derives the zone condition: the worst condition among its
// sub-ports. A zone without sub-ports is NORMAL. Always recomputed, never
// stored independently of its inputs.
func (z Zone) Aggregate() Condition {
	worst := ConditionNormal
	for _, sp := range z.SubPorts {
		worst = Max(worst, sp.Condition)
	}
	return worst
}

// PortKey builds the case-normalized identity key for a sub-port.
func PortKey(zoneName, subPortName string) string {
	return strings.ToUpper(strings.TrimSpace(zoneName)) + "|" + strings.ToUpper(strings.TrimSpace(subPortName))
}
