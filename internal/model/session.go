package model

import "time"

// Session represents one charging event row from the sessions CSV.
//
// Timestamp is the zero time when the source value could not be parsed;
// the row is still kept for every other aggregation.
type Session struct {
	Timestamp       time.Time `json:"timestamp"`
	Hour            int       `json:"hour"`
	Day             string    `json:"day"`
	Location        string    `json:"location"`
	ChargerType     string    `json:"charger_type"`
	KWhUsed         float64   `json:"kwh_used"`
	EstimatedCostRM float64   `json:"estimated_cost_rm"`
}

// HasTimestamp reports whether the timestamp column parsed.
func (s Session) HasTimestamp() bool {
	return !s.Timestamp.IsZero()
}

// Dataset is the immutable, ordered set of sessions loaded at startup.
// Callers must not modify the slice returned by Sessions.
type Dataset struct {
	Source             string
	LoadedAt           time.Time
	UnparsedTimestamps int

	sessions []Session
}

// NewDataset wraps sessions in a Dataset. The slice is owned by the
// Dataset afterwards.
func NewDataset(source string, sessions []Session) *Dataset {
	unparsed := 0
	for _, s := range sessions {
		if !s.HasTimestamp() {
			unparsed++
		}
	}
	return &Dataset{
		Source:             source,
		LoadedAt:           time.Now(),
		UnparsedTimestamps: unparsed,
		sessions:           sessions,
	}
}

// Len returns the number of sessions. A nil Dataset has zero rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.sessions)
}

// Sessions returns the rows in file order.
func (d *Dataset) Sessions() []Session {
	if d == nil {
		return nil
	}
	return d.sessions
}

// TimeRange returns the earliest and latest parsed timestamps.
// ok is false when no row has a usable timestamp.
func (d *Dataset) TimeRange() (start, end time.Time, ok bool) {
	for _, s := range d.Sessions() {
		if !s.HasTimestamp() {
			continue
		}
		if !ok || s.Timestamp.Before(start) {
			start = s.Timestamp
		}
		if !ok || s.Timestamp.After(end) {
			end = s.Timestamp
		}
		ok = true
	}
	return start, end, ok
}
