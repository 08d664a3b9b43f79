package record

import "time"

// TimestampField is the conventional structured-log timestamp key.
const TimestampField = "@timestamp"

// Record is one parsed log line plus its synthetic timestamp annotation.
// Fields are immutable once the record is built; only the timestamp
// annotation is attached after parsing.
type Record struct {
	Fields map[string]Value

	// Timestamp holds the parsed @timestamp instant. The zero time means
	// the field was absent or unparsable, which is never an error: logs
	// are expected to be heterogeneous.
	Timestamp time.Time
}

// New builds a Record from parsed fields and annotates it with the
// parsed @timestamp, when one is present and valid.
func New(fields map[string]Value) Record {
	r := Record{Fields: fields}
	if raw, ok := fields[TimestampField]; ok {
		if s, isStr := raw.StringValue(); isStr {
			if ts, err := ParseTimestamp(s); err == nil {
				r.Timestamp = ts
			}
		}
	}
	return r
}

// HasTimestamp reports whether the @timestamp annotation parsed.
func (r Record) HasTimestamp() bool { return !r.Timestamp.IsZero() }

// SameDate reports whether the record's timestamp falls on the given
// calendar date (date component only, not the exact instant).
func (r Record) SameDate(date time.Time) bool {
	if !r.HasTimestamp() {
		return false
	}
	ry, rm, rd := r.Timestamp.Date()
	fy, fm, fd := date.Date()
	return ry == fy && rm == fm && rd == fd
}
