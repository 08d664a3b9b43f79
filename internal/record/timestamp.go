package record

import (
	"fmt"
	"time"
)

// Accepted ISO-8601 shapes, tried in order. A trailing literal Z is
// covered by the RFC3339 layouts (Z07:00 matches both "Z" and "+02:00").
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp string as found in
// structured-log @timestamp fields.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
