package ledger

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// canonicalLayout matches what browsers emit from Date.prototype.toISOString.
const canonicalLayout = "2006-01-02T15:04:05.000Z07:00"

// inputLayouts are tried in order by ParseTimestamp. Zone-less forms are read as UTC.
var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Timestamp is the canonical point-in-time representation used for storage,
// comparison and the wire: UTC, millisecond precision.
type Timestamp struct {
	time.Time
}

// NewTimestamp normalizes t into canonical form.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// ParseTimestamp accepts RFC 3339 or a date/date-time without zone and
// returns the canonical form.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ts := NewTimestamp(t)
			// The canonical form has a four-digit year and must parse back.
			if y := ts.Year(); y < 0 || y > 9999 {
				return Timestamp{}, fmt.Errorf("timestamp %q is outside years 0000-9999 in UTC", s)
			}
			return ts, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// String returns the canonical text form.
func (t Timestamp) String() string {
	return t.Time.UTC().Format(canonicalLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
