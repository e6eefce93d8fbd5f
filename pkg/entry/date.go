package entry

import (
	"fmt"
	"time"
)

// Dates outside [SaneYearMin, SaneYearMax] parse but raise a warning.
const (
	SaneYearMin = 1984
	SaneYearMax = 2084
)

// DateLayout is the only accepted date form.
const DateLayout = "2006-01-02"

// Timestamp is an optional calendar date.
type Timestamp struct {
	Time time.Time
	Set  bool
}

// Before reports whether both timestamps are set and t is earlier than u.
func (t Timestamp) Before(u Timestamp) bool { return t.Set && u.Set && t.Time.Before(u.Time) }

// After reports whether both timestamps are set and t is later than u.
func (t Timestamp) After(u Timestamp) bool { return t.Set && u.Set && t.Time.After(u.Time) }

// ParseDate parses s as YYYY-MM-DD in UTC. An empty s is an unset date and
// parses to the zero Timestamp without error. warn is set when the year lies
// outside the sanity window.
func ParseDate(s string) (ts Timestamp, warn bool, err error) {
	if s == "" {
		return Timestamp{}, false, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Timestamp{}, false, fmt.Errorf("entry: parse date %q: %w", s, err)
	}
	year := t.Year()
	return Timestamp{Time: t, Set: true}, year < SaneYearMin || year > SaneYearMax, nil
}
