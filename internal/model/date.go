package model

import (
	"fmt"
	"time"
)

// Wire formats accepted for date fields. Clients may send either a bare
// calendar date or a full RFC3339 timestamp; responses always carry RFC3339.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02",
}

// Date is a calendar date carried as an ISO-8601 string on the wire.
// Time-of-day is irrelevant to expiry logic and is stripped on comparison,
// not on storage, so round-trips keep whatever the client sent.
type Date struct {
	time.Time
}

// NewDate builds a Date from a time value.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// ParseDate parses a wire string into a Date.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

// MarshalJSON renders the date as an RFC3339 string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.UTC().Format(time.RFC3339) + `"`), nil
}

// UnmarshalJSON accepts RFC3339 timestamps and bare YYYY-MM-DD dates.
func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", b)
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
