package types

import (
	"encoding/json"
	"time"
)

// Date is a calendar date with lenient JSON decoding. LLM responses are
// inconsistent about date formats, so decoding accepts full YYYY-MM-DD
// dates, bare years (normalized to January 1st), and treats everything
// else as unknown rather than failing the whole document.
type Date struct {
	time.Time
}

// NewDate creates a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) *Date {
	return &Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date string leniently. It returns nil for anything
// that is neither a YYYY-MM-DD date nor a bare YYYY year.
func ParseDate(s string) *Date {
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &Date{Time: t}
	}
	if t, err := time.Parse("2006", s); err == nil {
		return &Date{Time: t}
	}
	return nil
}

// MarshalJSON renders the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format("2006-01-02"))
}

// UnmarshalJSON decodes leniently: unparseable values become the zero
// date instead of an error. Callers that need "unknown" semantics should
// use *Date and check for nil after ParseDate.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Tolerate non-string values (numbers, objects) by treating
		// them as unknown.
		d.Time = time.Time{}
		return nil
	}
	if parsed := ParseDate(s); parsed != nil {
		d.Time = parsed.Time
	} else {
		d.Time = time.Time{}
	}
	return nil
}

// YearString returns the calendar year formatted as "YYYY".
func (d *Date) YearString() string {
	return d.Format("2006")
}

// YearMonth returns the date formatted as "YYYY-MM".
func (d *Date) YearMonth() string {
	return d.Format("2006-01")
}
