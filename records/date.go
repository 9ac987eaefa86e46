package records

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Date is a nullable date or timestamp as it travels on the wire.
// Unparsable strings are kept in Raw with Valid false so a single bad value
// never rejects a whole response.
type Date struct {
	Time  time.Time
	Raw   string
	Valid bool
	// DateOnly marks values that carried no time of day.
	DateOnly bool
}

// NewDate wraps a timestamp.
func NewDate(t time.Time) Date {
	return Date{Time: t, Raw: t.Format(time.RFC3339), Valid: true}
}

// NewDay wraps a calendar date, dropping the time of day.
func NewDay(t time.Time) Date {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Date{Time: day, Raw: day.Format(time.DateOnly), Valid: true, DateOnly: true}
}

// DateFrom wraps an optional timestamp.
func DateFrom(t *time.Time) Date {
	if t == nil {
		return Date{}
	}
	return NewDate(*t)
}

// DayFrom wraps an optional calendar date.
func DayFrom(t *time.Time) Date {
	if t == nil {
		return Date{}
	}
	return NewDay(*t)
}

// Local returns the value on the local calendar. Plain dates are kept as
// they are so they never shift to a neighbouring day.
func (d Date) Local() time.Time {
	if d.DateOnly {
		return d.Time
	}
	return d.Time.In(time.Local)
}

// IsNull reports whether the value was absent on the wire.
func (d Date) IsNull() bool {
	return !d.Valid && d.Raw == ""
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsNull() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Raw)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	*d = Date{}
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	d.Raw = s
	if t, err := dateparse.ParseAny(s); err == nil {
		d.Time = t
		d.Valid = true
		d.DateOnly = !strings.Contains(s, ":")
	}
	return nil
}
