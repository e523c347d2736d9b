package payperiod

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Civil, date-only value (no time of day, no zone)
// =============================================================================

// isoLayout is the only accepted string form, zero padded.
const isoLayout = "2006-01-02"

// Date is a civil calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date. It does not check that the day exists; ForDate does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's own location. Time of day is ignored.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a zero-padded YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Date{}, &InputError{Input: s, Reason: "expected a YYYY-MM-DD date"}
	}
	return DateOf(t), nil
}

// Today returns the current local date.
func Today() Date {
	return DateOf(time.Now())
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return formatDate(d.Year, d.Month, d.Day)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date { return DateOf(d.Time().AddDate(0, 0, n)) }

// IsValid reports whether the date exists on the calendar (no Feb 30).
func (d Date) IsValid() bool {
	return DateOf(d.Time()) == d
}

func formatDate(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// =============================================================================
// DATE INPUT - Either a structured Date or an ISO string
// =============================================================================

// DateInput is accepted by ForDate. It is implemented by Date and ISODate only.
type DateInput interface {
	civil() (Date, error)
}

// ISODate is a date written as YYYY-MM-DD.
type ISODate string

func (s ISODate) civil() (Date, error) {
	return ParseDate(string(s))
}

func (d Date) civil() (Date, error) {
	if !d.IsValid() {
		return Date{}, &InputError{Input: d.String(), Reason: "no such calendar date"}
	}
	return d, nil
}

// resolveDate turns the input into a valid Date. A missing date, whether
// a nil interface or a nil *Date, is an InputError.
func resolveDate(in DateInput) (Date, error) {
	switch v := in.(type) {
	case Date:
		return v.civil()
	case ISODate:
		return v.civil()
	case *Date:
		if v != nil {
			return v.civil()
		}
	}
	return Date{}, &InputError{Reason: "a date is required"}
}

// Compile-time checks
var (
	_ DateInput = Date{}
	_ DateInput = ISODate("")
)
