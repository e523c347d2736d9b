package payperiod

import (
	"fmt"
	"time"
)

// =============================================================================
// PERIOD - One pay period of one year
// =============================================================================

// HoursPerDay is the length of a state work day.
const HoursPerDay = 8

// Period is a resolved pay period. FirstDay and LastDay are YYYY-MM-DD and
// may fall in the calendar month before or after Month.
//
// Periods are values; nothing in this package changes one after it is built.
type Period struct {
	Year      int        `json:"year"`
	Month     time.Month `json:"month"`
	FirstDay  string     `json:"firstDay"`
	LastDay   string     `json:"lastDay"`
	WorkDays  int        `json:"workDays"`
	WorkHours int        `json:"workHours"`
	Pattern   int        `json:"pattern,omitempty"`
}

// newPeriod derives a Period from a catalog row. Periods never cross a year
// boundary, so both ends use year.
func newPeriod(year int, row PatternRow) Period {
	return Period{
		Year:      year,
		Month:     time.Month(row.Month),
		FirstDay:  formatDate(year, time.Month(row.StartMonth), int(row.StartDay)),
		LastDay:   formatDate(year, time.Month(row.EndMonth), int(row.EndDay)),
		WorkDays:  int(row.WorkDays),
		WorkHours: int(row.WorkDays) * HoursPerDay,
		Pattern:   int(row.Pattern),
	}
}

// Contains returns true if d is within [FirstDay, LastDay].
// Both sides are fixed-width YYYY-MM-DD so string order is calendar order.
func (p Period) Contains(d Date) bool {
	s := d.String()
	return p.FirstDay <= s && s <= p.LastDay
}

// ContainsISO is Contains for a raw string. Malformed input is never contained.
func (p Period) ContainsISO(s string) bool {
	d, err := ParseDate(s)
	if err != nil {
		return false
	}
	return p.Contains(d)
}

// Start returns FirstDay as a Date.
func (p Period) Start() Date {
	d, _ := ParseDate(p.FirstDay)
	return d
}

// End returns LastDay as a Date.
func (p Period) End() Date {
	d, _ := ParseDate(p.LastDay)
	return d
}

// CalendarDays returns the number of days in the period, both ends included.
func (p Period) CalendarDays() int {
	return int(p.End().Time().Sub(p.Start().Time()).Hours()/24) + 1
}

// String returns a string representation of the period.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d [%s, %s]", p.Year, int(p.Month), p.FirstDay, p.LastDay)
}
