/*
ical.go - iCalendar rendering of pay periods

PURPOSE:
  Turns resolved pay periods into an RFC 5545 calendar that desktop and
  phone calendar apps can import. Each period becomes one all-day event.

EVENT LAYOUT:
  UID          CA-GOV-PAYPERIOD-YYYY-MM (stable, so re-imports replace)
  DTSTART      first day of the period (VALUE=DATE)
  DTEND        day after the last day; all-day ends are exclusive
  SUMMARY      "<Month> <Year>"
  DESCRIPTION  first day, last day, work days and work hours

SEE ALSO:
  - payperiod/resolver.go: Produces the periods rendered here
  - cli/render.go: Chooses this renderer for -format ics
*/
package calendar

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/cagov/payperiods/payperiod"
)

const (
	// ProductID identifies this generator in PRODID and event UIDs.
	ProductID = "CA-GOV-PAYPERIOD"

	// DefaultName is used when no calendar name is given.
	DefaultName = "Pay Periods"
)

// Renderer builds calendars. The zero value is not usable; call New.
type Renderer struct {
	now func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock sets the clock used for DTSTAMP.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// New creates a Renderer using the wall clock unless overridden.
func New(opts ...Option) *Renderer {
	r := &Renderer{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Calendar builds a calendar with one event per period.
func (r *Renderer) Calendar(periods []payperiod.Period, name string) (*ics.Calendar, error) {
	if name == "" {
		name = DefaultName
	}

	cal := ics.NewCalendar()
	cal.SetProductId(ProductID)
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(name)

	stamp := r.now().UTC()
	for _, p := range periods {
		if err := addEvent(cal, p, stamp); err != nil {
			return nil, err
		}
	}
	return cal, nil
}

// Render writes the calendar for periods to w.
func (r *Renderer) Render(w io.Writer, periods []payperiod.Period, name string) error {
	cal, err := r.Calendar(periods, name)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	return nil
}

// ICal returns the calendar text for periods, stamped with the current time.
func ICal(periods []payperiod.Period, name string) (string, error) {
	cal, err := New().Calendar(periods, name)
	if err != nil {
		return "", err
	}
	return cal.Serialize(), nil
}

// UID returns the stable event identifier of a period.
func UID(p payperiod.Period) string {
	return fmt.Sprintf("%s-%04d-%02d", ProductID, p.Year, int(p.Month))
}

func addEvent(cal *ics.Calendar, p payperiod.Period, stamp time.Time) error {
	first, err := payperiod.ParseDate(p.FirstDay)
	if err != nil {
		return fmt.Errorf("period %04d-%02d first day: %w", p.Year, int(p.Month), err)
	}
	last, err := payperiod.ParseDate(p.LastDay)
	if err != nil {
		return fmt.Errorf("period %04d-%02d last day: %w", p.Year, int(p.Month), err)
	}

	title := fmt.Sprintf("%s %d", p.Month, p.Year)

	event := cal.AddEvent(UID(p))
	event.SetDtStampTime(stamp)
	event.SetAllDayStartAt(first.Time())
	event.SetAllDayEndAt(last.AddDays(1).Time())
	event.SetSummary(title)
	event.SetDescription(fmt.Sprintf(
		"%s Pay Period\nFirst Day: %s\nLast Day: %s\nWork Days: %d\nWork Hours: %d",
		title, p.FirstDay, p.LastDay, p.WorkDays, p.WorkHours,
	))
	return nil
}
