/*
app.go - Command dispatch

PURPOSE:
  Runs one invocation of the payperiods command: parse flags, resolve
  the requested periods and write them in the requested format.
  Everything the command touches (output streams, clock, logger,
  configuration) is injected so tests can drive it directly.

EXIT CODES:
  0  success (also -h)
  1  internal error, including catalog invariant violations
  2  usage error, out-of-range year or month, unparseable input

SEE ALSO:
  - query.go: Flag parsing and validation
  - render.go: Text, JSON and iCalendar writers
  - cmd/payperiods/main.go: Process entry point
*/
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/cagov/payperiods/calendar"
	"github.com/cagov/payperiods/config"
	"github.com/cagov/payperiods/payperiod"
)

// App holds the dependencies of the command.
type App struct {
	Out    io.Writer
	Err    io.Writer
	Now    func() time.Time
	Log    *logrus.Logger
	Config *config.Config
}

// NewApp creates an App with the wall clock.
func NewApp(out, errOut io.Writer, cfg *config.Config, log *logrus.Logger) *App {
	return &App{Out: out, Err: errOut, Now: time.Now, Log: log, Config: cfg}
}

// Run executes the command for args (without the program name).
func (a *App) Run(args []string) error {
	q, err := ParseArgs(args, a.defaults(), a.Err)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return a.fail(q, err)
	}

	periods, err := a.resolve(q)
	if err != nil {
		return a.fail(q, err)
	}
	a.Log.WithFields(logrus.Fields{
		"date":    q.Date,
		"count":   len(periods),
		"format":  q.Format,
		"pattern": periods[0].Pattern,
	}).Debug("resolved pay periods")

	if err := a.write(q, periods); err != nil {
		return a.fail(q, err)
	}
	return nil
}

func (a *App) defaults() Defaults {
	d := Defaults{Format: FormatText, Name: calendar.DefaultName}
	if a.Config != nil {
		d.Format = a.Config.Format
		d.Name = a.Config.CalendarName
		d.TimeBase = a.Config.TimeBase
	}
	return d
}

// resolve maps the query onto the payperiod lookups.
func (a *App) resolve(q Query) ([]payperiod.Period, error) {
	switch {
	case q.Date != "":
		p, err := payperiod.ForDate(payperiod.ISODate(q.Date))
		if err != nil {
			return nil, err
		}
		return []payperiod.Period{p}, nil

	case q.Year != nil && q.Month != nil:
		p, err := payperiod.ForMonth(*q.Year, time.Month(*q.Month))
		if err != nil {
			return nil, err
		}
		return []payperiod.Period{p}, nil

	case q.Year != nil:
		return payperiod.PeriodsForYear(*q.Year)

	default:
		p, err := payperiod.ForDate(payperiod.DateOf(a.Now()))
		if err != nil {
			return nil, err
		}
		return []payperiod.Period{p}, nil
	}
}

func (a *App) write(q Query, periods []payperiod.Period) error {
	// Calendar events carry full-time hours only, so the time base is not
	// even parsed.
	if q.Format == FormatICS {
		r := calendar.New(calendar.WithClock(a.Now))
		return writeICS(a.Out, r, periods, q.Name)
	}

	var timeBase *decimal.Decimal
	if q.TimeBase != "" {
		tb, err := payperiod.ParseTimeBase(q.TimeBase)
		if err != nil {
			return err
		}
		timeBase = &tb
	}

	scaled, err := scale(periods, timeBase)
	if err != nil {
		return err
	}
	if q.Format == FormatJSON {
		return writePeriodsJSON(a.Out, periods, scaled)
	}
	return writeText(a.Out, periods, scaled)
}

// fail logs err and, for JSON output, also reports it on stdout.
func (a *App) fail(q Query, err error) error {
	entry := a.Log.WithError(err)
	if payperiod.IsInvariantViolation(err) {
		entry.Error("pay period catalog is inconsistent")
	} else {
		entry.Warn("request failed")
	}

	if q.Format == FormatJSON {
		if werr := writeJSON(a.Out, ErrorDTO{Error: errorClass(err), Details: err.Error()}); werr != nil {
			a.Log.WithError(werr).Debug("could not write error response")
		}
	} else {
		fmt.Fprintln(a.Err, "payperiods:", err)
	}
	return err
}

func errorClass(err error) string {
	switch {
	case errors.Is(err, payperiod.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, payperiod.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrUsage):
		return "usage"
	case payperiod.IsInvariantViolation(err):
		return "internal"
	}
	return "error"
}

// ExitCode maps an error returned by Run to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage), payperiod.IsClientError(err):
		return 2
	}
	return 1
}
