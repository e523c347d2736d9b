/*
query.go - Command-line flags bound into a validated query

FLAGS:
  -date       YYYY-MM-DD; the pay period containing this day
  -year       every pay period of the year (or one with -month)
  -month      1..12, only together with -year
  -format     text | json | ics
  -name       calendar name for -format ics
  -time-base  part-time share such as 1/2 or 0.75

  With neither -date nor -year the period containing today is shown.

VALIDATION:
  Structural rules (mutually exclusive selectors, known formats) are
  checked here with struct tags. Year and month bounds are left to the
  payperiod package so the messages always state the supported range.
*/
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatICS  = "ics"
)

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("usage error")

// Query is what the user asked for.
type Query struct {
	Date     string `validate:"omitempty,datetime=2006-01-02,excluded_with=Year"`
	Year     *int
	Month    *int   `validate:"excluded_without=Year"`
	Format   string `validate:"oneof=text json ics"`
	Name     string `validate:"max=200"`
	TimeBase string
}

// Defaults seeds flag values that have no command-line counterpart set.
type Defaults struct {
	Format   string
	Name     string
	TimeBase string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseArgs parses command-line arguments. Usage text goes to errOut.
func ParseArgs(args []string, defaults Defaults, errOut io.Writer) (Query, error) {
	fs := flag.NewFlagSet("payperiods", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var (
		q     Query
		year  int
		month int
	)
	fs.StringVar(&q.Date, "date", "", "show the pay period containing this date (YYYY-MM-DD)")
	fs.IntVar(&year, "year", 0, "show the pay periods of this year")
	fs.IntVar(&month, "month", 0, "with -year, show only this month (1-12)")
	fs.StringVar(&q.Format, "format", defaults.Format, "output format: text, json or ics")
	fs.StringVar(&q.Name, "name", defaults.Name, "calendar name for ics output")
	fs.StringVar(&q.TimeBase, "time-base", defaults.TimeBase, "scale work hours by a time base such as 1/2")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Query{}, err
		}
		return Query{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return Query{}, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, fs.Args())
	}

	// Only flags given on the command line count as selectors.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "year":
			q.Year = &year
		case "month":
			q.Month = &month
		}
	})

	if err := q.Validate(); err != nil {
		return Query{}, err
	}
	return q, nil
}

// Validate checks the structural rules of the query.
func (q Query) Validate() error {
	if err := validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s", ErrUsage, describe(verrs[0]))
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Field() {
	case "Date":
		if fe.Tag() == "excluded_with" {
			return "-date cannot be combined with -year"
		}
		return fmt.Sprintf("-date %q is not a YYYY-MM-DD date", fe.Value())
	case "Month":
		return "-month requires -year"
	case "Format":
		return fmt.Sprintf("-format must be one of text, json or ics (got %q)", fe.Value())
	case "Name":
		return "-name is too long"
	}
	return fe.Error()
}
