/*
resolver.go - Maps dates and (year, month) pairs to pay periods

PURPOSE:
  The public entry points of the engine. Every call validates its input,
  reads the twelve catalog rows for the year and builds Period values.
  Nothing is cached and nothing is shared except the read-only catalog,
  so all functions are safe for concurrent use.

DATE LOOKUP:
  A pay period's nominal month can start at the end of the previous
  calendar month or end at the start of the next one. For a date in
  calendar month m the containing period is therefore one of:

    1. the period of month m
    2. the period of month m-1 (when m > 1)
    3. the period of month m+1 (when m < 12)

  Rows outside the year are never probed. If none of the three contains
  the date the catalog is broken and an InvariantError is returned.

SEE ALSO:
  - catalog.go: Pattern rows and the 28-year sequence
  - period.go: Period and containment
*/
package payperiod

import "time"

// Supported bounds.
const (
	YearMin  = PatternSeedYear
	YearMax  = 2299
	MonthMin = 1
	MonthMax = 12
)

// AllMonths selects every month of the year in Periods.
const AllMonths time.Month = 0

// =============================================================================
// LOOKUPS
// =============================================================================

// ForMonth returns the pay period for a year and month.
func ForMonth(year int, month time.Month) (Period, error) {
	if err := validateYear(year); err != nil {
		return Period{}, err
	}
	if err := validateMonth(month); err != nil {
		return Period{}, err
	}
	return newPeriod(year, PatternFor(year, month)), nil
}

// Periods returns the pay periods of year. With AllMonths it returns all
// twelve in month order, otherwise a single-element slice for month.
func Periods(year int, month time.Month) ([]Period, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if month != AllMonths {
		if err := validateMonth(month); err != nil {
			return nil, err
		}
		return []Period{newPeriod(year, PatternFor(year, month))}, nil
	}

	rows := PatternsForYear(year)
	periods := make([]Period, 0, len(rows))
	for _, row := range rows {
		periods = append(periods, newPeriod(year, row))
	}
	return periods, nil
}

// PeriodsForYear returns the twelve pay periods of year.
func PeriodsForYear(year int) ([]Period, error) {
	return Periods(year, AllMonths)
}

// ForDate returns the pay period that contains the date.
func ForDate(in DateInput) (Period, error) {
	d, err := resolveDate(in)
	if err != nil {
		return Period{}, err
	}
	if err := validateYear(d.Year); err != nil {
		return Period{}, err
	}
	if err := validateMonth(d.Month); err != nil {
		return Period{}, err
	}
	return findPeriod(d, PatternsForYear(d.Year))
}

// findPeriod probes the date's own month, then the month before, then the
// month after.
func findPeriod(d Date, rows [12]PatternRow) (Period, error) {
	idx := int(d.Month) - 1
	for _, i := range [...]int{idx, idx - 1, idx + 1} {
		if i < 0 || i >= len(rows) {
			continue
		}
		p := newPeriod(d.Year, rows[i])
		if p.Contains(d) {
			return p, nil
		}
	}
	return Period{}, &InvariantError{Date: d, Pattern: int(rows[idx].Pattern)}
}

// =============================================================================
// VALIDATION
// =============================================================================

func validateYear(year int) error {
	if year < YearMin || year > YearMax {
		return &RangeError{Field: "year", Value: year, Min: YearMin, Max: YearMax}
	}
	return nil
}

func validateMonth(month time.Month) error {
	if month < MonthMin || month > MonthMax {
		return &RangeError{Field: "month", Value: int(month), Min: MonthMin, Max: MonthMax}
	}
	return nil
}
