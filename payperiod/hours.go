package payperiod

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TIME BASE - Part-time share of a full-time position
// =============================================================================

// FullTime is the time base of a full-time position.
var FullTime = decimal.NewFromInt(1)

// ParseTimeBase parses a time base written as a decimal ("0.5") or a
// fraction ("1/2", "3/4"). The result must be in (0, 1].
func ParseTimeBase(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	var tb decimal.Decimal

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := decimal.NewFromString(strings.TrimSpace(num))
		if err != nil {
			return decimal.Zero, &InputError{Input: s, Reason: "bad time base numerator"}
		}
		d, err := decimal.NewFromString(strings.TrimSpace(den))
		if err != nil || d.IsZero() {
			return decimal.Zero, &InputError{Input: s, Reason: "bad time base denominator"}
		}
		if n.IsNegative() || d.IsNegative() {
			return decimal.Zero, &InputError{Input: s, Reason: "time base must be greater than 0 and at most 1"}
		}
		tb = n.Div(d)
	} else {
		v, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, &InputError{Input: s, Reason: "expected a decimal or a fraction"}
		}
		tb = v
	}

	if !tb.IsPositive() || tb.GreaterThan(FullTime) {
		return decimal.Zero, &InputError{Input: s, Reason: "time base must be greater than 0 and at most 1"}
	}
	return tb, nil
}

// WorkHoursAt returns the period's work hours for a position at timeBase,
// rounded to hundredths of an hour.
func (p Period) WorkHoursAt(timeBase decimal.Decimal) (decimal.Decimal, error) {
	if !timeBase.IsPositive() || timeBase.GreaterThan(FullTime) {
		return decimal.Zero, &InputError{Input: timeBase.String(), Reason: "time base must be greater than 0 and at most 1"}
	}
	return decimal.NewFromInt(int64(p.WorkHours)).Mul(timeBase).Round(2), nil
}
