package cli

import (
	"github.com/shopspring/decimal"

	"github.com/cagov/payperiods/payperiod"
)

// PeriodDTO is the JSON shape of a pay period on stdout.
type PeriodDTO struct {
	Year          int              `json:"year"`
	Month         int              `json:"month"`
	MonthName     string           `json:"monthName"`
	FirstDay      string           `json:"firstDay"`
	LastDay       string           `json:"lastDay"`
	CalendarDays  int              `json:"calendarDays"`
	WorkDays      int              `json:"workDays"`
	WorkHours     int              `json:"workHours"`
	Pattern       int              `json:"pattern"`
	TimeBase      *decimal.Decimal `json:"timeBase,omitempty"`
	TimeBaseHours *decimal.Decimal `json:"timeBaseHours,omitempty"`
}

func toPeriodDTO(p payperiod.Period) PeriodDTO {
	return PeriodDTO{
		Year:         p.Year,
		Month:        int(p.Month),
		MonthName:    p.Month.String(),
		FirstDay:     p.FirstDay,
		LastDay:      p.LastDay,
		CalendarDays: p.CalendarDays(),
		WorkDays:     p.WorkDays,
		WorkHours:    p.WorkHours,
		Pattern:      p.Pattern,
	}
}

// ErrorDTO is written to stdout for -format json failures.
type ErrorDTO struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
