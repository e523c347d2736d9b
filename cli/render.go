package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/cagov/payperiods/calendar"
	"github.com/cagov/payperiods/payperiod"
)

// scaledHours pairs each period with its hours at a time base.
type scaledHours struct {
	timeBase decimal.Decimal
	hours    []decimal.Decimal
}

func scale(periods []payperiod.Period, timeBase *decimal.Decimal) (*scaledHours, error) {
	if timeBase == nil {
		return nil, nil
	}
	s := &scaledHours{timeBase: *timeBase, hours: make([]decimal.Decimal, 0, len(periods))}
	for _, p := range periods {
		h, err := p.WorkHoursAt(*timeBase)
		if err != nil {
			return nil, err
		}
		s.hours = append(s.hours, h)
	}
	return s, nil
}

func writeText(w io.Writer, periods []payperiod.Period, scaled *scaledHours) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "PAY PERIOD\tFIRST DAY\tLAST DAY\tDAYS\tWORK DAYS\tWORK HOURS"
	if scaled != nil {
		header += fmt.Sprintf("\tHOURS AT %s", scaled.timeBase)
	}
	fmt.Fprintln(tw, header)

	for i, p := range periods {
		line := fmt.Sprintf("%s %d\t%s\t%s\t%d\t%d\t%d",
			p.Month, p.Year, p.FirstDay, p.LastDay, p.CalendarDays(), p.WorkDays, p.WorkHours)
		if scaled != nil {
			line += "\t" + scaled.hours[i].StringFixed(2)
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func writePeriodsJSON(w io.Writer, periods []payperiod.Period, scaled *scaledHours) error {
	dtos := make([]PeriodDTO, 0, len(periods))
	for i, p := range periods {
		dto := toPeriodDTO(p)
		if scaled != nil {
			tb := scaled.timeBase
			h := scaled.hours[i]
			dto.TimeBase = &tb
			dto.TimeBaseHours = &h
		}
		dtos = append(dtos, dto)
	}
	return writeJSON(w, dtos)
}

func writeICS(w io.Writer, r *calendar.Renderer, periods []payperiod.Period, name string) error {
	return r.Render(w, periods, name)
}
