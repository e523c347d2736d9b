package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cagov/payperiods/cli"
	"github.com/cagov/payperiods/config"
	"github.com/cagov/payperiods/logger"
	"github.com/cagov/payperiods/payperiod"
)

// =============================================================================
// TEST SETUP
// =============================================================================

type harness struct {
	app    *cli.App
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cfg := &config.Config{
		Environment:  "test",
		LogLevel:     "error",
		Format:       cli.FormatText,
		CalendarName: "Pay Periods",
	}
	app := cli.NewApp(out, errOut, cfg, logger.New(io.Discard, cfg.Environment, cfg.LogLevel))
	app.Now = func() time.Time { return time.Date(2022, time.March, 15, 9, 30, 0, 0, time.UTC) }
	return &harness{app: app, out: out, errOut: errOut}
}

func (h *harness) decodePeriods(t *testing.T) []cli.PeriodDTO {
	t.Helper()
	var dtos []cli.PeriodDTO
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &dtos), h.out.String())
	return dtos
}

// =============================================================================
// SELECTORS
// =============================================================================

func TestRun_DefaultIsTodaysPeriod(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.app.Run([]string{"-format", "json"}))

	dtos := h.decodePeriods(t)
	require.Len(t, dtos, 1)
	assert.Equal(t, 3, dtos[0].Month)
	assert.Equal(t, "March", dtos[0].MonthName)
	assert.Equal(t, "2022-03-02", dtos[0].FirstDay)
	assert.Equal(t, "2022-03-31", dtos[0].LastDay)
	assert.Equal(t, 30, dtos[0].CalendarDays)
}

func TestRun_DateInPreviousMonthsPeriod(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.app.Run([]string{"-date", "2022-08-01", "-format", "json"}))

	dtos := h.decodePeriods(t)
	require.Len(t, dtos, 1)
	assert.Equal(t, 7, dtos[0].Month)
	assert.Equal(t, "2022-07-01", dtos[0].FirstDay)
	assert.Equal(t, "2022-08-01", dtos[0].LastDay)
	assert.Equal(t, 22, dtos[0].WorkDays)
	assert.Equal(t, 176, dtos[0].WorkHours)
	assert.Nil(t, dtos[0].TimeBaseHours)
}

func TestRun_YearAndMonth(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.app.Run([]string{"-year", "2022", "-month", "8", "-format", "json"}))

	dtos := h.decodePeriods(t)
	require.Len(t, dtos, 1)
	assert.Equal(t, "2022-08-02", dtos[0].FirstDay)
	assert.Equal(t, "2022-08-31", dtos[0].LastDay)
}

func TestRun_WholeYearAsText(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.app.Run([]string{"-year", "2022"}))

	lines := strings.Split(strings.TrimSpace(h.out.String()), "\n")
	require.Len(t, lines, 13)
	assert.True(t, strings.HasPrefix(lines[0], "PAY PERIOD"))
	assert.True(t, strings.HasPrefix(lines[1], "January 2022"))
	assert.Contains(t, lines[12], "2022-12-31")
}

func TestRun_WholeYearAsCalendar(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.app.Run([]string{"-year", "2022", "-format", "ics", "-name", "2022"}))

	cal, err := ics.ParseCalendar(h.out)
	require.NoError(t, err)
	assert.Len(t, cal.Events(), 12)
}

func TestRun_TimeBaseScalesHours(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.app.Run([]string{"-year", "2022", "-month", "8", "-format", "json", "-time-base", "1/2"}))

	dtos := h.decodePeriods(t)
	require.Len(t, dtos, 1)
	require.NotNil(t, dtos[0].TimeBaseHours)
	assert.Equal(t, "88", dtos[0].TimeBaseHours.String())
	assert.Equal(t, "0.5", dtos[0].TimeBase.String())
}

func TestRun_TimeBaseColumnInText(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.app.Run([]string{"-date", "2022-03-15", "-time-base", "0.75"}))

	assert.Contains(t, h.out.String(), "HOURS AT 0.75")
	assert.Contains(t, h.out.String(), "132.00")
}

func TestRun_CalendarIgnoresConfiguredTimeBase(t *testing.T) {
	// GIVEN a configured time base that does not parse
	h := newHarness(t)
	h.app.Config.TimeBase = "abc"

	// WHEN a calendar is requested
	err := h.app.Run([]string{"-year", "2022", "-format", "ics"})

	// THEN the calendar is still written
	require.NoError(t, err)
	cal, err := ics.ParseCalendar(h.out)
	require.NoError(t, err)
	assert.Len(t, cal.Events(), 12)
}

func TestRun_ConfiguredTimeBaseStillCheckedForText(t *testing.T) {
	h := newHarness(t)
	h.app.Config.TimeBase = "abc"

	err := h.app.Run([]string{"-year", "2022"})

	assert.ErrorIs(t, err, payperiod.ErrInvalidArgument)
	assert.Equal(t, 2, cli.ExitCode(err))
	assert.Empty(t, h.out.String())
}

func TestRun_ConfigDefaultsApply(t *testing.T) {
	h := newHarness(t)
	h.app.Config.Format = cli.FormatJSON

	require.NoError(t, h.app.Run([]string{"-date", "2022-03-15"}))

	assert.Len(t, h.decodePeriods(t), 1)
}

// =============================================================================
// FAILURES
// =============================================================================

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		exitCode int
		stderr   string
	}{
		{"year after range", []string{"-year", "2300"}, 2, "the year must be between 1994 and 2299"},
		{"month out of range", []string{"-year", "2022", "-month", "13"}, 2, "the month must be between 1 and 12"},
		{"month zero", []string{"-year", "2022", "-month", "0"}, 2, "the month must be between 1 and 12"},
		{"date before range", []string{"-date", "1993-12-31"}, 2, "the year must be between"},
		{"bad date", []string{"-date", "2022-8-1"}, 2, "is not a YYYY-MM-DD date"},
		{"date and year", []string{"-date", "2022-08-01", "-year", "2022"}, 2, "cannot be combined"},
		{"month without year", []string{"-month", "3"}, 2, "-month requires -year"},
		{"unknown format", []string{"-format", "xml"}, 2, "-format must be one of"},
		{"bad time base", []string{"-time-base", "2"}, 2, "time base"},
		{"unknown flag", []string{"-week", "3"}, 2, "usage error"},
		{"stray argument", []string{"2022"}, 2, "unexpected arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			err := h.app.Run(tt.args)

			require.Error(t, err)
			assert.Equal(t, tt.exitCode, cli.ExitCode(err))
			assert.Contains(t, h.errOut.String(), tt.stderr)
			assert.Empty(t, h.out.String())
		})
	}
}

func TestRun_JSONFailureWritesErrorObject(t *testing.T) {
	h := newHarness(t)

	err := h.app.Run([]string{"-year", "2300", "-format", "json"})

	require.ErrorIs(t, err, payperiod.ErrOutOfRange)
	var dto cli.ErrorDTO
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &dto))
	assert.Equal(t, "out_of_range", dto.Error)
	assert.Contains(t, dto.Details, "2300")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestRun_JSONFailureWithBrokenOutputIsLogged(t *testing.T) {
	// GIVEN stdout that rejects writes and a debug logger
	h := newHarness(t)
	logs := &bytes.Buffer{}
	h.app.Out = brokenWriter{}
	h.app.Log = logger.New(logs, "test", "debug")

	// WHEN a JSON request fails
	err := h.app.Run([]string{"-year", "2300", "-format", "json"})

	// THEN the original error is returned and the write failure is logged
	require.ErrorIs(t, err, payperiod.ErrOutOfRange)
	assert.Contains(t, logs.String(), "could not write error response")
	assert.Contains(t, logs.String(), "stdout closed")
}

func TestRun_HelpIsNotAnError(t *testing.T) {
	h := newHarness(t)

	err := h.app.Run([]string{"-h"})

	assert.NoError(t, err)
	assert.Contains(t, h.errOut.String(), "-time-base")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, cli.ExitCode(nil))
	assert.Equal(t, 2, cli.ExitCode(cli.ErrUsage))
	assert.Equal(t, 2, cli.ExitCode(&payperiod.RangeError{Field: "year", Value: 1, Min: 1994, Max: 2299}))
	assert.Equal(t, 1, cli.ExitCode(&payperiod.InvariantError{Pattern: 7}))
}
