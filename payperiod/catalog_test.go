package payperiod_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cagov/payperiods/payperiod"
)

func TestPatterns_TableShape(t *testing.T) {
	rows := payperiod.Patterns()
	require.Len(t, rows, 168)

	for i, row := range rows {
		wantPattern := i/12 + 1
		wantMonth := i%12 + 1

		assert.Equal(t, wantPattern, int(row.Pattern), "row %d", i)
		assert.Equal(t, wantMonth, int(row.Month), "row %d", i)
		assert.Contains(t, []uint8{21, 22}, row.WorkDays, "row %d", i)

		// Start month is the nominal month or the one before, end month the
		// nominal month or the one after; nothing wraps across the year.
		assert.LessOrEqual(t, int(row.Month)-1, int(row.StartMonth), "row %d", i)
		assert.LessOrEqual(t, int(row.StartMonth), int(row.Month), "row %d", i)
		assert.LessOrEqual(t, int(row.Month), int(row.EndMonth), "row %d", i)
		assert.LessOrEqual(t, int(row.EndMonth), int(row.Month)+1, "row %d", i)
		assert.GreaterOrEqual(t, int(row.StartMonth), 1)
		assert.LessOrEqual(t, int(row.EndMonth), 12)
	}
}

func TestPatterns_ReturnsCopy(t *testing.T) {
	rows := payperiod.Patterns()
	rows[0].WorkDays = 99

	assert.Equal(t, uint8(22), payperiod.Patterns()[0].WorkDays)
}

func TestPatternNumber_SeedAndCycle(t *testing.T) {
	assert.Equal(t, 7, payperiod.PatternNumber(1994))
	assert.Equal(t, 1, payperiod.PatternNumber(1995))
	assert.Equal(t, 6, payperiod.PatternNumber(2021))
	assert.Equal(t, 7, payperiod.PatternNumber(2022))

	for year := payperiod.YearMin; year <= payperiod.YearMax; year++ {
		n := payperiod.PatternNumber(year)
		assert.GreaterOrEqual(t, n, payperiod.PatternMin)
		assert.LessOrEqual(t, n, payperiod.PatternMax)
		assert.Equal(t, n, payperiod.PatternNumber(year+28), "year %d", year)
	}
}

func TestPatternNumber_BeforeSeedYear(t *testing.T) {
	// The sequence index must never go negative.
	assert.Equal(t, 6, payperiod.PatternNumber(1993))
	assert.Equal(t, 10, payperiod.PatternNumber(1000))
	assert.Equal(t, payperiod.PatternNumber(1994), payperiod.PatternNumber(1994-28*10))
	assert.NotPanics(t, func() { payperiod.PatternNumber(-5000) })
}

func TestPatternsForYear_MatchesSequence(t *testing.T) {
	rows := payperiod.PatternsForYear(2022)

	for i, row := range rows {
		assert.Equal(t, uint8(7), row.Pattern)
		assert.Equal(t, uint8(i+1), row.Month)
	}
	assert.Equal(t, rows[7], payperiod.PatternFor(2022, time.August))
}

func TestPatternsForYear_EveryPatternUsed(t *testing.T) {
	seen := make(map[int]bool)
	for year := 1994; year < 1994+28; year++ {
		seen[payperiod.PatternNumber(year)] = true
	}
	assert.Len(t, seen, 14)
}
