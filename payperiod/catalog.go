/*
catalog.go - The static pay period pattern catalog

PURPOSE:
  California state pay periods are month-aligned but rarely match calendar
  months. Every year follows one of 14 fixed patterns, and the pattern used
  by a year repeats on a 28-year cycle starting at the seed year 1994.

LAYOUT:
  patterns         168 rows, 12 per pattern, grouped by pattern number.
                   Rows (p-1)*12 .. (p-1)*12+11 belong to pattern p.
  patternSequence  28 pattern numbers; index i is year 1994+i (mod 28).

  Both are package-level arrays that are never written. Accessors return
  copies so callers cannot change the catalog.

SEE ALSO:
  - resolver.go: Turns rows into Period values
*/
package payperiod

import "time"

// PatternRow is one month of one pattern.
type PatternRow struct {
	Pattern    uint8 // 1..14
	Month      uint8 // nominal pay period month, 1..12
	StartMonth uint8
	StartDay   uint8
	EndMonth   uint8
	EndDay     uint8
	WorkDays   uint8 // 21 or 22
}

const (
	// PatternSeedYear is the year at index 0 of the pattern sequence.
	PatternSeedYear = 1994

	PatternMin = 1
	PatternMax = 14
)

var patternSequence = [28]uint8{7, 1, 9, 4, 5, 6, 14, 2, 3, 4, 12, 7, 1, 2, 10, 5, 6, 7, 8, 3, 4, 5, 13, 1, 2, 3, 11, 6}

var patterns = [PatternMax * 12]PatternRow{
	{1, 1, 1, 1, 1, 31, 22},
	{1, 2, 2, 1, 3, 1, 21},
	{1, 3, 3, 2, 3, 31, 22},
	{1, 4, 4, 1, 5, 1, 21},
	{1, 5, 5, 2, 5, 31, 22},
	{1, 6, 6, 1, 6, 30, 22},
	{1, 7, 7, 1, 8, 1, 22},
	{1, 8, 8, 2, 8, 31, 22},
	{1, 9, 9, 1, 9, 30, 21},
	{1, 10, 10, 1, 10, 31, 22},
	{1, 11, 11, 1, 11, 30, 22},
	{1, 12, 12, 1, 12, 31, 21},
	{2, 1, 1, 1, 1, 30, 22},
	{2, 2, 1, 31, 2, 28, 21},
	{2, 3, 3, 1, 3, 31, 22},
	{2, 4, 4, 1, 4, 30, 21},
	{2, 5, 5, 1, 5, 30, 22},
	{2, 6, 5, 31, 6, 30, 22},
	{2, 7, 7, 1, 7, 31, 22},
	{2, 8, 8, 1, 8, 30, 22},
	{2, 9, 8, 31, 9, 30, 21},
	{2, 10, 10, 1, 10, 30, 22},
	{2, 11, 10, 31, 11, 29, 22},
	{2, 12, 11, 30, 12, 31, 22},
	{3, 1, 1, 1, 1, 30, 22},
	{3, 2, 1, 31, 2, 28, 21},
	{3, 3, 3, 1, 3, 31, 21},
	{3, 4, 4, 1, 4, 30, 22},
	{3, 5, 5, 1, 5, 30, 22},
	{3, 6, 5, 31, 6, 30, 21},
	{3, 7, 7, 1, 7, 30, 22},
	{3, 8, 7, 31, 8, 29, 22},
	{3, 9, 8, 30, 9, 30, 22},
	{3, 10, 10, 1, 10, 30, 22},
	{3, 11, 10, 31, 11, 30, 22},
	{3, 12, 12, 1, 12, 31, 22},
	{4, 1, 1, 1, 1, 30, 22},
	{4, 2, 1, 31, 2, 28, 21},
	{4, 3, 3, 1, 3, 31, 21},
	{4, 4, 4, 1, 4, 30, 22},
	{4, 5, 5, 1, 5, 31, 22},
	{4, 6, 6, 1, 6, 30, 21},
	{4, 7, 7, 1, 7, 30, 22},
	{4, 8, 7, 31, 8, 31, 22},
	{4, 9, 9, 1, 9, 30, 22},
	{4, 10, 10, 1, 10, 30, 22},
	{4, 11, 10, 31, 12, 1, 22},
	{4, 12, 12, 2, 12, 31, 22},
	{5, 1, 1, 1, 1, 29, 21},
	{5, 2, 1, 30, 2, 28, 21},
	{5, 3, 3, 1, 3, 31, 22},
	{5, 4, 4, 1, 4, 30, 22},
	{5, 5, 5, 1, 5, 31, 21},
	{5, 6, 6, 1, 6, 30, 22},
	{5, 7, 7, 1, 7, 30, 22},
	{5, 8, 7, 31, 8, 31, 22},
	{5, 9, 9, 1, 9, 30, 22},
	{5, 10, 10, 1, 10, 31, 22},
	{5, 11, 11, 1, 12, 1, 22},
	{5, 12, 12, 2, 12, 31, 22},
	{6, 1, 1, 1, 1, 31, 21},
	{6, 2, 2, 1, 3, 1, 21},
	{6, 3, 3, 2, 3, 31, 22},
	{6, 4, 4, 1, 4, 30, 22},
	{6, 5, 5, 1, 5, 31, 21},
	{6, 6, 6, 1, 6, 30, 22},
	{6, 7, 7, 1, 7, 31, 22},
	{6, 8, 8, 1, 8, 31, 22},
	{6, 9, 9, 1, 9, 30, 22},
	{6, 10, 10, 1, 11, 1, 22},
	{6, 11, 11, 2, 12, 1, 22},
	{6, 12, 12, 2, 12, 31, 22},
	{7, 1, 1, 1, 1, 31, 21},
	{7, 2, 2, 1, 3, 1, 21},
	{7, 3, 3, 2, 3, 31, 22},
	{7, 4, 4, 1, 4, 30, 21},
	{7, 5, 5, 1, 5, 31, 22},
	{7, 6, 6, 1, 6, 30, 22},
	{7, 7, 7, 1, 8, 1, 22},
	{7, 8, 8, 2, 8, 31, 22},
	{7, 9, 9, 1, 9, 30, 22},
	{7, 10, 10, 1, 10, 31, 21},
	{7, 11, 11, 1, 11, 30, 22},
	{7, 12, 12, 1, 12, 31, 22},
	{8, 1, 1, 1, 1, 31, 22},
	{8, 2, 2, 1, 2, 29, 21},
	{8, 3, 3, 1, 3, 31, 22},
	{8, 4, 4, 1, 4, 30, 21},
	{8, 5, 5, 1, 5, 30, 22},
	{8, 6, 5, 31, 6, 30, 22},
	{8, 7, 7, 1, 7, 31, 22},
	{8, 8, 8, 1, 8, 30, 22},
	{8, 9, 8, 31, 9, 30, 21},
	{8, 10, 10, 1, 10, 30, 22},
	{8, 11, 10, 31, 11, 29, 22},
	{8, 12, 11, 30, 12, 31, 22},
	{9, 1, 1, 1, 1, 30, 22},
	{9, 2, 1, 31, 2, 29, 22},
	{9, 3, 3, 1, 3, 31, 21},
	{9, 4, 4, 1, 4, 30, 22},
	{9, 5, 5, 1, 5, 30, 22},
	{9, 6, 5, 31, 6, 30, 21},
	{9, 7, 7, 1, 7, 30, 22},
	{9, 8, 7, 31, 8, 29, 22},
	{9, 9, 8, 30, 9, 30, 22},
	{9, 10, 10, 1, 10, 30, 22},
	{9, 11, 10, 31, 11, 30, 22},
	{9, 12, 12, 1, 12, 31, 22},
	{10, 1, 1, 1, 1, 30, 22},
	{10, 2, 1, 31, 2, 29, 22},
	{10, 3, 3, 1, 3, 31, 21},
	{10, 4, 4, 1, 4, 30, 22},
	{10, 5, 5, 1, 5, 31, 22},
	{10, 6, 6, 1, 6, 30, 21},
	{10, 7, 7, 1, 7, 30, 22},
	{10, 8, 7, 31, 8, 31, 22},
	{10, 9, 9, 1, 9, 30, 22},
	{10, 10, 10, 1, 10, 30, 22},
	{10, 11, 10, 31, 12, 1, 22},
	{10, 12, 12, 2, 12, 31, 22},
	{11, 1, 1, 1, 1, 30, 22},
	{11, 2, 1, 31, 2, 29, 21},
	{11, 3, 3, 1, 3, 31, 22},
	{11, 4, 4, 1, 4, 30, 22},
	{11, 5, 5, 1, 5, 31, 21},
	{11, 6, 6, 1, 6, 30, 22},
	{11, 7, 7, 1, 7, 30, 22},
	{11, 8, 7, 31, 8, 31, 22},
	{11, 9, 9, 1, 9, 30, 22},
	{11, 10, 10, 1, 10, 31, 22},
	{11, 11, 11, 1, 12, 1, 22},
	{11, 12, 12, 2, 12, 31, 22},
	{12, 1, 1, 1, 1, 31, 22},
	{12, 2, 2, 1, 3, 1, 21},
	{12, 3, 3, 2, 3, 31, 22},
	{12, 4, 4, 1, 4, 30, 22},
	{12, 5, 5, 1, 5, 31, 21},
	{12, 6, 6, 1, 6, 30, 22},
	{12, 7, 7, 1, 7, 31, 22},
	{12, 8, 8, 1, 8, 31, 22},
	{12, 9, 9, 1, 9, 30, 22},
	{12, 10, 10, 1, 11, 1, 22},
	{12, 11, 11, 2, 12, 1, 22},
	{12, 12, 12, 2, 12, 31, 22},
	{13, 1, 1, 1, 1, 31, 21},
	{13, 2, 2, 1, 3, 1, 22},
	{13, 3, 3, 2, 3, 31, 22},
	{13, 4, 4, 1, 4, 30, 21},
	{13, 5, 5, 1, 5, 31, 22},
	{13, 6, 6, 1, 6, 30, 22},
	{13, 7, 7, 1, 8, 1, 22},
	{13, 8, 8, 2, 8, 31, 22},
	{13, 9, 9, 1, 9, 30, 22},
	{13, 10, 10, 1, 10, 31, 21},
	{13, 11, 11, 1, 11, 30, 22},
	{13, 12, 12, 1, 12, 31, 22},
	{14, 1, 1, 1, 1, 31, 21},
	{14, 2, 2, 1, 3, 1, 22},
	{14, 3, 3, 2, 3, 31, 22},
	{14, 4, 4, 1, 5, 1, 21},
	{14, 5, 5, 2, 5, 31, 22},
	{14, 6, 6, 1, 6, 30, 22},
	{14, 7, 7, 1, 7, 31, 21},
	{14, 8, 8, 1, 8, 30, 22},
	{14, 9, 8, 31, 9, 30, 22},
	{14, 10, 10, 1, 10, 31, 22},
	{14, 11, 11, 1, 11, 30, 22},
	{14, 12, 12, 1, 12, 31, 21},
}

// =============================================================================
// ACCESSORS - No validation, callers check year and month first
// =============================================================================

// PatternNumber returns the pattern (1..14) used by year.
// The modulo is floored so years before the seed year still map into the
// sequence.
func PatternNumber(year int) int {
	n := len(patternSequence)
	idx := ((year-PatternSeedYear)%n + n) % n
	return int(patternSequence[idx])
}

// PatternsForYear returns the twelve rows of the year's pattern in month order.
func PatternsForYear(year int) [12]PatternRow {
	var rows [12]PatternRow
	start := (PatternNumber(year) - 1) * 12
	copy(rows[:], patterns[start:start+12])
	return rows
}

// PatternFor returns the row for a single month of year.
func PatternFor(year int, month time.Month) PatternRow {
	return PatternsForYear(year)[month-1]
}

// Patterns returns a copy of the full catalog.
func Patterns() [PatternMax * 12]PatternRow {
	return patterns
}
