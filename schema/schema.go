// Package schema has configs, models and shared constants for all parts of githeat.
package schema

import (
	"regexp"
	"sort"
	"time"
)

// emailPattern extracts the angle-bracketed email from a shortlog identity string.
var emailPattern = regexp.MustCompile(`<([^>]+)>`)

// AuthorRecord represents one author from the commit-count-by-author summary.
// Identity is the raw shortlog form "Name <email>"; ordering of records follows
// the underlying shortlog ranking (descending commit count).
type AuthorRecord struct {
	Commits  int    `json:"commits"`
	Identity string `json:"identity"`
}

// Email returns the angle-bracketed email portion of the identity string,
// or "" when the identity carries no email.
func (a AuthorRecord) Email() string {
	m := emailPattern.FindStringSubmatch(a.Identity)
	if m == nil {
		return ""
	}
	return m[1]
}

// DaySeries maps calendar dates to commit counts. Keys are normalized to
// midnight UTC; dates with zero commits are absent, not zero-valued.
type DaySeries map[time.Time]int

// Years returns the sorted distinct calendar years present in the series.
func (s DaySeries) Years() []int {
	seen := make(map[int]bool)
	for d := range s {
		seen[d.Year()] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Total returns the sum of all per-day counts in the series.
func (s DaySeries) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// NormalizeDay truncates a timestamp to its calendar day at midnight UTC.
// All DaySeries keys must pass through this to keep lookups exact.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// GridKey addresses one cell of a YearGrid. Weekday is 0=Sunday..6=Saturday,
// Week is the (boundary-corrected) ISO week column.
type GridKey struct {
	Weekday int
	Week    int
}

// YearGrid is the dense 7xW calendar grid for a single year. Every
// (weekday, week) pair that occurs for a real date of the year has an
// explicit cell, zero when no commits landed on it. Derived data, rebuilt
// from a DaySeries on demand and never persisted.
type YearGrid struct {
	Year  int
	cells map[GridKey]int
}

// NewYearGrid creates an empty grid for the given year.
func NewYearGrid(year int) *YearGrid {
	return &YearGrid{Year: year, cells: make(map[GridKey]int)}
}

// Add accumulates a count into the cell for (weekday, week), creating the
// cell if needed. Used by the grid builder during densification.
func (g *YearGrid) Add(weekday, week, count int) {
	g.cells[GridKey{Weekday: weekday, Week: week}] += count
}

// Value returns the count at (weekday, week). Cells never generated for the
// year (combinations no real date maps to) read as zero.
func (g *YearGrid) Value(weekday, week int) int {
	return g.cells[GridKey{Weekday: weekday, Week: week}]
}

// Has reports whether (weekday, week) is an explicit cell of the grid.
func (g *YearGrid) Has(weekday, week int) bool {
	_, ok := g.cells[GridKey{Weekday: weekday, Week: week}]
	return ok
}

// Weeks returns the sorted week column indexes present in the grid.
func (g *YearGrid) Weeks() []int {
	seen := make(map[int]bool)
	for k := range g.cells {
		seen[k.Week] = true
	}
	weeks := make([]int, 0, len(seen))
	for w := range seen {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)
	return weeks
}

// Weekdays returns the sorted weekday row indexes present in the grid.
// A full-year grid always spans the complete 0..6 range.
func (g *YearGrid) Weekdays() []int {
	seen := make(map[int]bool)
	for k := range g.cells {
		seen[k.Weekday] = true
	}
	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Total returns the sum of all cell counts.
func (g *YearGrid) Total() int {
	total := 0
	for _, n := range g.cells {
		total += n
	}
	return total
}

// Max returns the largest single cell count in the grid.
func (g *YearGrid) Max() int {
	maxVal := 0
	for _, n := range g.cells {
		if n > maxVal {
			maxVal = n
		}
	}
	return maxVal
}

// Len returns the number of explicit cells in the grid.
func (g *YearGrid) Len() int {
	return len(g.cells)
}

// ColorCap returns the upper bound of the color scale for this grid.
// Clamping to at least MinColorCap keeps low-activity years visually
// distinct instead of saturating on a max of 1 or 2.
func (g *YearGrid) ColorCap() int {
	return max(MinColorCap, g.Max())
}
