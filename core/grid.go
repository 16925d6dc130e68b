package core

import (
	"time"

	"github.com/calebwei/githeat/schema"
)

// BuildYearGrid turns a sparse multi-year day-count series into the dense
// calendar grid for one year. It is a pure transform: same inputs, same
// grid, no state across calls. A year with no matching data still yields a
// fully populated all-zero grid, which is the valid "no activity" rendering.
func BuildYearGrid(series schema.DaySeries, year int) *schema.YearGrid {
	grid := schema.NewYearGrid(year)

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	type dayCell struct {
		weekday  int
		week     int
		count    int
		overflow bool
	}

	// Walking every day from Jan 1 to Dec 31 is the densification step:
	// days absent from the series contribute an explicit zero cell.
	days := make([]dayCell, 0, 366)
	maxWeek := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		_, week := d.ISOWeek()
		cell := dayCell{
			// time.Weekday is already Sunday=0..Saturday=6, the display
			// row order of the grid.
			weekday: int(d.Weekday()),
			week:    week,
			count:   series[d],
			// Trailing December days can fall into ISO week 1 of the next
			// year. Left as-is they would wrap back to column 1 next to
			// early January, so they are reassigned past the last column.
			overflow: d.Month() == time.December && week == 1,
		}
		if week > maxWeek {
			maxWeek = week
		}
		days = append(days, cell)
	}

	// The overflow days are at most the last three days of December and
	// always share one ISO week, so a single extra column holds them all.
	for _, c := range days {
		week := c.week
		if c.overflow {
			week = maxWeek + 1
		}
		grid.Add(c.weekday, week, c.count)
	}

	return grid
}
