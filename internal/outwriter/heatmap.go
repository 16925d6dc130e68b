package outwriter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/calebwei/githeat/internal/contract"
	"github.com/calebwei/githeat/schema"
)

// cellWidth is the printed width of one week column ("##" style blocks).
const cellWidth = 2

// labelWidth covers the "Sun " style row prefix.
const labelWidth = 4

// heatGlyphs are the five density glyphs, lowest to highest.
var heatGlyphs = []string{"··", "░░", "▒▒", "▓▓", "██"}

// heatColors mirror the five-step green ramp of the HTML renderer as close
// as the 16-color terminal palette allows.
var heatColors = []*color.Color{
	color.New(color.FgHiBlack),
	color.New(color.FgGreen),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgHiGreen),
	color.New(color.FgHiGreen, color.Bold),
}

// WriteTerminalHeatmap prints the year grid with Sun..Sat rows top to bottom
// and one column per week. Wide years are wrapped into bands that fit the
// terminal width.
func WriteTerminalHeatmap(grid *schema.YearGrid, cfg *contract.Config) error {
	return writeTerminalHeatmap(grid, cfg, os.Stdout)
}

func writeTerminalHeatmap(grid *schema.YearGrid, cfg *contract.Config, w io.Writer) error {
	weeks := grid.Weeks()
	scaleCap := grid.ColorCap()

	perBand := bandWidth(cfg)
	if perBand < 1 {
		perBand = 1
	}

	fmt.Fprintf(w, "Commit heatmap for %d (%d commits)\n", grid.Year, grid.Total())
	for offset := 0; offset < len(weeks); offset += perBand {
		bandEnd := min(offset+perBand, len(weeks))
		band := weeks[offset:bandEnd]
		for weekday := 0; weekday < 7; weekday++ {
			var row strings.Builder
			fmt.Fprintf(&row, "%-*s", labelWidth, schema.WeekdayLabels[weekday])
			for _, week := range band {
				if !grid.Has(weekday, week) {
					// Cells no real date of the year maps to (the ragged
					// start and end of the first and last columns).
					row.WriteString(strings.Repeat(" ", cellWidth))
					continue
				}
				row.WriteString(heatCell(grid.Value(weekday, week), scaleCap, cfg.UseColors))
			}
			fmt.Fprintln(w, row.String())
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%-*s", labelWidth, "")
	fmt.Fprint(w, "Less ")
	for level := 0; level < len(heatGlyphs); level++ {
		fmt.Fprint(w, glyph(level, cfg.UseColors), " ")
	}
	fmt.Fprintf(w, "More (scale capped at %d commits/day)\n", scaleCap)
	return nil
}

// heatCell formats one cell at the density level for its count.
func heatCell(count, scaleCap int, useColors bool) string {
	return glyph(heatLevel(count, scaleCap), useColors)
}

func glyph(level int, useColors bool) string {
	if !useColors {
		return heatGlyphs[level]
	}
	return heatColors[level].Sprint(heatGlyphs[level])
}

// heatLevel buckets a count into 0..4 against the color cap. Zero commits is
// always level 0; any activity lands at level 1 or above.
func heatLevel(count, scaleCap int) int {
	if count <= 0 {
		return 0
	}
	if scaleCap < 1 {
		scaleCap = 1
	}
	level := 1 + (count-1)*4/scaleCap
	if level > 4 {
		level = 4
	}
	return level
}

// bandWidth returns how many week columns fit on one terminal line.
func bandWidth(cfg *contract.Config) int {
	return (TerminalWidth(cfg) - labelWidth) / cellWidth
}
