// Package render produces the displayable heatmap surfaces: an interactive
// HTML chart and an exportable raster PNG.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/calebwei/githeat/schema"
)

const (
	chartWidth    = "1200px"
	chartHeight   = "320px"
	labelFontSize = 10
)

// githubGreens is the fixed low-to-high color ramp of the heatmap.
var githubGreens = []string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"}

// NewHeatMapChart builds the calendar heatmap chart for one year grid:
// one column per week, Sun..Sat rows top to bottom, no week labels, and a
// color-intensity legend capped at the grid's color cap.
func NewHeatMapChart(grid *schema.YearGrid) *charts.HeatMap {
	weeks := grid.Weeks()

	xLabels := make([]string, len(weeks))
	for i, w := range weeks {
		xLabels[i] = strconv.Itoa(w)
	}

	// Category y-axes index from the bottom, so the labels go in reverse to
	// put Sunday on top.
	yLabels := make([]string, 7)
	for i, label := range schema.WeekdayLabels {
		yLabels[6-i] = label
	}

	var data []opts.HeatMapData
	for xi, week := range weeks {
		for weekday := 0; weekday < 7; weekday++ {
			if !grid.Has(weekday, week) {
				continue
			}
			data = append(data, opts.HeatMapData{
				Value: []any{xi, 6 - weekday, grid.Value(weekday, week)},
			})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("Commit Heatmap %d", grid.Year),
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Commit Heatmap - %d", grid.Year),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category", Data: xLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(false)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category", Data: yLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			AxisLabel: &opts.AxisLabel{FontSize: labelFontSize},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true), Min: 0, Max: float32(grid.ColorCap()),
			InRange: &opts.VisualMapInRange{Color: githubGreens},
			Orient:  "horizontal", Left: "center", Bottom: "2%",
		}),
	)
	hm.AddSeries("Commits", data)

	return hm
}

// WriteHTML renders the year grid as a standalone HTML page.
func WriteHTML(w io.Writer, grid *schema.YearGrid) error {
	return NewHeatMapChart(grid).Render(w)
}

// WriteHTMLFile renders the year grid as HTML into the given file path,
// overwriting any existing file.
func WriteHTMLFile(grid *schema.YearGrid, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML file %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()
	return WriteHTML(file, grid)
}

// WriteHTMLFileIn renders the year grid as HTML into the heatmaps export
// directory under outDir, creating the directory on demand.
func WriteHTMLFileIn(grid *schema.YearGrid, outDir, name string) error {
	dir := filepath.Join(outDir, schema.HeatmapDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}
	return WriteHTMLFile(grid, filepath.Join(dir, name))
}
