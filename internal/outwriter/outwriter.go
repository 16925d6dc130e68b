// Package outwriter has output and writer logic for tables, terminal
// heatmaps and series exports.
package outwriter

import (
	"time"

	"github.com/calebwei/githeat/internal/contract"
	"github.com/calebwei/githeat/schema"
)

// OutWriter provides a unified interface for all output operations.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteAuthors prints the author listing as a table.
func (ow *OutWriter) WriteAuthors(authors []schema.AuthorRecord, cfg *contract.Config, duration time.Duration) error {
	return WriteAuthorsTable(authors, cfg, duration)
}

// WriteHeatmap prints a year grid as a colored terminal heatmap.
func (ow *OutWriter) WriteHeatmap(grid *schema.YearGrid, cfg *contract.Config) error {
	return WriteTerminalHeatmap(grid, cfg)
}

// WriteSeries exports the day-count series in the configured output format.
func (ow *OutWriter) WriteSeries(series schema.DaySeries, cfg *contract.Config) error {
	return WriteSeriesExport(series, cfg)
}
