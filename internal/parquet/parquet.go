// Package parquet exports day-count series to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/calebwei/githeat/schema"
)

// DayCountRow represents one calendar day of commit activity in the export.
type DayCountRow struct {
	// Day is the calendar date at midnight UTC (stored as TIMESTAMP).
	Day time.Time `parquet:"day,snappy"`

	// Year is denormalized for cheap per-year filtering downstream.
	Year int32 `parquet:"year,snappy"`

	// Commits is the number of matching commits on that day.
	Commits int32 `parquet:"commits,snappy"`
}

// DayCountRows flattens a series into rows sorted by date so the export is
// deterministic.
func DayCountRows(series schema.DaySeries) []DayCountRow {
	days := make([]time.Time, 0, len(series))
	for d := range series {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	rows := make([]DayCountRow, 0, len(days))
	for _, d := range days {
		rows = append(rows, DayCountRow{
			Day:     d,
			Year:    int32(d.Year()),
			Commits: int32(series[d]),
		})
	}
	return rows
}

// WriteDayCountsParquet writes a slice of DayCountRow structs to a Parquet
// file. The schema is derived from the struct tags.
func WriteDayCountsParquet(rows []DayCountRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[DayCountRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
