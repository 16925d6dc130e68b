package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/calebwei/githeat/internal/contract"
	"github.com/calebwei/githeat/internal/parquet"
	"github.com/calebwei/githeat/schema"
)

// WriteSeriesExport dispatches the day-count series export based on the
// configured output format.
func WriteSeriesExport(series schema.DaySeries, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSeriesJSON(w, series)
		}, "Wrote JSON")
	case schema.ParquetOut:
		outputFile := cfg.OutputFile
		if outputFile == "" {
			outputFile = "commit_days.parquet"
		}
		rows := parquet.DayCountRows(series)
		if err := parquet.WriteDayCountsParquet(rows, outputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", outputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSeriesCSV(w, series)
		}, "Wrote CSV")
	}
}

// dayCountJSON is the JSON export shape for one day of activity.
type dayCountJSON struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

func writeSeriesJSON(w io.Writer, series schema.DaySeries) error {
	rows := make([]dayCountJSON, 0, len(series))
	for _, day := range sortedDays(series) {
		rows = append(rows, dayCountJSON{
			Date:  day.Format(schema.DayFormat),
			Count: series[day],
		})
	}
	return writeJSON(w, rows)
}

func writeSeriesCSV(w io.Writer, series schema.DaySeries) error {
	return writeCSVWithHeader(w, []string{"date", "count"}, func(csvWriter *csv.Writer) error {
		for _, day := range sortedDays(series) {
			row := []string{day.Format(schema.DayFormat), strconv.Itoa(series[day])}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// sortedDays returns the series keys in ascending date order so every
// export format is deterministic.
func sortedDays(series schema.DaySeries) []time.Time {
	days := make([]time.Time, 0, len(series))
	for d := range series {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// writeWithFile handles the common pattern of opening a file, writing to it,
// and cleaning up. It accepts a writer function that takes an io.Writer.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	return writeRows(csvWriter)
}
