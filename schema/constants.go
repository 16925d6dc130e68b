package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the export output.
	OutputMode string

	// ArchiveBackend represents the database backend for series archiving.
	ArchiveBackend string
)

// All export output modes supported.
const (
	CSVOut     OutputMode = "csv" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All archive backends supported.
const (
	SQLiteBackend     ArchiveBackend = "sqlite" // default
	MySQLBackend      ArchiveBackend = "mysql"
	PostgreSQLBackend ArchiveBackend = "postgresql"
)

// ValidOutputModes lists all valid export output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidArchiveBackends lists all valid archive backends.
var ValidArchiveBackends = map[ArchiveBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// DayFormat is the calendar-date layout used by git's --date=short output
// and everywhere githeat prints a bare date.
const DayFormat = "2006-01-02"

// DefaultMinCommits is the default commit-count threshold for author listing.
const DefaultMinCommits = 10

// MinColorCap is the floor of the heatmap color scale. Years whose busiest
// day has fewer commits than this still render with visible contrast.
const MinColorCap = 5

// HeatmapDirName is the subdirectory (under the working directory) that
// receives exported heatmap images, created on demand.
const HeatmapDirName = "heatmaps"

// WeekdayLabels are the fixed row labels of the grid, top to bottom.
var WeekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
