package contract

import (
	"context"
	"fmt"
	"strings"

	"github.com/calebwei/githeat/schema"
)

// Config holds the runtime configuration for a githeat run.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath   string
	MinCommits int

	// Authors is the set of selected author emails, in the order given.
	Authors []string

	// Year selects the year to render; 0 means the earliest year with data.
	Year int

	Output     schema.OutputMode
	OutputFile string
	HTMLFile   string
	SavePNG    bool

	// OutDir is the parent directory of the heatmaps/ export folder.
	OutDir string

	Width     int // Terminal width override (0 = auto-detect)
	UseColors bool

	ArchiveBackend   schema.ArchiveBackend
	ArchiveDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	MinCommitsVal     int    `mapstructure:"min-commits"`
	AuthorsStr        string `mapstructure:"authors"`
	YearVal           int    `mapstructure:"year"`
	OutputStr         string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	HTMLFile          string `mapstructure:"html"`
	SavePNG           bool   `mapstructure:"png"`
	OutDir            string `mapstructure:"out-dir"`
	WidthVal          int    `mapstructure:"width"`
	ColorStr          string `mapstructure:"color"`
	ArchiveBackendStr string `mapstructure:"archive-backend"`
	ArchiveDBConnect  string `mapstructure:"archive-db-connect"`

	// RepoPathStr comes from the positional argument, not Viper.
	RepoPathStr string
}

// Clone returns a shallow copy of the config with its own Authors slice.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Authors = append([]string(nil), c.Authors...)
	return &clone
}

// ProcessAndValidate populates cfg from the raw input, validating every
// field and verifying the repository path against the git client.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	cfg.RepoPath = input.RepoPathStr
	if cfg.RepoPath == "" {
		cfg.RepoPath = "."
	}

	// Verify the path actually resolves to a repository up front, so every
	// command fails fast with the same source-unavailable message.
	if _, err := client.Run(ctx, cfg.RepoPath, "rev-parse", "--show-toplevel"); err != nil {
		return fmt.Errorf("%w: %v", schema.ErrSourceUnavailable, err)
	}

	if input.MinCommitsVal < 0 {
		return fmt.Errorf("min-commits must be non-negative, got %d", input.MinCommitsVal)
	}
	cfg.MinCommits = input.MinCommitsVal

	cfg.Authors = SplitCommaList(input.AuthorsStr)

	if input.YearVal < 0 {
		return fmt.Errorf("year must be non-negative, got %d", input.YearVal)
	}
	cfg.Year = input.YearVal

	output := schema.OutputMode(input.OutputStr)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q. Must be csv, json, or parquet", input.OutputStr)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	cfg.HTMLFile = input.HTMLFile
	cfg.SavePNG = input.SavePNG

	cfg.OutDir = input.OutDir
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}

	if input.WidthVal < 0 {
		return fmt.Errorf("width must be non-negative, got %d", input.WidthVal)
	}
	cfg.Width = input.WidthVal

	useColors, err := ParseBoolFlag(input.ColorStr)
	if err != nil {
		return fmt.Errorf("invalid color flag: %w", err)
	}
	cfg.UseColors = useColors

	backend := schema.ArchiveBackend(input.ArchiveBackendStr)
	if _, ok := schema.ValidArchiveBackends[backend]; !ok {
		return fmt.Errorf("invalid archive backend %q. Must be sqlite, mysql, or postgresql", input.ArchiveBackendStr)
	}
	cfg.ArchiveBackend = backend
	cfg.ArchiveDBConnect = input.ArchiveDBConnect

	return nil
}

// SplitCommaList splits a comma-separated flag value into trimmed,
// non-empty entries. Order is preserved.
func SplitCommaList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseBoolFlag interprets the yes/no style values accepted by the --color flag.
func ParseBoolFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("unrecognized value %q (use yes/no/true/false/1/0)", s)
	}
}
