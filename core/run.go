// Package core has the aggregation, calendar grid and session logic for githeat.
package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/calebwei/githeat/internal/contract"
	"github.com/calebwei/githeat/internal/outwriter"
	"github.com/calebwei/githeat/internal/render"
	"github.com/calebwei/githeat/schema"
)

// ExecuteAuthors runs the author listing and prints the result table.
// It serves as the main entry point for the 'authors' command.
func ExecuteAuthors(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient()
	authors, err := ListAuthors(ctx, client, cfg.RepoPath, cfg.MinCommits)
	if err != nil {
		return err
	}
	if len(authors) == 0 {
		contract.Warning(fmt.Sprintf("No authors with >=%d commits found.", cfg.MinCommits))
		return nil
	}
	ow := outwriter.NewOutWriter()
	return ow.WriteAuthors(authors, cfg, time.Since(start))
}

// collectSelection validates the author selection and runs the collection
// pass. Shared by the show, export and view entry points.
func collectSelection(ctx context.Context, client contract.GitClient, cfg *contract.Config) (schema.DaySeries, error) {
	if len(cfg.Authors) == 0 {
		return nil, schema.ErrEmptySelection
	}
	series, err := CollectDayCounts(ctx, client, cfg.RepoPath, cfg.Authors)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, schema.ErrNoMatchingCommits
	}
	return series, nil
}

// ExecuteShow renders one year's heatmap in a single shot: terminal output
// plus optional HTML and PNG files. Entry point for the 'show' command.
func ExecuteShow(ctx context.Context, cfg *contract.Config) error {
	client := contract.NewLocalGitClient()
	series, err := collectSelection(ctx, client, cfg)
	if err != nil {
		return err
	}

	year := cfg.Year
	if year == 0 {
		year = series.Years()[0]
	}
	// A requested year outside the data range still renders: the builder
	// yields a valid all-zero grid for it.
	grid := BuildYearGrid(series, year)

	ow := outwriter.NewOutWriter()
	if err := ow.WriteHeatmap(grid, cfg); err != nil {
		return err
	}

	if cfg.HTMLFile != "" {
		if err := render.WriteHTMLFile(grid, cfg.HTMLFile); err != nil {
			return err
		}
		fmt.Printf("💾 Wrote HTML heatmap to %s\n", cfg.HTMLFile)
	}
	if cfg.SavePNG {
		path, err := render.SavePNG(grid, cfg.OutDir)
		if err != nil {
			return err
		}
		fmt.Printf("💾 Saved heatmap for %d to %s\n", year, path)
	}
	return nil
}

// ExecuteExport writes the collected day-count series in the configured
// output format. Entry point for the 'export' command.
func ExecuteExport(ctx context.Context, cfg *contract.Config) error {
	client := contract.NewLocalGitClient()
	series, err := collectSelection(ctx, client, cfg)
	if err != nil {
		return err
	}
	ow := outwriter.NewOutWriter()
	return ow.WriteSeries(series, cfg)
}

// ExecuteView drives the interactive session: author listing, selection,
// then bounded year navigation with save-on-request. Reads commands from in
// and writes prompts to out so tests can script the whole loop.
func ExecuteView(ctx context.Context, cfg *contract.Config, in io.Reader, out io.Writer) error {
	client := contract.NewLocalGitClient()
	ow := outwriter.NewOutWriter()
	sess := NewSession()

	authors, err := ListAuthors(ctx, client, cfg.RepoPath, cfg.MinCommits)
	if err != nil {
		return err
	}
	if len(authors) == 0 {
		contract.Warning(fmt.Sprintf("No authors with >=%d commits found.", cfg.MinCommits))
		return nil
	}
	sess.LoadAuthors(authors)
	if err := ow.WriteAuthors(authors, cfg, 0); err != nil {
		return err
	}

	reader := bufio.NewScanner(in)

	emails := cfg.Authors
	if len(emails) == 0 {
		fmt.Fprint(out, "Select authors (numbers or emails, comma-separated): ")
		if !reader.Scan() {
			return nil
		}
		emails = ResolveSelection(authors, contract.SplitCommaList(reader.Text()))
	}
	if len(emails) == 0 {
		contract.Warning("Please select at least one author.")
		return nil
	}

	fmt.Fprintln(out, "Loading commit data for selected authors...")
	series, err := CollectDayCounts(ctx, client, cfg.RepoPath, emails)
	if err != nil {
		return err
	}
	if err := sess.SetSeries(series); err != nil {
		if errors.Is(err, schema.ErrNoMatchingCommits) {
			contract.Warning("No commits found for selected authors.")
			return nil
		}
		return err
	}

	showCurrent := func() error {
		grid, ok := sess.CurrentGrid()
		if !ok {
			return schema.ErrNoActiveResult
		}
		if err := ow.WriteHeatmap(grid, cfg); err != nil {
			return err
		}
		year, _ := sess.CurrentYear()
		fmt.Fprintf(out, "Showing year %d of %v\n", year, sess.Years())
		return nil
	}
	if err := showCurrent(); err != nil {
		return err
	}

	for {
		fmt.Fprint(out, "[n]ext  [p]rev  [s]ave png  [w]rite html  [q]uit > ")
		if !reader.Scan() {
			return nil
		}
		switch strings.ToLower(strings.TrimSpace(reader.Text())) {
		case "n", "next":
			if !sess.Next() {
				contract.Warning("Already at the latest year.")
				continue
			}
			if err := showCurrent(); err != nil {
				return err
			}
		case "p", "prev":
			if !sess.Prev() {
				contract.Warning("Already at the earliest year.")
				continue
			}
			if err := showCurrent(); err != nil {
				return err
			}
		case "s", "save":
			grid, ok := sess.CurrentGrid()
			if !ok {
				contract.Warning(schema.ErrNoActiveResult.Error())
				continue
			}
			path, err := render.SavePNG(grid, cfg.OutDir)
			if err != nil {
				contract.Warning(fmt.Sprintf("Could not save heatmap: %v", err))
				continue
			}
			fmt.Fprintf(out, "Saved heatmap to %s\n", path)
		case "w", "write":
			grid, ok := sess.CurrentGrid()
			if !ok {
				contract.Warning(schema.ErrNoActiveResult.Error())
				continue
			}
			name := fmt.Sprintf("heatmap_%d.html", grid.Year)
			if err := render.WriteHTMLFileIn(grid, cfg.OutDir, name); err != nil {
				contract.Warning(fmt.Sprintf("Could not write HTML: %v", err))
				continue
			}
			fmt.Fprintf(out, "Wrote HTML heatmap %s\n", name)
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Fprintln(out, "Unknown command.")
		}
	}
}
