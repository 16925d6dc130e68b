package core

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/calebwei/githeat/internal/contract"
	"github.com/calebwei/githeat/schema"
)

// CollectDayCounts streams the full commit history once and buckets every
// commit by one of the selected author emails into per-day counts. Matching
// is exact, case-sensitive string equality. The whole stream is always
// consumed; commits are not assumed sorted by author, so there is no early
// termination. An empty email set yields an empty series without touching
// git at all.
func CollectDayCounts(ctx context.Context, client contract.GitClient, repoPath string, emails []string) (schema.DaySeries, error) {
	series := make(schema.DaySeries)
	if len(emails) == 0 {
		return series, nil
	}

	wanted := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		wanted[e] = struct{}{}
	}

	stream, err := client.CommitDates(ctx, repoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrSourceUnavailable, err)
	}
	// Guarantees the subprocess is reaped even when scanning fails below.
	defer func() { _ = stream.Close() }()

	scanner := bufio.NewScanner(stream)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// Expected shape: "YYYY-MM-DD email". Anything else is a malformed
		// record and gets skipped without aborting the batch.
		dateStr, email, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		if _, match := wanted[email]; !match {
			continue
		}
		day, parseErr := time.Parse(schema.DayFormat, dateStr)
		if parseErr != nil {
			continue
		}
		series[schema.NormalizeDay(day)]++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading git log stream: %w", err)
	}

	// Close explicitly to pick up git's exit status; a failure here means
	// the history query itself was bad, not the parsing.
	if err := stream.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrSourceUnavailable, err)
	}

	return series, nil
}
