// Package contract defines the interfaces and configuration shared by all
// parts of githeat.
package contract

import (
	"context"
	"io"
)

// GitClient defines the history queries githeat needs from a repository.
// This allows the aggregation logic to be tested without a real git executable.
type GitClient interface {
	// Run executes a git command and returns its stdout. Its use should be
	// minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// AuthorSummary returns the raw shortlog-style output: one line per
	// author, "<count>\t<Name> <email>", sorted descending by count.
	AuthorSummary(ctx context.Context, repoPath string) ([]byte, error)

	// CommitDates opens a streaming read over the full commit history, one
	// line per commit in "YYYY-MM-DD email" form. The caller must Close the
	// stream; Close reaps the underlying process and reports its exit error.
	CommitDates(ctx context.Context, repoPath string) (io.ReadCloser, error)
}
