package schema

import "errors"

// Error kinds surfaced at the command boundary. Each one is recovered where
// it occurs; none leaves the session partially updated.
var (
	// ErrSourceUnavailable indicates the git history query could not run at
	// all: no repository at the path, git missing, or a non-zero exit.
	ErrSourceUnavailable = errors.New("git history unavailable")

	// ErrEmptySelection indicates no author was selected for collection.
	ErrEmptySelection = errors.New("no authors selected")

	// ErrNoMatchingCommits indicates the selected authors have zero commits
	// in the scanned history.
	ErrNoMatchingCommits = errors.New("no commits found for selection")

	// ErrNoActiveResult indicates an export was requested before any grid
	// was rendered.
	ErrNoActiveResult = errors.New("no heatmap rendered yet")
)
