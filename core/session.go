package core

import (
	"errors"
	"fmt"

	"github.com/calebwei/githeat/schema"
)

// ErrAuthorsNotLoaded indicates a selection was submitted before any author
// listing was loaded into the session.
var ErrAuthorsNotLoaded = errors.New("no authors loaded")

// SessionState enumerates the lifecycle of a viewing session.
type SessionState int

// Session lifecycle states. Transitions only move forward through
// LoadAuthors and SetSeries; failed transitions leave the prior state intact.
const (
	StateEmpty SessionState = iota
	StateAuthorsLoaded
	StateDataLoaded
)

// String implements fmt.Stringer for diagnostics.
func (s SessionState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateAuthorsLoaded:
		return "authors-loaded"
	case StateDataLoaded:
		return "data-loaded"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Session is the single owner of the day-count series for the active author
// selection, plus the year navigation cursor. It is independent of any UI
// layer; the interactive view command drives it, tests drive it directly.
// All mutation happens on one goroutine, so no locking is needed.
type Session struct {
	state   SessionState
	authors []schema.AuthorRecord
	series  schema.DaySeries
	years   []int
	yearIdx int
}

// NewSession returns a session in the Empty state.
func NewSession() *Session {
	return &Session{state: StateEmpty}
}

// State returns the current lifecycle state.
func (s *Session) State() SessionState {
	return s.state
}

// LoadAuthors replaces any prior author listing and moves the session to
// AuthorsLoaded. Any previously loaded series is discarded.
func (s *Session) LoadAuthors(authors []schema.AuthorRecord) {
	s.authors = authors
	s.series = nil
	s.years = nil
	s.yearIdx = 0
	s.state = StateAuthorsLoaded
}

// Authors returns the loaded author listing.
func (s *Session) Authors() []schema.AuthorRecord {
	return s.authors
}

// SetSeries submits the collected day-count series for the active selection.
// A non-empty series moves the session to DataLoaded with the navigation
// cursor on the earliest year. An empty series is a terminal no-op for this
// selection: ErrNoMatchingCommits is returned and the prior state and data
// are fully retained.
func (s *Session) SetSeries(series schema.DaySeries) error {
	if s.state == StateEmpty {
		return ErrAuthorsNotLoaded
	}
	if len(series) == 0 {
		return schema.ErrNoMatchingCommits
	}
	s.series = series
	s.years = series.Years()
	s.yearIdx = 0
	s.state = StateDataLoaded
	return nil
}

// Series returns the active day-count series.
func (s *Session) Series() schema.DaySeries {
	return s.series
}

// Years returns the sorted distinct years present in the active series.
func (s *Session) Years() []int {
	return s.years
}

// CurrentYear returns the year under the navigation cursor. The second
// return is false unless the session holds data.
func (s *Session) CurrentYear() (int, bool) {
	if s.state != StateDataLoaded {
		return 0, false
	}
	return s.years[s.yearIdx], true
}

// HasPrev reports whether Prev would move the cursor.
func (s *Session) HasPrev() bool {
	return s.state == StateDataLoaded && s.yearIdx > 0
}

// HasNext reports whether Next would move the cursor.
func (s *Session) HasNext() bool {
	return s.state == StateDataLoaded && s.yearIdx < len(s.years)-1
}

// Prev moves the cursor one year back. No wraparound: at the earliest year
// it reports false and stays put.
func (s *Session) Prev() bool {
	if !s.HasPrev() {
		return false
	}
	s.yearIdx--
	return true
}

// Next moves the cursor one year forward. No wraparound: at the latest year
// it reports false and stays put.
func (s *Session) Next() bool {
	if !s.HasNext() {
		return false
	}
	s.yearIdx++
	return true
}

// CurrentGrid builds the grid for the year under the cursor. The second
// return is false unless the session holds data.
func (s *Session) CurrentGrid() (*schema.YearGrid, bool) {
	year, ok := s.CurrentYear()
	if !ok {
		return nil, false
	}
	return BuildYearGrid(s.series, year), true
}
