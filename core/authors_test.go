package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebwei/githeat/internal/contract"
	"github.com/calebwei/githeat/schema"
)

const shortlogSample = "   120\tAlice Doe <alice@example.com>\n" +
	"    15\tBob <bob@example.com>\n" +
	"     3\tDrive-by <driveby@example.com>\n" +
	"garbage line without a tab\n" +
	"   abc\tNot A Number <nan@example.com>\n"

func TestParseAuthorSummary(t *testing.T) {
	tests := []struct {
		name       string
		minCommits int
		wantCounts []int
	}{
		{name: "threshold above everyone", minCommits: 500, wantCounts: nil},
		{name: "threshold filters tail", minCommits: 15, wantCounts: []int{120, 15}},
		{name: "threshold of one keeps all", minCommits: 1, wantCounts: []int{120, 15, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authors := ParseAuthorSummary([]byte(shortlogSample), tt.minCommits)
			var counts []int
			for _, a := range authors {
				counts = append(counts, a.Commits)
			}
			assert.Equal(t, tt.wantCounts, counts)
		})
	}
}

func TestParseAuthorSummaryIdentity(t *testing.T) {
	authors := ParseAuthorSummary([]byte(shortlogSample), 100)
	require.Len(t, authors, 1)
	assert.Equal(t, "Alice Doe <alice@example.com>", authors[0].Identity)
	assert.Equal(t, "alice@example.com", authors[0].Email())
}

func TestListAuthors(t *testing.T) {
	mockClient := new(contract.MockGitClient)
	ctx := context.Background()
	mockClient.On("AuthorSummary", ctx, "/repo").Return([]byte(shortlogSample), nil).Once()

	authors, err := ListAuthors(ctx, mockClient, "/repo", 10)
	require.NoError(t, err)
	assert.Len(t, authors, 2)
	mockClient.AssertExpectations(t)
}

func TestListAuthorsSourceError(t *testing.T) {
	mockClient := new(contract.MockGitClient)
	ctx := context.Background()
	mockClient.On("AuthorSummary", ctx, "/repo").
		Return(nil, errors.New("fatal: not a git repository")).Once()

	_, err := ListAuthors(ctx, mockClient, "/repo", 10)
	assert.ErrorIs(t, err, schema.ErrSourceUnavailable)
}

func TestResolveSelection(t *testing.T) {
	authors := []schema.AuthorRecord{
		{Commits: 120, Identity: "Alice Doe <alice@example.com>"},
		{Commits: 15, Identity: "Bob <bob@example.com>"},
	}

	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{name: "indexes", tokens: []string{"1", "2"}, want: []string{"alice@example.com", "bob@example.com"}},
		{name: "literal emails pass through", tokens: []string{"carol@example.com"}, want: []string{"carol@example.com"}},
		{name: "mixed", tokens: []string{"2", "carol@example.com"}, want: []string{"bob@example.com", "carol@example.com"}},
		{name: "out of range index dropped", tokens: []string{"0", "3"}, want: nil},
		{name: "empty", tokens: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSelection(authors, tt.tokens))
		})
	}
}
