package core

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebwei/githeat/internal/contract"
	"github.com/calebwei/githeat/schema"
)

// historyStream wraps a canned git log body in a ReadCloser the way the
// real client hands out its stdout pipe.
func historyStream(body string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(body))
}

func TestCollectDayCounts(t *testing.T) {
	const history = `2023-03-15 alice@example.com
2023-03-15 alice@example.com
2023-03-16 bob@example.com
2023-03-17 carol@example.com
not-a-record
2023-99-99 alice@example.com
`
	mockClient := new(contract.MockGitClient)
	ctx := context.Background()
	mockClient.On("CommitDates", ctx, "/repo").Return(historyStream(history), nil).Once()

	series, err := CollectDayCounts(ctx, mockClient, "/repo", []string{"alice@example.com", "bob@example.com"})
	require.NoError(t, err)

	assert.Equal(t, 2, series[day(2023, time.March, 15)])
	assert.Equal(t, 1, series[day(2023, time.March, 16)])
	assert.Zero(t, series[day(2023, time.March, 17)], "unselected authors are filtered out")
	assert.Equal(t, 3, series.Total(), "malformed records are skipped, not counted")
	mockClient.AssertExpectations(t)
}

func TestCollectDayCountsEmptySelection(t *testing.T) {
	mockClient := new(contract.MockGitClient)

	series, err := CollectDayCounts(context.Background(), mockClient, "/repo", nil)
	require.NoError(t, err)

	assert.Empty(t, series)
	mockClient.AssertNotCalled(t, "CommitDates")
}

func TestCollectDayCountsCaseSensitiveMatch(t *testing.T) {
	mockClient := new(contract.MockGitClient)
	ctx := context.Background()
	mockClient.On("CommitDates", ctx, "/repo").
		Return(historyStream("2023-03-15 Alice@Example.com\n"), nil).Once()

	series, err := CollectDayCounts(ctx, mockClient, "/repo", []string{"alice@example.com"})
	require.NoError(t, err)
	assert.Empty(t, series, "matching is exact string equality")
}

func TestCollectDayCountsSourceError(t *testing.T) {
	mockClient := new(contract.MockGitClient)
	ctx := context.Background()
	mockClient.On("CommitDates", ctx, "/repo").
		Return(nil, errors.New("fatal: not a git repository")).Once()

	_, err := CollectDayCounts(ctx, mockClient, "/repo", []string{"alice@example.com"})
	assert.ErrorIs(t, err, schema.ErrSourceUnavailable)
}
