package contract

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipIfGitNotAvailable skips the test if git binary is not found in PATH
func skipIfGitNotAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skipf("git binary not found in PATH: %v", err)
	}
}

// TestMockGitClient_Run ensures the mock correctly records and returns
// expected values when its Run method is called.
func TestMockGitClient_Run(t *testing.T) {
	mockClient := new(MockGitClient)

	const expectedRepoPath = "/path/to/repo"
	expectedArgs := []string{"rev-parse", "--show-toplevel"}
	expectedOutput := []byte("/path/to/repo\n")
	expectedError := errors.New("mocked git error")

	// The `Run` method implementation in MockGitClient converts the inputs
	// (repoPath string, args ...string) into a single []any array for
	// `m.Called()`. We must match this structure in `.On()`.
	var calledArgs []any
	ctx := context.Background()
	calledArgs = append(calledArgs, ctx, expectedRepoPath)
	for _, arg := range expectedArgs {
		calledArgs = append(calledArgs, arg)
	}

	mockClient.
		On("Run", calledArgs...).
		Return(expectedOutput, expectedError).
		Once()

	actualOutput, actualError := mockClient.Run(ctx, expectedRepoPath, expectedArgs...)

	assert.Equal(t, expectedOutput, actualOutput, "Run should return the programmed output")
	assert.Equal(t, expectedError, actualError, "Run should return the programmed error")
	mockClient.AssertExpectations(t)
}

// TestMockGitClient_CommitDates ensures the mock hands back the programmed
// stream untouched.
func TestMockGitClient_CommitDates(t *testing.T) {
	mockClient := new(MockGitClient)
	ctx := context.Background()
	stream := io.NopCloser(strings.NewReader("2023-03-15 alice@example.com\n"))

	mockClient.On("CommitDates", ctx, "/repo").Return(stream, nil).Once()

	got, err := mockClient.CommitDates(ctx, "/repo")
	require.NoError(t, err)

	body, err := io.ReadAll(got)
	require.NoError(t, err)
	assert.Equal(t, "2023-03-15 alice@example.com\n", string(body))
	mockClient.AssertExpectations(t)
}

func TestLocalGitClientRunInvalidPath(t *testing.T) {
	skipIfGitNotAvailable(t)

	client := NewLocalGitClient()
	_, err := client.Run(context.Background(), t.TempDir(), "rev-parse", "--show-toplevel")
	assert.Error(t, err, "an empty directory is not a repository")
}

func TestLocalGitClientCommitDatesInvalidPath(t *testing.T) {
	skipIfGitNotAvailable(t)

	// Starting git log on a non-repository succeeds; the failure surfaces
	// when the stream is closed and the exit status is collected.
	client := NewLocalGitClient()
	stream, err := client.CommitDates(context.Background(), t.TempDir())
	require.NoError(t, err)

	_, _ = io.Copy(io.Discard, stream)
	err = stream.Close()
	assert.Error(t, err)
	assert.NoError(t, stream.Close(), "second close never re-reports")
}

func TestLocalGitClientAgainstOwnHistory(t *testing.T) {
	skipIfGitNotAvailable(t)

	// The module's own checkout doubles as a fixture when available.
	client := NewLocalGitClient()
	if _, err := client.Run(context.Background(), ".", "rev-parse", "--show-toplevel"); err != nil {
		t.Skipf("not running inside a git checkout: %v", err)
	}

	stream, err := client.CommitDates(context.Background(), ".")
	require.NoError(t, err)
	defer func() { _ = stream.Close() }()

	body, err := io.ReadAll(stream)
	require.NoError(t, err)
	require.NoError(t, stream.Close())

	for _, line := range strings.Split(strings.TrimSpace(string(body)), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		assert.Len(t, parts, 2, "each record is 'date email': %q", line)
		break // shape check on the first record is enough
	}
}

func TestSelectOutputFile(t *testing.T) {
	file, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, file, "empty path means stdout")

	path := t.TempDir() + "/out.txt"
	file, err = SelectOutputFile(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()
	assert.NotEqual(t, os.Stdout, file)
}
