package contract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebwei/githeat/schema"
)

// validInput returns a raw input equivalent to the flag defaults.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		MinCommitsVal:     schema.DefaultMinCommits,
		AuthorsStr:        "alice@example.com, bob@example.com",
		YearVal:           2023,
		OutputStr:         "csv",
		OutDir:            ".",
		ColorStr:          "yes",
		ArchiveBackendStr: "sqlite",
		RepoPathStr:       "/repo",
	}
}

// repoCheckMock programs the repository verification call.
func repoCheckMock(ctx context.Context, repoPath string, err error) *MockGitClient {
	mockClient := new(MockGitClient)
	mockClient.On("Run", ctx, repoPath, "rev-parse", "--show-toplevel").
		Return([]byte(repoPath+"\n"), err)
	return mockClient
}

func TestProcessAndValidate(t *testing.T) {
	ctx := context.Background()
	mockClient := repoCheckMock(ctx, "/repo", nil)

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(ctx, cfg, mockClient, validInput()))

	assert.Equal(t, "/repo", cfg.RepoPath)
	assert.Equal(t, schema.DefaultMinCommits, cfg.MinCommits)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, cfg.Authors)
	assert.Equal(t, 2023, cfg.Year)
	assert.Equal(t, schema.CSVOut, cfg.Output)
	assert.True(t, cfg.UseColors)
	assert.Equal(t, schema.SQLiteBackend, cfg.ArchiveBackend)
	mockClient.AssertExpectations(t)
}

func TestProcessAndValidateDefaultsRepoPath(t *testing.T) {
	ctx := context.Background()
	mockClient := repoCheckMock(ctx, ".", nil)

	input := validInput()
	input.RepoPathStr = ""
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(ctx, cfg, mockClient, input))
	assert.Equal(t, ".", cfg.RepoPath)
}

func TestProcessAndValidateRepoUnavailable(t *testing.T) {
	ctx := context.Background()
	mockClient := repoCheckMock(ctx, "/repo", errors.New("fatal: not a git repository"))

	err := ProcessAndValidate(ctx, &Config{}, mockClient, validInput())
	assert.ErrorIs(t, err, schema.ErrSourceUnavailable)
}

func TestProcessAndValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{name: "negative min-commits", mutate: func(in *ConfigRawInput) { in.MinCommitsVal = -1 }},
		{name: "negative year", mutate: func(in *ConfigRawInput) { in.YearVal = -2023 }},
		{name: "bad output mode", mutate: func(in *ConfigRawInput) { in.OutputStr = "xml" }},
		{name: "negative width", mutate: func(in *ConfigRawInput) { in.WidthVal = -80 }},
		{name: "bad color flag", mutate: func(in *ConfigRawInput) { in.ColorStr = "maybe" }},
		{name: "bad archive backend", mutate: func(in *ConfigRawInput) { in.ArchiveBackendStr = "oracle" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mockClient := repoCheckMock(ctx, "/repo", nil)
			input := validInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(ctx, &Config{}, mockClient, input))
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{RepoPath: "/repo", Authors: []string{"alice@example.com"}}
	clone := cfg.Clone()

	clone.Authors[0] = "mutated@example.com"
	assert.Equal(t, "alice@example.com", cfg.Authors[0], "clone owns its Authors slice")
	assert.Equal(t, cfg.RepoPath, clone.RepoPath)
}

func TestSplitCommaList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "plain", input: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "spaces and empties", input: " a , ,b,, ", want: []string{"a", "b"}},
		{name: "empty string", input: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitCommaList(tt.input))
		})
	}
}

func TestParseBoolFlag(t *testing.T) {
	for _, v := range []string{"yes", "true", "1", "", "YES", " True "} {
		got, err := ParseBoolFlag(v)
		require.NoError(t, err, v)
		assert.True(t, got, v)
	}
	for _, v := range []string{"no", "false", "0", "No"} {
		got, err := ParseBoolFlag(v)
		require.NoError(t, err, v)
		assert.False(t, got, v)
	}
	_, err := ParseBoolFlag("maybe")
	assert.Error(t, err)
}
