package contract

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	var mockArgs []any
	mockArgs = append(mockArgs, ctx, repoPath)
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// AuthorSummary implements the GitClient interface.
func (m *MockGitClient) AuthorSummary(ctx context.Context, repoPath string) ([]byte, error) {
	ret := m.Called(ctx, repoPath)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// CommitDates implements the GitClient interface.
func (m *MockGitClient) CommitDates(ctx context.Context, repoPath string) (io.ReadCloser, error) {
	ret := m.Called(ctx, repoPath)
	stream, _ := ret.Get(0).(io.ReadCloser)
	return stream, ret.Error(1)
}
