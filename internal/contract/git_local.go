package contract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s. If this is not a Git repository, verify the path or run 'git init'", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// AuthorSummary implements the GitClient interface via 'git shortlog -sne'.
// HEAD is passed explicitly so shortlog never waits on stdin when the
// process has no terminal attached.
func (c *LocalGitClient) AuthorSummary(ctx context.Context, repoPath string) ([]byte, error) {
	return c.Run(ctx, repoPath, "shortlog", "-sne", "HEAD")
}

// CommitDates implements the GitClient interface by starting
// 'git log --pretty=format:%ad %ae --date=short' and handing back its
// stdout pipe. The returned stream's Close drains remaining output, reaps
// the process, and surfaces any non-zero exit together with stderr.
func (c *LocalGitClient) CommitDates(ctx context.Context, repoPath string) (io.ReadCloser, error) {
	args := []string{"-C", repoPath, "log", "--pretty=format:%ad %ae", "--date=short"}
	cmd := exec.CommandContext(ctx, "git", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("git log pipe setup failed: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("git log failed to start: %w. Ensure Git is installed and available on your PATH", err)
	}

	return &commitStream{pipe: stdout, cmd: cmd, stderr: &stderr}, nil
}

// commitStream wraps the git log stdout pipe so that closing it always
// reaps the subprocess, on both normal completion and early error exit.
type commitStream struct {
	pipe   io.ReadCloser
	cmd    *exec.Cmd
	stderr *bytes.Buffer

	once     sync.Once
	closeErr error
}

func (s *commitStream) Read(p []byte) (int, error) {
	return s.pipe.Read(p)
}

// Close drains and closes the pipe, waits for git to exit, and returns an
// error when git reported failure (e.g. the path is not a repository).
// Safe to call more than once.
func (s *commitStream) Close() error {
	s.once.Do(func() {
		// Drain so git never blocks on a full pipe if the reader bailed early.
		_, _ = io.Copy(io.Discard, s.pipe)
		_ = s.pipe.Close()
		if err := s.cmd.Wait(); err != nil {
			msg := strings.TrimSpace(s.stderr.String())
			if msg == "" {
				msg = err.Error()
			}
			s.closeErr = fmt.Errorf("git log failed: %s", msg)
		}
	})
	return s.closeErr
}
