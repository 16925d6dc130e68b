package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/calebwei/githeat/internal/contract"
	"github.com/calebwei/githeat/schema"
)

// ListAuthors queries the commit-count-by-author summary and returns the
// authors whose total commit count meets the threshold, in shortlog order
// (descending by count).
func ListAuthors(ctx context.Context, client contract.GitClient, repoPath string, minCommits int) ([]schema.AuthorRecord, error) {
	out, err := client.AuthorSummary(ctx, repoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrSourceUnavailable, err)
	}
	return ParseAuthorSummary(out, minCommits), nil
}

// ParseAuthorSummary parses shortlog-style output, one "<count>\t<identity>"
// record per line. Parsing is tolerant: lines without the two-field shape or
// with a non-integer count are skipped rather than failing the listing.
func ParseAuthorSummary(out []byte, minCommits int) []schema.AuthorRecord {
	var authors []schema.AuthorRecord
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		countStr, identity, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			continue
		}
		if count >= minCommits {
			authors = append(authors, schema.AuthorRecord{
				Commits:  count,
				Identity: strings.TrimSpace(identity),
			})
		}
	}
	return authors
}

// ResolveSelection maps interactive selection tokens to author emails.
// A token that parses as a 1-based index into the listed authors picks that
// author's email; any other token is treated as a literal email and kept
// as-is, since history matching is by exact string anyway.
func ResolveSelection(authors []schema.AuthorRecord, tokens []string) []string {
	var emails []string
	for _, tok := range tokens {
		if idx, err := strconv.Atoi(tok); err == nil {
			if idx >= 1 && idx <= len(authors) {
				if e := authors[idx-1].Email(); e != "" {
					emails = append(emails, e)
				}
			}
			continue
		}
		emails = append(emails, tok)
	}
	return emails
}
