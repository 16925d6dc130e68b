package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/calebwei/githeat/internal/contract"
	"github.com/calebwei/githeat/schema"
)

// WriteAuthorsTable prints the qualifying authors as a human-readable table,
// in shortlog order (descending commit count).
func WriteAuthorsTable(authors []schema.AuthorRecord, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeAuthorsTable(authors, cfg, duration, w)
	}, "Wrote table")
}

func writeAuthorsTable(authors []schema.AuthorRecord, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"#", "Commits", "Author", "Email"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for i, a := range authors {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(a.Commits),
			displayName(a),
			a.Email(),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	totalCommits := 0
	for _, a := range authors {
		totalCommits += a.Commits
	}
	fmt.Fprintf(writer, "Loaded %d authors with >=%d commits (%d commits total)",
		len(authors), cfg.MinCommits, totalCommits)
	if duration > 0 {
		fmt.Fprintf(writer, " in %s", duration.Round(time.Millisecond))
	}
	fmt.Fprintln(writer)
	return nil
}

// displayName strips the angle-bracketed email from the identity string for
// the name column; the email gets its own column.
func displayName(a schema.AuthorRecord) string {
	name, _, found := strings.Cut(a.Identity, " <")
	if !found {
		return a.Identity
	}
	return strings.TrimSpace(name)
}
