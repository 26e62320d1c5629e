package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/schema"
)

// PrintBundle outputs fetched GitHub data, dispatching based on the output format configured.
func PrintBundle(bundle schema.UserBundle, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut, schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStructured(w, cfg.Output, bundle)
		}, structuredLabel(cfg.Output))
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBundleText(w, bundle)
		}, "Wrote bundle")
	}
}

// writeBundleText renders the profile and one row per repository.
func writeBundleText(w io.Writer, bundle schema.UserBundle) error {
	u := bundle.User
	fmt.Fprintf(w, "👤 %s", u.Login)
	if u.Name != "" {
		fmt.Fprintf(w, " (%s)", u.Name)
	}
	fmt.Fprintf(w, " | %d public repos | %d followers", u.Repos, u.Followers)
	if !u.CreatedAt.IsZero() {
		fmt.Fprintf(w, " | joined %s", u.CreatedAt.Format("2006-01-02"))
	}
	fmt.Fprintln(w)
	if u.Bio != "" {
		fmt.Fprintf(w, "   %s\n", u.Bio)
	}
	fmt.Fprintln(w)

	if len(bundle.Repositories) == 0 {
		_, err := fmt.Fprintln(w, "No repositories fetched.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Repository", "Language", "Stars", "Forks", "Readme", "Docs", "Manifests", "Pushed"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	data := make([][]string, 0, len(bundle.Repositories))
	for _, repo := range bundle.Repositories {
		language := repo.Language
		if language == "" {
			language = "-"
		}
		manifests := "-"
		if len(repo.DependencyFiles) > 0 {
			manifests = strings.Join(sortedKeys(repo.DependencyFiles), ", ")
		}
		pushed := "-"
		if last := repo.LastActivity(); !last.IsZero() {
			pushed = last.Format("2006-01-02")
		}
		data = append(data, []string{
			repo.Name,
			language,
			strconv.Itoa(repo.Stars),
			strconv.Itoa(repo.Forks),
			yesNo(repo.HasReadme()),
			strconv.Itoa(len(repo.MarkdownFiles)),
			manifests,
			pushed,
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to add repository rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err := fmt.Fprintf(w, "Fetched %s\n", schema.FormatTimestamp(bundle.FetchedAt))
	return err
}
