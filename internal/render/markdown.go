package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"ccs/internal/complexity"
	"ccs/internal/snippets"
)

func writeMarkdown(opts Options, files []*snippets.FileSnippets) error {
	dir, err := formatDir(opts, "markdown")
	if err != nil {
		return err
	}

	for _, fs := range files {
		path := filepath.Join(dir, reportBaseName(fs.Path)+".md")
		if err := writeReport(opts, path, []byte(markdownReport(fs))); err != nil {
			return err
		}
	}
	return nil
}

func markdownReport(fs *snippets.FileSnippets) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", fs.Path)

	for _, metric := range complexity.All() {
		group := byMetric(fs.Snippets, metric)
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n", metric)
		for _, s := range group {
			fmt.Fprintf(&b, "\n### %s\n\n", s.Name)
			fmt.Fprintf(&b, "*complexity:* **%d** (threshold %d)\n\n", s.Value, s.Threshold)
			fmt.Fprintf(&b, "*start line:* **%d**\n\n", s.StartLine)
			fmt.Fprintf(&b, "*end line:* **%d**\n\n", s.EndLine)
			fmt.Fprintf(&b, "```%s\n%s\n```\n", fs.Language, s.Text)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// byMetric filters snippets for one metric, preserving source order.
func byMetric(all []snippets.Snippet, metric complexity.Metric) []snippets.Snippet {
	var out []snippets.Snippet
	for _, s := range all {
		if s.Metric == metric {
			out = append(out, s)
		}
	}
	return out
}
