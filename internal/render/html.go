package render

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"ccs/internal/complexity"
	"ccs/internal/snippets"
)

func writeHTML(opts Options, files []*snippets.FileSnippets) error {
	dir, err := formatDir(opts, "html")
	if err != nil {
		return err
	}

	var indexBody []string
	for _, fs := range files {
		name := reportBaseName(fs.Path) + ".html"
		if err := writeReport(opts, filepath.Join(dir, name), []byte(htmlReport(fs))); err != nil {
			return err
		}
		link := name
		if opts.Compress {
			link += ".gz"
		}
		indexBody = append(indexBody,
			fmt.Sprintf("<a href=%q target=\"_blank\">%s</a><br>", link, html.EscapeString(fs.Path)))
	}

	index := htmlPage("Index", strings.Join(indexBody, "\n"))
	return writeReport(opts, filepath.Join(dir, "index.html"), []byte(index))
}

func htmlReport(fs *snippets.FileSnippets) string {
	var body strings.Builder
	for _, metric := range complexity.All() {
		group := byMetric(fs.Snippets, metric)
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&body, "<h1>%s</h1>\n", metric)
		for _, s := range group {
			fmt.Fprintf(&body, `<p>
    unit: <b>%s</b><br>
    complexity: <b>%d</b> (threshold %d)<br>
    start line: <b>%d</b><br>
    end line: <b>%d</b><br>
    <pre><code>%s</code></pre>
</p>
`, html.EscapeString(s.Name), s.Value, s.Threshold, s.StartLine, s.EndLine, html.EscapeString(s.Text))
		}
	}
	return htmlPage(fs.Path, body.String())
}

func htmlPage(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>%s</title>
</head>
<body>
%s
</body>
</html>
`, html.EscapeString(title), body)
}
