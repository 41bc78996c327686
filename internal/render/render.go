// Package render serializes extracted snippets into report files. Each
// analyzed source file yields one report file per requested format under
// <dir>/<format>/; the engine places no constraints here beyond the snippet
// records being self-sufficient.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ccs/internal/logging"
	"ccs/internal/snippets"

	"github.com/klauspost/compress/gzip"
)

// Format selects a report output format.
type Format string

const (
	// Markdown renders one .md report per source file.
	Markdown Format = "markdown"
	// HTML renders one .html report per source file plus an index page.
	HTML Format = "html"
	// JSON renders one .json report per source file.
	JSON Format = "json"
	// All renders every supported format.
	All Format = "all"
)

// DefaultFormat is used when no format is configured.
const DefaultFormat = Markdown

// ParseFormat resolves a format name from configuration or flags.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case Markdown:
		return Markdown, nil
	case HTML:
		return HTML, nil
	case JSON:
		return JSON, nil
	case All:
		return All, nil
	case "":
		return DefaultFormat, nil
	default:
		return "", fmt.Errorf("unknown output format %q (supported: markdown, html, json, all)", s)
	}
}

// Options controls where and how reports are written.
type Options struct {
	Dir      string
	Format   Format
	Compress bool
	Logger   *logging.Logger
}

// Write renders all file snippets in the requested format(s).
func Write(opts Options, files []*snippets.FileSnippets) error {
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger(logging.Config{Level: logging.ErrorLevel})
	}
	switch opts.Format {
	case All:
		if err := writeMarkdown(opts, files); err != nil {
			return err
		}
		if err := writeHTML(opts, files); err != nil {
			return err
		}
		return writeJSON(opts, files)
	case HTML:
		return writeHTML(opts, files)
	case JSON:
		return writeJSON(opts, files)
	default:
		return writeMarkdown(opts, files)
	}
}

// reportBaseName flattens a source path into a report filename by joining
// its components with underscores, dropping separators and relative hops.
func reportBaseName(sourcePath string) string {
	var parts []string
	for _, c := range strings.Split(filepath.ToSlash(sourcePath), "/") {
		switch c {
		case "", ".", "..", ":", "\\":
			continue
		}
		parts = append(parts, c)
	}
	return strings.Join(parts, "_")
}

// formatDir creates and returns <dir>/<sub>.
func formatDir(opts Options, sub string) (string, error) {
	dir := filepath.Join(opts.Dir, sub)
	opts.Logger.Debug("Creating report directory", map[string]interface{}{"dir": dir})
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// writeReport writes one report file, gzip-compressing it when requested.
func writeReport(opts Options, path string, data []byte) error {
	if !opts.Compress {
		opts.Logger.Debug("Writing report", map[string]interface{}{"path": path})
		return os.WriteFile(path, data, 0644)
	}

	path += ".gz"
	opts.Logger.Debug("Writing compressed report", map[string]interface{}{"path": path})
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write(data); err != nil {
		_ = gz.Close()
		_ = f.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
