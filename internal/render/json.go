package render

import (
	"encoding/json"
	"path/filepath"

	"ccs/internal/snippets"
)

func writeJSON(opts Options, files []*snippets.FileSnippets) error {
	dir, err := formatDir(opts, "json")
	if err != nil {
		return err
	}

	for _, fs := range files {
		data, err := json.MarshalIndent(fs, "", "  ")
		if err != nil {
			return err
		}
		path := filepath.Join(dir, reportBaseName(fs.Path)+".json")
		if err := writeReport(opts, path, data); err != nil {
			return err
		}
	}
	return nil
}
