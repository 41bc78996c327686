// Package engine runs the per-file analysis pipeline (parse, validate,
// discover, score, flag, extract) and fans it out over a worker pool for
// batch runs. Each file is analyzed end to end with no shared mutable state;
// a file's failure never aborts the batch.
package engine

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"ccs/internal/complexity"
	"ccs/internal/logging"
	"ccs/internal/snippets"
	"ccs/internal/syntax"
)

// Parser is the parser collaborator contract: it maps file paths to
// languages and produces syntax trees plus the node-kind classification for
// that language.
type Parser interface {
	DetectLanguage(path string) (string, bool)
	Parse(ctx context.Context, source []byte, language string) (*syntax.Node, *syntax.Classification, error)
}

// FileError labels a per-file analysis failure.
type FileError struct {
	Path string `json:"path"`
	Err  error  `json:"-"`
	Msg  string `json:"error"`
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func newFileError(path string, err error) *FileError {
	return &FileError{Path: path, Err: err, Msg: err.Error()}
}

// Engine holds the read-only configuration for one analysis run. It is safe
// to share across concurrent file analyses.
type Engine struct {
	parser     Parser
	thresholds complexity.Thresholds
	metrics    []complexity.Metric
	logger     *logging.Logger
	jobs       int
}

// New creates an engine. An empty metrics slice means all supported metrics;
// jobs <= 0 sizes the worker pool to the available CPUs.
func New(parser Parser, thresholds complexity.Thresholds, metrics []complexity.Metric, logger *logging.Logger, jobs int) *Engine {
	if len(metrics) == 0 {
		metrics = complexity.All()
	}
	if thresholds == nil {
		thresholds = complexity.Thresholds{}
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{Level: logging.ErrorLevel})
	}
	return &Engine{
		parser:     parser,
		thresholds: thresholds,
		metrics:    metrics,
		logger:     logger,
		jobs:       jobs,
	}
}

// AnalyzeFile runs the full pipeline on one file. rel is the root-relative
// path used in reports. Returns (nil, nil) for files in unsupported
// languages and for files whose units all stay under threshold.
func (e *Engine) AnalyzeFile(ctx context.Context, root, rel string) (*snippets.FileSnippets, error) {
	lang, ok := e.parser.DetectLanguage(rel)
	if !ok {
		return nil, nil
	}

	source, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	source = sanitizeUTF8(source)

	tree, class, err := e.parser.Parse(ctx, source, lang)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := syntax.Validate(tree, len(source)); err != nil {
		// A parser handing over a broken tree is a contract violation, but
		// it only abandons this file's analysis.
		return nil, fmt.Errorf("malformed tree: %w", err)
	}

	units := complexity.Discover(tree, class)
	if len(units) == 0 {
		return nil, nil
	}

	scored := make([]snippets.ScoredUnit, 0, len(units))
	for _, u := range units {
		scores := make([]complexity.Score, 0, len(e.metrics))
		for _, m := range e.metrics {
			scores = append(scores, complexity.ScoreUnit(u, m, class))
		}
		scored = append(scored, snippets.ScoredUnit{Unit: u, Scores: scores})
	}

	return snippets.Extract(rel, lang, source, scored, e.thresholds), nil
}

// sanitizeUTF8 replaces invalid byte sequences so downstream rendering never
// chokes on non-UTF-8 sources.
func sanitizeUTF8(source []byte) []byte {
	if utf8.Valid(source) {
		return source
	}
	return bytes.ToValidUTF8(source, []byte("�"))
}
