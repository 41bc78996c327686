package engine

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"ccs/internal/snippets"
)

// Result collects one batch run. Files are sorted by path so identical
// inputs produce identical output regardless of worker interleaving.
type Result struct {
	RunID         string                   `json:"runId"`
	Root          string                   `json:"root"`
	Files         []*snippets.FileSnippets `json:"files"`
	Failures      []*FileError             `json:"failures,omitempty"`
	FilesAnalyzed int                      `json:"filesAnalyzed"`
	Duration      time.Duration            `json:"-"`
}

// Clean reports whether the run produced no snippet at all.
func (r *Result) Clean() bool {
	return len(r.Files) == 0
}

// SnippetCount returns the total number of extracted snippets.
func (r *Result) SnippetCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Snippets)
	}
	return n
}

// Run analyzes the given root-relative files on a worker pool. Workers keep
// private result slices that are merged and sorted afterwards; there is no
// shared collector. A canceled context stops the batch and returns the
// context error alongside whatever finished.
func (e *Engine) Run(ctx context.Context, root string, files []string) (*Result, error) {
	start := time.Now()
	result := &Result{
		RunID: uuid.NewString(),
		Root:  root,
	}

	workers := e.jobs
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		workers = 1
	}

	e.logger.Debug("Starting analysis run", map[string]interface{}{
		"runId":   result.RunID,
		"root":    root,
		"files":   len(files),
		"workers": workers,
	})

	queue := make(chan string)
	type partial struct {
		files    []*snippets.FileSnippets
		failures []*FileError
		analyzed int
	}
	parts := make([]partial, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(p *partial) {
			defer wg.Done()
			for rel := range queue {
				fs, err := e.AnalyzeFile(ctx, root, rel)
				if err != nil {
					p.failures = append(p.failures, newFileError(rel, err))
					continue
				}
				p.analyzed++
				if fs != nil {
					p.files = append(p.files, fs)
				}
			}
		}(&parts[i])
	}

	var ctxErr error
feed:
	for _, rel := range files {
		select {
		case queue <- rel:
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		}
	}
	close(queue)
	wg.Wait()

	for i := range parts {
		result.Files = append(result.Files, parts[i].files...)
		result.Failures = append(result.Failures, parts[i].failures...)
		result.FilesAnalyzed += parts[i].analyzed
	}
	sort.Slice(result.Files, func(i, j int) bool { return result.Files[i].Path < result.Files[j].Path })
	sort.Slice(result.Failures, func(i, j int) bool { return result.Failures[i].Path < result.Failures[j].Path })
	result.Duration = time.Since(start)

	e.logger.Debug("Analysis run finished", map[string]interface{}{
		"runId":      result.RunID,
		"analyzed":   result.FilesAnalyzed,
		"flagged":    len(result.Files),
		"snippets":   result.SnippetCount(),
		"failures":   len(result.Failures),
		"durationMs": result.Duration.Milliseconds(),
	})

	return result, ctxErr
}
