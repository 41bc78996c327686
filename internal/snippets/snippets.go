// Package snippets converts flagged code units into self-sufficient report
// records that outlive the syntax tree they came from.
package snippets

import (
	"ccs/internal/complexity"
	"ccs/internal/syntax"
)

// Snippet is the extracted source text and metadata for one (unit, metric)
// pair whose score exceeded the configured threshold.
type Snippet struct {
	Name      string            `json:"name"`
	Metric    complexity.Metric `json:"metric"`
	Value     int               `json:"complexity"`
	Threshold int               `json:"threshold"`
	StartLine int               `json:"startLine"`
	EndLine   int               `json:"endLine"`
	Text      string            `json:"text"`
}

// FileSnippets groups the snippets extracted from one source file.
type FileSnippets struct {
	Path     string    `json:"sourcePath"`
	Language string    `json:"language"`
	Snippets []Snippet `json:"snippets"`
}

// ScoredUnit pairs a code unit with its computed scores.
type ScoredUnit struct {
	Unit   complexity.CodeUnit
	Scores []complexity.Score
}

// Extract produces one snippet per flagged (unit, metric) pair. A unit that
// exceeds both metrics' thresholds yields two snippets over the same span;
// deduplication across metrics is deliberately not performed. Units keep
// their source order and snippet text is copied verbatim from the unit's
// span, indentation included.
//
// Returns nil when nothing flags.
func Extract(path, language string, source []byte, scored []ScoredUnit, thresholds complexity.Thresholds) *FileSnippets {
	var out []Snippet
	for _, su := range scored {
		for _, score := range su.Scores {
			if !thresholds.Flagged(score) {
				continue
			}
			out = append(out, Snippet{
				Name:      su.Unit.Name,
				Metric:    score.Metric,
				Value:     score.Value,
				Threshold: thresholds.Get(score.Metric),
				StartLine: su.Unit.Span.StartLine,
				EndLine:   su.Unit.Span.EndLine,
				Text:      sliceText(source, su.Unit.Span),
			})
		}
	}
	if len(out) == 0 {
		return nil
	}
	return &FileSnippets{Path: path, Language: language, Snippets: out}
}

// sliceText copies the span's bytes out of source so the snippet does not
// pin the full file in memory.
func sliceText(source []byte, span syntax.Span) string {
	start, end := span.StartByte, span.EndByte
	if start < 0 {
		start = 0
	}
	if end > len(source) {
		end = len(source)
	}
	if start >= end {
		return ""
	}
	return string(source[start:end])
}
