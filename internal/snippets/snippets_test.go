package snippets

import (
	"testing"

	"ccs/internal/complexity"
	"ccs/internal/syntax"
)

func scoredUnit(name string, start, end int, scores ...complexity.Score) ScoredUnit {
	return ScoredUnit{
		Unit: complexity.CodeUnit{
			Name: name,
			Span: syntax.Span{StartByte: start, EndByte: end, StartLine: 1, EndLine: 3},
		},
		Scores: scores,
	}
}

func TestExtractFlaggedUnit(t *testing.T) {
	source := []byte("func big() {\n\t// dense\n}\n")
	th := complexity.NewThresholds(map[complexity.Metric]int{complexity.Cyclomatic: 10})
	scored := []ScoredUnit{
		scoredUnit("big", 0, len(source)-1, complexity.Score{Metric: complexity.Cyclomatic, Value: 11}),
	}

	fs := Extract("pkg/big.go", "go", source, scored, th)
	if fs == nil {
		t.Fatal("expected snippets")
	}
	if fs.Path != "pkg/big.go" || fs.Language != "go" {
		t.Errorf("file identity = (%s, %s)", fs.Path, fs.Language)
	}
	if len(fs.Snippets) != 1 {
		t.Fatalf("got %d snippets, want 1", len(fs.Snippets))
	}
	s := fs.Snippets[0]
	if s.Name != "big" || s.Value != 11 || s.Threshold != 10 {
		t.Errorf("snippet = %+v", s)
	}
	if s.Text != string(source[:len(source)-1]) {
		t.Errorf("snippet text = %q", s.Text)
	}
}

func TestExtractBothMetricsNoDedup(t *testing.T) {
	source := []byte("func hairy() {}\n")
	th := complexity.NewThresholds(map[complexity.Metric]int{
		complexity.Cyclomatic: 5,
		complexity.Cognitive:  5,
	})
	scored := []ScoredUnit{
		scoredUnit("hairy", 0, 15,
			complexity.Score{Metric: complexity.Cyclomatic, Value: 9},
			complexity.Score{Metric: complexity.Cognitive, Value: 12},
		),
	}

	fs := Extract("hairy.go", "go", source, scored, th)
	if fs == nil {
		t.Fatal("expected snippets")
	}
	// One snippet per flagged (unit, metric) pair, same span twice.
	if len(fs.Snippets) != 2 {
		t.Fatalf("got %d snippets, want 2", len(fs.Snippets))
	}
	if fs.Snippets[0].Metric != complexity.Cyclomatic || fs.Snippets[1].Metric != complexity.Cognitive {
		t.Errorf("metric order = [%s, %s]", fs.Snippets[0].Metric, fs.Snippets[1].Metric)
	}
	if fs.Snippets[0].Text != fs.Snippets[1].Text {
		t.Error("both snippets must carry the same span text")
	}
}

func TestExtractNothingFlagged(t *testing.T) {
	th := complexity.NewThresholds(nil)
	scored := []ScoredUnit{
		scoredUnit("tidy", 0, 5, complexity.Score{Metric: complexity.Cyclomatic, Value: 3}),
	}
	if fs := Extract("tidy.go", "go", []byte("12345"), scored, th); fs != nil {
		t.Errorf("expected nil, got %d snippets", len(fs.Snippets))
	}
}

func TestExtractKeepsUnitOrder(t *testing.T) {
	source := []byte("0123456789")
	th := complexity.NewThresholds(map[complexity.Metric]int{complexity.Cognitive: 0})
	scored := []ScoredUnit{
		scoredUnit("first", 0, 4, complexity.Score{Metric: complexity.Cognitive, Value: 2}),
		scoredUnit("second", 5, 9, complexity.Score{Metric: complexity.Cognitive, Value: 1}),
	}
	fs := Extract("f.go", "go", source, scored, th)
	if fs == nil || len(fs.Snippets) != 2 {
		t.Fatal("expected two snippets")
	}
	if fs.Snippets[0].Name != "first" || fs.Snippets[1].Name != "second" {
		t.Errorf("order = [%s, %s]", fs.Snippets[0].Name, fs.Snippets[1].Name)
	}
}

func TestSliceTextClamps(t *testing.T) {
	source := []byte("abc")
	if got := sliceText(source, syntax.Span{StartByte: -2, EndByte: 99}); got != "abc" {
		t.Errorf("clamped slice = %q, want abc", got)
	}
	if got := sliceText(source, syntax.Span{StartByte: 3, EndByte: 3}); got != "" {
		t.Errorf("empty span slice = %q, want empty", got)
	}
}
