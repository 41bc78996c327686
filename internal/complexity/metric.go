// Package complexity implements the scoring core: unit discovery, cyclomatic
// and cognitive scoring, and threshold evaluation over language-agnostic
// syntax trees.
package complexity

import (
	"fmt"
	"strings"
)

// Metric identifies a complexity metric.
type Metric string

const (
	// Cyclomatic counts linearly independent paths (decision points + 1).
	Cyclomatic Metric = "cyclomatic"
	// Cognitive is the nesting-weighted readability metric.
	Cognitive Metric = "cognitive"
)

// All returns every supported metric in report order.
func All() []Metric {
	return []Metric{Cyclomatic, Cognitive}
}

// ParseMetric resolves a metric name from configuration. Unknown names are a
// configuration error and must fail before any analysis starts.
func ParseMetric(name string) (Metric, error) {
	switch Metric(strings.ToLower(strings.TrimSpace(name))) {
	case Cyclomatic:
		return Cyclomatic, nil
	case Cognitive:
		return Cognitive, nil
	default:
		return "", fmt.Errorf("unknown complexity metric %q (supported: cyclomatic, cognitive)", name)
	}
}

// Score is the computed value of one metric for one code unit.
type Score struct {
	Metric Metric `json:"metric"`
	Value  int    `json:"value"`
}
