package complexity

import "fmt"

// DefaultThreshold applies to any metric without an explicit threshold.
const DefaultThreshold = 15

// MaxThreshold caps configured thresholds; larger values are clamped.
const MaxThreshold = 100

// Thresholds maps metrics to their flagging thresholds. The zero map is
// usable and answers DefaultThreshold for every metric.
type Thresholds map[Metric]int

// NewThresholds builds a threshold table from (metric, value) pairs. A
// repeated metric overwrites the earlier entry. Values above MaxThreshold are
// clamped; negative values are rejected by Validate, and zero is accepted and
// means every unit flags.
func NewThresholds(pairs map[Metric]int) Thresholds {
	t := make(Thresholds, len(pairs))
	for m, v := range pairs {
		t.Set(m, v)
	}
	return t
}

// Set stores the threshold for a metric, clamping to MaxThreshold.
func (t Thresholds) Set(m Metric, value int) {
	if value > MaxThreshold {
		value = MaxThreshold
	}
	t[m] = value
}

// Get returns the threshold for a metric, falling back to DefaultThreshold.
func (t Thresholds) Get(m Metric) int {
	if v, ok := t[m]; ok {
		return v
	}
	return DefaultThreshold
}

// Flagged reports whether a score exceeds its metric's threshold. The
// comparison is strictly greater-than: a score equal to the threshold does
// not flag.
func (t Thresholds) Flagged(s Score) bool {
	return s.Value > t.Get(s.Metric)
}

// Validate rejects negative thresholds. Zero is allowed and documented as
// "everything flags".
func (t Thresholds) Validate() error {
	for m, v := range t {
		if v < 0 {
			return fmt.Errorf("threshold for %s must not be negative, got %d", m, v)
		}
	}
	return nil
}
