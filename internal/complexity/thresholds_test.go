package complexity

import "testing"

func TestFlaggedStrictlyGreater(t *testing.T) {
	th := NewThresholds(map[Metric]int{Cyclomatic: 15})
	if th.Flagged(Score{Metric: Cyclomatic, Value: 15}) {
		t.Error("score equal to threshold must not flag")
	}
	if !th.Flagged(Score{Metric: Cyclomatic, Value: 16}) {
		t.Error("score above threshold must flag")
	}
}

func TestThresholdDefault(t *testing.T) {
	var th Thresholds
	if got := th.Get(Cognitive); got != DefaultThreshold {
		t.Errorf("default threshold = %d, want %d", got, DefaultThreshold)
	}
}

func TestThresholdClamp(t *testing.T) {
	th := NewThresholds(map[Metric]int{Cognitive: 500})
	if got := th.Get(Cognitive); got != MaxThreshold {
		t.Errorf("clamped threshold = %d, want %d", got, MaxThreshold)
	}
}

func TestThresholdZeroFlagsEverything(t *testing.T) {
	th := NewThresholds(map[Metric]int{Cyclomatic: 0})
	if err := th.Validate(); err != nil {
		t.Errorf("zero threshold rejected: %v", err)
	}
	if !th.Flagged(Score{Metric: Cyclomatic, Value: 1}) {
		t.Error("any positive score must flag at threshold 0")
	}
}

func TestThresholdNegativeRejected(t *testing.T) {
	th := Thresholds{Cyclomatic: -1}
	if err := th.Validate(); err == nil {
		t.Error("expected error for negative threshold")
	}
}

func TestParseMetric(t *testing.T) {
	cases := []struct {
		in      string
		want    Metric
		wantErr bool
	}{
		{"cyclomatic", Cyclomatic, false},
		{"Cognitive", Cognitive, false},
		{" cognitive ", Cognitive, false},
		{"halstead", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseMetric(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMetric(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMetric(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMetric(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
