package complexity

import "ccs/internal/syntax"

// ScoreUnit computes one metric for one code unit. Both scorers are pure
// functions of the unit's subtree, so re-running on an unchanged tree yields
// identical values.
func ScoreUnit(u CodeUnit, m Metric, class *syntax.Classification) Score {
	switch m {
	case Cognitive:
		return Score{Metric: Cognitive, Value: CognitiveScore(u, class)}
	default:
		return Score{Metric: Cyclomatic, Value: CyclomaticScore(u, class)}
	}
}
