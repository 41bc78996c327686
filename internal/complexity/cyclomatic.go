package complexity

import "ccs/internal/syntax"

// CyclomaticScore computes the cyclomatic complexity of one code unit:
// baseline 1 plus one per decision point. Decision points are conditionals,
// loops, exception handlers, each case arm beyond the first of its switch,
// and each short-circuit boolean operator. Traversal does not cross into
// nested unit definitions; those are scored independently.
func CyclomaticScore(u CodeUnit, class *syntax.Classification) int {
	score := 1
	var walk func(n *syntax.Node, arms *int)
	walk = func(n *syntax.Node, arms *int) {
		for _, c := range n.Children {
			if class.Units.Has(c.Kind) {
				continue
			}
			switch {
			case class.Decisions.Has(c.Kind):
				score++
			case class.CaseArms.Has(c.Kind) && arms != nil:
				*arms++
				if *arms > 1 {
					score++
				}
			case class.BooleanOps.Has(c.Kind) && isShortCircuit(c.Token):
				score++
			}
			childArms := arms
			if class.Switches.Has(c.Kind) {
				childArms = new(int)
			}
			walk(c, childArms)
		}
	}
	walk(u.Root, nil)
	return score
}

func isShortCircuit(token string) bool {
	return token == "&&" || token == "||"
}
