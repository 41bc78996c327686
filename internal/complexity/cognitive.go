package complexity

import "ccs/internal/syntax"

// CognitiveScore computes the cognitive complexity of one code unit.
//
// Branch-inducing constructs add 1 plus the current nesting level and deepen
// nesting for their bodies. A condition-less else adds a flat 1 and does not
// nest beyond its paired if. A chain of short-circuit operators in one
// condition adds 1 for the first operator plus 1 per left-to-right change of
// operator type, so a uniform chain costs 1 while mixed `&&`/`||` cost more.
// Structured-flow breaks (goto, labeled break/continue) and recursive call
// sites add flat increments. Nesting is an accumulator threaded through the
// recursion, never shared state.
//
// A nested unit definition adds 1 plus nesting for appearing inline, but its
// body belongs to the nested unit and contributes nothing here. A purely
// linear unit scores 0.
func CognitiveScore(u CodeUnit, class *syntax.Classification) int {
	w := cognitiveWalker{class: class, unitName: u.Name}
	if u.Root.Token == "" {
		// Anonymous units cannot recurse by name.
		w.unitName = ""
	}
	return w.children(u.Root, 0, false)
}

type cognitiveWalker struct {
	class    *syntax.Classification
	unitName string
}

// children scores the direct and indirect children of n at the given nesting
// level. inChain marks boolean-operator nodes whose chain was already costed
// at the chain's top node.
func (w *cognitiveWalker) children(n *syntax.Node, nesting int, inChain bool) int {
	total := 0
	for _, c := range n.Children {
		class := w.class
		switch {
		case class.Units.Has(c.Kind):
			// Inline definition burdens the reader here; its body is scored
			// as its own unit.
			total += 1 + nesting
			continue

		case class.Elses.Has(c.Kind):
			total++
			total += w.children(c, nesting, false)

		case class.Decisions.Has(c.Kind), class.Switches.Has(c.Kind):
			total += 1 + nesting
			next := nesting
			if class.Nesting.Has(c.Kind) || class.Switches.Has(c.Kind) {
				next++
			}
			total += w.children(c, next, false)

		case class.BooleanOps.Has(c.Kind) && isShortCircuit(c.Token):
			if !inChain {
				total += chainCost(c, class)
			}
			total += w.children(c, nesting, true)

		case class.Jumps.Has(c.Kind):
			total++
			total += w.children(c, nesting, false)

		case class.LabeledJumps.Has(c.Kind):
			if c.Token != "" {
				total++
			}
			total += w.children(c, nesting, false)

		case class.Calls.Has(c.Kind):
			if w.unitName != "" && c.Token == w.unitName {
				total++
			}
			total += w.children(c, nesting, false)

		default:
			next := nesting
			if class.Nesting.Has(c.Kind) {
				next++
			}
			total += w.children(c, next, false)
		}
	}
	return total
}

// chainCost walks a maximal boolean-operator chain in operand order and
// charges 1 whenever the operator differs from the previous one, so the first
// operator always charges.
func chainCost(top *syntax.Node, class *syntax.Classification) int {
	var ops []string
	var flatten func(n *syntax.Node)
	flatten = func(n *syntax.Node) {
		emitted := false
		for _, c := range n.Children {
			if class.BooleanOps.Has(c.Kind) && isShortCircuit(c.Token) {
				flatten(c)
			}
			if !emitted {
				ops = append(ops, n.Token)
				emitted = true
			}
		}
		if !emitted {
			ops = append(ops, n.Token)
		}
	}
	flatten(top)

	cost := 0
	prev := ""
	for _, op := range ops {
		if op != prev {
			cost++
			prev = op
		}
	}
	return cost
}
