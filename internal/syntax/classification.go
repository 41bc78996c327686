package syntax

// KindSet is a set of node kind names.
type KindSet map[string]struct{}

// NewKindSet builds a KindSet from kind names.
func NewKindSet(kinds ...string) KindSet {
	s := make(KindSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether kind is in the set.
func (s KindSet) Has(kind string) bool {
	_, ok := s[kind]
	return ok
}

// Classification maps node kinds to the syntactic roles the scorers care
// about. It is supplied by the parser per language, so the scorers themselves
// stay language-agnostic.
type Classification struct {
	// Units are unit boundaries: function, method, and closure definitions.
	// Each yields its own independently scored code unit.
	Units KindSet

	// Decisions add one decision point each: conditionals, loops, and
	// exception handlers. Case arms and boolean operators are listed
	// separately because their counting rules differ.
	Decisions KindSet

	// Switches are switch/match/select constructs. They nest for cognitive
	// scoring; cyclomatic scoring counts their arms instead.
	Switches KindSet

	// CaseArms are individual case/match arms. Every arm beyond the first of
	// its enclosing switch adds a decision point.
	CaseArms KindSet

	// BooleanOps are binary expression kinds that may be short-circuit
	// operators. A node of such a kind counts only when its Token holds a
	// normalized operator ("&&" or "||").
	BooleanOps KindSet

	// Elses are condition-less else clauses.
	Elses KindSet

	// Jumps always break structured flow (goto).
	Jumps KindSet

	// LabeledJumps break structured flow only when they target a label, in
	// which case the parser stores the label in Token (break, continue).
	LabeledJumps KindSet

	// Calls are call expressions; Token holds the callee name when the
	// parser could resolve one.
	Calls KindSet

	// Nesting marks constructs whose bodies read one level deeper. Units are
	// implicitly nesting for cognitive scoring and need not be repeated.
	Nesting KindSet
}
