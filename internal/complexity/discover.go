package complexity

import (
	"fmt"

	"ccs/internal/syntax"
)

// AnonymousName is the synthetic name given to unnamed units (closures,
// lambdas, function literals).
const AnonymousName = "<anonymous>"

// CodeUnit is one independently scorable block: a function, method, or
// closure. It is immutable after discovery and references the externally
// owned syntax tree.
type CodeUnit struct {
	Name string
	Root *syntax.Node
	Span syntax.Span
}

// Discover walks a file's syntax tree and returns its code units in source
// order. Nested unit definitions each yield their own CodeUnit. A file
// without units returns an empty slice, which is not an error.
func Discover(root *syntax.Node, class *syntax.Classification) []CodeUnit {
	var units []CodeUnit
	seq := 0
	root.Walk(func(n *syntax.Node) bool {
		if !class.Units.Has(n.Kind) {
			return true
		}
		name := n.Token
		if name == "" {
			// Anonymous units get distinguishable names so two closures in
			// one file do not collide in reports.
			seq++
			name = fmt.Sprintf("%s#%d", AnonymousName, seq)
		}
		units = append(units, CodeUnit{Name: name, Root: n, Span: n.Span})
		return true
	})
	return units
}
