// Package syntax defines the language-agnostic syntax tree consumed by the
// scoring engine. Parsers produce Node trees plus a Classification table;
// the engine never touches parser-specific types.
package syntax

import "fmt"

// Span locates a node inside its source file. Byte offsets are half-open,
// lines are 1-based and inclusive.
type Span struct {
	StartByte int `json:"startByte"`
	EndByte   int `json:"endByte"`
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`
}

// Contains reports whether s fully contains other.
func (s Span) Contains(other Span) bool {
	return s.StartByte <= other.StartByte && other.EndByte <= s.EndByte
}

// Node is a single syntax tree node. Kind identifies the syntactic role using
// the producing grammar's names. Token carries parser-resolved text where the
// scorers need it: the operator for short-circuit boolean nodes, the callee
// name for call nodes, the declared name for unit nodes, and the target label
// for labeled jumps. It is empty everywhere else.
type Node struct {
	Kind     string
	Span     Span
	Token    string
	Children []*Node
}

// Walk visits n and every descendant in pre-order. Returning false from fn
// prunes the subtree below the current node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Validate checks the structural invariants the scorers rely on: spans stay
// inside the file, children stay inside their parent, and siblings appear in
// source order without overlapping. A violation means the parser broke its
// contract and the file's analysis must be abandoned.
func Validate(root *Node, sourceLen int) error {
	if root == nil {
		return fmt.Errorf("syntax: nil tree root")
	}
	if root.Span.StartByte < 0 || root.Span.EndByte > sourceLen {
		return fmt.Errorf("syntax: root span [%d,%d) outside source of %d bytes",
			root.Span.StartByte, root.Span.EndByte, sourceLen)
	}
	return validateNode(root)
}

func validateNode(n *Node) error {
	if n.Span.StartByte > n.Span.EndByte {
		return fmt.Errorf("syntax: inverted span [%d,%d) on %q", n.Span.StartByte, n.Span.EndByte, n.Kind)
	}
	prevEnd := -1
	for _, c := range n.Children {
		if c == nil {
			return fmt.Errorf("syntax: nil child under %q", n.Kind)
		}
		if !n.Span.Contains(c.Span) {
			return fmt.Errorf("syntax: child %q span [%d,%d) escapes parent %q span [%d,%d)",
				c.Kind, c.Span.StartByte, c.Span.EndByte, n.Kind, n.Span.StartByte, n.Span.EndByte)
		}
		if c.Span.StartByte < prevEnd {
			return fmt.Errorf("syntax: sibling %q overlaps previous sibling at byte %d", c.Kind, c.Span.StartByte)
		}
		prevEnd = c.Span.EndByte
		if err := validateNode(c); err != nil {
			return err
		}
	}
	return nil
}
