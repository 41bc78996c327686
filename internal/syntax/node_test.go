package syntax

import (
	"reflect"
	"testing"
)

func span(start, end int) Span {
	return Span{StartByte: start, EndByte: end, StartLine: 1, EndLine: 1}
}

func TestWalkPreOrder(t *testing.T) {
	root := &Node{Kind: "root", Span: span(0, 10), Children: []*Node{
		{Kind: "a", Span: span(0, 4), Children: []*Node{
			{Kind: "a1", Span: span(1, 3)},
		}},
		{Kind: "b", Span: span(5, 9)},
	}}

	var kinds []string
	root.Walk(func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return true
	})
	want := []string{"root", "a", "a1", "b"}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("walk order = %v, want %v", kinds, want)
	}
}

func TestWalkPrunes(t *testing.T) {
	root := &Node{Kind: "root", Span: span(0, 10), Children: []*Node{
		{Kind: "skip", Span: span(0, 4), Children: []*Node{
			{Kind: "hidden", Span: span(1, 3)},
		}},
		{Kind: "keep", Span: span(5, 9)},
	}}

	var kinds []string
	root.Walk(func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return n.Kind != "skip"
	})
	want := []string{"root", "skip", "keep"}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("walk order = %v, want %v", kinds, want)
	}
}

func TestSpanContains(t *testing.T) {
	outer := span(0, 10)
	if !outer.Contains(span(2, 8)) {
		t.Error("expected outer to contain inner")
	}
	if !outer.Contains(outer) {
		t.Error("expected span to contain itself")
	}
	if outer.Contains(span(2, 11)) {
		t.Error("expected overflow span to be outside")
	}
}

func TestValidate(t *testing.T) {
	valid := &Node{Kind: "root", Span: span(0, 10), Children: []*Node{
		{Kind: "a", Span: span(0, 4)},
		{Kind: "b", Span: span(5, 9)},
	}}
	if err := Validate(valid, 10); err != nil {
		t.Errorf("valid tree rejected: %v", err)
	}

	oversized := &Node{Kind: "root", Span: span(0, 11)}
	if err := Validate(oversized, 10); err == nil {
		t.Error("expected error for span past end of source")
	}

	escaped := &Node{Kind: "root", Span: span(0, 10), Children: []*Node{
		{Kind: "a", Span: span(4, 12)},
	}}
	if err := Validate(escaped, 20); err == nil {
		t.Error("expected error for child outside parent span")
	}

	disordered := &Node{Kind: "root", Span: span(0, 10), Children: []*Node{
		{Kind: "b", Span: span(5, 9)},
		{Kind: "a", Span: span(0, 4)},
	}}
	if err := Validate(disordered, 10); err == nil {
		t.Error("expected error for out-of-order siblings")
	}

	if err := Validate(nil, 10); err == nil {
		t.Error("expected error for nil root")
	}
}
