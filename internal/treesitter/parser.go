//go:build cgo

package treesitter

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/kotlin"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"ccs/internal/syntax"
)

// Parser parses source files into language-agnostic syntax trees. It is safe
// for concurrent use; each Parse call runs its own tree-sitter parser.
type Parser struct{}

// NewParser creates a new parser.
func NewParser() *Parser {
	return &Parser{}
}

// IsAvailable returns whether parsing is available.
// Returns true when CGO is enabled.
func IsAvailable() bool {
	return true
}

// DetectLanguage implements the engine's parser contract.
func (p *Parser) DetectLanguage(path string) (string, bool) {
	lang, ok := DetectLanguage(path)
	return string(lang), ok
}

// Parse parses source code and returns the converted tree plus the
// language's node-kind classification.
func (p *Parser) Parse(ctx context.Context, source []byte, language string) (*syntax.Node, *syntax.Classification, error) {
	lang := Language(language)
	tsLang, err := getLanguage(lang)
	if err != nil {
		return nil, nil, err
	}
	class := Classify(lang)
	if class == nil {
		return nil, nil, fmt.Errorf("unsupported language: %s", language)
	}

	sp := sitter.NewParser()
	sp.SetLanguage(tsLang)
	tree, err := sp.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, nil, fmt.Errorf("parse error: %w", err)
	}

	c := &converter{lang: lang, class: class, source: source}
	return c.node(tree.RootNode()), class, nil
}

// getLanguage returns the tree-sitter grammar for a language identifier.
func getLanguage(lang Language) (*sitter.Language, error) {
	switch lang {
	case LangGo:
		return golang.GetLanguage(), nil
	case LangJavaScript:
		return javascript.GetLanguage(), nil
	case LangTypeScript:
		return typescript.GetLanguage(), nil
	case LangTSX:
		return tsx.GetLanguage(), nil
	case LangPython:
		return python.GetLanguage(), nil
	case LangRust:
		return rust.GetLanguage(), nil
	case LangJava:
		return java.GetLanguage(), nil
	case LangKotlin:
		return kotlin.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}
}

// converter rewrites a tree-sitter tree into the engine's node model. Only
// named nodes are kept. Two normalizations keep the scorers language-blind:
// condition-less else branches always surface as "else_clause" nodes, and an
// else clause wrapping a lone if (an else-if chain) is hoisted so the inner
// if becomes a direct child of the outer one.
type converter struct {
	lang   Language
	class  *syntax.Classification
	source []byte
}

func (cv *converter) node(n *sitter.Node) *syntax.Node {
	out := &syntax.Node{
		Kind: n.Type(),
		Span: syntax.Span{
			StartByte: int(n.StartByte()),
			EndByte:   int(n.EndByte()),
			StartLine: int(n.StartPoint().Row) + 1,
			EndLine:   int(n.EndPoint().Row) + 1,
		},
		Token: cv.token(n),
	}

	var alt *sitter.Node
	if cv.synthesizeElse() && isIfKind(n.Type()) {
		alt = n.ChildByFieldName("alternative")
	}

	bodiesSeen := 0
	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		c := n.NamedChild(i)
		child := cv.node(c)

		if alt != nil && sameSpan(c, alt) && !isIfKind(c.Type()) {
			child.Kind = "else_clause"
		}
		if cv.lang == LangKotlin && n.Type() == "if_expression" && c.Type() == "control_structure_body" {
			bodiesSeen++
			if bodiesSeen == 2 {
				child.Kind = "else_clause"
			}
		}
		if child.Kind == "else_clause" && len(child.Children) == 1 && isIfKind(child.Children[0].Kind) {
			child = child.Children[0]
		}

		out.Children = append(out.Children, child)
	}
	return out
}

// synthesizeElse reports whether the grammar lacks a dedicated else node and
// the converter must derive one from the if's alternative field.
func (cv *converter) synthesizeElse() bool {
	return cv.lang == LangGo || cv.lang == LangJava
}

func isIfKind(kind string) bool {
	return kind == "if_statement" || kind == "if_expression"
}

func sameSpan(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}

// token resolves the parser-supplied token for kinds the scorers inspect:
// unit names, callee names, normalized boolean operators, and jump labels.
func (cv *converter) token(n *sitter.Node) string {
	kind := n.Type()
	switch {
	case cv.class.Units.Has(kind):
		return cv.unitName(n)
	case cv.class.Calls.Has(kind):
		return cv.calleeName(n)
	case cv.class.BooleanOps.Has(kind):
		return cv.operator(n)
	case cv.class.LabeledJumps.Has(kind):
		return cv.label(n)
	}
	return ""
}

func (cv *converter) text(n *sitter.Node) string {
	return string(cv.source[n.StartByte():n.EndByte()])
}

// unitName extracts the declared name of a unit definition, or "" for
// anonymous units.
func (cv *converter) unitName(n *sitter.Node) string {
	if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		return cv.text(nameNode)
	}

	// Grammars without a name field keep the identifier as a plain child.
	var want string
	switch cv.lang {
	case LangGo, LangJava, LangJavaScript, LangTypeScript, LangTSX:
		want = "identifier"
	case LangKotlin:
		want = "simple_identifier"
	default:
		return ""
	}
	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		if c := n.NamedChild(i); c.Type() == want {
			return cv.text(c)
		}
	}
	return ""
}

// calleeName extracts a simple callee identifier for recursion detection.
// Qualified or computed callees resolve to their last path segment.
func (cv *converter) calleeName(n *sitter.Node) string {
	var target *sitter.Node
	switch cv.lang {
	case LangJava:
		target = n.ChildByFieldName("name")
	case LangKotlin:
		if n.NamedChildCount() > 0 {
			target = n.NamedChild(0)
		}
	default:
		target = n.ChildByFieldName("function")
	}
	if target == nil {
		return ""
	}

	name := cv.text(target)
	for _, sep := range []string{"::", "."} {
		if i := strings.LastIndex(name, sep); i >= 0 {
			name = name[i+len(sep):]
		}
	}
	if !isIdentifier(name) {
		return ""
	}
	return name
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '_' && !('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z') && !('0' <= r && r <= '9') {
			return false
		}
	}
	return true
}

// operator returns the normalized short-circuit operator of a boolean
// expression node, or "" when the node is some other binary expression.
func (cv *converter) operator(n *sitter.Node) string {
	switch n.Type() {
	case "conjunction_expression":
		return "&&"
	case "disjunction_expression":
		return "||"
	}

	if op := n.ChildByFieldName("operator"); op != nil {
		return normalizeOperator(cv.text(op))
	}
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		if tok := normalizeOperator(cv.text(n.Child(i))); tok != "" {
			return tok
		}
	}
	return ""
}

func normalizeOperator(s string) string {
	switch s {
	case "&&", "and":
		return "&&"
	case "||", "or":
		return "||"
	default:
		return ""
	}
}

// label returns the target label of a break/continue, or "" for the plain
// form that does not break structured flow.
func (cv *converter) label(n *sitter.Node) string {
	var want string
	switch cv.lang {
	case LangGo:
		want = "label_name"
	case LangJavaScript, LangTypeScript, LangTSX:
		want = "statement_identifier"
	case LangJava:
		want = "identifier"
	case LangRust:
		want = "loop_label"
	default:
		return ""
	}
	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		if c := n.NamedChild(i); c.Type() == want {
			return strings.TrimPrefix(cv.text(c), "'")
		}
	}
	return ""
}
