//go:build !cgo

package treesitter

import (
	"context"
	"errors"

	"ccs/internal/syntax"
)

// ErrNoCGO is returned when parsing is unavailable due to missing CGO.
var ErrNoCGO = errors.New("source parsing requires CGO (tree-sitter)")

// Parser parses source files into language-agnostic syntax trees.
// This is a stub implementation for non-CGO builds.
type Parser struct{}

// NewParser creates a new parser.
func NewParser() *Parser {
	return &Parser{}
}

// IsAvailable returns whether parsing is available.
// Returns false when CGO is disabled.
func IsAvailable() bool {
	return false
}

// DetectLanguage implements the engine's parser contract. Language detection
// is extension-based and works without CGO.
func (p *Parser) DetectLanguage(path string) (string, bool) {
	lang, ok := DetectLanguage(path)
	return string(lang), ok
}

// Parse is unavailable without CGO and always returns ErrNoCGO.
func (p *Parser) Parse(ctx context.Context, source []byte, language string) (*syntax.Node, *syntax.Classification, error) {
	return nil, nil, ErrNoCGO
}
