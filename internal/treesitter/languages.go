// Package treesitter is the parser collaborator: it turns source files into
// the language-agnostic syntax trees and node-kind classification tables the
// scoring engine consumes. Parsing requires CGO; non-CGO builds get a stub.
package treesitter

import (
	"path/filepath"
	"sort"
	"strings"

	"ccs/internal/syntax"
)

// Language identifies a supported programming language.
type Language string

const (
	LangGo         Language = "go"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangTSX        Language = "tsx"
	LangPython     Language = "python"
	LangRust       Language = "rust"
	LangJava       Language = "java"
	LangKotlin     Language = "kotlin"
)

// LanguageFromExtension returns the Language for a file extension.
func LanguageFromExtension(ext string) (Language, bool) {
	switch ext {
	case ".go":
		return LangGo, true
	case ".js", ".mjs", ".cjs", ".jsx":
		return LangJavaScript, true
	case ".ts", ".mts", ".cts":
		return LangTypeScript, true
	case ".tsx":
		return LangTSX, true
	case ".py", ".pyw":
		return LangPython, true
	case ".rs":
		return LangRust, true
	case ".java":
		return LangJava, true
	case ".kt", ".kts":
		return LangKotlin, true
	default:
		return "", false
	}
}

// DetectLanguage maps a file path to its language by extension.
func DetectLanguage(path string) (Language, bool) {
	return LanguageFromExtension(strings.ToLower(filepath.Ext(path)))
}

// Supported returns every supported language, sorted by name.
func Supported() []Language {
	langs := []Language{
		LangGo, LangJava, LangJavaScript, LangKotlin,
		LangPython, LangRust, LangTSX, LangTypeScript,
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// Classify returns the node-kind classification for a language. The kind
// names follow the tree-sitter grammar for that language, with one
// normalization applied by the converter: condition-less else branches are
// always presented as "else_clause" nodes, and else-if chains are hoisted so
// the inner if is a direct child of the outer one.
func Classify(lang Language) *syntax.Classification {
	switch lang {
	case LangGo:
		return &syntax.Classification{
			Units:        syntax.NewKindSet("function_declaration", "method_declaration", "func_literal"),
			Decisions:    syntax.NewKindSet("if_statement", "for_statement"),
			Switches:     syntax.NewKindSet("expression_switch_statement", "type_switch_statement", "select_statement"),
			CaseArms:     syntax.NewKindSet("expression_case", "type_case", "communication_case", "default_case"),
			BooleanOps:   syntax.NewKindSet("binary_expression"),
			Elses:        syntax.NewKindSet("else_clause"),
			Jumps:        syntax.NewKindSet("goto_statement"),
			LabeledJumps: syntax.NewKindSet("break_statement", "continue_statement"),
			Calls:        syntax.NewKindSet("call_expression"),
			Nesting:      syntax.NewKindSet("if_statement", "for_statement"),
		}
	case LangJavaScript, LangTypeScript, LangTSX:
		return &syntax.Classification{
			Units: syntax.NewKindSet("function_declaration", "function_expression", "arrow_function",
				"method_definition", "generator_function_declaration", "generator_function"),
			Decisions: syntax.NewKindSet("if_statement", "for_statement", "for_in_statement",
				"while_statement", "do_statement", "ternary_expression", "catch_clause"),
			Switches:     syntax.NewKindSet("switch_statement"),
			CaseArms:     syntax.NewKindSet("switch_case", "switch_default"),
			BooleanOps:   syntax.NewKindSet("binary_expression"),
			Elses:        syntax.NewKindSet("else_clause"),
			Jumps:        syntax.NewKindSet(),
			LabeledJumps: syntax.NewKindSet("break_statement", "continue_statement"),
			Calls:        syntax.NewKindSet("call_expression"),
			Nesting: syntax.NewKindSet("if_statement", "for_statement", "for_in_statement",
				"while_statement", "do_statement", "ternary_expression", "catch_clause"),
		}
	case LangPython:
		return &syntax.Classification{
			Units: syntax.NewKindSet("function_definition", "lambda"),
			Decisions: syntax.NewKindSet("if_statement", "elif_clause", "for_statement", "while_statement",
				"except_clause", "conditional_expression", "list_comprehension",
				"dictionary_comprehension", "set_comprehension", "generator_expression"),
			Switches:     syntax.NewKindSet("match_statement"),
			CaseArms:     syntax.NewKindSet("case_clause"),
			BooleanOps:   syntax.NewKindSet("boolean_operator"),
			Elses:        syntax.NewKindSet("else_clause"),
			Jumps:        syntax.NewKindSet(),
			LabeledJumps: syntax.NewKindSet(),
			Calls:        syntax.NewKindSet("call"),
			Nesting: syntax.NewKindSet("if_statement", "elif_clause", "for_statement", "while_statement",
				"except_clause", "conditional_expression", "list_comprehension",
				"dictionary_comprehension", "set_comprehension", "generator_expression"),
		}
	case LangRust:
		return &syntax.Classification{
			Units:        syntax.NewKindSet("function_item", "closure_expression"),
			Decisions:    syntax.NewKindSet("if_expression", "while_expression", "loop_expression", "for_expression"),
			Switches:     syntax.NewKindSet("match_expression"),
			CaseArms:     syntax.NewKindSet("match_arm"),
			BooleanOps:   syntax.NewKindSet("binary_expression"),
			Elses:        syntax.NewKindSet("else_clause"),
			Jumps:        syntax.NewKindSet(),
			LabeledJumps: syntax.NewKindSet("break_expression", "continue_expression"),
			Calls:        syntax.NewKindSet("call_expression"),
			Nesting:      syntax.NewKindSet("if_expression", "while_expression", "loop_expression", "for_expression"),
		}
	case LangJava:
		return &syntax.Classification{
			Units: syntax.NewKindSet("method_declaration", "constructor_declaration", "lambda_expression"),
			Decisions: syntax.NewKindSet("if_statement", "for_statement", "enhanced_for_statement",
				"while_statement", "do_statement", "catch_clause", "ternary_expression"),
			Switches:     syntax.NewKindSet("switch_expression", "switch_statement"),
			CaseArms:     syntax.NewKindSet("switch_block_statement_group", "switch_rule"),
			BooleanOps:   syntax.NewKindSet("binary_expression"),
			Elses:        syntax.NewKindSet("else_clause"),
			Jumps:        syntax.NewKindSet(),
			LabeledJumps: syntax.NewKindSet("break_statement", "continue_statement"),
			Calls:        syntax.NewKindSet("method_invocation"),
			Nesting: syntax.NewKindSet("if_statement", "for_statement", "enhanced_for_statement",
				"while_statement", "do_statement", "catch_clause", "ternary_expression"),
		}
	case LangKotlin:
		return &syntax.Classification{
			Units:     syntax.NewKindSet("function_declaration", "lambda_literal", "anonymous_function"),
			Decisions: syntax.NewKindSet("if_expression", "for_statement", "while_statement", "do_while_statement", "catch_block"),
			Switches:  syntax.NewKindSet("when_expression"),
			CaseArms:  syntax.NewKindSet("when_entry"),
			BooleanOps: syntax.NewKindSet("binary_expression", "conjunction_expression",
				"disjunction_expression"),
			Elses:        syntax.NewKindSet("else_clause"),
			Jumps:        syntax.NewKindSet(),
			LabeledJumps: syntax.NewKindSet(),
			Calls:        syntax.NewKindSet("call_expression"),
			Nesting:      syntax.NewKindSet("if_expression", "for_statement", "while_statement", "do_while_statement", "catch_block"),
		}
	default:
		return nil
	}
}
