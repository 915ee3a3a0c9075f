// Package errors defines the compiler's fatal diagnostic taxonomy and the
// Sink that reports diagnostics and exits.
package errors

// Code identifies a specific diagnostic condition. Codes are grouped by
// compiler phase: lexical (LEX), syntactic (PAR), and semantic precondition
// (SEM) checks performed by the type store and IR builder.
type Code string

const (
	// Lexical phase.

	LEX001 Code = "LEX001" // unrecognized byte or malformed escape/numeric literal
	LEX002 Code = "LEX002" // unterminated string or rune literal
	LEX003 Code = "LEX003" // unrecognized attribute name

	// Syntactic phase.

	PAR001 Code = "PAR001" // unexpected token
	PAR002 Code = "PAR002" // missing closing delimiter
	PAR003 Code = "PAR003" // invalid declaration syntax
	PAR004 Code = "PAR004" // invalid type expression
	PAR005 Code = "PAR005" // malformed attribute argument
	PAR006 Code = "PAR006" // ambiguous variadic parameter list

	// Semantic precondition phase (type store / IR builder).

	SEM001 Code = "SEM001" // assignability violation
	SEM002 Code = "SEM002" // incomplete type used where a complete type is required
	SEM003 Code = "SEM003" // duplicate identifier in the same scope
)

// Info describes a diagnostic code's phase and a short category label, used
// by Sink to decide formatting and by tests to assert on phase.
type Info struct {
	Code        Code
	Phase       string
	Category    string
	Description string
}

var registry = map[Code]Info{
	LEX001: {LEX001, "lex", "malformed-literal", "malformed or unrecognized literal"},
	LEX002: {LEX002, "lex", "unterminated-literal", "unterminated string or rune literal"},
	LEX003: {LEX003, "lex", "bad-attribute", "unrecognized attribute name"},

	PAR001: {PAR001, "parse", "unexpected-token", "unexpected token"},
	PAR002: {PAR002, "parse", "unclosed-delimiter", "missing closing delimiter"},
	PAR003: {PAR003, "parse", "bad-declaration", "invalid declaration syntax"},
	PAR004: {PAR004, "parse", "bad-type", "invalid type expression"},
	PAR005: {PAR005, "parse", "bad-attribute-arg", "malformed attribute argument"},
	PAR006: {PAR006, "parse", "ambiguous-variadic", "ambiguous variadic parameter list"},

	SEM001: {SEM001, "sema", "not-assignable", "value not assignable to target type"},
	SEM002: {SEM002, "sema", "incomplete-type", "incomplete type used where a complete type is required"},
	SEM003: {SEM003, "sema", "duplicate-ident", "duplicate identifier in the same scope"},
}

// GetInfo looks up the registered metadata for a code.
func GetInfo(c Code) (Info, bool) {
	info, ok := registry[c]
	return info, ok
}
