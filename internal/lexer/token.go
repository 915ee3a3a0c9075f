package lexer

import "fmt"

// Kind identifies the category of a Token: keyword, punctuation, name,
// literal, or end-of-file.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	NAME // an identifier that is not a keyword

	// Literal kinds. The concrete storage tag (which primitive the literal
	// targets) is carried on Token.LitStorage, not on Kind, since several
	// literal forms (e.g. suffixed integers) share lexical shape but differ
	// in target storage.
	INT    // decimal/hex/octal/binary integer, signed or unsigned
	FLOAT  // requires a decimal point or exponent
	RUNE   // 'x'
	STRING // "..."

	// Keywords
	KW_FN
	KW_LET
	KW_CONST
	KW_DEF
	KW_TYPE
	KW_EXPORT
	KW_USE
	KW_NULLABLE
	KW_NULL
	KW_STRUCT
	KW_UNION
	KW_ENUM
	KW_VOID
	KW_BOOL
	KW_CHAR
	KW_STR
	KW_RUNE
	KW_F32
	KW_F64
	KW_I8
	KW_I16
	KW_I32
	KW_I64
	KW_INT
	KW_U8
	KW_U16
	KW_U32
	KW_U64
	KW_UINT
	KW_UINTPTR
	KW_SIZE

	// Attributes (always introduced by '@')
	ATTR_INIT
	ATTR_FINI
	ATTR_TEST
	ATTR_NORETURN
	ATTR_SYMBOL

	// Punctuation
	LPAREN   // (
	RPAREN   // )
	LBRACE   // {
	RBRACE   // }
	COLON    // :
	DCOLON   // ::
	COMMA    // ,
	SEMI     // ;
	ELLIPSIS // ...
	ASSIGN   // =
	STAR     // *
	MINUS    // -
	AT       // @ (only seen as a prefix of an attribute keyword)
)

var kindNames = map[Kind]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	NAME: "NAME",

	INT:    "INT",
	FLOAT:  "FLOAT",
	RUNE:   "RUNE",
	STRING: "STRING",

	KW_FN:       "fn",
	KW_LET:      "let",
	KW_CONST:    "const",
	KW_DEF:      "def",
	KW_TYPE:     "type",
	KW_EXPORT:   "export",
	KW_USE:      "use",
	KW_NULLABLE: "nullable",
	KW_NULL:     "null",
	KW_STRUCT:   "struct",
	KW_UNION:    "union",
	KW_ENUM:     "enum",
	KW_VOID:     "void",
	KW_BOOL:     "bool",
	KW_CHAR:     "char",
	KW_STR:      "str",
	KW_RUNE:     "rune",
	KW_F32:      "f32",
	KW_F64:      "f64",
	KW_I8:       "i8",
	KW_I16:      "i16",
	KW_I32:      "i32",
	KW_I64:      "i64",
	KW_INT:      "int",
	KW_U8:       "u8",
	KW_U16:      "u16",
	KW_U32:      "u32",
	KW_U64:      "u64",
	KW_UINT:     "uint",
	KW_UINTPTR:  "uintptr",
	KW_SIZE:     "size",

	ATTR_INIT:     "@init",
	ATTR_FINI:     "@fini",
	ATTR_TEST:     "@test",
	ATTR_NORETURN: "@noreturn",
	ATTR_SYMBOL:   "@symbol",

	LPAREN:   "(",
	RPAREN:   ")",
	LBRACE:   "{",
	RBRACE:   "}",
	COLON:    ":",
	DCOLON:   "::",
	COMMA:    ",",
	SEMI:     ";",
	ELLIPSIS: "...",
	ASSIGN:   "=",
	STAR:     "*",
	MINUS:    "-",
	AT:       "@",
}

// String returns the canonical source spelling of the kind, used both for
// display and for diagnostics' "expected one of {...}" lists.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// keywords maps bare identifier spellings to their keyword Kind. Attribute
// names are looked up separately (attrKeywords) since they are only
// keywords when preceded by '@'.
var keywords = map[string]Kind{
	"fn":       KW_FN,
	"let":      KW_LET,
	"const":    KW_CONST,
	"def":      KW_DEF,
	"type":     KW_TYPE,
	"export":   KW_EXPORT,
	"use":      KW_USE,
	"nullable": KW_NULLABLE,
	"null":     KW_NULL,
	"struct":   KW_STRUCT,
	"union":    KW_UNION,
	"enum":     KW_ENUM,
	"void":     KW_VOID,
	"bool":     KW_BOOL,
	"char":     KW_CHAR,
	"str":      KW_STR,
	"rune":     KW_RUNE,
	"f32":      KW_F32,
	"f64":      KW_F64,
	"i8":       KW_I8,
	"i16":      KW_I16,
	"i32":      KW_I32,
	"i64":      KW_I64,
	"int":      KW_INT,
	"u8":       KW_U8,
	"u16":      KW_U16,
	"u32":      KW_U32,
	"u64":      KW_U64,
	"uint":     KW_UINT,
	"uintptr":  KW_UINTPTR,
	"size":     KW_SIZE,
}

var attrKeywords = map[string]Kind{
	"init":     ATTR_INIT,
	"fini":     ATTR_FINI,
	"test":     ATTR_TEST,
	"noreturn": ATTR_NORETURN,
	"symbol":   ATTR_SYMBOL,
}

// LookupIdent reports the keyword Kind for ident, or NAME if ident is not a
// keyword.
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return NAME
}

// LookupAttr reports the attribute Kind for the identifier following an
// '@', or ILLEGAL if name is not a recognized attribute.
func LookupAttr(name string) (Kind, bool) {
	k, ok := attrKeywords[name]
	return k, ok
}

// IsPrimitive reports whether k introduces a primitive storage in the type
// grammar.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KW_VOID, KW_BOOL, KW_CHAR, KW_STR, KW_RUNE, KW_F32, KW_F64,
		KW_I8, KW_I16, KW_I32, KW_I64, KW_INT,
		KW_U8, KW_U16, KW_U32, KW_U64, KW_UINT, KW_UINTPTR, KW_SIZE:
		return true
	}
	return false
}

// Pos is a 1-based source location: every token carries a path, line, and
// column.
type Pos struct {
	Path   string
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Path, p.Line, p.Column)
}

// Token is a single lexical unit. Literal payloads are only
// meaningful when Kind is one of INT, FLOAT, RUNE, STRING; LitStorage
// additionally distinguishes the target primitive for numeric literals
// (e.g. an INT token suffixed "u8" carries LitStorage == "u8").
type Token struct {
	Kind       Kind
	Text       string // raw source spelling, for diagnostics and NAME/attribute payloads
	Pos        Pos
	LitStorage string // "i8".."uintptr", "f32"/"f64", "rune", "str" - meaningful for literal kinds

	IntValue   int64
	UintValue  uint64
	FloatValue float64
	RuneValue  rune
	Bytes      []byte // decoded string literal payload (UTF-8 code units)
}

// String renders the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case NAME:
		return t.Text
	case INT, FLOAT, RUNE, STRING:
		return t.Text
	default:
		return t.Kind.String()
	}
}

// IsKeyword reports whether t is one of the fixed keyword tokens.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KW_FN, KW_LET, KW_CONST, KW_DEF, KW_TYPE, KW_EXPORT, KW_USE,
		KW_NULLABLE, KW_NULL, KW_STRUCT, KW_UNION, KW_ENUM:
		return true
	}
	return t.Kind.IsPrimitive()
}
