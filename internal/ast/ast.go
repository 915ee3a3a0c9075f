// Package ast defines the syntax tree produced by internal/parser: types,
// declarations, and the narrow literal-expression grammar this front end
// accepts as an initializer.
package ast

import (
	"github.com/velalang/velac/internal/ident"
	"github.com/velalang/velac/internal/lexer"
)

// Pos is a source location, shared with the lexer so a diagnostic citing an
// AST node and one citing a raw token use the same coordinate system.
type Pos = lexer.Pos

// Node is the common interface of every syntax tree element.
type Node interface {
	Position() Pos
}

// Type is the AST type tree described by the grammar: a tree, not a DAG.
// Every variant below implements Type.
type Type interface {
	Node
	Constant() bool
	typeNode()
}

// base is embedded by every Type variant to carry the shared const flag and
// position without repeating accessors.
type base struct {
	Pos     Pos
	IsConst bool
}

func (b base) Position() Pos  { return b.Pos }
func (b base) Constant() bool { return b.IsConst }
func (base) typeNode()        {}

// PrimitiveType is one of the fixed primitive storages (bool, int, f64, …).
// Storage holds the lexer keyword Kind that introduced it (e.g. KW_INT).
type PrimitiveType struct {
	base
	Storage lexer.Kind
}

// PointerType is `*T` or `nullable *T`.
type PointerType struct {
	base
	Nullable bool
	Referent Type
}

// Variadism distinguishes the two syntactically distinct trailing-argument
// conventions a function type may declare.
type Variadism int

const (
	NoVariadism  Variadism = iota
	VariadicA              // `...` directly after the last parameter's type, e.g. fn(a: int...) void
	VariadicB              // `, ...` after the last named parameter, e.g. fn(a: int, ...) void
)

// Param is one entry of a function type's parameter list.
type Param struct {
	Name string
	Type Type
	Pos  Pos
}

// FunctionType is `fn(params) R`, optionally `@noreturn`.
type FunctionType struct {
	base
	Params    []Param
	Result    Type
	Variadism Variadism
	Noreturn  bool
}

// ArrayType is `[N]T` or `[*]T` (expandable, length determined by initializer).
// Length is nil when the array is expandable.
type ArrayType struct {
	base
	Length     Expr
	Element    Type
	Expandable bool
}

// AliasType is a dotted identifier used in type position, resolved against
// declared type aliases by a later pass.
type AliasType struct {
	base
	Name *ident.Ident
}

// StructType, UnionType, TaggedUnionType, and EnumType are placeholders: the
// grammar enumerates them as type-position variants but this front end
// rejects them with a diagnostic at parse time rather than building out
// their field lists, per the open design question on aggregate layout.
type StructType struct{ base }
type UnionType struct{ base }
type TaggedUnionType struct{ base }
type EnumType struct{ base }

// Expr is the narrow literal-expression grammar accepted as an initializer.
// Richer expression forms are deferred to the external check pass.
type Expr interface {
	Node
	exprNode()
}

type exprBase struct{ Pos Pos }

func (e exprBase) Position() Pos { return e.Pos }
func (exprBase) exprNode()       {}

// IntLit is a signed integer literal, optionally suffixed (e.g. `-7i64`).
type IntLit struct {
	exprBase
	Value   int64
	Storage string
}

// UintLit is an unsigned integer literal, optionally suffixed.
type UintLit struct {
	exprBase
	Value   uint64
	Storage string
}

// FloatLit is a floating literal, suffixed `f32` or `f64`.
type FloatLit struct {
	exprBase
	Value   float64
	Storage string
}

// StringLit is a `"…"` literal; Value holds the decoded UTF-8 bytes.
type StringLit struct {
	exprBase
	Value []byte
}

// RuneLit is a `'x'` literal.
type RuneLit struct {
	exprBase
	Value rune
}

// NullLit is the literal `null`, valid only where the declared type is a
// nullable pointer.
type NullLit struct{ exprBase }

// Attrs holds the subset of function declaration attributes present in
// source: @init, @fini, @test, @noreturn, and @symbol("literal"). Only
// FuncDecl carries an Attrs; GlobalDecl keeps its @symbol override in its own
// Symbol field, and TypeDecl takes no attributes.
type Attrs struct {
	Init     bool
	Fini     bool
	Test     bool
	Noreturn bool
	Symbol   *string
}

// Decl is the common interface of top-level declarations.
type Decl interface {
	Node
	declNode()
}

type declBase struct {
	Pos      Pos
	Exported bool
}

func (d declBase) Position() Pos { return d.Pos }
func (declBase) declNode()       {}

// BindingKind distinguishes `let`, `const`, and `def` introducers.
type BindingKind int

const (
	Let BindingKind = iota
	Const
	Def
)

// GlobalDecl is a `let`/`const`/`def` global binding. Init is the literal
// initializer expression; it is nil only when the grammar allows an
// uninitialized `let` declaration without an initializer, which this core's
// grammar does not — Init is always present for a well-formed GlobalDecl.
type GlobalDecl struct {
	declBase
	Kind   BindingKind
	Name   string
	Type   Type
	Init   Expr
	Symbol *string
}

// TypeDecl is `type name = T`.
type TypeDecl struct {
	declBase
	Name string
	Type Type
}

// FuncDecl is a function declaration. Init is the literal expression bound
// to the function by `=`; this front end does not parse a statement body.
type FuncDecl struct {
	declBase
	Name      string
	Params    []Param
	Result    Type
	Variadism Variadism
	Attrs     Attrs
	Init      Expr
}

// Subunit is one translation input: its imports and declarations, in
// source order.
type Subunit struct {
	Path    string
	Imports []*ident.Ident
	Decls   []Decl
}
