package ast

import (
	"github.com/velalang/velac/internal/ident"
	"github.com/velalang/velac/internal/lexer"
)

// The constructors below exist so internal/parser can build Type nodes
// without reaching into the unexported `base` embedding; they do nothing
// parser.go itself couldn't do with a zero-value literal and field
// assignment, but keep that detail local to this package.

func NewPrimitiveType(pos Pos, isConst bool, storage lexer.Kind) *PrimitiveType {
	return &PrimitiveType{base: base{Pos: pos, IsConst: isConst}, Storage: storage}
}

func NewPointerType(pos Pos, isConst bool, nullable bool, referent Type) *PointerType {
	return &PointerType{base: base{Pos: pos, IsConst: isConst}, Nullable: nullable, Referent: referent}
}

func NewFunctionType(pos Pos, isConst bool) *FunctionType {
	return &FunctionType{base: base{Pos: pos, IsConst: isConst}}
}

func NewArrayType(pos Pos, isConst bool, length Expr, element Type, expandable bool) *ArrayType {
	return &ArrayType{base: base{Pos: pos, IsConst: isConst}, Length: length, Element: element, Expandable: expandable}
}

func NewAliasType(pos Pos, isConst bool, name *ident.Ident) *AliasType {
	return &AliasType{base: base{Pos: pos, IsConst: isConst}, Name: name}
}

func NewStructType(pos Pos, isConst bool) *StructType          { return &StructType{base{Pos: pos, IsConst: isConst}} }
func NewUnionType(pos Pos, isConst bool) *UnionType             { return &UnionType{base{Pos: pos, IsConst: isConst}} }
func NewTaggedUnionType(pos Pos, isConst bool) *TaggedUnionType { return &TaggedUnionType{base{Pos: pos, IsConst: isConst}} }
func NewEnumType(pos Pos, isConst bool) *EnumType               { return &EnumType{base{Pos: pos, IsConst: isConst}} }

func NewIntLit(pos Pos, value int64, storage string) *IntLit {
	return &IntLit{exprBase: exprBase{Pos: pos}, Value: value, Storage: storage}
}

func NewUintLit(pos Pos, value uint64, storage string) *UintLit {
	return &UintLit{exprBase: exprBase{Pos: pos}, Value: value, Storage: storage}
}

func NewFloatLit(pos Pos, value float64, storage string) *FloatLit {
	return &FloatLit{exprBase: exprBase{Pos: pos}, Value: value, Storage: storage}
}

func NewStringLit(pos Pos, value []byte) *StringLit {
	return &StringLit{exprBase: exprBase{Pos: pos}, Value: value}
}

func NewRuneLit(pos Pos, value rune) *RuneLit {
	return &RuneLit{exprBase: exprBase{Pos: pos}, Value: value}
}

func NewNullLit(pos Pos) *NullLit {
	return &NullLit{exprBase: exprBase{Pos: pos}}
}

func NewGlobalDecl(pos Pos, exported bool, kind BindingKind, name string, typ Type, init Expr, symbol *string) *GlobalDecl {
	return &GlobalDecl{
		declBase: declBase{Pos: pos, Exported: exported},
		Kind:     kind,
		Name:     name,
		Type:     typ,
		Init:     init,
		Symbol:   symbol,
	}
}

func NewTypeDecl(pos Pos, exported bool, name string, typ Type) *TypeDecl {
	return &TypeDecl{declBase: declBase{Pos: pos, Exported: exported}, Name: name, Type: typ}
}

func NewFuncDecl(pos Pos, exported bool, name string, params []Param, result Type, variadism Variadism, attrs Attrs, init Expr) *FuncDecl {
	return &FuncDecl{
		declBase:  declBase{Pos: pos, Exported: exported},
		Name:      name,
		Params:    params,
		Result:    result,
		Variadism: variadism,
		Attrs:     attrs,
		Init:      init,
	}
}
