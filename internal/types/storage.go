// Package types implements the hash-consed type store: canonical, interned
// type records reachable only through Store's lookup functions.
package types

import (
	"github.com/velalang/velac/internal/lexer"
)

// Storage is the discriminant identifying which variant of the type sum a
// given interned Type is.
type Storage int

const (
	Void Storage = iota
	Bool
	Char
	Str
	Rune
	F32
	F64
	I8
	I16
	I32
	I64
	Int
	U8
	U16
	U32
	U64
	Uint
	Uintptr
	Size
	Null
	Pointer
	Array
	Function
	Alias
)

var storageNames = map[Storage]string{
	Void: "void", Bool: "bool", Char: "char", Str: "str", Rune: "rune",
	F32: "f32", F64: "f64", I8: "i8", I16: "i16", I32: "i32", I64: "i64", Int: "int",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64", Uint: "uint", Uintptr: "uintptr",
	Size: "size", Null: "null", Pointer: "pointer", Array: "array",
	Function: "function", Alias: "alias",
}

func (s Storage) String() string {
	if n, ok := storageNames[s]; ok {
		return n
	}
	return "unknown"
}

// storageFromKind maps the lexer keyword a PrimitiveType carries to its
// Storage.
var storageFromKind = map[lexer.Kind]Storage{
	lexer.KW_VOID: Void, lexer.KW_BOOL: Bool, lexer.KW_CHAR: Char, lexer.KW_STR: Str,
	lexer.KW_RUNE: Rune, lexer.KW_F32: F32, lexer.KW_F64: F64,
	lexer.KW_I8: I8, lexer.KW_I16: I16, lexer.KW_I32: I32, lexer.KW_I64: I64, lexer.KW_INT: Int,
	lexer.KW_U8: U8, lexer.KW_U16: U16, lexer.KW_U32: U32, lexer.KW_U64: U64,
	lexer.KW_UINT: Uint, lexer.KW_UINTPTR: Uintptr, lexer.KW_SIZE: Size,
}

// IsInteger reports whether s is one of the signed or unsigned integer
// storages (size/uintptr included).
func (s Storage) IsInteger() bool {
	switch s {
	case I8, I16, I32, I64, Int, U8, U16, U32, U64, Uint, Uintptr, Size:
		return true
	}
	return false
}

// IsSigned reports whether s is a signed integer storage.
func (s Storage) IsSigned() bool {
	switch s {
	case I8, I16, I32, I64, Int:
		return true
	}
	return false
}

// IsFloat reports whether s is a floating-point storage.
func (s Storage) IsFloat() bool {
	switch s {
	case F32, F64:
		return true
	}
	return false
}
