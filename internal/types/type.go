package types

import "github.com/velalang/velac/internal/ast"

// Undefined marks a Size or Align that is not known: function types, and
// length-unspecified arrays.
const Undefined int64 = -1

// Flags holds the interned type's flag set. Only the const flag exists
// today; the type is kept distinct from a bare bool so LookupWithFlags can
// grow more bits later without changing its signature.
type Flags uint8

const ConstFlag Flags = 1 << 0

// Type is the canonical, interned type record. Two Types are equal iff
// they are the same object by identity — nothing outside this package
// constructs one directly.
type Type struct {
	Storage Storage
	Flags   Flags
	Size    int64
	Align   int64

	Pointer  PointerPayload
	Array    ArrayPayload
	Function FunctionPayload
	Alias    AliasPayload

	hash uint64 // cached structural hash, set once by Store.intern
}

// Const reports whether the type carries the const flag.
func (t *Type) Const() bool { return t.Flags&ConstFlag != 0 }

// PointerPayload holds a pointer type's referent and nullability.
type PointerPayload struct {
	Referent *Type
	Nullable bool
}

// ArrayPayload holds an array type's element, length (when known), and
// whether it is the expandable `[*]T` form.
type ArrayPayload struct {
	Element    *Type
	Length     uint64
	HasLength  bool
	Expandable bool
}

// FunctionPayload holds a function type's result, parameter types, and
// variadic convention.
type FunctionPayload struct {
	Result    *Type
	Params    []*Type
	Variadism ast.Variadism
	Noreturn  bool
}

// AliasPayload holds the unresolved dotted name an alias type refers to.
// Resolving it to its target's storage is the external check pass's
// responsibility.
type AliasPayload struct {
	Name string
}

func (t *Type) String() string {
	switch t.Storage {
	case Pointer:
		s := "*"
		if t.Pointer.Nullable {
			s = "nullable *"
		}
		return s + t.Pointer.Referent.String()
	case Array:
		if !t.Array.HasLength {
			return "[*]" + t.Array.Element.String()
		}
		return "[]" + t.Array.Element.String()
	case Function:
		return "fn(...) " + t.Function.Result.String()
	case Alias:
		return t.Alias.Name
	default:
		return t.Storage.String()
	}
}
