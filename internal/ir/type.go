// Package ir models the textual SSA-like intermediate representation the
// emitter serializes for the downstream backend: typed values, statements,
// and top-level type/function/data definitions held in program order.
package ir

// Kind is an IR type's scalar or aggregate flavor.
type Kind int

const (
	Byte Kind = iota
	Half
	Word
	Long
	Single
	Double
	Aggregate
	Void
)

// Type is an IR value's or field's type. Aggregate types carry a Name that
// resolves to a Def of kind TypeDef elsewhere in the owning Program.
type Type struct {
	Kind Kind
	Name string // only meaningful when Kind == Aggregate
}

var (
	TByte   = &Type{Kind: Byte}
	THalf   = &Type{Kind: Half}
	TWord   = &Type{Kind: Word}
	TLong   = &Type{Kind: Long}
	TSingle = &Type{Kind: Single}
	TDouble = &Type{Kind: Double}
	TVoid   = &Type{Kind: Void}
)

// NewAggregate builds a named aggregate IR type reference.
func NewAggregate(name string) *Type { return &Type{Kind: Aggregate, Name: name} }

// Field is one member of an aggregate type definition: an IR type and an
// optional repeat count.
type Field struct {
	Type  *Type
	Count uint64 // 0 means "omit the count"
}

// UndefinedAlign marks a TypeDef with no explicit alignment; the "align A"
// clause is omitted from its emitted form.
const UndefinedAlign int64 = -1

// sameType reports whether two IR types denote the same scalar or the same
// named aggregate.
func sameType(a, b *Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Kind == b.Kind && a.Name == b.Name
}
