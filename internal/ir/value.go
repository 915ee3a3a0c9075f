package ir

// ValueKind is an IR value's tag.
type ValueKind int

const (
	VConst ValueKind = iota
	VGlobal
	VLabel
	VTemporary
)

// Value is a tagged IR operand. Every value carries its IR type; for
// VConst the numeric payload lives in one of WVal/LVal/SVal/DVal depending
// on Type.Kind.
type Value struct {
	Kind ValueKind
	Type *Type
	Name string // VGlobal/VLabel/VTemporary

	WVal uint32  // Byte/Half/Word
	LVal int64   // Long
	SVal float32 // Single
	DVal float64 // Double
}

// ConstWord builds an unsigned byte/half/word constant.
func ConstWord(t *Type, v uint32) Value { return Value{Kind: VConst, Type: t, WVal: v} }

// ConstLong builds a signed long constant.
func ConstLong(v int64) Value { return Value{Kind: VConst, Type: TLong, LVal: v} }

// ConstSingle builds a single-precision float constant.
func ConstSingle(v float32) Value { return Value{Kind: VConst, Type: TSingle, SVal: v} }

// ConstDouble builds a double-precision float constant.
func ConstDouble(v float64) Value { return Value{Kind: VConst, Type: TDouble, DVal: v} }

// Global references a named global symbol: `$name`.
func Global(t *Type, name string) Value { return Value{Kind: VGlobal, Type: t, Name: name} }

// Label references a block label: `@name`.
func Label(name string) Value { return Value{Kind: VLabel, Type: TVoid, Name: name} }

// Temporary references an SSA temporary: `%name`.
func Temporary(t *Type, name string) Value { return Value{Kind: VTemporary, Type: t, Name: name} }
