package ir

// DefKind is an IR definition's variant.
type DefKind int

const (
	DefType DefKind = iota
	DefFunc
	DefData
)

// Def is one top-level IR definition: a type, a function, or a data
// object. Exactly one of TypeBody/FuncBody/DataBody is populated,
// selected by Kind.
type Def struct {
	Kind     DefKind
	Name     string
	Exported bool

	TypeBody TypeDef
	FuncBody FuncDef
	DataBody DataDef
}

// NewTypeDef builds a DefType definition.
func NewTypeDef(name string, body TypeDef) *Def {
	return &Def{Kind: DefType, Name: name, TypeBody: body}
}

// NewFuncDef builds a DefFunc definition. The first statement after the
// prelude must be a label; anything else panics.
func NewFuncDef(name string, exported bool, body FuncDef) *Def {
	if len(body.Body) == 0 || body.Body[0].Kind != SLabel {
		panic("ir: function body must begin with a label")
	}
	return &Def{Kind: DefFunc, Name: name, Exported: exported, FuncBody: body}
}

// NewDataDef builds a DefData definition.
func NewDataDef(name string, exported bool, body DataDef) *Def {
	return &Def{Kind: DefData, Name: name, Exported: exported, DataBody: body}
}

// TypeDef is an aggregate IR type's layout: struct-of-fields or
// union-of-alternatives.
type TypeDef struct {
	Comment string // optional `# ...` line describing the source type; empty to omit
	Align   int64  // UndefinedAlign to omit the "align A" clause
	IsUnion bool
	Fields  []Field
}

// FuncDef is a function definition's signature and body.
type FuncDef struct {
	Params  []Param
	Returns *Type // TVoid prints no return type at all
	Prelude []Stmt
	Body    []Stmt
}

// Param is one function parameter: its IR type and temporary name.
type Param struct {
	Type *Type
	Name string
}

// DataDef is a data object's section placement and ordered items.
type DataDef struct {
	Section  string // explicit section name; empty triggers the default rule
	SecFlags string // explicit section flags; only used alongside Section
	Items    []DataItem
}

// DataItemKind is a data item's tag.
type DataItemKind int

const (
	DataValue DataItemKind = iota
	DataZeroed
	DataString
	DataSymOffset
)

// DataItem is one entry in a data object's item list.
type DataItem struct {
	Kind DataItemKind

	Value Value  // DataValue
	Zero  uint64 // DataZeroed: run length in bytes
	Bytes []byte // DataString

	Sym    string // DataSymOffset
	Offset int64  // DataSymOffset
}
