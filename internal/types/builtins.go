package types

import "github.com/velalang/velac/internal/target"

var primitiveStorages = []Storage{
	Void, Bool, Char, Str, Rune, F32, F64,
	I8, I16, I32, I64, Int, U8, U16, U32, U64, Uint, Uintptr, Size, Null,
}

func dimsFromLayout(layout target.Layout, storage Storage) target.Dims {
	switch storage {
	case Void:
		return target.Dims{Size: 0, Align: 0}
	case Bool:
		return layout.Bool
	case Char:
		return layout.Char
	case Str:
		return layout.Str
	case Rune:
		return layout.Rune
	case F32:
		return layout.F32
	case F64:
		return layout.F64
	case I8:
		return layout.I8
	case I16:
		return layout.I16
	case I32:
		return layout.I32
	case I64:
		return layout.I64
	case Int:
		return layout.Int
	case U8:
		return layout.U8
	case U16:
		return layout.U16
	case U32:
		return layout.U32
	case U64:
		return layout.U64
	case Uint:
		return layout.Uint
	case Uintptr:
		return layout.Uintptr
	case Size:
		return layout.Size
	case Null:
		return target.Dims{Size: Undefined, Align: Undefined}
	default:
		return target.Dims{Size: Undefined, Align: Undefined}
	}
}

// buildBuiltins constructs the resident primitive singletons for a target
// layout. Each Store builds its own set, since two Stores may be
// configured with different target.Layouts.
func buildBuiltins(layout target.Layout) (builtins, consts map[Storage]*Type) {
	builtins = make(map[Storage]*Type, len(primitiveStorages))
	consts = make(map[Storage]*Type, len(primitiveStorages))

	for _, storage := range primitiveStorages {
		dims := dimsFromLayout(layout, storage)
		b := &Type{Storage: storage, Size: dims.Size, Align: dims.Align}
		c := &Type{Storage: storage, Flags: ConstFlag, Size: dims.Size, Align: dims.Align}
		b.hash = computeHash(b)
		c.hash = computeHash(c)
		builtins[storage] = b
		consts[storage] = c
	}
	// const void and void are the same type; the same holds for null.
	consts[Void] = builtins[Void]
	consts[Null] = builtins[Null]
	return builtins, consts
}
