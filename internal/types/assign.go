package types

// IsAssignable reports whether a value of type from may be assigned to a
// storage location of type to. Const and non-const forms of the same type
// are mutually assignable; everything else is decided per storage.
func (s *Store) IsAssignable(to, from *Type) bool {
	if to.Const() {
		to = s.LookupWithFlags(to, to.Flags&^ConstFlag)
	}
	if from.Const() {
		from = s.LookupWithFlags(from, from.Flags&^ConstFlag)
	}

	if to == from {
		return true
	}

	switch {
	case to.Storage == Uintptr:
		return (from.Storage.IsInteger() && !from.Storage.IsSigned() && to.Size >= from.Size) ||
			from.Storage == Pointer
	case to.Storage.IsSigned():
		return from.Storage.IsInteger() && from.Storage.IsSigned() && to.Size >= from.Size
	case to.Storage.IsInteger(): // unsigned, Uintptr excluded above
		return from.Storage.IsInteger() && !from.Storage.IsSigned() && to.Size >= from.Size
	case to.Storage.IsFloat():
		return from.Storage.IsFloat()
	case to.Storage == Pointer:
		switch from.Storage {
		case Uintptr:
			return true
		case Null:
			return to.Pointer.Nullable
		case Pointer:
			if to.Pointer.Referent != from.Pointer.Referent {
				return false
			}
			if from.Pointer.Nullable {
				return to.Pointer.Nullable
			}
			return true
		default:
			return false
		}
	default:
		// array, bool, char, function, null, rune, str, void, alias: only
		// assignable from themselves, already handled by the identity check.
		return false
	}
}
