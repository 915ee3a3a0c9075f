package types

import (
	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/target"
	"github.com/velalang/velac/internal/trace"
)

const bucketCount = 256
const djb2Init uint64 = 5381

func djb2(hash, v uint64) uint64 { return hash*33 + v }

func boolU64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Store is the hash-consed type table. Every non-builtin Type it returns is
// owned by the Store and lives for the Store's lifetime.
//
// LookupAType always interns a node's substructure before building the node
// itself, so every payload pointer reaching this package's hash/equality
// code is already canonical and child types compare by pointer identity
// rather than by re-walking their structure.
type Store struct {
	buckets [bucketCount][]*Type
	Eval    ConstEvaluator

	builtins map[Storage]*Type
	consts   map[Storage]*Type

	pointerSize  int64
	pointerAlign int64

	trace trace.Tracer
}

// NewStore creates an empty Store using target.Default's "design default:
// 8/8" layout. eval resolves array-length expressions; pass
// LiteralEvaluator{} when only bare integer literals need to be handled.
func NewStore(eval ConstEvaluator) *Store {
	return NewStoreWithLayout(eval, target.Default)
}

// NewStoreWithLayout creates an empty Store using a specific target
// layout, as loaded by target.Load from a YAML configuration file.
func NewStoreWithLayout(eval ConstEvaluator, layout target.Layout) *Store {
	s := &Store{
		Eval:         eval,
		pointerSize:  layout.Pointer.Size,
		pointerAlign: layout.Pointer.Align,
		trace:        trace.NoOp{},
	}
	s.builtins, s.consts = buildBuiltins(layout)
	return s
}

// SetTracer installs a trace sink; the default is a no-op.
func (s *Store) SetTracer(t trace.Tracer) { s.trace = t }

// LookupAType interns the AST type t, recursively interning its
// substructure first.
func (s *Store) LookupAType(t ast.Type) *Type {
	s.trace.Enter("atype")
	typ := s.lookupAType(t)
	s.trace.Leave(typ.Storage.String())
	return typ
}

func (s *Store) lookupAType(t ast.Type) *Type {
	isConst := t.Constant()

	switch a := t.(type) {
	case *ast.PrimitiveType:
		storage, ok := storageFromKind[a.Storage]
		if !ok {
			storage = Void
		}
		return s.builtin(storage, isConst)

	case *ast.PointerType:
		referent := s.LookupAType(a.Referent)
		return s.lookupPointer(referent, a.Nullable, isConst)

	case *ast.ArrayType:
		element := s.LookupAType(a.Element)
		length, hasLength := s.arrayLength(a)
		return s.lookupArray(element, length, hasLength, a.Expandable, isConst)

	case *ast.FunctionType:
		// A function type built without a result is treated as returning void.
		result := s.builtin(Void, false)
		if a.Result != nil {
			result = s.LookupAType(a.Result)
		}
		params := make([]*Type, len(a.Params))
		for i, p := range a.Params {
			params[i] = s.LookupAType(p.Type)
		}
		return s.lookupFunction(result, params, a.Variadism, a.Noreturn, isConst)

	case *ast.AliasType:
		return s.lookupAlias(a.Name.String(), isConst)

	default:
		// struct/union/tagged-union/enum: this front end's parser never
		// constructs these variants (it rejects them with PAR004), so the
		// type store never needs to resolve them either.
		return s.builtin(Void, isConst)
	}
}

// builtin returns the resident singleton for a primitive storage, never
// touching the bucket table.
func (s *Store) builtin(storage Storage, isConst bool) *Type {
	if storage == Void || storage == Null {
		// const void and void are the same type; the same holds for null.
		return s.builtins[storage]
	}
	if isConst {
		return s.consts[storage]
	}
	return s.builtins[storage]
}

func (s *Store) lookupPointer(referent *Type, nullable, isConst bool) *Type {
	candidate := &Type{
		Storage: Pointer,
		Size:    s.pointerSize,
		Align:   s.pointerAlign,
		Pointer: PointerPayload{Referent: referent, Nullable: nullable},
	}
	if isConst {
		candidate.Flags = ConstFlag
	}
	return s.intern(candidate)
}

func (s *Store) lookupArray(element *Type, length uint64, hasLength, expandable, isConst bool) *Type {
	candidate := &Type{
		Storage: Array,
		Align:   element.Align,
		Array:   ArrayPayload{Element: element, Length: length, HasLength: hasLength, Expandable: expandable},
	}
	if hasLength && element.Size != Undefined {
		candidate.Size = element.Size * int64(length)
	} else {
		candidate.Size = Undefined
	}
	if isConst {
		candidate.Flags = ConstFlag
	}
	return s.intern(candidate)
}

func (s *Store) lookupFunction(result *Type, params []*Type, variadism ast.Variadism, noreturn, isConst bool) *Type {
	candidate := &Type{
		Storage:  Function,
		Size:     Undefined,
		Align:    Undefined,
		Function: FunctionPayload{Result: result, Params: params, Variadism: variadism, Noreturn: noreturn},
	}
	if isConst {
		candidate.Flags = ConstFlag
	}
	return s.intern(candidate)
}

func (s *Store) lookupAlias(name string, isConst bool) *Type {
	candidate := &Type{
		Storage: Alias,
		Size:    Undefined,
		Align:   Undefined,
		Alias:   AliasPayload{Name: name},
	}
	if isConst {
		candidate.Flags = ConstFlag
	}
	return s.intern(candidate)
}

// LookupWithFlags returns the canonical type with the same payload as t but
// flags replaced by f. Builtins round-trip through
// the const/non-const singleton pair; everything else goes through the
// bucket table.
func (s *Store) LookupWithFlags(t *Type, f Flags) *Type {
	if t.Flags == f {
		return t
	}
	if t.Storage != Pointer && t.Storage != Array && t.Storage != Function && t.Storage != Alias {
		return s.builtin(t.Storage, f&ConstFlag != 0)
	}
	candidate := *t
	candidate.Flags = f
	return s.intern(&candidate)
}

// LookupPointer interns `*referent` or `nullable *referent`.
func (s *Store) LookupPointer(referent *Type, nullable bool) *Type {
	return s.lookupPointer(referent, nullable, false)
}

// LookupArray interns a fixed- or unspecified-length array of element.
func (s *Store) LookupArray(element *Type, length uint64, hasLength, expandable bool) *Type {
	return s.lookupArray(element, length, hasLength, expandable, false)
}

// intern hashes candidate's structural shape, walks its bucket chain for a
// structural match, and appends candidate if none is found.
func (s *Store) intern(candidate *Type) *Type {
	candidate.hash = computeHash(candidate)
	idx := candidate.hash % bucketCount
	for _, existing := range s.buckets[idx] {
		if equalShape(existing, candidate) {
			return existing
		}
	}
	s.buckets[idx] = append(s.buckets[idx], candidate)
	return candidate
}

func computeHash(t *Type) uint64 {
	h := djb2Init
	h = djb2(h, uint64(t.Storage))
	h = djb2(h, uint64(t.Flags))
	switch t.Storage {
	case Pointer:
		h = djb2(h, boolU64(t.Pointer.Nullable))
		h = djb2(h, t.Pointer.Referent.hash)
	case Array:
		h = djb2(h, t.Array.Element.hash)
		h = djb2(h, t.Array.Length)
		h = djb2(h, boolU64(t.Array.HasLength))
		h = djb2(h, boolU64(t.Array.Expandable))
	case Function:
		h = djb2(h, t.Function.Result.hash)
		h = djb2(h, uint64(t.Function.Variadism))
		h = djb2(h, boolU64(t.Function.Noreturn))
		for _, p := range t.Function.Params {
			h = djb2(h, p.hash)
		}
	case Alias:
		for i := 0; i < len(t.Alias.Name); i++ {
			h = djb2(h, uint64(t.Alias.Name[i]))
		}
	}
	return h
}

func equalShape(a, b *Type) bool {
	if a.Storage != b.Storage || a.Flags != b.Flags {
		return false
	}
	switch a.Storage {
	case Pointer:
		return a.Pointer.Nullable == b.Pointer.Nullable &&
			a.Pointer.Referent == b.Pointer.Referent
	case Array:
		return a.Array.Element == b.Array.Element &&
			a.Array.Length == b.Array.Length &&
			a.Array.HasLength == b.Array.HasLength &&
			a.Array.Expandable == b.Array.Expandable
	case Function:
		if a.Function.Result != b.Function.Result ||
			a.Function.Variadism != b.Function.Variadism ||
			a.Function.Noreturn != b.Function.Noreturn ||
			len(a.Function.Params) != len(b.Function.Params) {
			return false
		}
		for i := range a.Function.Params {
			if a.Function.Params[i] != b.Function.Params[i] {
				return false
			}
		}
		return true
	case Alias:
		return a.Alias.Name == b.Alias.Name
	default:
		return true
	}
}
