package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/lexer"
	"github.com/velalang/velac/internal/target"
	"github.com/velalang/velac/internal/trace"
)

func constIntPtr(pos ast.Pos) ast.Type {
	return ast.NewPointerType(pos, false, false,
		ast.NewPrimitiveType(pos, true, lexer.KW_INT))
}

// Structurally equal AST types intern to the same object.
func TestLookupATypeInterningIdentity(t *testing.T) {
	s := NewStore(LiteralEvaluator{})
	pos := ast.Pos{Path: "t.vl", Line: 1, Column: 1}

	a := s.LookupAType(constIntPtr(pos))
	b := s.LookupAType(constIntPtr(pos))
	assert.Same(t, a, b, "structurally equal types must intern to the same object")
}

// `type a = *const int, b = *const int;` resolves both aliases to the
// same interned type.
func TestAliasDeclarationsShareInternedType(t *testing.T) {
	s := NewStore(LiteralEvaluator{})
	pos := ast.Pos{Path: "t.vl", Line: 1, Column: 1}

	a := s.LookupAType(constIntPtr(pos))
	b := s.LookupAType(constIntPtr(pos))
	require.Same(t, a, b)
	assert.Equal(t, Pointer, a.Storage)
	assert.True(t, a.Pointer.Referent.Const())
}

// LookupWithFlags round-trips.
func TestLookupWithFlagsRoundTrip(t *testing.T) {
	s := NewStore(LiteralEvaluator{})
	pos := ast.Pos{Path: "t.vl", Line: 1, Column: 1}

	orig := s.LookupAType(ast.NewPointerType(pos, false, false,
		ast.NewPrimitiveType(pos, false, lexer.KW_INT)))

	withConst := s.LookupWithFlags(orig, ConstFlag)
	back := s.LookupWithFlags(withConst, orig.Flags)
	assert.Same(t, orig, back)
}

func TestBuiltinPrimitivesAreSingletonsNotInterned(t *testing.T) {
	s := NewStore(LiteralEvaluator{})
	pos := ast.Pos{Path: "t.vl", Line: 1, Column: 1}

	a := s.LookupAType(ast.NewPrimitiveType(pos, false, lexer.KW_INT))
	b := s.LookupAType(ast.NewPrimitiveType(pos, false, lexer.KW_INT))
	assert.Same(t, a, b)
	assert.Same(t, s.builtins[Int], a)

	c := s.LookupAType(ast.NewPrimitiveType(pos, true, lexer.KW_INT))
	assert.Same(t, s.consts[Int], c)
	assert.NotSame(t, a, c)
}

func TestLookupArraySizeComputedFromElement(t *testing.T) {
	s := NewStore(LiteralEvaluator{})
	pos := ast.Pos{Path: "t.vl", Line: 1, Column: 1}

	arr := s.LookupAType(ast.NewArrayType(pos, false,
		ast.NewUintLit(pos, 4, "uint"),
		ast.NewPrimitiveType(pos, false, lexer.KW_I32), false))
	require.Equal(t, Array, arr.Storage)
	assert.Equal(t, int64(16), arr.Size) // 4 * sizeof(i32)
	assert.Equal(t, int64(4), arr.Align)
}

func TestLookupArrayExpandableHasUndefinedSize(t *testing.T) {
	s := NewStore(LiteralEvaluator{})
	pos := ast.Pos{Path: "t.vl", Line: 1, Column: 1}

	arr := s.LookupAType(ast.NewArrayType(pos, false, nil,
		ast.NewPrimitiveType(pos, false, lexer.KW_I32), true))
	assert.Equal(t, Undefined, arr.Size)
	assert.False(t, arr.Array.HasLength)
}

func TestLookupFunctionTypeUndefinedSize(t *testing.T) {
	s := NewStore(LiteralEvaluator{})
	pos := ast.Pos{Path: "t.vl", Line: 1, Column: 1}

	fn := s.LookupAType(ast.NewFunctionType(pos, false))
	assert.Equal(t, Function, fn.Storage)
	assert.Equal(t, Undefined, fn.Size)
	assert.Equal(t, Undefined, fn.Align)
}

func TestStoreLayoutDrivesBuiltinAndPointerSizes(t *testing.T) {
	layout := target.Default
	layout.Pointer = target.Dims{Size: 4, Align: 4}
	layout.Int = target.Dims{Size: 8, Align: 8}
	s := NewStoreWithLayout(LiteralEvaluator{}, layout)
	pos := ast.Pos{Path: "t.vl", Line: 1, Column: 1}

	intT := s.LookupAType(ast.NewPrimitiveType(pos, false, lexer.KW_INT))
	assert.Equal(t, int64(8), intT.Size)

	ptr := s.LookupPointer(intT, false)
	assert.Equal(t, int64(4), ptr.Size)
	assert.Equal(t, int64(4), ptr.Align)
}

func TestStoreTracerObservesLookups(t *testing.T) {
	var buf bytes.Buffer
	s := NewStore(LiteralEvaluator{})
	s.SetTracer(trace.NewVerbose(&buf))
	pos := ast.Pos{Path: "t.vl", Line: 1, Column: 1}

	s.LookupAType(ast.NewPointerType(pos, false, false,
		ast.NewPrimitiveType(pos, false, lexer.KW_INT)))

	got := buf.String()
	assert.Contains(t, got, "-> atype")
	assert.Contains(t, got, "<- pointer")
	assert.Contains(t, got, "<- int", "the referent lookup nests inside the pointer's")
}

func TestDistinctPointeeYieldsDistinctPointerTypes(t *testing.T) {
	s := NewStore(LiteralEvaluator{})
	pos := ast.Pos{Path: "t.vl", Line: 1, Column: 1}

	intPtr := s.LookupAType(ast.NewPointerType(pos, false, false,
		ast.NewPrimitiveType(pos, false, lexer.KW_INT)))
	boolPtr := s.LookupAType(ast.NewPointerType(pos, false, false,
		ast.NewPrimitiveType(pos, false, lexer.KW_BOOL)))
	assert.NotSame(t, intPtr, boolPtr)
}
