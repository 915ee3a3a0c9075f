package types

import (
	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/errors"
)

// ConstEvaluator resolves an array length expression to a concrete unsigned
// value. The type store consumes it rather than implementing general
// constant folding itself, so a caller can supply a richer evaluator once
// one exists.
type ConstEvaluator interface {
	EvalArrayLength(expr ast.Expr) (length uint64, ok bool)
}

// LiteralEvaluator resolves only bare integer literals, the one constant
// form this core folds on its own; anything beyond that is left to a
// caller-supplied ConstEvaluator.
type LiteralEvaluator struct{}

func (LiteralEvaluator) EvalArrayLength(expr ast.Expr) (uint64, bool) {
	switch v := expr.(type) {
	case *ast.UintLit:
		return v.Value, true
	case *ast.IntLit:
		if v.Value < 0 {
			return 0, false
		}
		return uint64(v.Value), true
	default:
		return 0, false
	}
}

// arrayLength resolves an array type's declared length: unknown for an
// expandable array, otherwise the evaluator's result, fatal (SEM002) if the
// expression isn't a usable integer constant.
func (s *Store) arrayLength(a *ast.ArrayType) (uint64, bool) {
	if a.Expandable || a.Length == nil {
		return 0, false
	}
	length, ok := s.Eval.EvalArrayLength(a.Length)
	if !ok {
		errors.Fatal(errors.SEM002, a.Position().Path, a.Position().Line, a.Position().Column,
			"array length must be a constant, non-negative integer expression")
	}
	return length, true
}
