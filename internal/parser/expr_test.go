package parser

import (
	"testing"

	"github.com/velalang/velac/internal/ast"
)

func TestParseIntLitSigned(t *testing.T) {
	// A signed suffix forces IntLit even though the digits are positive.
	expr := mustParseExpr(t, "42i32")
	lit, ok := expr.(*ast.IntLit)
	if !ok {
		t.Fatalf("ParseExpr = %T, want *ast.IntLit", expr)
	}
	if lit.Value != 42 || lit.Storage != "i32" {
		t.Errorf("lit = %#v, want {42, i32}", lit)
	}
}

func TestParseIntLitUnsignedDefault(t *testing.T) {
	expr := mustParseExpr(t, "7")
	lit, ok := expr.(*ast.UintLit)
	if !ok {
		t.Fatalf("ParseExpr = %T, want *ast.UintLit", expr)
	}
	if lit.Value != 7 || lit.Storage != "uint" {
		t.Errorf("lit = %#v, want {7, uint}", lit)
	}
}

func TestParseFloatLit(t *testing.T) {
	expr := mustParseExpr(t, "3.5")
	lit, ok := expr.(*ast.FloatLit)
	if !ok {
		t.Fatalf("ParseExpr = %T, want *ast.FloatLit", expr)
	}
	if lit.Value != 3.5 {
		t.Errorf("Value = %v, want 3.5", lit.Value)
	}
}

func TestParseStringLit(t *testing.T) {
	expr := mustParseExpr(t, `"hello"`)
	lit, ok := expr.(*ast.StringLit)
	if !ok {
		t.Fatalf("ParseExpr = %T, want *ast.StringLit", expr)
	}
	if string(lit.Value) != "hello" {
		t.Errorf("Value = %q, want hello", lit.Value)
	}
}

func TestParseRuneLit(t *testing.T) {
	expr := mustParseExpr(t, "'a'")
	lit, ok := expr.(*ast.RuneLit)
	if !ok {
		t.Fatalf("ParseExpr = %T, want *ast.RuneLit", expr)
	}
	if lit.Value != 'a' {
		t.Errorf("Value = %q, want 'a'", lit.Value)
	}
}

func TestParseNullLit(t *testing.T) {
	expr := mustParseExpr(t, "null")
	if _, ok := expr.(*ast.NullLit); !ok {
		t.Fatalf("ParseExpr = %T, want *ast.NullLit", expr)
	}
}
