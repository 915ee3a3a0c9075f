package parser

import (
	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/lexer"
)

// exprFollowSet is every token that can start the narrow literal-expression
// grammar this core accepts as an initializer.
var exprFollowSet = []lexer.Kind{lexer.INT, lexer.FLOAT, lexer.STRING, lexer.RUNE, lexer.KW_NULL}

// ParseExpr parses one literal-expression initializer: an integer, unsigned
// integer, string, rune, or float literal, plus the `null` literal. Richer
// expression forms belong to the external check pass.
func (p *Parser) ParseExpr() ast.Expr {
	p.trace.Enter("simple-expression")
	tok := p.next()

	var expr ast.Expr
	switch tok.Kind {
	case lexer.INT:
		if isSignedLitStorage(tok.LitStorage) {
			expr = ast.NewIntLit(tok.Pos, tok.IntValue, tok.LitStorage)
		} else {
			expr = ast.NewUintLit(tok.Pos, tok.UintValue, tok.LitStorage)
		}
	case lexer.FLOAT:
		expr = ast.NewFloatLit(tok.Pos, tok.FloatValue, tok.LitStorage)
	case lexer.STRING:
		expr = ast.NewStringLit(tok.Pos, tok.Bytes)
	case lexer.RUNE:
		expr = ast.NewRuneLit(tok.Pos, tok.RuneValue)
	case lexer.KW_NULL:
		expr = ast.NewNullLit(tok.Pos)
	default:
		p.expectOneOf(tok, exprFollowSet...)
		return nil // unreachable: expectOneOf is fatal
	}

	p.trace.Leave(tok.Text)
	return expr
}

func isSignedLitStorage(storage string) bool {
	switch storage {
	case "i8", "i16", "i32", "i64", "int":
		return true
	}
	return false
}
