package parser

import (
	"unicode"

	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/lexer"
)

// parseGlobalDeclGroup parses one `let`/`const`/`def` introducer and every
// comma-separated declaration that shares it. Attributes are per-declaration
// and are not shared across the group.
func (p *Parser) parseGlobalDeclGroup(exported bool, kind ast.BindingKind) []ast.Decl {
	p.trace.Enter("global")
	var decls []ast.Decl

	for {
		pos := p.peekPos()

		var symbol *string
		if kind == ast.Let || kind == ast.Const {
			tok := p.next()
			if tok.Kind == lexer.ATTR_SYMBOL {
				s := p.parseAttrSymbol()
				symbol = &s
			} else {
				p.unlex(tok)
			}
		}

		nameTok := p.want(lexer.NAME)
		p.want(lexer.COLON)
		typ := p.ParseType()
		if kind == ast.Const {
			typ = constify(typ)
		}
		p.want(lexer.ASSIGN)
		init := p.ParseExpr()

		decls = append(decls, ast.NewGlobalDecl(pos, exported, kind, nameTok.Text, typ, init, symbol))

		if !p.moreInGroup(lexer.NAME, lexer.ATTR_SYMBOL) {
			break
		}
	}

	p.trace.Leave("")
	return decls
}

// parseTypeDeclGroup parses `type name = T` and any comma-separated peers.
func (p *Parser) parseTypeDeclGroup(exported bool) []ast.Decl {
	p.trace.Enter("typedef")
	var decls []ast.Decl

	for {
		pos := p.peekPos()
		nameTok := p.want(lexer.NAME)
		p.want(lexer.ASSIGN)
		typ := p.ParseType()
		decls = append(decls, ast.NewTypeDecl(pos, exported, nameTok.Text, typ))

		if !p.moreInGroup(lexer.NAME) {
			break
		}
	}

	p.trace.Leave("")
	return decls
}

// moreInGroup implements the "comma then another declaration" lookahead
// shared by parseGlobalDeclGroup/parseTypeDeclGroup: a COMMA continues the
// group only if the token after it could start another declaration in the
// group. Otherwise the COMMA is consumed and dropped and the token after it
// is left for the caller, so a trailing comma before `;` is accepted.
func (p *Parser) moreInGroup(starts ...lexer.Kind) bool {
	tok := p.next()
	if tok.Kind != lexer.COMMA {
		p.unlex(tok)
		return false
	}
	tok2 := p.next()
	p.unlex(tok2)
	for _, k := range starts {
		if tok2.Kind == k {
			return true
		}
	}
	return false
}

// parseAttrSymbol parses the argument of `@symbol("literal")`, validating
// the character class against `[A-Za-z_.$][A-Za-z0-9_.$]*`.
func (p *Parser) parseAttrSymbol() string {
	p.want(lexer.LPAREN)
	tok := p.want(lexer.STRING)
	sym := string(tok.Bytes)
	if !isValidSymbol(sym) {
		p.fatal(errors.PAR005, tok, "invalid symbol %q: must match [A-Za-z_.$][A-Za-z0-9_.$]*", sym)
	}
	p.want(lexer.RPAREN)
	return sym
}

func isValidSymbol(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		ok := unicode.IsLetter(r) || r == '_' || r == '.' || r == '$' || (i > 0 && unicode.IsDigit(r))
		if !ok {
			return false
		}
		if i == 0 && unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// parseFuncDecl parses a function declaration: any subset of its attributes,
// `fn`, its identifier, prototype, `=`, and its literal body expression.
func (p *Parser) parseFuncDecl(exported bool) ast.Decl {
	p.trace.Enter("fn")
	pos := p.peekPos()

	var attrs ast.Attrs
attrsLoop:
	for {
		tok := p.next()
		switch tok.Kind {
		case lexer.ATTR_INIT:
			attrs.Init = true
		case lexer.ATTR_FINI:
			attrs.Fini = true
		case lexer.ATTR_SYMBOL:
			s := p.parseAttrSymbol()
			attrs.Symbol = &s
		case lexer.ATTR_TEST:
			attrs.Test = true
		case lexer.ATTR_NORETURN:
			attrs.Noreturn = true
		default:
			p.unlex(tok)
			break attrsLoop
		}
	}

	p.want(lexer.KW_FN)
	id := p.ParseIdentifier()
	params, variadism, result := p.parsePrototype()
	p.want(lexer.ASSIGN)
	init := p.ParseExpr()

	decl := ast.NewFuncDecl(pos, exported, id.String(), params, result, variadism, attrs, init)
	p.trace.Leave(id.String())
	return decl
}

func (p *Parser) parsePrototype() ([]ast.Param, ast.Variadism, ast.Type) {
	p.want(lexer.LPAREN)
	var params []ast.Param
	variadism := ast.NoVariadism

	tok := p.next()
	if tok.Kind != lexer.RPAREN {
		p.unlex(tok)
		params, variadism = p.parseParameterList()
		p.want(lexer.RPAREN)
	}
	result := p.ParseType()
	return params, variadism, result
}

// constify returns typ with its const flag set; a `const` binding's declared
// type is always const even when the source spelling omits the qualifier.
func constify(t ast.Type) ast.Type {
	switch v := t.(type) {
	case *ast.PrimitiveType:
		return ast.NewPrimitiveType(v.Position(), true, v.Storage)
	case *ast.PointerType:
		return ast.NewPointerType(v.Position(), true, v.Nullable, v.Referent)
	case *ast.FunctionType:
		fn := ast.NewFunctionType(v.Position(), true)
		fn.Params, fn.Result, fn.Variadism, fn.Noreturn = v.Params, v.Result, v.Variadism, v.Noreturn
		return fn
	case *ast.ArrayType:
		return ast.NewArrayType(v.Position(), true, v.Length, v.Element, v.Expandable)
	case *ast.AliasType:
		return ast.NewAliasType(v.Position(), true, v.Name)
	default:
		return t
	}
}
