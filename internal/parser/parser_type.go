package parser

import (
	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/lexer"
)

var primitiveStorage = map[lexer.Kind]bool{
	lexer.KW_VOID: true, lexer.KW_BOOL: true, lexer.KW_CHAR: true, lexer.KW_STR: true,
	lexer.KW_RUNE: true, lexer.KW_F32: true, lexer.KW_F64: true,
	lexer.KW_I8: true, lexer.KW_I16: true, lexer.KW_I32: true, lexer.KW_I64: true, lexer.KW_INT: true,
	lexer.KW_U8: true, lexer.KW_U16: true, lexer.KW_U32: true, lexer.KW_U64: true,
	lexer.KW_UINT: true, lexer.KW_UINTPTR: true, lexer.KW_SIZE: true,
}

// typeFollowSet is the set of tokens that can introduce a type, used to
// build the "expected one of {...}" diagnostic.
var typeFollowSet = []lexer.Kind{
	lexer.KW_VOID, lexer.KW_BOOL, lexer.KW_CHAR, lexer.KW_STR, lexer.KW_RUNE,
	lexer.KW_F32, lexer.KW_F64, lexer.KW_I8, lexer.KW_I16, lexer.KW_I32, lexer.KW_I64,
	lexer.KW_INT, lexer.KW_U8, lexer.KW_U16, lexer.KW_U32, lexer.KW_U64, lexer.KW_UINT,
	lexer.KW_UINTPTR, lexer.KW_SIZE, lexer.KW_NULLABLE, lexer.STAR, lexer.KW_FN,
	lexer.ATTR_NORETURN, lexer.NAME,
}

// ParseType parses one type expression.
func (p *Parser) ParseType() ast.Type {
	p.trace.Enter("type")
	pos := p.peekPos()

	isConst := false
	tok := p.next()
	if tok.Kind == lexer.KW_CONST {
		isConst = true
	} else {
		p.unlex(tok)
	}

	t := p.parseTypeIntroducer(pos, isConst)
	p.trace.Leave("")
	return t
}

func (p *Parser) peekPos() ast.Pos {
	tok := p.next()
	p.unlex(tok)
	return tok.Pos
}

func (p *Parser) parseTypeIntroducer(pos ast.Pos, isConst bool) ast.Type {
	tok := p.next()

	switch {
	case primitiveStorage[tok.Kind]:
		return ast.NewPrimitiveType(pos, isConst, tok.Kind)

	case tok.Kind == lexer.KW_NULLABLE:
		p.want(lexer.STAR)
		referent := p.ParseType()
		return ast.NewPointerType(pos, isConst, true, referent)

	case tok.Kind == lexer.STAR:
		referent := p.ParseType()
		return ast.NewPointerType(pos, isConst, false, referent)

	case tok.Kind == lexer.ATTR_NORETURN:
		p.want(lexer.KW_FN)
		fn := p.parseFunctionType(pos, isConst)
		fn.Noreturn = true
		return fn

	case tok.Kind == lexer.KW_FN:
		return p.parseFunctionType(pos, isConst)

	case tok.Kind == lexer.NAME:
		p.unlex(tok)
		name := p.ParseIdentifier()
		return ast.NewAliasType(pos, isConst, name)

	case tok.Kind == lexer.KW_STRUCT:
		p.fatal(errors.PAR004, tok, "struct types are not implemented by this front end")
		return ast.NewStructType(pos, isConst)
	case tok.Kind == lexer.KW_UNION:
		p.fatal(errors.PAR004, tok, "union types are not implemented by this front end")
		return ast.NewUnionType(pos, isConst)
	case tok.Kind == lexer.KW_ENUM:
		p.fatal(errors.PAR004, tok, "enum types are not implemented by this front end")
		return ast.NewEnumType(pos, isConst)
	case tok.Kind == lexer.LPAREN:
		p.fatal(errors.PAR004, tok, "tagged union types are not implemented by this front end")
		return ast.NewTaggedUnionType(pos, isConst)

	default:
		p.expectOneOf(tok, typeFollowSet...)
		return nil // unreachable: expectOneOf is fatal
	}
}

func (p *Parser) parseFunctionType(pos ast.Pos, isConst bool) *ast.FunctionType {
	p.trace.Enter("prototype")
	fn := ast.NewFunctionType(pos, isConst)
	p.want(lexer.LPAREN)

	tok := p.next()
	if tok.Kind != lexer.RPAREN {
		p.unlex(tok)
		fn.Params, fn.Variadism = p.parseParameterList()
		p.want(lexer.RPAREN)
	}
	fn.Result = p.ParseType()
	p.trace.Leave("")
	return fn
}

// parseParameterList parses `(name : type, …)` with the two variadic
// conventions disambiguated by whichever was seen.
func (p *Parser) parseParameterList() ([]ast.Param, ast.Variadism) {
	p.trace.Enter("parameter-list")
	var params []ast.Param
	variadism := ast.NoVariadism

	for {
		nameTok := p.want(lexer.NAME)
		p.want(lexer.COLON)
		typ := p.ParseType()
		params = append(params, ast.Param{Name: nameTok.Text, Type: typ, Pos: nameTok.Pos})

		tok := p.next()
		switch tok.Kind {
		case lexer.COMMA:
			tok2 := p.next()
			if tok2.Kind == lexer.ELLIPSIS {
				variadism = ast.VariadicB
				tok3 := p.next()
				if tok3.Kind != lexer.COMMA {
					p.unlex(tok3)
				}
				p.trace.Leave("")
				return params, variadism
			}
			p.unlex(tok2)
			continue
		case lexer.ELLIPSIS:
			variadism = ast.VariadicA
			tok2 := p.next()
			if tok2.Kind != lexer.COMMA {
				p.unlex(tok2)
			}
			p.trace.Leave("")
			return params, variadism
		default:
			p.unlex(tok)
			p.trace.Leave("")
			return params, variadism
		}
	}
}
