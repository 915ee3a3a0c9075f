// Package parser implements a recursive-descent, LL(1) parser: a single
// token of lookahead via the lexer's Unlex buffer, and a fatal diagnostic
// on the first token outside the active production's follow set.
package parser

import (
	"fmt"
	"strings"

	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/ident"
	"github.com/velalang/velac/internal/lexer"
	"github.com/velalang/velac/internal/trace"
)

// Parser holds the lexer it consumes, plus its trace and diagnostic sinks.
// It keeps no lookahead of its own: the grammar never needs more than the
// lexer's own one-token unlex buffer.
type Parser struct {
	lex   *lexer.Lexer
	trace trace.Tracer
	sink  *errors.Sink
}

// New creates a Parser reading tokens from l. Diagnostics are reported
// through errors.Default unless overridden with SetSink.
func New(l *lexer.Lexer) *Parser {
	return &Parser{lex: l, trace: trace.NoOp{}, sink: errors.Default}
}

// SetTracer installs a trace sink (§6 "trace sink (optional)"); the default
// is a no-op.
func (p *Parser) SetTracer(t trace.Tracer) { p.trace = t }

// SetSink overrides the diagnostic sink, primarily for tests that want to
// observe a fatal diagnostic without killing the test binary.
func (p *Parser) SetSink(s *errors.Sink) { p.sink = s }

func (p *Parser) next() lexer.Token   { return p.lex.Lex() }
func (p *Parser) unlex(t lexer.Token) { p.lex.Unlex(t) }

// want consumes the next token and requires it to have kind k, reporting a
// PAR001 diagnostic (fatal) otherwise.
func (p *Parser) want(k lexer.Kind) lexer.Token {
	tok := p.next()
	if tok.Kind != k {
		p.unexpected(tok, k)
	}
	return tok
}

// expectOneOf fails with "unexpected X, expected one of {...}" naming every
// token in kinds that the current production could have accepted.
func (p *Parser) expectOneOf(tok lexer.Token, kinds ...lexer.Kind) {
	for _, k := range kinds {
		if tok.Kind == k {
			return
		}
	}
	p.unexpected(tok, kinds...)
}

func (p *Parser) unexpected(tok lexer.Token, expected ...lexer.Kind) {
	names := make([]string, len(expected))
	for i, k := range expected {
		names[i] = k.String()
	}
	msg := fmt.Sprintf("unexpected %s, expected one of {%s}", tok.String(), strings.Join(names, ", "))
	p.sink.Report(errors.PAR001, tok.Pos.Path, tok.Pos.Line, tok.Pos.Column, msg)
}

func (p *Parser) fatal(code errors.Code, tok lexer.Token, format string, args ...interface{}) {
	p.sink.Report(code, tok.Pos.Path, tok.Pos.Line, tok.Pos.Column, fmt.Sprintf(format, args...))
}

// ParseIdentifier parses one or more NAME tokens separated by '::'; the
// leftmost name becomes the outermost parent.
func (p *Parser) ParseIdentifier() *ident.Ident {
	p.trace.Enter("identifier")
	tok := p.want(lexer.NAME)
	id := ident.New(tok.Text)
	for {
		tok = p.next()
		if tok.Kind != lexer.DCOLON {
			p.unlex(tok)
			break
		}
		tok = p.want(lexer.NAME)
		id = ident.Child(id, tok.Text)
	}
	p.trace.Leave(id.String())
	return id
}

// ParseSubunit parses a full translation subunit: imports, then
// declarations.
func (p *Parser) ParseSubunit(path string) *ast.Subunit {
	sub := &ast.Subunit{Path: path}
	p.parseImports(sub)
	p.parseDecls(sub)
	p.want(lexer.EOF)
	return sub
}

func (p *Parser) parseImports(sub *ast.Subunit) {
	p.trace.Enter("imports")
	for {
		tok := p.next()
		if tok.Kind != lexer.KW_USE {
			p.unlex(tok)
			break
		}
		id := p.ParseIdentifier()
		p.want(lexer.SEMI)
		sub.Imports = append(sub.Imports, id)
	}
	p.trace.Leave("")
}

func (p *Parser) parseDecls(sub *ast.Subunit) {
	p.trace.Enter("decls")
	for {
		tok := p.next()
		if tok.Kind == lexer.EOF {
			p.unlex(tok)
			break
		}
		p.unlex(tok)

		exported := false
		tok = p.next()
		if tok.Kind == lexer.KW_EXPORT {
			exported = true
			p.trace.Message("export")
		} else {
			p.unlex(tok)
		}

		for _, d := range p.parseDecl(exported) {
			sub.Decls = append(sub.Decls, d)
		}
		p.want(lexer.SEMI)
	}
	p.trace.Leave("")
}

// parseDecl parses one declaration introducer, returning every declaration
// in its comma-separated group.
func (p *Parser) parseDecl(exported bool) []ast.Decl {
	tok := p.next()
	switch tok.Kind {
	case lexer.KW_LET:
		return p.parseGlobalDeclGroup(exported, ast.Let)
	case lexer.KW_CONST:
		return p.parseGlobalDeclGroup(exported, ast.Const)
	case lexer.KW_DEF:
		return p.parseGlobalDeclGroup(exported, ast.Def)
	case lexer.KW_TYPE:
		return p.parseTypeDeclGroup(exported)
	default:
		p.unlex(tok)
		return []ast.Decl{p.parseFuncDecl(exported)}
	}
}
