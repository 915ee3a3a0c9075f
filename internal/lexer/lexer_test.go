package lexer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/velalang/velac/internal/trace"
)

func TestNextTokenBasics(t *testing.T) {
	input := `let x: int = 5;
export fn add(a: int, b: int) int = 0;`

	tests := []struct {
		kind Kind
		text string
	}{
		{KW_LET, "let"},
		{NAME, "x"},
		{COLON, ":"},
		{KW_INT, "int"},
		{ASSIGN, "="},
		{INT, "5"},
		{SEMI, ";"},
		{KW_EXPORT, "export"},
		{KW_FN, "fn"},
		{NAME, "add"},
		{LPAREN, "("},
		{NAME, "a"},
		{COLON, ":"},
		{KW_INT, "int"},
		{COMMA, ","},
		{NAME, "b"},
		{COLON, ":"},
		{KW_INT, "int"},
		{RPAREN, ")"},
		{KW_INT, "int"},
		{ASSIGN, "="},
		{INT, "0"},
		{SEMI, ";"},
		{EOF, ""},
	}

	l := New([]byte(input), "test.vl")
	for i, tt := range tests {
		tok := l.Lex()
		if tok.Kind != tt.kind {
			t.Fatalf("token %d: Kind = %v, want %v (text %q)", i, tok.Kind, tt.kind, tok.Text)
		}
		if tt.text != "" && tok.Text != tt.text {
			t.Fatalf("token %d: Text = %q, want %q", i, tok.Text, tt.text)
		}
	}
}

func TestLexUnlexRoundtrip(t *testing.T) {
	l := New([]byte("a b c"), "test.vl")
	l.Lex() // a
	second := l.Lex()
	l.Unlex(second)
	again := l.Lex()
	if again.Kind != second.Kind || again.Text != second.Text || again.Pos != second.Pos {
		t.Fatalf("Unlex/Lex roundtrip mismatch: got %+v, want %+v", again, second)
	}
	third := l.Lex()
	if third.Text != "c" {
		t.Fatalf("expected third token 'c', got %q", third.Text)
	}
}

func TestUnlexTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on double Unlex")
		}
	}()
	l := New([]byte("a b"), "test.vl")
	tok := l.Lex()
	l.Unlex(tok)
	l.Unlex(tok)
}

func TestDoubleColonAndEllipsis(t *testing.T) {
	l := New([]byte("std::io ..."), "test.vl")
	if tok := l.Lex(); tok.Kind != NAME || tok.Text != "std" {
		t.Fatalf("got %v %q", tok.Kind, tok.Text)
	}
	if tok := l.Lex(); tok.Kind != DCOLON {
		t.Fatalf("got %v, want DCOLON", tok.Kind)
	}
	if tok := l.Lex(); tok.Kind != NAME || tok.Text != "io" {
		t.Fatalf("got %v %q", tok.Kind, tok.Text)
	}
	if tok := l.Lex(); tok.Kind != ELLIPSIS {
		t.Fatalf("got %v, want ELLIPSIS", tok.Kind)
	}
}

func TestAttributeTokens(t *testing.T) {
	l := New([]byte(`@init @noreturn @symbol("_start")`), "test.vl")
	if tok := l.Lex(); tok.Kind != ATTR_INIT {
		t.Fatalf("got %v, want ATTR_INIT", tok.Kind)
	}
	if tok := l.Lex(); tok.Kind != ATTR_NORETURN {
		t.Fatalf("got %v, want ATTR_NORETURN", tok.Kind)
	}
	if tok := l.Lex(); tok.Kind != ATTR_SYMBOL {
		t.Fatalf("got %v, want ATTR_SYMBOL", tok.Kind)
	}
	if tok := l.Lex(); tok.Kind != LPAREN {
		t.Fatalf("got %v, want LPAREN", tok.Kind)
	}
	if tok := l.Lex(); tok.Kind != STRING || string(tok.Bytes) != "_start" {
		t.Fatalf("got %v %q", tok.Kind, tok.Bytes)
	}
}

func TestIntegerLiteralSuffixesAndBases(t *testing.T) {
	tests := []struct {
		input   string
		storage string
		value   uint64
	}{
		{"42", "uint", 42},
		{"42u8", "u8", 42},
		{"0x2A", "uint", 42},
		{"0o52", "uint", 42},
		{"0b101010", "uint", 42},
	}
	for _, tt := range tests {
		l := New([]byte(tt.input), "test.vl")
		tok := l.Lex()
		if tok.Kind != INT {
			t.Fatalf("%q: Kind = %v, want INT", tt.input, tok.Kind)
		}
		if tok.LitStorage != tt.storage {
			t.Fatalf("%q: LitStorage = %q, want %q", tt.input, tok.LitStorage, tt.storage)
		}
		if tok.UintValue != tt.value {
			t.Fatalf("%q: UintValue = %d, want %d", tt.input, tok.UintValue, tt.value)
		}
	}
}

func TestSignedSuffixUsesIntValue(t *testing.T) {
	l := New([]byte("42i64"), "test.vl")
	tok := l.Lex()
	if tok.Kind != INT {
		t.Fatalf("Kind = %v, want INT", tok.Kind)
	}
	if tok.LitStorage != "i64" {
		t.Fatalf("LitStorage = %q, want i64", tok.LitStorage)
	}
	if tok.IntValue != 42 {
		t.Fatalf("IntValue = %d, want 42", tok.IntValue)
	}
}

func TestNegativeIntegerLiteral(t *testing.T) {
	l := New([]byte("-7"), "test.vl")
	tok := l.Lex()
	if tok.Kind != INT {
		t.Fatalf("Kind = %v, want INT", tok.Kind)
	}
	if tok.IntValue != -7 {
		t.Fatalf("IntValue = %d, want -7", tok.IntValue)
	}
}

func TestFloatLiteral(t *testing.T) {
	tests := []struct {
		input   string
		storage string
		value   float64
	}{
		{"3.5", "f64", 3.5},
		{"3.5f32", "f32", 3.5},
		{"1e10", "f64", 1e10},
	}
	for _, tt := range tests {
		l := New([]byte(tt.input), "test.vl")
		tok := l.Lex()
		if tok.Kind != FLOAT {
			t.Fatalf("%q: Kind = %v, want FLOAT", tt.input, tok.Kind)
		}
		if tok.LitStorage != tt.storage {
			t.Fatalf("%q: LitStorage = %q, want %q", tt.input, tok.LitStorage, tt.storage)
		}
		if tok.FloatValue != tt.value {
			t.Fatalf("%q: FloatValue = %v, want %v", tt.input, tok.FloatValue, tt.value)
		}
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	l := New([]byte(`"a\tb\né\U0001F600"`), "test.vl")
	tok := l.Lex()
	if tok.Kind != STRING {
		t.Fatalf("Kind = %v, want STRING", tok.Kind)
	}
	want := "a\tb\né\U0001F600"
	if string(tok.Bytes) != want {
		t.Fatalf("Bytes = %q, want %q", tok.Bytes, want)
	}
}

func TestRuneLiteral(t *testing.T) {
	l := New([]byte(`'x' '\n' 'é'`), "test.vl")
	if tok := l.Lex(); tok.Kind != RUNE || tok.RuneValue != 'x' {
		t.Fatalf("got %v %q", tok.Kind, tok.RuneValue)
	}
	if tok := l.Lex(); tok.Kind != RUNE || tok.RuneValue != '\n' {
		t.Fatalf("got %v %q", tok.Kind, tok.RuneValue)
	}
	if tok := l.Lex(); tok.Kind != RUNE || tok.RuneValue != 'é' {
		t.Fatalf("got %v %q", tok.Kind, tok.RuneValue)
	}
}

func TestLineComment(t *testing.T) {
	l := New([]byte("let x = 1 // trailing comment\nlet y = 2"), "test.vl")
	var kinds []Kind
	for {
		tok := l.Lex()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == EOF {
			break
		}
	}
	want := []Kind{KW_LET, NAME, ASSIGN, INT, KW_LET, NAME, ASSIGN, INT, EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token %d: %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestSetTracerObservesLexAndUnlex(t *testing.T) {
	var buf bytes.Buffer
	l := New([]byte("let x"), "test.vl")
	l.SetTracer(trace.NewVerbose(&buf))

	tok := l.Lex()
	l.Unlex(tok)
	l.Lex() // replays the buffer, nothing new is traced

	got := buf.String()
	if !strings.Contains(got, "test.vl:1:1 let") {
		t.Fatalf("trace output %q missing lexed token", got)
	}
	if !strings.Contains(got, "unlex let") {
		t.Fatalf("trace output %q missing unlex line", got)
	}
}

func TestLineColumnTracking(t *testing.T) {
	l := New([]byte("let\nx"), "test.vl")
	tok := l.Lex() // let
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Fatalf("Pos = %+v, want line=1 col=1", tok.Pos)
	}
	tok = l.Lex() // x
	if tok.Pos.Line != 2 || tok.Pos.Column != 1 {
		t.Fatalf("Pos = %+v, want line=2 col=1", tok.Pos)
	}
}
