package lexer

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestBOMStripping(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{
			name:     "with_bom",
			input:    []byte{0xEF, 0xBB, 0xBF, 'h', 'e', 'l', 'l', 'o'},
			expected: []byte("hello"),
		},
		{
			name:     "without_bom",
			input:    []byte("hello"),
			expected: []byte("hello"),
		},
		{
			name:     "empty_with_bom",
			input:    []byte{0xEF, 0xBB, 0xBF},
			expected: []byte{},
		},
		{
			name:     "empty_without_bom",
			input:    []byte{},
			expected: []byte{},
		},
		{
			name:     "partial_bom",
			input:    []byte{0xEF, 0xBB, 'h', 'i'},
			expected: []byte{0xEF, 0xBB, 'h', 'i'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if !bytes.Equal(result, tt.expected) {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestNFCNormalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already_nfc", input: "café", expected: "café"},
		{name: "nfd_to_nfc", input: "café", expected: "café"},
		{name: "ascii_unchanged", input: "hello world", expected: "hello world"},
		{name: "mixed_unicode", input: "naïve café", expected: "naïve café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := string(Normalize([]byte(tt.input)))
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
			if !norm.NFC.IsNormalString(result) {
				t.Errorf("Result is not in NFC form")
			}
		})
	}
}

func TestBOMAndNFC(t *testing.T) {
	input := append(append([]byte{}, bomUTF8...), []byte("café")...)
	expected := "café"

	result := string(Normalize(input))
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
	if !norm.NFC.IsNormalString(result) {
		t.Errorf("Result is not in NFC form")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"hello", "café", "café", "\ufeffhello"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := Normalize([]byte(input))
			second := Normalize(first)
			if !bytes.Equal(first, second) {
				t.Errorf("Normalize is not idempotent: first=%q, second=%q", first, second)
			}
		})
	}
}

// TestCanaryDeterministicParsing ensures lexically equivalent source
// produces identical token streams regardless of line-ending and
// normalization-form variation.
func TestCanaryDeterministicParsing(t *testing.T) {
	variants := []struct {
		name  string
		input string
	}{
		{name: "lf_nfc", input: "let cafe = 42u32\nlet x = 1"},
		{name: "crlf_nfc", input: "let cafe = 42u32\nlet x = 1"},
		{name: "lf_nfd", input: "let café = 42u32\nlet x = 1"},
		{name: "crlf_nfd", input: "let café = 42u32\nlet x = 1"},
		{name: "bom_lf_nfc", input: "\ufefflet cafe = 42u32\nlet x = 1"},
	}
	variants[1].input = strings.ReplaceAll(variants[1].input, "\n", "\r\n")
	variants[3].input = strings.ReplaceAll(variants[3].input, "\n", "\r\n")

	var kindStreams [][]Kind
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			l := New([]byte(v.input), "test.vl")
			var kinds []Kind
			for {
				tok := l.Lex()
				kinds = append(kinds, tok.Kind)
				if tok.Kind == EOF {
					break
				}
			}
			kindStreams = append(kindStreams, kinds)
		})
	}

	baseline := kindStreams[0]
	for i, kinds := range kindStreams[1:] {
		if len(kinds) != len(baseline) {
			t.Fatalf("variant %d: token count %d, want %d", i+1, len(kinds), len(baseline))
		}
		for j := range baseline {
			if kinds[j] != baseline[j] {
				t.Fatalf("variant %d: token %d kind = %v, want %v", i+1, j, kinds[j], baseline[j])
			}
		}
	}
}

func TestNormalizeDeterminism(t *testing.T) {
	input := []byte("\ufeffcafé")

	var results [][]byte
	for i := 0; i < 100; i++ {
		results = append(results, Normalize(input))
	}

	baseline := results[0]
	for i, result := range results[1:] {
		if !bytes.Equal(result, baseline) {
			t.Errorf("Iteration %d produced different output", i+1)
		}
	}
}
