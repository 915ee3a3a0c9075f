package parser

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/lexer"
)

// update controls whether golden files are regenerated or compared.
// Usage: go test -update ./internal/parser
var update = flag.Bool("update", false, "update golden files")

// goldenCompare compares got against testdata/parser/<name>.golden, or
// writes it there when -update is passed (grounded on the same
// golden-file pattern used by parser/testutil.go in the source pack,
// retargeted at this core's AST).
func goldenCompare(t *testing.T, name string, got string) {
	t.Helper()
	path := filepath.Join("testdata", "parser", name+".golden")

	if *update {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("write golden %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v (run with -update to create it)", path, err)
	}
	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Errorf("golden mismatch for %s (-want +got):\n%s", name, diff)
	}
}

// failingSink reports a fatal diagnostic as a test failure, for tests that
// expect parsing to succeed.
func failingSink(t *testing.T) *errors.Sink {
	buf := &bytes.Buffer{}
	sink := &errors.Sink{Out: buf, Color: false}
	sink.Exit = func(int) { t.Fatalf("unexpected fatal diagnostic: %s", buf.String()) }
	return sink
}

// mustParseSubunit parses input as a full subunit and fails the test on any
// fatal diagnostic.
func mustParseSubunit(t *testing.T, input string) *ast.Subunit {
	t.Helper()
	p := New(lexer.New([]byte(input), "test.vl"))
	p.SetSink(failingSink(t))
	return p.ParseSubunit("test.vl")
}

// mustParseType parses input as a single type expression.
func mustParseType(t *testing.T, input string) ast.Type {
	t.Helper()
	p := New(lexer.New([]byte(input), "test.vl"))
	p.SetSink(failingSink(t))
	return p.ParseType()
}

// mustParseExpr parses input as a single literal expression.
func mustParseExpr(t *testing.T, input string) ast.Expr {
	t.Helper()
	p := New(lexer.New([]byte(input), "test.vl"))
	p.SetSink(failingSink(t))
	return p.ParseExpr()
}

// fatalStop unwinds out of the parser once a fatal diagnostic has been
// reported, letting mustFail capture the message without the process
// actually exiting.
type fatalStop struct{}

// mustFail runs fn with a sink that panics (caught here) instead of exiting
// on the first fatal diagnostic, and returns the rendered message. It fails
// the test if fn completes without reporting one.
func mustFail(t *testing.T, fn func(sink *errors.Sink)) (msg string) {
	t.Helper()
	buf := &bytes.Buffer{}
	sink := &errors.Sink{Out: buf, Color: false}
	sink.Exit = func(int) { panic(fatalStop{}) }

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a fatal diagnostic, got none")
			return
		}
		if _, ok := r.(fatalStop); !ok {
			panic(r)
		}
		msg = buf.String()
	}()

	fn(sink)
	return
}
