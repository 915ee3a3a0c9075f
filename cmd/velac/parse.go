package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/lexer"
	"github.com/velalang/velac/internal/parser"
	"github.com/velalang/velac/internal/trace"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Lex and parse a source file, printing its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0])
		},
	}
	return cmd
}

func runParse(cmd *cobra.Command, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	lex := lexer.New(src, path)
	p := parser.New(lex)
	if traceFlag {
		tr := trace.NewVerbose(cmd.ErrOrStderr())
		lex.SetTracer(tr)
		p.SetTracer(tr)
	}

	sub := p.ParseSubunit(path)
	fmt.Fprintln(cmd.OutOrStdout(), ast.Print(sub))
	return nil
}
