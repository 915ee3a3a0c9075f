package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/velalang/velac/internal/lexer"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "Interactively lex a line at a time, printing each token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runTokensRepl(cmd.OutOrStdout())
			return nil
		},
	}
}

func runTokensRepl(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	fmt.Fprintf(out, "%s %s\n", bold("velac tokens"), bold("dev"))
	fmt.Fprintln(out, "Type a line of Vela source; Ctrl-D to exit.")

	for {
		input, err := line.Prompt("velac> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			return
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			return
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		printTokens(out, input)
	}
}

func printTokens(out io.Writer, src string) {
	lex := lexer.New([]byte(src), "<repl>")
	for {
		tok := lex.Lex()
		fmt.Fprintf(out, "  %s %s\n", tokenLabel(tok), cyan(tok.String()))
		if tok.Kind == lexer.EOF || tok.Kind == lexer.ILLEGAL {
			return
		}
	}
}

func tokenLabel(tok lexer.Token) string {
	switch {
	case tok.Kind == lexer.NAME:
		return yellow(tok.Kind.String())
	case tok.Kind >= lexer.INT && tok.Kind <= lexer.STRING:
		return green(tok.Kind.String())
	default:
		return tok.Kind.String()
	}
}
