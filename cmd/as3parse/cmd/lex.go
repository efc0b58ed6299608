package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/as3toolkit/as3parser/internal/lexer"
	"github.com/as3toolkit/as3parser/internal/source"
	"github.com/as3toolkit/as3parser/internal/token"
)

var (
	lexShowPos  bool
	lexShowKind bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an ActionScript 3 file and print the resulting tokens",
	Long: `Lex runs the tokenizer alone over an ActionScript 3 source file and
prints each token, without building an AST. Useful for debugging the lexer.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show each token's byte offsets")
	lexCmd.Flags().BoolVar(&lexShowKind, "show-kind", false, "show each token's numeric kind")
}

func runLex(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	unit := source.New(path, string(data))
	l := lexer.New(unit)

	mode := lexer.RegexPermitted
	count := 0
	for {
		tok, loc := l.Scan(mode)
		printLexToken(tok, loc)
		count++
		if tok.Kind == token.EOF {
			break
		}
		mode = nextLexMode(tok)
	}

	if unit.ErrorCount > 0 {
		printDiagnostics(unit)
		return fmt.Errorf("lexing failed with %d error(s)", unit.ErrorCount)
	}
	return nil
}

// nextLexMode mirrors the parser's own rule of thumb for when a '/' could
// begin a regular expression rather than a division operator: after most
// tokens a '/' is division, but after an operator, a keyword like "return",
// or an opening bracket, it is regex-permitted.
func nextLexMode(prev token.Token) lexer.Mode {
	switch prev.Kind {
	case token.Identifier, token.StringLiteral, token.NumericLiteral,
		token.RParen, token.RBracket, token.This, token.Super:
		return lexer.Normal
	}
	return lexer.RegexPermitted
}

func printLexToken(tok token.Token, loc source.Location) {
	out := tok.DisplayName()
	if lexShowKind {
		out = fmt.Sprintf("[%d] %s", tok.Kind, out)
	}
	if tok.Text != "" {
		out += fmt.Sprintf(" %q", tok.Text)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d", loc.First, loc.Last)
	}
	fmt.Println(out)
}
