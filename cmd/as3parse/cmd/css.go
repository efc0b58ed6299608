package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/as3toolkit/as3parser/internal/css"
	"github.com/as3toolkit/as3parser/internal/source"
)

var cssCmd = &cobra.Command{
	Use:   "css [file]",
	Short: "Parse a CSS-like stylesheet and write its AST and diagnostics",
	Long: `Css invokes parse_css over a CSS-like source file (the dialect
embedded in AS3 project style sheets).

It writes the AST as JSON to «file».ast.json and the sorted diagnostic
lines to «file».diag.`,
	Args: cobra.ExactArgs(1),
	RunE: runCss,
}

func init() {
	rootCmd.AddCommand(cssCmd)
}

func runCss(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	unit := source.New(path, string(data))
	doc := css.ParseDocument(unit, css.Options{})

	if err := writeASTJSON(doc, outputPath(path, ".ast.json"), parseIncludeLoc); err != nil {
		return err
	}
	if err := writeDiagnostics(unit, outputPath(path, ".diag")); err != nil {
		return err
	}
	printDiagnostics(unit)

	if unit.ErrorCount > 0 {
		return fmt.Errorf("parsing failed with %d error(s)", unit.ErrorCount)
	}
	return nil
}
