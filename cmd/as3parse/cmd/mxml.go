package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/as3toolkit/as3parser/internal/parser"
	"github.com/as3toolkit/as3parser/internal/source"
)

var mxmlCmd = &cobra.Command{
	Use:   "mxml [file]",
	Short: "Parse an MXML document and write its AST and diagnostics",
	Long: `Mxml invokes parse_mxml over an MXML source file.

It writes the AST as JSON to «file».ast.json and the sorted diagnostic
lines to «file».diag.`,
	Args: cobra.ExactArgs(1),
	RunE: runMxml,
}

func init() {
	rootCmd.AddCommand(mxmlCmd)
}

func runMxml(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	ignoreAsDoc, _ := cmd.Flags().GetBool("ignore-asdoc")
	allowAnyType, _ := cmd.Flags().GetBool("allow-any-type")

	unit := source.New(path, string(data))
	doc := parser.ParseMxml(unit, parser.Options{
		IgnoreAsDoc:  ignoreAsDoc,
		AllowAnyType: allowAnyType,
	})

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
