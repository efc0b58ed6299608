package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/as3toolkit/as3parser/internal/ast"
	"github.com/as3toolkit/as3parser/internal/parser"
	"github.com/as3toolkit/as3parser/internal/source"
)

var (
	parseDumpAST    bool
	parseIncludeLoc bool
	parseOutDir     string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an ActionScript 3 program and write its AST and diagnostics",
	Long: `Parse invokes parse_program over an ActionScript 3 source file.

It writes the AST as JSON to «file».ast.json and the sorted diagnostic
lines to «file».diag. Use --dump-ast for a human-readable tree on stdout
instead of the JSON file.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "print a human-readable AST to stdout instead of writing .ast.json")
	parseCmd.Flags().BoolVar(&parseIncludeLoc, "include-locations", false, "include source locations in the AST JSON")
	parseCmd.Flags().StringVar(&parseOutDir, "out-dir", "", "directory to write .ast.json/.diag into (default: alongside the source file)")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	ignoreAsDoc, _ := cmd.Flags().GetBool("ignore-asdoc")
	allowAnyType, _ := cmd.Flags().GetBool("allow-any-type")

	unit := source.New(path, string(data))
	program := parser.ParseProgram(unit, parser.Options{
		IgnoreAsDoc:  ignoreAsDoc,
		AllowAnyType: allowAnyType,
	})

	if parseDumpAST {
		dumpASTNode(program, 0)
	} else {
		if err := writeASTJSON(program, outputPath(path, ".ast.json"), parseIncludeLoc); err != nil {
			return err
		}
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

// outputPath derives the sibling output path for a given suffix, honoring
// --out-dir when set.
func outputPath(source, suffix string) string {
	if parseOutDir == "" {
		return source + suffix
	}
	base := source
	if idx := strings.LastIndexAny(source, "/\\"); idx >= 0 {
		base = source[idx+1:]
	}
	return parseOutDir + "/" + base + suffix
}

// dumpASTNode is a small, hand-written debug dumper mirroring the teacher's
// own --dump-ast view: a type switch over the handful of node kinds that
// matter most for a quick read, falling back to %#v for the rest. It is
// deliberately not exhaustive — the JSON path (writeASTJSON) is the
// complete, generic rendering.
func dumpASTNode(node any, indent int) {
	pad := strings.Repeat("  ", indent)
	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram\n", pad)
		for _, pkg := range n.Packages {
			dumpASTNode(pkg, indent+1)
		}
		for _, d := range n.Directives {
			dumpASTNode(d, indent+1)
		}
	case *ast.PackageDefinition:
		fmt.Printf("%sPackageDefinition %q\n", pad, n.Name)
		if n.Block != nil {
			dumpASTNode(n.Block, indent+1)
		}
	case *ast.ClassDefinition:
		fmt.Printf("%sClassDefinition %q\n", pad, n.Name)
		if n.Block != nil {
			dumpASTNode(n.Block, indent+1)
		}
	case *ast.InterfaceDefinition:
		fmt.Printf("%sInterfaceDefinition %q\n", pad, n.Name)
		if n.Block != nil {
			dumpASTNode(n.Block, indent+1)
		}
	case *ast.FunctionDefinition:
		fmt.Printf("%sFunctionDefinition %q\n", pad, n.Name)
	case *ast.VariableDefinition:
		fmt.Printf("%sVariableDefinition (%d bindings)\n", pad, len(n.Bindings))
	case *ast.Block:
		fmt.Printf("%sBlock (%d directives)\n", pad, len(n.Directives))
		for _, d := range n.Directives {
			dumpASTNode(d, indent+1)
		}
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", pad)
	case nil:
		fmt.Printf("%s<nil>\n", pad)
	default:
		fmt.Printf("%s%T\n", pad, n)
	}
}
