package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "as3parse",
	Short: "ActionScript 3 / MXML / CSS parser front-end",
	Long: `as3parse drives the parser facade over ActionScript 3 source, MXML
documents, and the CSS-like dialect embedded in AS3 projects.

It is a thin CLI: a subcommand reads a source path, invokes the matching
parse_* facade operation, and reports diagnostics. The AST JSON that the
parse, mxml and css subcommands write is a debugging aid, not a stable
interchange format.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().Bool("ignore-asdoc", false, "skip ASDoc comment parsing")
	rootCmd.PersistentFlags().Bool("allow-any-type", true, "parse a lone '*' as the any-type expression")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
