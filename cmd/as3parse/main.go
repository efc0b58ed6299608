// Command as3parse is a thin CLI driver over the parser facade (§6 "CLI"):
// it is an external collaborator, not part of the core, and its only job is
// to invoke parse_program/parse_mxml/parse_css on a source path and report
// the result.
package main

import (
	"fmt"
	"os"

	"github.com/as3toolkit/as3parser/cmd/as3parse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
