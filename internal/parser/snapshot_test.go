package parser

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestParseProgram_DiagnosticSnapshot pins down the exact sorted diagnostic
// text for a program with several unrelated syntax errors, the same
// snapshot-testing style the teacher uses for its fixture output
// (internal/interp/fixture_test.go's snaps.MatchSnapshot calls).
func TestParseProgram_DiagnosticSnapshot(t *testing.T) {
	_, unit := parseProgram(t, `package {
	function f():void {
		break;
		continue nowhere;
	}
}
`)
	unit.SortDiagnostics()

	var lines []string
	for _, d := range unit.NestedDiagnostics() {
		lines = append(lines, d.FormatDefault())
	}
	snaps.MatchSnapshot(t, lines)
}
