package parser

import (
	"github.com/as3toolkit/as3parser/internal/diag"
	"github.com/as3toolkit/as3parser/internal/source"
)

// report is a thin wrapper around the unit's diagnostic-recording path that
// applies prevent_equal_offset_error (§4.C) before appending.
func (p *Parser) report(loc source.Location, kind diag.Kind, args ...diag.Argument) {
	if p.unit.PreventEqualOffsetError(loc) {
		return
	}
	p.unit.AddDiagnostic(source.NewSyntaxError(loc, kind, args...))
}

func (p *Parser) reportWarning(loc source.Location, kind diag.Kind, args ...diag.Argument) {
	if p.unit.PreventEqualOffsetWarning(loc) {
		return
	}
	p.unit.AddDiagnostic(source.NewWarning(loc, kind, args...))
}
