// Package source owns CompilationUnit bookkeeping: source text, file path,
// a line-offset index populated incrementally by the tokenizer, attached
// diagnostics and comments, and the nested-unit tree produced by `include`
// directives (§3 "CompilationUnit", §4.C, §4.D).
package source

import (
	"sort"

	"github.com/as3toolkit/as3parser/internal/diag"
)

// Unit is a CompilationUnit: one source text and all mutable state
// produced while parsing it. A Unit is aliased by the parser, the
// tokenizer, and every Location it has produced; per §5, a single Unit is
// mutated only by its owning (synchronous, single-threaded) parse call, so
// no internal locking is required — distinct Units may be parsed
// concurrently on separate goroutines as long as they share no Unit.
type Unit struct {
	// Text is immutable after construction.
	Text string

	// FilePath is empty when the unit has no backing file (e.g. an
	// in-memory expression parse).
	FilePath string

	lineOffsets []int // lineOffsets[i] = byte offset where line i+1 begins

	Diagnostics  []Diagnostic
	ErrorCount   int
	WarningCount int
	Invalidated  bool

	Comments []Comment

	// IncludedFrom is the unit whose `include` directive produced this
	// one, or nil for a top-level unit.
	IncludedFrom *Unit

	// Nested holds units this one has itself included, in inclusion order.
	Nested []*Unit
}

// New constructs a Unit over text, optionally associated with filePath.
func New(filePath, text string) *Unit {
	return &Unit{
		Text:        text,
		FilePath:    filePath,
		lineOffsets: []int{0},
	}
}

// NewIncluded constructs a Unit reached via an `include` directive from
// parent, and registers the relationship on both sides.
func NewIncluded(parent *Unit, filePath, text string) *Unit {
	u := New(filePath, text)
	u.IncludedFrom = parent
	parent.Nested = append(parent.Nested, u)
	return u
}

// HasFilePath reports whether the unit was constructed with a non-empty
// file path.
func (u *Unit) HasFilePath() bool {
	return u.FilePath != ""
}

// IncludeChainContains reports whether filePath already appears in u's
// including chain (u itself or any ancestor reached via IncludedFrom),
// which the parser uses to reject include cycles (§4.I "Include
// directive").
func (u *Unit) IncludeChainContains(filePath string) bool {
	for cur := u; cur != nil; cur = cur.IncludedFrom {
		if cur.FilePath == filePath {
			return true
		}
	}
	return false
}

// AddDiagnostic appends d to the unit's diagnostic list, bumping the
// warning or error counter and, for non-warnings, setting Invalidated
// (§4.C).
func (u *Unit) AddDiagnostic(d Diagnostic) {
	if d.Severity == diag.Warning {
		u.WarningCount++
	} else {
		u.ErrorCount++
		u.Invalidated = true
	}
	u.Diagnostics = append(u.Diagnostics, d)
}

// PreventEqualOffsetError reports whether a prior non-warning diagnostic
// already shares loc's first-byte-offset, so the parser can suppress error
// storms at a single cursor position (§4.C).
func (u *Unit) PreventEqualOffsetError(loc Location) bool {
	for _, d := range u.Diagnostics {
		if d.Severity != diag.Warning && d.Location.First == loc.First {
			return true
		}
	}
	return false
}

// PreventEqualOffsetWarning is PreventEqualOffsetError's analogue for
// warnings.
func (u *Unit) PreventEqualOffsetWarning(loc Location) bool {
	for _, d := range u.Diagnostics {
		if d.Severity == diag.Warning && d.Location.First == loc.First {
			return true
		}
	}
	return false
}

// AddComment appends c to the unit's comment list, unless another attached
// comment already starts at the same first-byte-offset (§4.C).
func (u *Unit) AddComment(c Comment) {
	for _, existing := range u.Comments {
		if existing.Location.First == c.Location.First {
			return
		}
	}
	u.Comments = append(u.Comments, c)
}

// SortDiagnostics stably sorts u's diagnostics by location, and recurses
// into every nested unit (§4.C).
func (u *Unit) SortDiagnostics() {
	sort.SliceStable(u.Diagnostics, func(i, j int) bool {
		return u.Diagnostics[i].Location.Less(u.Diagnostics[j].Location)
	})
	for _, nested := range u.Nested {
		nested.SortDiagnostics()
	}
}

// NestedDiagnostics returns u's own diagnostics followed by those of each
// nested unit, depth-first, in inclusion order (§4.C, invariant 4).
func (u *Unit) NestedDiagnostics() []Diagnostic {
	out := append([]Diagnostic(nil), u.Diagnostics...)
	for _, nested := range u.Nested {
		out = append(out, nested.NestedDiagnostics()...)
	}
	return out
}

// RecordLineStart registers that a new line begins at byte offset offset.
// The tokenizer calls this each time it consumes a line terminator; CR,
// LF, CRLF, U+2028, and U+2029 each count as exactly one line break (a
// CRLF sequence must be reported only once, at the position following the
// LF).
func (u *Unit) RecordLineStart(offset int) {
	n := len(u.lineOffsets)
	if u.lineOffsets[n-1] >= offset {
		return
	}
	u.lineOffsets = append(u.lineOffsets, offset)
}

// GetLineNumber returns the 1-based line number containing byte offset.
// Queries against offsets the tokenizer has not yet crossed return a
// best-effort answer based on the table's current extent (§5).
func (u *Unit) GetLineNumber(offset int) int {
	// Largest i such that lineOffsets[i] <= offset.
	i := sort.Search(len(u.lineOffsets), func(i int) bool {
		return u.lineOffsets[i] > offset
	})
	if i == 0 {
		return 1
	}
	return i
}

// GetLineOffset returns the byte offset where 1-based line begins. Lines
// past the table's current extent return the last known line's offset.
func (u *Unit) GetLineOffset(line int) int {
	if line < 1 {
		line = 1
	}
	idx := line - 1
	if idx >= len(u.lineOffsets) {
		idx = len(u.lineOffsets) - 1
	}
	return u.lineOffsets[idx]
}

// GetLineOffsetFromOffset returns the byte offset of the start of the line
// containing offset.
func (u *Unit) GetLineOffsetFromOffset(offset int) int {
	return u.GetLineOffset(u.GetLineNumber(offset))
}

// GetColumn returns the 1-based, code-point column of offset within its
// line.
func (u *Unit) GetColumn(offset int) int {
	lineStart := u.GetLineOffsetFromOffset(offset)
	if offset < lineStart || offset > len(u.Text) {
		return 1
	}
	return len([]rune(u.Text[lineStart:offset])) + 1
}
