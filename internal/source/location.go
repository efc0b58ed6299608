package source

import "unsafe"

// Location is a byte-span within a Unit's text, plus a pointer back to the
// owning Unit so that line/column can be derived lazily (§3 "Location",
// §4.D).
//
// Invariant: 0 <= First <= Last <= len(Unit.Text), and both offsets lie on
// UTF-8 code-point boundaries.
type Location struct {
	Unit  *Unit
	First int
	Last  int
}

// NewCollapsedLocation returns a zero-width Location at offset.
func NewCollapsedLocation(unit *Unit, offset int) Location {
	return Location{Unit: unit, First: offset, Last: offset}
}

// NewLocation returns a Location spanning [first, last).
func NewLocation(unit *Unit, first, last int) Location {
	return Location{Unit: unit, First: first, Last: last}
}

// Equal reports whether two locations share the same unit identity and
// both offsets, per §3's equality rule.
func (l Location) Equal(other Location) bool {
	return l.Unit == other.Unit && l.First == other.First && l.Last == other.Last
}

// Less orders locations by first-byte-offset within the same unit; the
// ordering across distinct units is unspecified but stable (it falls back
// to pointer identity so that sorts remain deterministic within a run).
func (l Location) Less(other Location) bool {
	if l.Unit != other.Unit {
		return uintptr(unsafe.Pointer(l.Unit)) < uintptr(unsafe.Pointer(other.Unit))
	}
	if l.First != other.First {
		return l.First < other.First
	}
	return l.Last < other.Last
}

// CombineWith yields a Location spanning from self.First to other.Last.
func (l Location) CombineWith(other Location) Location {
	return Location{Unit: l.Unit, First: l.First, Last: other.Last}
}

// CombineWithStartOf yields a Location spanning from self.First to
// other.First.
func (l Location) CombineWithStartOf(other Location) Location {
	return Location{Unit: l.Unit, First: l.First, Last: other.First}
}

// LineBreak reports whether the last line of self is strictly less than
// the first line of other — used by the parser to enforce "no line
// terminator before" rules (§4.D).
func (l Location) LineBreak(other Location) bool {
	if l.Unit == nil || other.Unit == nil {
		return false
	}
	return l.Unit.GetLineNumber(l.Last) < other.Unit.GetLineNumber(other.First)
}

// Line returns the 1-based line number containing First.
func (l Location) Line() int {
	if l.Unit == nil {
		return 1
	}
	return l.Unit.GetLineNumber(l.First)
}

// Column returns the 1-based, code-point column of First within its line.
func (l Location) Column() int {
	if l.Unit == nil {
		return 1
	}
	return l.Unit.GetColumn(l.First)
}

// Length returns the code-point count spanned by the location.
func (l Location) Length() int {
	if l.Unit == nil {
		return 0
	}
	return len([]rune(l.Unit.Text[l.First:l.Last]))
}
