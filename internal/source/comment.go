package source

import "strings"

// Comment is a scanned comment attached to a Unit in scan order (§3
// "Comment").
type Comment struct {
	Multiline bool
	Content   string
	Location  Location
}

// IsASDoc reports whether c qualifies as an ASDoc comment for target: it
// must be multiline, its content must begin with '*', and only
// whitespace/line terminators may separate its closing "*/" from target's
// first offset (§3).
func (c Comment) IsASDoc(target Location) bool {
	if !c.Multiline || !strings.HasPrefix(c.Content, "*") {
		return false
	}
	if c.Location.Unit == nil || target.Unit == nil || c.Location.Unit != target.Unit {
		return false
	}
	between := c.Location.Unit.Text[c.Location.Last:target.First]
	for _, r := range between {
		if !isGapRune(r) {
			return false
		}
	}
	return true
}

func isGapRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
