package ast

import "github.com/as3toolkit/as3parser/internal/source"

// AsDocTag is one `@tag ...` entry of an ASDoc comment, parsed by a
// tag-specific sub-grammar (§4.I "ASDoc parsing"). Recognised tag names:
// copy, default, deprecated, event, eventType, example, inheritDoc,
// internal, param, private, return, see, throws.
type AsDocTag struct {
	Location source.Location
	Name     string
	// Raw is the tag's unparsed remainder, always populated.
	Raw string
	// Recognised fields, populated only for tags that define them; zero
	// value otherwise.
	ParamName   string // @param
	EventName   string // @event
	SeeRef      string // @see
	ThrowsType  string // @throws
}

// AsDoc is a qualified ASDoc comment (§4.C "Comment") attached to a
// documentable directive: a main body plus zero or more tags.
type AsDoc struct {
	Location source.Location
	Body     string
	Tags     []*AsDocTag
}
