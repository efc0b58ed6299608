package lexer

// Mode is a context hint the parser passes before each Scan call, since `/`
// and `<` cannot be tokenized correctly without knowing the parser's
// current expectation (§4.G).
type Mode int

const (
	// Normal skips whitespace/comments and tokenizes identifiers, reserved
	// words, numbers, strings, and punctuators. A leading '/' is always the
	// division operator or a compound-assignment form in this mode.
	Normal Mode = iota

	// RegexPermitted behaves like Normal, except a leading '/' begins a
	// regular-expression literal. The parser selects this mode only where
	// an expression is expected.
	RegexPermitted

	// XmlTagContent scans the inside of an opening XML/MXML tag: names,
	// '=', quoted attribute values, whitespace (as an explicit token),
	// '>', '/>', and '{' to suspend into an embedded expression.
	XmlTagContent

	// XmlElementContent scans textual element content between tags:
	// CDATA sections, comments, processing instructions, child-element
	// openers, closing-tag openers, '{' interpolation, and text runs.
	XmlElementContent
)
