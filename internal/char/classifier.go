// Package char provides pure, allocation-free predicates for classifying
// source-text code points: whitespace, line terminators, digits, and the
// identifier/XML-name alphabets used by the lexer.
package char

import "unicode"

const (
	nbsp           = ' '
	lineSeparator  = ' '
	paraSeparator  = ' '
)

// IsWhitespace reports whether r is insignificant whitespace outside of a
// line terminator: space, tab, backspace, form feed, NBSP, or any code
// point in Unicode general category Space_Separator.
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\b', '\f', nbsp:
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// IsLineTerminator reports whether r ends a line: LF, CR, U+2028 (line
// separator), or U+2029 (paragraph separator).
func IsLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', lineSeparator, paraSeparator:
		return true
	}
	return false
}

// IsBinaryDigit reports whether r is '0' or '1'.
func IsBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

// IsDecimalDigit reports whether r is an ASCII decimal digit.
func IsDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsHexDigit reports whether r is an ASCII hex digit (either case).
func IsHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// HexDigitValue returns the numeric value of a hex digit and whether r was
// one.
func HexDigitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

// BinaryDigitValue returns the numeric value of a binary digit and whether
// r was one.
func BinaryDigitValue(r rune) (int, bool) {
	if r == '0' || r == '1' {
		return int(r - '0'), true
	}
	return 0, false
}

// IsIdentifierStart reports whether r may begin an AS3 identifier: letter
// categories Lu/Ll/Lt/Lm/Lo/Nl, plus '_' and '$'.
func IsIdentifierStart(r rune) bool {
	if r == '_' || r == '$' {
		return true
	}
	return unicode.In(r, unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl)
}

// IsIdentifierPart reports whether r may continue an identifier started by
// IsIdentifierStart: everything IsIdentifierStart accepts, plus the
// combining-mark, connector-punctuation, and decimal-digit categories.
func IsIdentifierPart(r rune) bool {
	if IsIdentifierStart(r) {
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc, unicode.Nd)
}

// IsXMLNameStart reports whether r may begin an XML/MXML name: letters,
// '_', or ':'.
func IsXMLNameStart(r rune) bool {
	if r == '_' || r == ':' {
		return true
	}
	return unicode.In(r, unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl)
}

// IsXMLNamePart reports whether r may continue an XML/MXML name: everything
// IsXMLNameStart accepts, plus '.', '-', and decimal digits.
func IsXMLNamePart(r rune) bool {
	if IsXMLNameStart(r) || r == '.' || r == '-' {
		return true
	}
	return unicode.Is(unicode.Nd, r)
}

// IsXMLWhitespace reports whether r is whitespace per the XML grammar:
// space, tab, LF, or CR.
func IsXMLWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
