package ast

import (
	"math"
	"strconv"

	"github.com/as3toolkit/as3parser/internal/source"
)

// NewNumericLiteral builds a NumericLiteral at loc from the lexer's
// verbatim text, setting Negative via ParseIntegerValue when text is an
// integer form (false, harmlessly, for fractional/exponent literals).
func NewNumericLiteral(loc source.Location, text string) *NumericLiteral {
	_, negative, _ := ParseIntegerValue(text)
	return &NumericLiteral{BaseNode: BaseNode{Loc: loc}, Text: text, Negative: negative}
}

// ParseIntegerValue interprets text — the lexer's verbatim numeric-literal
// capture (hex `0x…`/`0X…`, binary `0b…`/`0B…`, or plain decimal digits,
// optionally underscore-separated, optionally suffixed with a single `f`/`F`)
// — as a signed 64-bit two's-complement integer. value holds the bit
// pattern reinterpreted as int64; negative reports whether that pattern
// falls in the negative half of the int64 range. ok is false for
// non-integer text (e.g. a literal with a fractional part or exponent),
// in which case value/negative are meaningless.
//
// This only needs to handle the boundary case §8 invariant 15 names:
// `0x8000_0000_0000_0000` must come out equal to math.MinInt64 with
// negative=true, and `0x7FFF_FFFF_FFFF_FFFF` equal to math.MaxInt64 with
// negative=false — both of which overflow a plain ParseInt on the raw
// pattern, hence parsing as uint64 first and reinterpreting the bits.
func ParseIntegerValue(text string) (value int64, negative bool, ok bool) {
	digits, base, ok := splitIntegerLiteral(text)
	if !ok {
		return 0, false, false
	}
	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, false, false
	}
	return int64(u), u > uint64(math.MaxInt64), true
}

// splitIntegerLiteral strips the base prefix, underscore separators, and an
// optional single-precision suffix from a numeric literal's raw text,
// returning the bare digit run and its base. ok is false if text contains a
// decimal point or exponent (not an integer literal).
func splitIntegerLiteral(text string) (digits string, base int, ok bool) {
	base = 10
	switch {
	case len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X'):
		text = text[2:]
		base = 16
	case len(text) > 2 && text[0] == '0' && (text[1] == 'b' || text[1] == 'B'):
		text = text[2:]
		base = 2
	}

	var b []byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '_':
			continue
		case c == '.':
			return "", 0, false
		case base == 10 && (c == 'e' || c == 'E'):
			// A decimal exponent marker — 'e'/'E' are ordinary hex digits
			// in base 16, so this only disqualifies the decimal case.
			return "", 0, false
		case (c == 'f' || c == 'F') && base == 10 && i == len(text)-1:
			continue
		default:
			b = append(b, c)
		}
	}
	if len(b) == 0 {
		return "", 0, false
	}
	return string(b), base, true
}
