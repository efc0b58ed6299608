package lexer

import (
	"github.com/as3toolkit/as3parser/internal/char"
	"github.com/as3toolkit/as3parser/internal/diag"
	"github.com/as3toolkit/as3parser/internal/source"
	"github.com/as3toolkit/as3parser/internal/token"
)

// scanNumber captures a numeric literal's raw character sequence verbatim
// (§4.G "Numeric literal"): decimal, decimal with fraction/exponent, hex
// (0x/0X), or binary (0b/0B), with underscore digit separators and an
// optional single-character suffix.
func (l *Lexer) scanNumber(start int) (token.Token, source.Location) {
	if l.r.Current() == '0' && (l.r.PeekAt(1) == 'x' || l.r.PeekAt(1) == 'X') {
		l.r.Skip(2)
		l.scanDigitRun(char.IsHexDigit)
	} else if l.r.Current() == '0' && (l.r.PeekAt(1) == 'b' || l.r.PeekAt(1) == 'B') {
		l.r.Skip(2)
		l.scanDigitRun(char.IsBinaryDigit)
	} else {
		l.scanDigitRun(char.IsDecimalDigit)
		if l.r.Current() == '.' {
			// Avoid colliding with property access: "3.toString()" must not
			// consume the dot as a decimal point.
			if !char.IsIdentifierStart(l.r.PeekAt(1)) {
				l.r.Advance()
				l.scanDigitRun(char.IsDecimalDigit)
			}
		}
		if l.r.Current() == 'e' || l.r.Current() == 'E' {
			mark := l.r.Offset()
			l.r.Advance()
			if l.r.Current() == '+' || l.r.Current() == '-' {
				l.r.Advance()
			}
			if char.IsDecimalDigit(l.r.Current()) {
				l.scanDigitRun(char.IsDecimalDigit)
			} else {
				l.r.SeekTo(mark)
			}
		}
	}

	// Optional single-precision suffix.
	if l.r.Current() == 'f' || l.r.Current() == 'F' {
		l.r.Advance()
	} else if char.IsIdentifierPart(l.r.Current()) {
		suffixStart := l.r.Offset()
		for char.IsIdentifierPart(l.r.Current()) {
			l.r.Advance()
		}
		l.reportAt(suffixStart, diag.UnallowedNumericSuffix)
	}

	text := l.unit.Text[start:l.r.Offset()]
	return token.Token{Kind: token.NumericLiteral, Text: text}, l.loc(start)
}

func (l *Lexer) scanDigitRun(isDigit func(rune) bool) {
	for isDigit(l.r.Current()) || l.r.Current() == '_' {
		l.r.Advance()
	}
}
