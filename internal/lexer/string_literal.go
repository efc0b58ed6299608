package lexer

import (
	"strings"

	"github.com/as3toolkit/as3parser/internal/char"
	"github.com/as3toolkit/as3parser/internal/diag"
	"github.com/as3toolkit/as3parser/internal/source"
	"github.com/as3toolkit/as3parser/internal/token"
)

// scanString scans a '\'' or '"' delimited string literal, decoding escape
// sequences (§4.G "String literal"): \n \r \t \b \f \v \0 \\ \' \", \xHH,
// \uHHHH, \u{H...}, and a line continuation ("\" followed by a line
// terminator). An unterminated string reports
// InputEndedBeforeReachingClosingQuoteForString at the opening-quote
// location.
func (l *Lexer) scanString(start int) (token.Token, source.Location) {
	quote := l.r.Current()
	l.r.Advance()

	var out strings.Builder
	terminated := false
	for !l.r.AtEnd() {
		c := l.r.Current()
		if c == quote {
			l.r.Advance()
			terminated = true
			break
		}
		if c == '\\' {
			l.r.Advance()
			l.scanEscape(&out)
			continue
		}
		if char.IsLineTerminator(c) {
			break
		}
		out.WriteRune(c)
		l.r.Advance()
	}

	if !terminated {
		l.reportAt(start, diag.InputEndedBeforeReachingClosingQuoteForString)
	}

	return token.Token{Kind: token.StringLiteral, Text: out.String()}, l.loc(start)
}

func (l *Lexer) scanEscape(out *strings.Builder) {
	if l.r.AtEnd() {
		return
	}
	c := l.r.Current()
	switch c {
	case 'n':
		out.WriteByte('\n')
		l.r.Advance()
	case 'r':
		out.WriteByte('\r')
		l.r.Advance()
	case 't':
		out.WriteByte('\t')
		l.r.Advance()
	case 'b':
		out.WriteByte('\b')
		l.r.Advance()
	case 'f':
		out.WriteByte('\f')
		l.r.Advance()
	case 'v':
		out.WriteByte('\v')
		l.r.Advance()
	case '0':
		out.WriteByte(0)
		l.r.Advance()
	case '\\', '\'', '"':
		out.WriteRune(c)
		l.r.Advance()
	case 'x':
		l.r.Advance()
		out.WriteRune(l.scanHexEscape(2))
	case 'u':
		l.r.Advance()
		if l.r.Current() == '{' {
			l.r.Advance()
			start := l.r.Offset()
			for !l.r.AtEnd() && l.r.Current() != '}' {
				l.r.Advance()
			}
			text := l.unit.Text[start:l.r.Offset()]
			if l.r.Current() == '}' {
				l.r.Advance()
			}
			out.WriteRune(parseHexRune(text))
		} else {
			out.WriteRune(l.scanHexEscape(4))
		}
	default:
		if char.IsLineTerminator(c) {
			nl := c
			l.r.Advance()
			if nl == '\r' && l.r.Current() == '\n' {
				l.r.Advance()
			}
			l.unit.RecordLineStart(l.r.Offset())
			return
		}
		out.WriteRune(c)
		l.r.Advance()
	}
}

func (l *Lexer) scanHexEscape(count int) rune {
	start := l.r.Offset()
	for i := 0; i < count && char.IsHexDigit(l.r.Current()); i++ {
		l.r.Advance()
	}
	return parseHexRune(l.unit.Text[start:l.r.Offset()])
}

func parseHexRune(text string) rune {
	var v rune
	for _, c := range text {
		d, ok := char.HexDigitValue(c)
		if !ok {
			continue
		}
		v = v*16 + rune(d)
	}
	return v
}
