package lexer

import (
	"github.com/as3toolkit/as3parser/internal/char"
	"github.com/as3toolkit/as3parser/internal/diag"
	"github.com/as3toolkit/as3parser/internal/source"
	"github.com/as3toolkit/as3parser/internal/token"
)

// scanRegExp scans a regular-expression literal after an opening '/'
// (§4.G "Regex literal"): characters up to a matching unescaped '/',
// treating "\x" as a single unit and "[...]" as a character class within
// which '/' does not terminate the literal. A trailing identifier-part
// run is captured as the flags.
func (l *Lexer) scanRegExp(start int) (token.Token, source.Location) {
	l.r.Advance() // opening '/'
	bodyStart := l.r.Offset()

	inClass := false
	terminated := false
	for !l.r.AtEnd() {
		c := l.r.Current()
		if char.IsLineTerminator(c) {
			break
		}
		if c == '\\' {
			l.r.Advance()
			if !l.r.AtEnd() {
				l.r.Advance()
			}
			continue
		}
		if c == '[' {
			inClass = true
			l.r.Advance()
			continue
		}
		if c == ']' {
			inClass = false
			l.r.Advance()
			continue
		}
		if c == '/' && !inClass {
			break
		}
		l.r.Advance()
	}

	body := l.unit.Text[bodyStart:l.r.Offset()]

	if l.r.Current() == '/' {
		l.r.Advance()
		terminated = true
	}

	flagsStart := l.r.Offset()
	for !l.r.AtEnd() && char.IsIdentifierPart(l.r.Current()) {
		l.r.Advance()
	}
	flags := l.unit.Text[flagsStart:l.r.Offset()]

	if !terminated {
		l.reportAt(start, diag.UnterminatedRegExp)
	}

	return token.Token{Kind: token.RegExpLiteral, Text: body, RegExpFlags: flags}, l.loc(start)
}
