package lexer

import (
	"strings"

	"github.com/as3toolkit/as3parser/internal/char"
	"github.com/as3toolkit/as3parser/internal/diag"
	"github.com/as3toolkit/as3parser/internal/source"
	"github.com/as3toolkit/as3parser/internal/token"
)

// scanXmlTagContent implements the XmlTagContent mode of §4.G: XML-name
// starts, '=', quoted attribute values, whitespace as its own token, '>',
// '/>', and '{' to suspend into an embedded expression.
func (l *Lexer) scanXmlTagContent() (token.Token, source.Location) {
	if l.r.AtEnd() {
		return token.Token{Kind: token.EOF}, l.collapsed()
	}
	start := l.r.Offset()
	c := l.r.Current()

	if char.IsXMLWhitespace(c) {
		for !l.r.AtEnd() && char.IsXMLWhitespace(l.r.Current()) {
			if char.IsLineTerminator(l.r.Current()) {
				l.r.Advance()
				l.unit.RecordLineStart(l.r.Offset())
			} else {
				l.r.Advance()
			}
		}
		return token.Token{Kind: token.XMLWhitespace, Text: l.unit.Text[start:l.r.Offset()]}, l.loc(start)
	}

	if c == '"' || c == '\'' {
		quote := c
		l.r.Advance()
		valStart := l.r.Offset()
		for !l.r.AtEnd() && l.r.Current() != quote {
			l.r.Advance()
		}
		value := l.unit.Text[valStart:l.r.Offset()]
		if l.r.Current() == quote {
			l.r.Advance()
		} else {
			l.reportAt(start, diag.ExpectedXmlAttributeValue)
		}
		return token.Token{Kind: token.XMLAttributeValue, Text: value}, l.loc(start)
	}

	if c == '/' && l.r.PeekAt(1) == '>' {
		l.r.Skip(2)
		return token.Token{Kind: token.SlashGt, Text: "/>"}, l.loc(start)
	}

	if tok, ok := l.tryConsume1(c, '>', token.Greater); ok {
		return tok, l.loc(start)
	}
	if tok, ok := l.tryConsume1(c, '=', token.Assign); ok {
		return tok, l.loc(start)
	}
	if tok, ok := l.tryConsume1(c, '{', token.LBrace); ok {
		return tok, l.loc(start)
	}

	if char.IsXMLNameStart(c) {
		for !l.r.AtEnd() && char.IsXMLNamePart(l.r.Current()) {
			l.r.Advance()
		}
		return token.Token{Kind: token.XMLName, Text: l.unit.Text[start:l.r.Offset()]}, l.loc(start)
	}

	l.r.Advance()
	l.reportAt(start, diag.UnexpectedOrInvalidToken)
	return l.scanXmlTagContent()
}

func (l *Lexer) tryConsume1(c, want rune, kind token.Kind) (token.Token, bool) {
	if c != want {
		return token.Token{}, false
	}
	l.r.Advance()
	return token.Token{Kind: kind, Text: string(want)}, true
}

// scanXmlElementContent implements the XmlElementContent mode of §4.G:
// CDATA sections, comments, processing instructions, "</", "<", "{"
// interpolation, and textual runs.
func (l *Lexer) scanXmlElementContent() (token.Token, source.Location) {
	if l.r.AtEnd() {
		return token.Token{Kind: token.EOF}, l.collapsed()
	}
	start := l.r.Offset()

	if strings.HasPrefix(l.unit.Text[start:], "<![CDATA[") {
		return l.scanXmlMarkupUntil(start, "<![CDATA[", "]]>")
	}
	if strings.HasPrefix(l.unit.Text[start:], "<!--") {
		return l.scanXmlMarkupUntil(start, "<!--", "-->")
	}
	if strings.HasPrefix(l.unit.Text[start:], "<?") {
		return l.scanXmlMarkupUntil(start, "<?", "?>")
	}
	if strings.HasPrefix(l.unit.Text[start:], "</") {
		l.r.Skip(2)
		return token.Token{Kind: token.LtSlash, Text: "</"}, l.loc(start)
	}
	if l.r.Current() == '<' {
		l.r.Advance()
		return token.Token{Kind: token.Less, Text: "<"}, l.loc(start)
	}
	if l.r.Current() == '{' {
		l.r.Advance()
		return token.Token{Kind: token.LBrace, Text: "{"}, l.loc(start)
	}

	for !l.r.AtEnd() {
		rest := l.unit.Text[l.r.Offset():]
		if l.r.Current() == '<' || l.r.Current() == '{' {
			break
		}
		if char.IsLineTerminator(l.r.Current()) {
			nl := l.r.Current()
			l.r.Advance()
			if nl == '\r' && l.r.Current() == '\n' {
				l.r.Advance()
			}
			l.unit.RecordLineStart(l.r.Offset())
			continue
		}
		_ = rest
		l.r.Advance()
	}
	return token.Token{Kind: token.XMLText, Text: l.unit.Text[start:l.r.Offset()]}, l.loc(start)
}

func (l *Lexer) scanXmlMarkupUntil(start int, open, close string) (token.Token, source.Location) {
	l.r.Skip(len(open))
	for !l.r.AtEnd() {
		if strings.HasPrefix(l.unit.Text[l.r.Offset():], close) {
			l.r.Skip(len(close))
			return token.Token{Kind: token.XMLMarkup, Text: l.unit.Text[start:l.r.Offset()]}, l.loc(start)
		}
		if char.IsLineTerminator(l.r.Current()) {
			nl := l.r.Current()
			l.r.Advance()
			if nl == '\r' && l.r.Current() == '\n' {
				l.r.Advance()
			}
			l.unit.RecordLineStart(l.r.Offset())
			continue
		}
		l.r.Advance()
	}
	l.reportAt(start, diag.MalformedMxmlDocument)
	return token.Token{Kind: token.XMLMarkup, Text: l.unit.Text[start:l.r.Offset()]}, l.loc(start)
}
