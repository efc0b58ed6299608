// Package lexer implements the context-sensitive tokenizer described in
// §4.G of the specification: a character-driven scanner whose next-token
// behaviour depends on a Mode hint the parser supplies at each call,
// needed because `/` and `<` are ambiguous without parser context.
package lexer

import (
	"strings"

	"github.com/as3toolkit/as3parser/internal/char"
	"github.com/as3toolkit/as3parser/internal/diag"
	"github.com/as3toolkit/as3parser/internal/source"
	"github.com/as3toolkit/as3parser/internal/token"
)

// Lexer scans tokens from a source.Unit. It holds the only cursor over the
// unit's text; the Unit itself is the shared, mutated resource (line
// index, comments, diagnostics), exactly as §5 requires.
type Lexer struct {
	unit *source.Unit
	r    *reader
}

// New creates a Lexer positioned at the start of unit's text.
func New(unit *source.Unit) *Lexer {
	return NewAt(unit, 0)
}

// NewAt creates a Lexer positioned at an arbitrary byte offset within
// unit's text, used to honour a ParserOptions byte range (§6).
func NewAt(unit *source.Unit, offset int) *Lexer {
	return &Lexer{unit: unit, r: newReader(unit.Text, offset)}
}

// State is an opaque, restorable cursor position, used by the parser for
// backtracking (e.g. speculative "not in"/"is not" lookahead).
type State struct{ pos int }

// Save captures the lexer's current position.
func (l *Lexer) Save() State { return State{pos: l.r.Offset()} }

// Restore rewinds the lexer to a previously captured position. Restoring
// does not undo diagnostics or comments already recorded on the unit —
// callers that backtrack past a point where a diagnostic was raised accept
// that diagnostic as already reported, matching the unit's append-only
// diagnostic list.
func (l *Lexer) Restore(s State) { l.r.SeekTo(s.pos) }

// Offset returns the lexer's current byte offset.
func (l *Lexer) Offset() int { return l.r.Offset() }

func (l *Lexer) loc(first int) source.Location {
	return source.NewLocation(l.unit, first, l.r.Offset())
}

func (l *Lexer) collapsed() source.Location {
	return source.NewCollapsedLocation(l.unit, l.r.Offset())
}

// Scan returns the next (Token, Location) pair under the given mode.
func (l *Lexer) Scan(mode Mode) (token.Token, source.Location) {
	switch mode {
	case XmlTagContent:
		return l.scanXmlTagContent()
	case XmlElementContent:
		return l.scanXmlElementContent()
	default:
		return l.scanNormal(mode == RegexPermitted)
	}
}

func (l *Lexer) scanNormal(regexPermitted bool) (token.Token, source.Location) {
	for {
		l.skipTrivia()

		if l.r.AtEnd() {
			return token.Token{Kind: token.EOF}, l.collapsed()
		}

		start := l.r.Offset()
		c := l.r.Current()

		switch {
		case char.IsIdentifierStart(c):
			return l.scanIdentifier(start)
		case char.IsDecimalDigit(c), c == '.' && char.IsDecimalDigit(l.r.PeekAt(1)):
			return l.scanNumber(start)
		case c == '\'' || c == '"':
			return l.scanString(start)
		case c == '/' && regexPermitted:
			return l.scanRegExp(start)
		}

		if tok, ok := l.scanPunctuator(); ok {
			return tok, l.loc(start)
		}

		// Unrecognised character: report and keep scanning (§4.G failure
		// policy) rather than returning an Invalid token for it.
		l.r.Advance()
		l.reportAt(start, diag.UnexpectedOrInvalidToken)
	}
}

// skipTrivia consumes whitespace, line terminators (updating the unit's
// line index), and comments (attaching them to the unit).
func (l *Lexer) skipTrivia() {
	for !l.r.AtEnd() {
		c := l.r.Current()
		switch {
		case c == '\r':
			l.r.Advance()
			if l.r.Current() == '\n' {
				l.r.Advance()
			}
			l.unit.RecordLineStart(l.r.Offset())
		case c == '\n' || c == ' ' || c == ' ':
			l.r.Advance()
			l.unit.RecordLineStart(l.r.Offset())
		case char.IsWhitespace(c):
			l.r.Advance()
		case c == '/' && l.r.PeekAt(1) == '/':
			l.scanLineComment()
		case c == '/' && l.r.PeekAt(1) == '*':
			l.scanBlockComment()
		default:
			return
		}
	}
}

func (l *Lexer) scanLineComment() {
	start := l.r.Offset()
	l.r.Skip(2)
	for !l.r.AtEnd() && !char.IsLineTerminator(l.r.Current()) {
		l.r.Advance()
	}
	content := l.unit.Text[start+2 : l.r.Offset()]
	l.unit.AddComment(source.Comment{Multiline: false, Content: content, Location: l.loc(start)})
}

func (l *Lexer) scanBlockComment() {
	start := l.r.Offset()
	l.r.Skip(2)
	terminated := false
	for !l.r.AtEnd() {
		if l.r.Current() == '*' && l.r.PeekAt(1) == '/' {
			l.r.Skip(2)
			terminated = true
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
		l.r.Advance()
	}
	end := l.r.Offset()
	content := l.unit.Text[start+2 : end]
	content = strings.TrimSuffix(content, "*/")
	l.unit.AddComment(source.Comment{Multiline: true, Content: content, Location: l.loc(start)})
	if !terminated {
		l.reportAt(start, diag.UnterminatedComment)
	}
}

func (l *Lexer) scanIdentifier(start int) (token.Token, source.Location) {
	l.r.Advance()
	for !l.r.AtEnd() && char.IsIdentifierPart(l.r.Current()) {
		l.r.Advance()
	}
	text := l.unit.Text[start:l.r.Offset()]
	kind := token.LookupIdentifier(text)
	return token.Token{Kind: kind, Text: text}, l.loc(start)
}

func (l *Lexer) reportAt(offset int, kind diag.Kind, args ...diag.Argument) {
	loc := source.NewLocation(l.unit, offset, l.r.Offset())
	if l.unit.PreventEqualOffsetError(loc) {
		return
	}
	l.unit.AddDiagnostic(source.NewSyntaxError(loc, kind, args...))
}
