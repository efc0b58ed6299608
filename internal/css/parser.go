package css

import (
	"strings"

	"github.com/gorilla/css/scanner"

	"github.com/as3toolkit/as3parser/internal/diag"
	"github.com/as3toolkit/as3parser/internal/source"
)

// Options configures a parse_css call; kept as a distinct (currently
// empty) type for symmetry with parser.Options, since future options
// (byte-range restriction, strict-mode toggles) have an obvious home here.
type Options struct{}

// nestedRuleAtRules names the at-rules whose brace-delimited body holds
// further rules (selector + declaration blocks) rather than a flat
// declaration list — e.g. `@media (...) { a { color: red } }`.
var nestedRuleAtRules = map[string]bool{
	"media": true, "supports": true, "document": true,
	"keyframes": true, "-webkit-keyframes": true, "-moz-keyframes": true, "-o-keyframes": true,
}

// parser drives github.com/gorilla/css/scanner one token at a time,
// reconstructing byte offsets (the scanner reports only line/column) by
// tracking a running cursor advanced by each token's raw length, mirroring
// internal/parser's single-token-lookahead discipline (§9) even though
// this is a wholly separate token grammar (§4.J).
type parser struct {
	unit *source.Unit
	sc   *scanner.Scanner

	tok      *scanner.Token
	tokStart int // byte offset where tok begins
	next     int // byte offset where the *next* Next() call will start from
}

func newParser(unit *source.Unit) *parser {
	p := &parser{unit: unit, sc: scanner.New(unit.Text)}
	p.advance()
	return p
}

// ParseDocument is the parse_css facade entry point (§6 "parse_css").
func ParseDocument(unit *source.Unit, opts Options) *Document {
	p := newParser(unit)
	first := p.mark()
	doc := &Document{}
	for !p.atEOF() {
		if p.skipTrivia() {
			continue
		}
		doc.Rules = append(doc.Rules, p.parseRule())
	}
	doc.Loc = p.finish(first)
	return doc
}

func (p *parser) advance() {
	p.tokStart = p.next
	p.tok = p.sc.Next()
	for i := 0; i < len(p.tok.Value); i++ {
		if p.tok.Value[i] == '\n' {
			p.unit.RecordLineStart(p.tokStart + i + 1)
		}
	}
	p.next = p.tokStart + len(p.tok.Value)
}

func (p *parser) atEOF() bool {
	return p.tok.Type == scanner.TokenEOF || p.tok.Type == scanner.TokenError
}

func (p *parser) isChar(v string) bool {
	return p.tok.Type == scanner.TokenChar && p.tok.Value == v
}

// skipTrivia advances past a single whitespace or comment token, reporting
// whether it did so.
func (p *parser) skipTrivia() bool {
	if p.tok.Type == scanner.TokenS || p.tok.Type == scanner.TokenComment {
		p.advance()
		return true
	}
	return false
}

func (p *parser) mark() int { return p.tokStart }

func (p *parser) finish(first int) source.Location {
	last := p.tokStart
	if last < first {
		last = first
	}
	return source.NewLocation(p.unit, first, last)
}

func (p *parser) currentLoc() source.Location {
	return source.NewLocation(p.unit, p.tokStart, p.next)
}

func (p *parser) report(loc source.Location, kind diag.Kind, args ...diag.Argument) {
	if p.unit.PreventEqualOffsetError(loc) {
		return
	}
	p.unit.AddDiagnostic(source.NewSyntaxError(loc, kind, args...))
}

func (p *parser) parseRule() Rule {
	if p.tok.Type == scanner.TokenAtKeyword {
		return p.parseAtRule()
	}
	return p.parseStyleRule()
}

// parseSelectorGroup accumulates raw selector text up to the next
// top-level `{`, `;`, or end of input, splitting on top-level commas. A
// comma or brace nested within `(...)`/`[...]` (e.g. `:not(a, b)`) does not
// end a segment.
func (p *parser) parseSelectorGroup() []*Selector {
	var selectors []*Selector
	segFirst := p.mark()
	var buf strings.Builder
	depth := 0

	flush := func() {
		text := strings.TrimSpace(buf.String())
		if text != "" {
			selectors = append(selectors, &Selector{BaseNode: BaseNode{Loc: p.finish(segFirst)}, Text: text})
		}
		buf.Reset()
	}

loop:
	for !p.atEOF() {
		if p.tok.Type == scanner.TokenChar {
			switch p.tok.Value {
			case "(", "[":
				depth++
			case ")", "]":
				if depth > 0 {
					depth--
				}
			case "{", ";":
				if depth == 0 {
					break loop
				}
			case ",":
				if depth == 0 {
					flush()
					p.advance()
					segFirst = p.mark()
					continue loop
				}
			}
		} else if p.tok.Type == scanner.TokenFunction {
			depth++ // e.g. `not(`: the scanner folds the '(' into the name
		}
		if p.skipTrivia() {
			buf.WriteByte(' ')
			continue
		}
		buf.WriteString(p.tok.Value)
		p.advance()
	}
	flush()
	return selectors
}

func (p *parser) parseStyleRule() Rule {
	first := p.mark()
	selectors := p.parseSelectorGroup()
	if len(selectors) == 0 {
		p.report(p.currentLoc(), diag.ExpectedCssSelector)
	}
	if !p.isChar("{") {
		p.report(p.currentLoc(), diag.ExpectedCssSelector)
		return NewInvalidatedRule(p.finish(first))
	}
	p.advance()

	rule := &StyleRule{Selectors: selectors}
	for !p.atEOF() && !p.isChar("}") {
		if p.skipTrivia() {
			continue
		}
		if p.isChar(";") {
			p.advance() // a stray separator between declarations
			continue
		}
		rule.Declarations = append(rule.Declarations, p.parseDeclaration())
	}
	if p.isChar("}") {
		p.advance()
	}
	rule.BaseNode = BaseNode{Loc: p.finish(first)}
	return rule
}

// parseDeclaration parses `property : value [!important]`, recovering to
// the next `;`/`}` on a malformed shape.
func (p *parser) parseDeclaration() *Declaration {
	first := p.mark()
	if p.tok.Type != scanner.TokenIdent {
		p.report(p.currentLoc(), diag.ExpectedCssDeclaration, diag.StringArg(p.tok.Value))
		p.recoverToDeclarationBoundary()
		return &Declaration{BaseNode: BaseNode{Loc: p.finish(first)}}
	}
	property := p.tok.Value
	p.advance()
	for p.skipTrivia() {
	}

	if !p.isChar(":") {
		p.report(p.currentLoc(), diag.ExpectedCssDeclaration, diag.StringArg(p.tok.Value))
		p.recoverToDeclarationBoundary()
		return &Declaration{BaseNode: BaseNode{Loc: p.finish(first)}, Property: property}
	}
	p.advance()

	var value strings.Builder
	depth := 0
loop:
	for !p.atEOF() {
		if p.tok.Type == scanner.TokenChar {
			switch p.tok.Value {
			case "(":
				depth++
			case ")":
				if depth > 0 {
					depth--
				}
			case ";":
				if depth == 0 {
					p.advance()
					break loop
				}
			case "}":
				if depth == 0 {
					break loop
				}
			}
		}
		if p.skipTrivia() {
			value.WriteByte(' ')
			continue
		}
		value.WriteString(p.tok.Value)
		p.advance()
	}

	raw := strings.TrimSpace(value.String())
	important := false
	if idx := strings.LastIndex(strings.ToLower(raw), "!important"); idx >= 0 {
		important = true
		raw = strings.TrimSpace(raw[:idx])
	}
	return &Declaration{BaseNode: BaseNode{Loc: p.finish(first)}, Property: property, Value: raw, Important: important}
}

func (p *parser) recoverToDeclarationBoundary() {
	for !p.atEOF() {
		if p.isChar(";") {
			p.advance()
			return
		}
		if p.isChar("}") {
			return
		}
		p.advance()
	}
}

// parseAtRule parses `@name prelude ;` or `@name prelude { ... }`,
// dispatching the brace-delimited body to either nested rules or a flat
// declaration list per nestedRuleAtRules (§4.J).
func (p *parser) parseAtRule() Rule {
	first := p.mark()
	name := strings.TrimPrefix(p.tok.Value, "@")
	p.advance()

	var prelude strings.Builder
	for !p.atEOF() && !p.isChar("{") && !p.isChar(";") {
		if p.skipTrivia() {
			prelude.WriteByte(' ')
			continue
		}
		prelude.WriteString(p.tok.Value)
		p.advance()
	}

	rule := &AtRule{Name: name, Prelude: strings.TrimSpace(prelude.String())}

	switch {
	case p.atEOF():
		p.report(p.currentLoc(), diag.MalformedCssAtRule, diag.StringArg(name))
	case p.isChar(";"):
		p.advance()
	case p.isChar("{"):
		p.advance()
		nested := nestedRuleAtRules[strings.ToLower(name)]
		for !p.atEOF() && !p.isChar("}") {
			if p.skipTrivia() {
				continue
			}
			if nested {
				rule.Block = append(rule.Block, p.parseRule())
			} else {
				rule.Declarations = append(rule.Declarations, p.parseDeclaration())
			}
		}
		if p.isChar("}") {
			p.advance()
		}
	}

	rule.BaseNode = BaseNode{Loc: p.finish(first)}
	return rule
}
