package parser

import (
	"strings"

	"github.com/as3toolkit/as3parser/internal/ast"
	"github.com/as3toolkit/as3parser/internal/diag"
	"github.com/as3toolkit/as3parser/internal/lexer"
	"github.com/as3toolkit/as3parser/internal/source"
	"github.com/as3toolkit/as3parser/internal/token"
)

// parseMxmlDocument is the parse_mxml facade entry point (§4.J): a single
// root element, with namespace prefixes resolved against a stack of
// xmlns declarations accumulated element-by-element.
func (p *Parser) parseMxmlDocument() *ast.Mxml {
	first := p.mark()
	if !p.is(token.Less) {
		p.report(p.loc, diag.MalformedMxmlDocument)
		return &ast.Mxml{BaseNode: ast.BaseNode{Loc: p.finish(first)}}
	}
	root := p.enterXmlElement(lexer.Normal, nil)
	return &ast.Mxml{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Root: root}
}

// parseXmlLiteralExpression parses an inline XML/E4X literal in expression
// position (§3, §4.J): either `<Name ...>...</Name>` (an element) or
// `<>...</>` (an XML list literal with no enclosing element).
func (p *Parser) parseXmlLiteralExpression() ast.Expression {
	first := p.mark()
	p.advance(lexer.XmlTagContent) // token immediately following '<'

	if p.is(token.Greater) {
		p.advance(lexer.XmlElementContent)
		content := p.parseMxmlContentList(nil)
		p.expect(token.LtSlash, lexer.XmlTagContent)
		p.expect(token.Greater, lexer.Normal)
		return &ast.XMLListExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Content: content}
	}

	el := p.parseMxmlElement(lexer.Normal, nil)
	return &ast.XMLExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Element: el}
}

// enterXmlElement consumes a '<' that is the current token and parses the
// element that follows, under the given enclosing namespace scope stack.
func (p *Parser) enterXmlElement(afterMode lexer.Mode, nsStack []map[string]string) *ast.MxmlElement {
	p.advance(lexer.XmlTagContent)
	return p.parseMxmlElement(afterMode, nsStack)
}

// parseMxmlElement parses a tag whose name is the current token (an
// XMLName scanned in XmlTagContent mode): attributes, namespace
// declarations, self-closing or full open/content/close form. afterMode is
// the mode used to scan the token immediately following this element's
// final delimiter, since that depends on whether the caller is itself
// inside element content (XmlElementContent) or back in ordinary code
// (Normal).
func (p *Parser) parseMxmlElement(afterMode lexer.Mode, nsStack []map[string]string) *ast.MxmlElement {
	first := p.mark()
	rawName := p.tok.Text
	p.expect(token.XMLName, lexer.XmlTagContent)

	el := &ast.MxmlElement{}
	scope := map[string]string{}

	for {
		if p.is(token.XMLWhitespace) {
			p.advance(lexer.XmlTagContent)
			continue
		}
		if !p.is(token.XMLName) {
			break
		}
		attrFirst := p.mark()
		attrRawName := p.tok.Text
		p.advance(lexer.XmlTagContent)
		for p.is(token.XMLWhitespace) {
			p.advance(lexer.XmlTagContent)
		}
		p.expect(token.Assign, lexer.XmlTagContent)
		for p.is(token.XMLWhitespace) {
			p.advance(lexer.XmlTagContent)
		}
		value := p.tok.Text
		p.expect(token.XMLAttributeValue, lexer.XmlTagContent)

		attr := &ast.MxmlAttribute{BaseNode: ast.BaseNode{Loc: p.finish(attrFirst)}, Value: value}
		switch {
		case attrRawName == "xmlns":
			scope[""] = value
			attr.Name = ast.MxmlName{LocalName: "xmlns"}
		case strings.HasPrefix(attrRawName, "xmlns:"):
			prefix := attrRawName[len("xmlns:"):]
			scope[prefix] = value
			attr.Name = ast.MxmlName{LocalName: prefix, Prefix: "xmlns"}
		default:
			attr.Name = splitMxmlName(attrRawName)
		}
		el.Attributes = append(el.Attributes, attr)
	}

	childStack := nsStack
	if len(scope) > 0 {
		childStack = append(append([]map[string]string{}, nsStack...), scope)
	}
	el.Name = p.resolveMxmlName(splitMxmlName(rawName), childStack)

	if p.is(token.SlashGt) {
		el.SelfClosed = true
		p.advance(afterMode)
		el.Loc = p.finish(first)
		return el
	}

	p.expect(token.Greater, lexer.XmlElementContent)
	el.Content = p.parseMxmlContentList(childStack)

	if !p.expect(token.LtSlash, lexer.XmlTagContent) {
		el.Loc = p.finish(first)
		return el
	}
	closeName := p.tok.Text
	if closeName != rawName {
		p.report(p.loc, diag.MismatchedMxmlClosingTag, diag.TokenArg{Token: p.tok})
	}
	p.expect(token.XMLName, lexer.XmlTagContent)
	p.expect(token.Greater, afterMode)
	el.Loc = p.finish(first)
	return el
}

// parseMxmlContentList parses a sequence of text, CDATA, comments,
// processing instructions, `{expr}` interpolations, and child elements,
// stopping at the next closing-tag opener or end of input.
func (p *Parser) parseMxmlContentList(nsStack []map[string]string) []ast.MxmlContent {
	var out []ast.MxmlContent
	for {
		switch {
		case p.is(token.XMLText):
			c := ast.MxmlContent{BaseNode: ast.BaseNode{Loc: p.loc}, Text: p.tok.Text}
			p.advance(lexer.XmlElementContent)
			out = append(out, c)

		case p.is(token.XMLMarkup):
			out = append(out, classifyMxmlMarkup(p.loc, p.tok.Text))
			p.advance(lexer.XmlElementContent)

		case p.is(token.LBrace):
			first := p.mark()
			p.advance(lexer.RegexPermitted)
			expr := p.parseExpression(exprCtx())
			p.expect(token.RBrace, lexer.XmlElementContent)
			out = append(out, ast.MxmlContent{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Expression: expr})

		case p.is(token.Less):
			first := p.mark()
			child := p.enterXmlElement(lexer.XmlElementContent, nsStack)
			out = append(out, ast.MxmlContent{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Element: child})

		default:
			return out
		}
	}
}

func classifyMxmlMarkup(loc source.Location, text string) ast.MxmlContent {
	c := ast.MxmlContent{BaseNode: ast.BaseNode{Loc: loc}}
	switch {
	case strings.HasPrefix(text, "<![CDATA["):
		c.IsCDATA = true
		c.Text = strings.TrimSuffix(strings.TrimPrefix(text, "<![CDATA["), "]]>")
	case strings.HasPrefix(text, "<!--"):
		c.IsComment = true
		c.Text = strings.TrimSuffix(strings.TrimPrefix(text, "<!--"), "-->")
	case strings.HasPrefix(text, "<?"):
		c.IsPI = true
		body := strings.TrimSuffix(strings.TrimPrefix(text, "<?"), "?>")
		target, rest := splitFirstWord(body)
		c.PITarget = target
		c.Text = rest
	}
	return c
}

func splitMxmlName(raw string) ast.MxmlName {
	if i := strings.IndexByte(raw, ':'); i >= 0 {
		return ast.MxmlName{Prefix: raw[:i], LocalName: raw[i+1:]}
	}
	return ast.MxmlName{LocalName: raw}
}

// resolveMxmlName resolves name's prefix against stack, innermost scope
// first, reporting UnresolvedMxmlNamespacePrefix when an explicit prefix
// has no matching declaration.
func (p *Parser) resolveMxmlName(name ast.MxmlName, stack []map[string]string) ast.MxmlName {
	for i := len(stack) - 1; i >= 0; i-- {
		if uri, ok := stack[i][name.Prefix]; ok {
			name.URI = uri
			return name
		}
	}
	if name.Prefix != "" {
		p.report(p.loc, diag.UnresolvedMxmlNamespacePrefix, diag.TokenArg{Token: p.tok})
	}
	return name
}
