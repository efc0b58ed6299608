package parser

import (
	"strings"

	"github.com/as3toolkit/as3parser/internal/ast"
	"github.com/as3toolkit/as3parser/internal/diag"
	"github.com/as3toolkit/as3parser/internal/source"
)

// recognizedAsDocTags is the fixed tag set of §4.I "ASDoc parsing".
var recognizedAsDocTags = map[string]bool{
	"copy": true, "default": true, "deprecated": true, "event": true,
	"eventType": true, "example": true, "inheritDoc": true, "internal": true,
	"param": true, "private": true, "return": true, "see": true, "throws": true,
}

// maybeAsDoc looks for a qualifying comment immediately preceding the
// current token and, unless disabled by Options.IgnoreAsDoc, parses it.
func (p *Parser) maybeAsDoc() *ast.AsDoc {
	if p.opts.IgnoreAsDoc {
		return nil
	}
	var best *source.Comment
	for i := range p.unit.Comments {
		c := &p.unit.Comments[i]
		if c.IsASDoc(p.loc) {
			best = c
		}
	}
	if best == nil {
		return nil
	}
	return p.parseAsDocBody(best)
}

func (p *Parser) parseAsDocBody(c *source.Comment) *ast.AsDoc {
	content := c.Content
	if strings.HasPrefix(content, "*") {
		content = content[1:]
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		trimmed = strings.TrimPrefix(trimmed, "*")
		lines[i] = trimmed
	}
	cleaned := strings.TrimSpace(strings.Join(lines, "\n"))

	doc := &ast.AsDoc{Location: c.Location}

	segments := splitAsDocSegments(cleaned)
	if len(segments) > 0 {
		doc.Body = strings.TrimSpace(segments[0])
	}
	for _, seg := range segments[1:] {
		seg = strings.TrimSpace(seg)
		name, raw := splitTagNameAndRest(seg)
		if !recognizedAsDocTags[name] {
			p.reportWarning(c.Location, diag.UnrecognizedAsDocTag)
			continue
		}
		tag := &ast.AsDocTag{Location: c.Location, Name: name, Raw: raw}
		switch name {
		case "param":
			tag.ParamName, tag.Raw = splitFirstWord(raw)
		case "event":
			tag.EventName, tag.Raw = splitFirstWord(raw)
		case "see":
			tag.SeeRef, tag.Raw = splitFirstWord(raw)
		case "throws":
			tag.ThrowsType, tag.Raw = splitFirstWord(raw)
		}
		doc.Tags = append(doc.Tags, tag)
	}
	return doc
}

// splitAsDocSegments breaks the cleaned comment body at "@tagName"
// boundaries occurring at the start of a line, returning the leading body
// text (index 0) followed by one segment per tag ("tagName rest...").
func splitAsDocSegments(s string) []string {
	segments := []string{""}
	lines := strings.Split(s, "\n")
	cur := strings.Builder{}
	inBody := true
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "@") {
			if inBody {
				segments[0] = cur.String()
				inBody = false
			} else {
				segments = append(segments, cur.String())
			}
			cur.Reset()
			cur.WriteString(t[1:])
			cur.WriteByte('\n')
			continue
		}
		cur.WriteString(line)
		cur.WriteByte('\n')
	}
	if inBody {
		segments[0] = cur.String()
	} else {
		segments = append(segments, cur.String())
	}
	return segments
}

func splitTagNameAndRest(seg string) (name, rest string) {
	seg = strings.TrimSpace(seg)
	i := strings.IndexAny(seg, " \t\n")
	if i < 0 {
		return seg, ""
	}
	return seg[:i], strings.TrimSpace(seg[i+1:])
}

func splitFirstWord(s string) (word, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t\n")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}
