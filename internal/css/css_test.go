package css

import (
	"testing"

	"github.com/as3toolkit/as3parser/internal/source"
)

func parseDoc(t *testing.T, input string) (*Document, *source.Unit) {
	t.Helper()
	unit := source.New("test.css", input)
	doc := ParseDocument(unit, Options{})
	return doc, unit
}

func checkNoErrors(t *testing.T, unit *source.Unit) {
	t.Helper()
	if unit.ErrorCount == 0 {
		return
	}
	for _, d := range unit.NestedDiagnostics() {
		t.Errorf("parse error: %s", d.FormatDefault())
	}
	t.FailNow()
}

func TestParseDocument_SimpleRule(t *testing.T) {
	doc, unit := parseDoc(t, `
.label {
	color: #FF0000;
	font-size: 12px;
}
`)
	checkNoErrors(t, unit)

	if len(doc.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(doc.Rules))
	}
	rule, ok := doc.Rules[0].(*StyleRule)
	if !ok {
		t.Fatalf("expected *StyleRule, got %T", doc.Rules[0])
	}
	if len(rule.Selectors) != 1 || rule.Selectors[0].Text != ".label" {
		t.Fatalf("expected selector '.label', got %+v", rule.Selectors)
	}
	if len(rule.Declarations) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(rule.Declarations))
	}
	if rule.Declarations[0].Property != "color" || rule.Declarations[0].Value != "#FF0000" {
		t.Fatalf("unexpected first declaration: %+v", rule.Declarations[0])
	}
}

func TestParseDocument_SelectorGroupWithCommasAndNesting(t *testing.T) {
	doc, unit := parseDoc(t, `
.a, .b:not(.c, .d) {
	color: blue;
}
`)
	checkNoErrors(t, unit)

	rule := doc.Rules[0].(*StyleRule)
	if len(rule.Selectors) != 2 {
		t.Fatalf("expected 2 selectors (comma inside :not must not split), got %d: %+v", len(rule.Selectors), rule.Selectors)
	}
	if rule.Selectors[1].Text != ".b:not(.c, .d)" {
		t.Fatalf("expected second selector to keep its nested comma intact, got %q", rule.Selectors[1].Text)
	}
}

func TestParseDocument_ImportantDeclaration(t *testing.T) {
	doc, unit := parseDoc(t, `
.a { color: red !important; }
`)
	checkNoErrors(t, unit)

	rule := doc.Rules[0].(*StyleRule)
	decl := rule.Declarations[0]
	if !decl.Important {
		t.Fatalf("expected Important=true")
	}
	if decl.Value != "red" {
		t.Fatalf("expected value 'red' with !important stripped, got %q", decl.Value)
	}
}

func TestParseDocument_NestedAtRule(t *testing.T) {
	doc, unit := parseDoc(t, `
@media (min-width: 100) {
	.a { color: red; }
}
`)
	checkNoErrors(t, unit)

	atRule, ok := doc.Rules[0].(*AtRule)
	if !ok {
		t.Fatalf("expected *AtRule, got %T", doc.Rules[0])
	}
	if atRule.Name != "media" {
		t.Fatalf("expected at-rule name 'media', got %q", atRule.Name)
	}
	if len(atRule.Block) != 1 {
		t.Fatalf("expected 1 nested rule, got %d", len(atRule.Block))
	}
	if len(atRule.Declarations) != 0 {
		t.Fatalf("expected no flat declarations on a nested-rule at-rule, got %d", len(atRule.Declarations))
	}
}

func TestParseDocument_FlatDeclarationAtRule(t *testing.T) {
	doc, unit := parseDoc(t, `
@font-face {
	font-family: "MyFont";
	src: url(foo.ttf);
}
`)
	checkNoErrors(t, unit)

	atRule := doc.Rules[0].(*AtRule)
	if atRule.Name != "font-face" {
		t.Fatalf("expected at-rule name 'font-face', got %q", atRule.Name)
	}
	if len(atRule.Declarations) != 2 {
		t.Fatalf("expected 2 flat declarations, got %d", len(atRule.Declarations))
	}
	if len(atRule.Block) != 0 {
		t.Fatalf("expected no nested rules on a flat-declaration at-rule, got %d", len(atRule.Block))
	}
}

func TestParseDocument_SemicolonTerminatedAtRule(t *testing.T) {
	doc, unit := parseDoc(t, `@namespace svg url(http://www.w3.org/2000/svg);`)
	checkNoErrors(t, unit)

	atRule := doc.Rules[0].(*AtRule)
	if atRule.Name != "namespace" {
		t.Fatalf("expected at-rule name 'namespace', got %q", atRule.Name)
	}
	if len(atRule.Block) != 0 || len(atRule.Declarations) != 0 {
		t.Fatalf("expected neither Block nor Declarations populated for a semicolon-terminated at-rule")
	}
}

func TestParseDocument_MalformedDeclarationRecovers(t *testing.T) {
	doc, unit := parseDoc(t, `
.a {
	not-a-declaration;
	color: red;
}
`)
	if unit.ErrorCount == 0 {
		t.Fatalf("expected a diagnostic for the malformed declaration")
	}
	rule := doc.Rules[0].(*StyleRule)
	found := false
	for _, d := range rule.Declarations {
		if d.Property == "color" && d.Value == "red" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected parsing to recover and still find 'color: red', got %+v", rule.Declarations)
	}
}
