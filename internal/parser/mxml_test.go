package parser

import (
	"testing"

	"github.com/as3toolkit/as3parser/internal/ast"
	"github.com/as3toolkit/as3parser/internal/source"
)

func parseMxmlDoc(t *testing.T, input string) (*ast.Mxml, *source.Unit) {
	t.Helper()
	unit := source.New("test.mxml", input)
	doc := ParseMxml(unit, Options{})
	return doc, unit
}

func TestParseMxml_SimpleElementWithAttribute(t *testing.T) {
	doc, unit := parseMxmlDoc(t, `<s:Button label="OK" xmlns:s="library://ns.adobe.com/flex/spark"/>`)
	checkNoErrors(t, unit)

	if doc.Root == nil {
		t.Fatalf("expected a root element")
	}
	if doc.Root.Name.LocalName != "Button" {
		t.Fatalf("expected local name 'Button', got %q", doc.Root.Name.LocalName)
	}
	if !doc.Root.SelfClosed {
		t.Fatalf("expected a self-closed element")
	}
	var label *ast.MxmlAttribute
	for _, a := range doc.Root.Attributes {
		if a.Name.LocalName == "label" {
			label = a
		}
	}
	if label == nil || label.Value != "OK" {
		t.Fatalf("expected a 'label' attribute with value 'OK', got %+v", doc.Root.Attributes)
	}
}

func TestParseMxml_NestedChildrenAndExpression(t *testing.T) {
	doc, unit := parseMxmlDoc(t, `<s:Group xmlns:s="library://ns.adobe.com/flex/spark">
	<s:Button label="{myLabel}"/>
</s:Group>`)
	checkNoErrors(t, unit)

	if len(doc.Root.Content) == 0 {
		t.Fatalf("expected at least one child content entry")
	}
	var foundButton bool
	for _, c := range doc.Root.Content {
		if c.Element != nil && c.Element.Name.LocalName == "Button" {
			foundButton = true
		}
	}
	if !foundButton {
		t.Fatalf("expected a nested Button element, got %+v", doc.Root.Content)
	}
}

func TestParseMxml_MismatchedClosingTagReportsError(t *testing.T) {
	_, unit := parseMxmlDoc(t, `<s:Group xmlns:s="library://ns.adobe.com/flex/spark"></s:OtherTag>`)
	if unit.ErrorCount == 0 {
		t.Fatalf("expected a diagnostic for a mismatched closing tag")
	}
}
