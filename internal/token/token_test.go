package token

import "testing"

func TestLookupIdentifier_KeywordsAndPlainIdentifiers(t *testing.T) {
	if k := LookupIdentifier("class"); k != Class {
		t.Fatalf("LookupIdentifier(class) = %v, want Class", k)
	}
	if k := LookupIdentifier("function"); k != Function {
		t.Fatalf("LookupIdentifier(function) = %v, want Function", k)
	}
	if k := LookupIdentifier("myVar"); k != Identifier {
		t.Fatalf("LookupIdentifier(myVar) = %v, want Identifier", k)
	}
}

func TestKind_IsKeyword(t *testing.T) {
	if !Class.IsKeyword() {
		t.Fatalf("expected Class to be a keyword")
	}
	if Identifier.IsKeyword() {
		t.Fatalf("expected Identifier to not be a keyword")
	}
}

func TestKind_IsLiteral(t *testing.T) {
	for _, k := range []Kind{Identifier, StringLiteral, NumericLiteral, RegExpLiteral} {
		if !k.IsLiteral() {
			t.Fatalf("expected %v to be a literal kind", k)
		}
	}
	if Class.IsLiteral() {
		t.Fatalf("expected Class to not be a literal kind")
	}
}

func TestToken_DisplayName(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: Identifier}, "identifier"},
		{Token{Kind: StringLiteral}, "string"},
		{Token{Kind: NumericLiteral}, "number"},
		{Token{Kind: RegExpLiteral}, "regular expression"},
		{Token{Kind: EOF}, "end of program"},
		{Token{Kind: Class}, "'class'"},
		{Token{Kind: ColonColon}, "'::'"},
	}
	for _, c := range cases {
		if got := c.tok.DisplayName(); got != c.want {
			t.Fatalf("DisplayName() = %q, want %q", got, c.want)
		}
	}
}

func TestKind_ReservedWordName(t *testing.T) {
	name, ok := Class.ReservedWordName()
	if !ok || name != "class" {
		t.Fatalf("ReservedWordName() = %q, %v; want \"class\", true", name, ok)
	}
	if _, ok := Identifier.ReservedWordName(); ok {
		t.Fatalf("expected Identifier to have no reserved word name")
	}
}
