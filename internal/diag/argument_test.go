package diag

import (
	"testing"

	"github.com/as3toolkit/as3parser/internal/token"
)

func TestStringArg_Render(t *testing.T) {
	if got := StringArg("foo").Render(); got != "foo" {
		t.Fatalf("got %q, want %q", got, "foo")
	}
}

func TestTokenArg_Render(t *testing.T) {
	arg := TokenArg{Token: token.Token{Kind: token.Identifier, Text: "foo"}}
	if got := arg.Render(); got != "identifier" {
		t.Fatalf("got %q, want %q", got, "identifier")
	}
}

func TestKindArg_Render(t *testing.T) {
	arg := KindArg{Kind: token.StringLiteral}
	if got := arg.Render(); got != "string" {
		t.Fatalf("got %q, want %q", got, "string")
	}
}
