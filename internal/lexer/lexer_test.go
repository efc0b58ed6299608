package lexer

import (
	"testing"

	"github.com/as3toolkit/as3parser/internal/source"
	"github.com/as3toolkit/as3parser/internal/token"
)

func scanAll(t *testing.T, input string, mode Mode) []token.Token {
	t.Helper()
	unit := source.New("test.as", input)
	l := New(unit)
	var toks []token.Token
	for {
		tok, _ := l.Scan(mode)
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func TestScan_Identifiers(t *testing.T) {
	toks := scanAll(t, "foo bar_baz _qux", Normal)
	want := []string{"foo", "bar_baz", "_qux"}
	for i, w := range want {
		if toks[i].Kind != token.Identifier || toks[i].Text != w {
			t.Fatalf("token %d: expected identifier %q, got %v %q", i, w, toks[i].Kind, toks[i].Text)
		}
	}
}

func TestScan_Keywords(t *testing.T) {
	toks := scanAll(t, "class function return", Normal)
	wantKinds := []token.Kind{token.Class, token.Function, token.Return}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Fatalf("token %d: expected kind %v, got %v", i, k, toks[i].Kind)
		}
	}
}

func TestScan_DivisionVsRegExp(t *testing.T) {
	normal := scanAll(t, "/a/g", Normal)
	if normal[0].Kind != token.Slash {
		t.Fatalf("Normal mode: expected '/' to scan as Slash, got %v", normal[0].Kind)
	}

	permitted := scanAll(t, "/a/g", RegexPermitted)
	if permitted[0].Kind != token.RegExpLiteral {
		t.Fatalf("RegexPermitted mode: expected a RegExpLiteral, got %v", permitted[0].Kind)
	}
}

func TestScan_StringLiteral(t *testing.T) {
	toks := scanAll(t, `"hello\tworld"`, Normal)
	if toks[0].Kind != token.StringLiteral {
		t.Fatalf("expected StringLiteral, got %v", toks[0].Kind)
	}
	if toks[0].Text != "hello\tworld" {
		t.Fatalf("expected decoded string 'hello\\tworld', got %q", toks[0].Text)
	}
}

func TestScan_NumericLiteral(t *testing.T) {
	toks := scanAll(t, "0x1F 3.14 10", Normal)
	for i, tok := range toks[:3] {
		if tok.Kind != token.NumericLiteral {
			t.Fatalf("token %d: expected NumericLiteral, got %v", i, tok.Kind)
		}
	}
}

func TestScan_SaveRestore(t *testing.T) {
	unit := source.New("test.as", "foo bar")
	l := New(unit)

	s := l.Save()
	first, _ := l.Scan(Normal)
	if first.Text != "foo" {
		t.Fatalf("expected 'foo', got %q", first.Text)
	}
	l.Restore(s)

	again, _ := l.Scan(Normal)
	if again.Text != "foo" {
		t.Fatalf("after restore, expected 'foo' again, got %q", again.Text)
	}
}
