package char

import "testing"

func TestIsWhitespace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\f', ' '} {
		if !IsWhitespace(r) {
			t.Errorf("expected %q to be whitespace", r)
		}
	}
	if IsWhitespace('\n') {
		t.Errorf("expected line terminator to not count as whitespace")
	}
	if IsWhitespace('a') {
		t.Errorf("expected 'a' to not be whitespace")
	}
}

func TestIsLineTerminator(t *testing.T) {
	for _, r := range []rune{'\n', '\r', ' ', ' '} {
		if !IsLineTerminator(r) {
			t.Errorf("expected %U to be a line terminator", r)
		}
	}
	if IsLineTerminator(' ') {
		t.Errorf("expected space to not be a line terminator")
	}
}

func TestHexDigitValue(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'0', 0}, {'9', 9}, {'a', 10}, {'f', 15}, {'A', 10}, {'F', 15},
	}
	for _, tt := range tests {
		got, ok := HexDigitValue(tt.r)
		if !ok || got != tt.want {
			t.Errorf("HexDigitValue(%q) = %d, %v; want %d, true", tt.r, got, ok, tt.want)
		}
	}
	if _, ok := HexDigitValue('g'); ok {
		t.Errorf("expected 'g' to not be a hex digit")
	}
}

func TestIsIdentifierStartAndPart(t *testing.T) {
	for _, r := range []rune{'_', '$', 'a', 'Z'} {
		if !IsIdentifierStart(r) {
			t.Errorf("expected %q to start an identifier", r)
		}
	}
	if IsIdentifierStart('1') {
		t.Errorf("expected a leading digit to not start an identifier")
	}
	if !IsIdentifierPart('1') {
		t.Errorf("expected a digit to continue an identifier")
	}
}

func TestIsXMLNameStartAndPart(t *testing.T) {
	if !IsXMLNameStart(':') {
		t.Errorf("expected ':' to start an XML name (namespace prefix separator)")
	}
	if !IsXMLNamePart('-') || !IsXMLNamePart('.') {
		t.Errorf("expected '-' and '.' to continue an XML name")
	}
	if IsXMLNameStart('-') {
		t.Errorf("expected '-' to not start an XML name")
	}
}
