package diag

import "testing"

func TestFormatMessage_NoArgs(t *testing.T) {
	got := FormatMessage(UnexpectedOrInvalidToken, nil)
	want := "Unexpected or invalid token"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatMessage_PositionalArg(t *testing.T) {
	got := FormatMessage(ExpectedIdentifier, []Argument{StringArg("';'")})
	want := "Expected identifier before ';'"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatMessage_TwoArgs(t *testing.T) {
	got := FormatMessage(Expected, []Argument{StringArg("';'"), StringArg("'}'")})
	want := "Expected ';' before '}'"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatMessage_UnknownKindFallsBack(t *testing.T) {
	got := FormatMessage(Kind(999999), nil)
	if got == "" {
		t.Fatalf("expected a non-empty fallback message for an unknown kind")
	}
}
