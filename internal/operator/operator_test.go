package operator

import (
	"testing"

	"github.com/as3toolkit/as3parser/internal/token"
)

func TestToBinaryOperator(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want Operator
	}{
		{token.Plus, Add},
		{token.Minus, Subtract},
		{token.Star, Multiply},
		{token.AmpAmp, LogicalAnd},
		{token.PipePipe, LogicalOr},
		{token.QuestionQuestion, NullishCoalescing},
	}
	for _, tt := range tests {
		got, ok := ToBinaryOperator(tt.kind)
		if !ok {
			t.Fatalf("ToBinaryOperator(%v): expected ok, got false", tt.kind)
		}
		if got != tt.want {
			t.Fatalf("ToBinaryOperator(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestToBinaryOperator_InstanceofNotMixedUpWithIs(t *testing.T) {
	got, ok := ToBinaryOperator(token.Instanceof)
	if !ok || got != Instanceof {
		t.Fatalf("ToBinaryOperator(Instanceof) = %v, %v; want Instanceof, true", got, ok)
	}
	got, ok = ToBinaryOperator(token.Is)
	if !ok || got != Is {
		t.Fatalf("ToBinaryOperator(Is) = %v, %v; want Is, true", got, ok)
	}
}

func TestCompoundAssignment(t *testing.T) {
	got, ok := CompoundAssignment(token.PlusAssign)
	if !ok || got != Add {
		t.Fatalf("CompoundAssignment(PlusAssign) = %v, %v; want Add, true", got, ok)
	}

	if _, ok := CompoundAssignment(token.Plus); ok {
		t.Fatalf("expected token.Plus (not a compound-assignment token) to have no mapping")
	}
}

func TestNullishCoalescing_SharesLogicalOrLevel(t *testing.T) {
	// §4.H: `a ?? b || c` is illegal without explicit parens. NullishCoalescing
	// and LogicalOr deliberately share one precedence level
	// (LogicalOrAndOther) rather than nesting one inside the other, which
	// is what lets the parser detect and reject an attempt to mix them
	// instead of silently picking an associativity.
	if NullishCoalescing.Level() != LogicalOr.Level() {
		t.Fatalf("expected NullishCoalescing and LogicalOr to share one precedence level, got %v and %v", NullishCoalescing.Level(), LogicalOr.Level())
	}
}

func TestOperatorString(t *testing.T) {
	tests := []struct {
		op   Operator
		want string
	}{
		{Add, "+"},
		{Subtract, "-"},
		{LogicalAnd, "&&"},
		{NullishCoalescing, "??"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Fatalf("%v.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestLevel_Ordering(t *testing.T) {
	if MultiplicativeLevel <= AdditiveLevel {
		t.Fatalf("expected MultiplicativeLevel to bind tighter than AdditiveLevel")
	}
	if AdditiveLevel <= ShiftLevel {
		t.Fatalf("expected AdditiveLevel to bind tighter than ShiftLevel")
	}
}
