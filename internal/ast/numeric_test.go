package ast

import (
	"math"
	"testing"

	"github.com/as3toolkit/as3parser/internal/source"
)

// §8 invariant 15.
func TestParseIntegerValue_SignedBoundary(t *testing.T) {
	value, negative, ok := ParseIntegerValue("0x8000_0000_0000_0000")
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if value != math.MinInt64 {
		t.Fatalf("value = %d, want math.MinInt64 (%d)", value, int64(math.MinInt64))
	}
	if !negative {
		t.Fatalf("expected negative=true for 0x8000_0000_0000_0000")
	}

	value, negative, ok = ParseIntegerValue("0x7FFF_FFFF_FFFF_FFFF")
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if value != math.MaxInt64 {
		t.Fatalf("value = %d, want math.MaxInt64 (%d)", value, int64(math.MaxInt64))
	}
	if negative {
		t.Fatalf("expected negative=false for 0x7FFF_FFFF_FFFF_FFFF")
	}
}

func TestParseIntegerValue_HexDigitsIncludeE(t *testing.T) {
	// 'e'/'E' are ordinary hex digits, not an exponent marker, in base 16.
	value, negative, ok := ParseIntegerValue("0xE")
	if !ok || negative || value != 14 {
		t.Fatalf("ParseIntegerValue(0xE) = %d, %v, %v; want 14, false, true", value, negative, ok)
	}
}

func TestParseIntegerValue_DecimalAndBinary(t *testing.T) {
	if v, neg, ok := ParseIntegerValue("42"); !ok || neg || v != 42 {
		t.Fatalf("ParseIntegerValue(42) = %d, %v, %v", v, neg, ok)
	}
	if v, neg, ok := ParseIntegerValue("0b101"); !ok || neg || v != 5 {
		t.Fatalf("ParseIntegerValue(0b101) = %d, %v, %v", v, neg, ok)
	}
}

func TestParseIntegerValue_RejectsFractionalAndExponent(t *testing.T) {
	if _, _, ok := ParseIntegerValue("1.5"); ok {
		t.Fatalf("expected ok=false for a fractional literal")
	}
	if _, _, ok := ParseIntegerValue("1e10"); ok {
		t.Fatalf("expected ok=false for an exponent literal")
	}
}

func TestNewNumericLiteral_SetsNegativeFromText(t *testing.T) {
	n := NewNumericLiteral(source.Location{}, "0x8000000000000000")
	if !n.Negative {
		t.Fatalf("expected Negative=true for 0x8000000000000000")
	}
	n = NewNumericLiteral(source.Location{}, "0x7FFFFFFFFFFFFFFF")
	if n.Negative {
		t.Fatalf("expected Negative=false for 0x7FFFFFFFFFFFFFFF")
	}
}
