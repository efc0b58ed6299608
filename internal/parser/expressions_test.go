package parser

import (
	"testing"

	"github.com/as3toolkit/as3parser/internal/ast"
	"github.com/as3toolkit/as3parser/internal/source"
)

func parseExpr(t *testing.T, input string) (ast.Expression, *source.Unit) {
	t.Helper()
	unit := source.New("test.as", input)
	expr := ParseExpression(unit, Options{}, exprCtx())
	return expr, unit
}

func TestParseExpression_BinaryPrecedence(t *testing.T) {
	expr, unit := parseExpr(t, "1 + 2 * 3")
	checkNoErrors(t, unit)

	bin, ok := expr.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected *ast.BinaryExpression, got %T", expr)
	}
	if bin.Operator != "+" {
		t.Fatalf("expected top operator '+', got %q", bin.Operator)
	}
	if _, ok := bin.Right.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected right operand to be the '*' subexpression, got %T", bin.Right)
	}
}

func TestParseExpression_NullishCoalescingMixedWithLogicalOrIsRejected(t *testing.T) {
	_, unit := parseExpr(t, "a ?? b || c")
	if unit.ErrorCount == 0 {
		t.Fatalf("expected a diagnostic for mixing '??' with '||' without parens")
	}
}

func TestParseExpression_NullishCoalescingWithParensIsFine(t *testing.T) {
	_, unit := parseExpr(t, "a ?? (b || c)")
	checkNoErrors(t, unit)
}

func TestParseExpression_ArrowFunctionSingleIdentifier(t *testing.T) {
	expr, unit := parseExpr(t, "x => x + 1")
	checkNoErrors(t, unit)

	fn, ok := expr.(*ast.FunctionExpression)
	if !ok {
		t.Fatalf("expected *ast.FunctionExpression, got %T", expr)
	}
	if !fn.Arrow {
		t.Fatalf("expected Arrow=true")
	}
	if len(fn.Common.Params) != 1 || fn.Common.Params[0].Binding.Pattern.(*ast.Identifier).Name != "x" {
		t.Fatalf("expected a single parameter named 'x', got %+v", fn.Common.Params)
	}
	if _, ok := fn.Common.Body.(ast.Expression); !ok {
		t.Fatalf("expected an expression body for a concise arrow function, got %T", fn.Common.Body)
	}
}

func TestParseExpression_ArrowFunctionParenthesizedParams(t *testing.T) {
	expr, unit := parseExpr(t, "(a, b) => { return a + b; }")
	checkNoErrors(t, unit)

	fn, ok := expr.(*ast.FunctionExpression)
	if !ok {
		t.Fatalf("expected *ast.FunctionExpression, got %T", expr)
	}
	if len(fn.Common.Params) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(fn.Common.Params))
	}
	if _, ok := fn.Common.Body.(*ast.Block); !ok {
		t.Fatalf("expected a block body, got %T", fn.Common.Body)
	}
}

func TestParseExpression_ParenthesizedExpressionIsNotMistakenForArrow(t *testing.T) {
	expr, unit := parseExpr(t, "(a + b) * c")
	checkNoErrors(t, unit)

	bin, ok := expr.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected *ast.BinaryExpression, got %T", expr)
	}
	if bin.Operator != "*" {
		t.Fatalf("expected top operator '*', got %q", bin.Operator)
	}
}

func TestParseExpression_CallExpression(t *testing.T) {
	expr, unit := parseExpr(t, "foo(1, 2, 3)")
	checkNoErrors(t, unit)

	call, ok := expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected *ast.CallExpression, got %T", expr)
	}
	if len(call.Arguments) != 3 {
		t.Fatalf("expected 3 arguments, got %d", len(call.Arguments))
	}
}

func TestParseExpression_ConditionalExpression(t *testing.T) {
	expr, unit := parseExpr(t, "a ? b : c")
	checkNoErrors(t, unit)

	cond, ok := expr.(*ast.ConditionalExpression)
	if !ok {
		t.Fatalf("expected *ast.ConditionalExpression, got %T", expr)
	}
	if cond.Test == nil || cond.Consequent == nil || cond.Alternate == nil {
		t.Fatalf("expected all three branches to be populated")
	}
}

// §8 invariant 15.
func TestParseExpression_NumericLiteralSignedBoundary(t *testing.T) {
	expr, unit := parseExpr(t, "0x8000_0000_0000_0000")
	checkNoErrors(t, unit)

	lit, ok := expr.(*ast.NumericLiteral)
	if !ok {
		t.Fatalf("expected *ast.NumericLiteral, got %T", expr)
	}
	if !lit.Negative {
		t.Fatalf("expected Negative=true for 0x8000_0000_0000_0000")
	}

	expr, unit = parseExpr(t, "0x7FFF_FFFF_FFFF_FFFF")
	checkNoErrors(t, unit)

	lit, ok = expr.(*ast.NumericLiteral)
	if !ok {
		t.Fatalf("expected *ast.NumericLiteral, got %T", expr)
	}
	if lit.Negative {
		t.Fatalf("expected Negative=false for 0x7FFF_FFFF_FFFF_FFFF")
	}
}
