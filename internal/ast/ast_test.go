package ast

import (
	"testing"

	"github.com/as3toolkit/as3parser/internal/source"
)

func TestBaseNode_Location(t *testing.T) {
	unit := source.New("test.as", "abcdef")
	loc := source.NewLocation(unit, 1, 4)

	n := &Identifier{BaseNode: BaseNode{Loc: loc}, Name: "abc"}
	if n.Location() != loc {
		t.Fatalf("expected Location() to return the embedded Loc")
	}
}

func TestDirectiveVariants_SatisfyDirectiveInterface(t *testing.T) {
	var variants = []Directive{
		&ExpressionStatement{},
		&VariableDefinition{},
		&FunctionDefinition{},
		&ClassDefinition{},
		&InterfaceDefinition{},
		&Block{},
		NewInvalidatedDirective(source.Location{}),
	}
	for _, v := range variants {
		if v == nil {
			t.Fatalf("expected a non-nil Directive variant")
		}
	}
}

func TestExpressionVariants_SatisfyExpressionInterface(t *testing.T) {
	var variants = []Expression{
		&Identifier{},
		&BinaryExpression{},
		&CallExpression{},
		&ConditionalExpression{},
		&FunctionExpression{},
		NewInvalidatedExpression(source.Location{}),
	}
	for _, v := range variants {
		if v == nil {
			t.Fatalf("expected a non-nil Expression variant")
		}
	}
}
