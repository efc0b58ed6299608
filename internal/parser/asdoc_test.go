package parser

import (
	"testing"

	"github.com/as3toolkit/as3parser/internal/ast"
	"github.com/as3toolkit/as3parser/internal/source"
)

func TestParseProgram_AsDocAttachedToFunction(t *testing.T) {
	program, unit := parseProgram(t, `package {
	/**
	 * Greets someone.
	 * @param name the person to greet
	 */
	function greet(name:String):void {}
}
`)
	checkNoErrors(t, unit)

	fn := firstDirective(t, program).(*ast.FunctionDefinition)
	if fn.AsDoc == nil {
		t.Fatalf("expected an attached AsDoc comment")
	}
	if len(fn.AsDoc.Tags) != 1 || fn.AsDoc.Tags[0].Name != "param" {
		t.Fatalf("expected one @param tag, got %+v", fn.AsDoc.Tags)
	}
	if fn.AsDoc.Tags[0].ParamName != "name" {
		t.Fatalf("expected @param name 'name', got %q", fn.AsDoc.Tags[0].ParamName)
	}
}

func TestParseProgram_IgnoreAsDocOption(t *testing.T) {
	unit := source.New("test.as", `package {
	/** Greets someone. */
	function greet():void {}
}
`)
	program := ParseProgram(unit, Options{IgnoreAsDoc: true})
	checkNoErrors(t, unit)

	fn := firstDirective(t, program).(*ast.FunctionDefinition)
	if fn.AsDoc != nil {
		t.Fatalf("expected AsDoc to be skipped when IgnoreAsDoc is set, got %+v", fn.AsDoc)
	}
}
