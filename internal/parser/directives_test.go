package parser

import (
	"testing"

	"github.com/as3toolkit/as3parser/internal/ast"
	"github.com/as3toolkit/as3parser/internal/source"
)

func TestParseProgram_IfElseStatement(t *testing.T) {
	program, unit := parseProgram(t, `package {
	function f():void {
		if (a) {
			b();
		} else {
			c();
		}
	}
}
`)
	checkNoErrors(t, unit)

	fn := firstDirective(t, program).(*ast.FunctionDefinition)
	block := fn.Common.Body.(*ast.Block)
	if _, ok := block.Directives[0].(*ast.IfStatement); !ok {
		t.Fatalf("expected *ast.IfStatement, got %T", block.Directives[0])
	}
}

func TestParseProgram_ForInLoop(t *testing.T) {
	program, unit := parseProgram(t, `package {
	function f():void {
		for (var k:String in obj) {
			trace(k);
		}
	}
}
`)
	checkNoErrors(t, unit)

	fn := firstDirective(t, program).(*ast.FunctionDefinition)
	block := fn.Common.Body.(*ast.Block)
	forIn, ok := block.Directives[0].(*ast.ForInStatement)
	if !ok {
		t.Fatalf("expected *ast.ForInStatement, got %T", block.Directives[0])
	}
	if forIn.Each {
		t.Fatalf("expected Each=false for a plain 'for..in'")
	}
}

func TestParseProgram_ForEachInLoop(t *testing.T) {
	unit := source.New("test.as", `package {
	function f():void {
		for each (var v:* in arr) {
			trace(v);
		}
	}
}
`)
	program := ParseProgram(unit, Options{AllowAnyType: true})
	checkNoErrors(t, unit)

	fn := firstDirective(t, program).(*ast.FunctionDefinition)
	block := fn.Common.Body.(*ast.Block)
	forIn, ok := block.Directives[0].(*ast.ForInStatement)
	if !ok {
		t.Fatalf("expected *ast.ForInStatement, got %T", block.Directives[0])
	}
	if !forIn.Each {
		t.Fatalf("expected Each=true for 'for each..in'")
	}
}

func TestParseProgram_BreakOutsideLoopIsIllegal(t *testing.T) {
	_, unit := parseProgram(t, `package {
	function f():void {
		break;
	}
}
`)
	if unit.ErrorCount == 0 {
		t.Fatalf("expected a diagnostic for 'break' outside any loop/switch")
	}
}

func TestParseProgram_BreakInsideLoopIsLegal(t *testing.T) {
	_, unit := parseProgram(t, `package {
	function f():void {
		while (true) {
			break;
		}
	}
}
`)
	checkNoErrors(t, unit)
}

func TestParseProgram_LabeledContinue(t *testing.T) {
	_, unit := parseProgram(t, `package {
	function f():void {
		outer: while (true) {
			continue outer;
		}
	}
}
`)
	checkNoErrors(t, unit)
}

func TestParseProgram_ContinueWithUndefinedLabelIsIllegal(t *testing.T) {
	_, unit := parseProgram(t, `package {
	function f():void {
		while (true) {
			continue nowhere;
		}
	}
}
`)
	if unit.ErrorCount == 0 {
		t.Fatalf("expected a diagnostic for an undefined label")
	}
}

func TestParseProgram_TryCatchFinally(t *testing.T) {
	program, unit := parseProgram(t, `package {
	function f():void {
		try {
			risky();
		} catch (e:Error) {
			handle(e);
		} finally {
			cleanup();
		}
	}
}
`)
	checkNoErrors(t, unit)

	fn := firstDirective(t, program).(*ast.FunctionDefinition)
	block := fn.Common.Body.(*ast.Block)
	tryStmt, ok := block.Directives[0].(*ast.TryStatement)
	if !ok {
		t.Fatalf("expected *ast.TryStatement, got %T", block.Directives[0])
	}
	if len(tryStmt.Catches) != 1 {
		t.Fatalf("expected 1 catch clause, got %d", len(tryStmt.Catches))
	}
	if tryStmt.Finally == nil {
		t.Fatalf("expected a finally block")
	}
}

func TestParseProgram_SwitchStatement(t *testing.T) {
	program, unit := parseProgram(t, `package {
	function f():void {
		switch (x) {
			case 1:
				a();
				break;
			default:
				b();
		}
	}
}
`)
	checkNoErrors(t, unit)

	fn := firstDirective(t, program).(*ast.FunctionDefinition)
	block := fn.Common.Body.(*ast.Block)
	sw, ok := block.Directives[0].(*ast.SwitchStatement)
	if !ok {
		t.Fatalf("expected *ast.SwitchStatement, got %T", block.Directives[0])
	}
	if len(sw.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(sw.Cases))
	}
}

// §9 Scenario 5: a bare `[Bindable]` metadata attribute with no entries.
func TestParseProgram_BareMetadataAttribute(t *testing.T) {
	program, unit := parseProgram(t, `package {
	[Bindable] class C {
		public var x:int;
	}
}
`)
	checkNoErrors(t, unit)

	class := firstDirective(t, program).(*ast.ClassDefinition)
	if len(class.Attributes) != 1 {
		t.Fatalf("expected 1 attribute, got %d: %+v", len(class.Attributes), class.Attributes)
	}
	meta, ok := class.Attributes[0].(*ast.MetadataAttribute)
	if !ok {
		t.Fatalf("expected *ast.MetadataAttribute, got %T", class.Attributes[0])
	}
	if meta.Name != "Bindable" {
		t.Fatalf("expected metadata name 'Bindable', got %q", meta.Name)
	}
	if len(meta.Entries) != 0 {
		t.Fatalf("expected empty entries, got %+v", meta.Entries)
	}
}

func TestParseProgram_VariableDefinitionMultipleBindings(t *testing.T) {
	program, unit := parseProgram(t, `package {
	function f():void {
		var a:int = 1, b:int = 2;
	}
}
`)
	checkNoErrors(t, unit)

	fn := firstDirective(t, program).(*ast.FunctionDefinition)
	block := fn.Common.Body.(*ast.Block)
	def, ok := block.Directives[0].(*ast.VariableDefinition)
	if !ok {
		t.Fatalf("expected *ast.VariableDefinition, got %T", block.Directives[0])
	}
	if len(def.Bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(def.Bindings))
	}
}
