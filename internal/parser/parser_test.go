package parser

import (
	"testing"

	"github.com/as3toolkit/as3parser/internal/ast"
	"github.com/as3toolkit/as3parser/internal/source"
)

// parseProgram is the test helper shared across this package: it builds a
// fresh unit, parses it as a full program, and hands back both the program
// and the unit so a test can inspect diagnostics.
func parseProgram(t *testing.T, input string) (*ast.Program, *source.Unit) {
	t.Helper()
	unit := source.New("test.as", input)
	program := ParseProgram(unit, Options{})
	return program, unit
}

func checkNoErrors(t *testing.T, unit *source.Unit) {
	t.Helper()
	if unit.ErrorCount == 0 {
		return
	}
	unit.SortDiagnostics()
	for _, d := range unit.NestedDiagnostics() {
		t.Errorf("parse error: %s", d.FormatDefault())
	}
	t.FailNow()
}

func firstDirective(t *testing.T, program *ast.Program) ast.Directive {
	t.Helper()
	if len(program.Packages) == 1 && program.Packages[0].Block != nil && len(program.Packages[0].Block.Directives) > 0 {
		return program.Packages[0].Block.Directives[0]
	}
	if len(program.Directives) > 0 {
		return program.Directives[0]
	}
	t.Fatalf("program has no directives")
	return nil
}

func TestParseProgram_EmptyPackage(t *testing.T) {
	program, unit := parseProgram(t, `package com.example {
}
`)
	checkNoErrors(t, unit)

	if len(program.Packages) != 1 {
		t.Fatalf("expected 1 package, got %d", len(program.Packages))
	}
	if program.Packages[0].Name != "com.example" {
		t.Fatalf("expected package name 'com.example', got %q", program.Packages[0].Name)
	}
}

func TestParseProgram_ClassWithMethod(t *testing.T) {
	program, unit := parseProgram(t, `package com.example {
	public class Greeter {
		public function greet(name:String):String {
			return "hi " + name;
		}
	}
}
`)
	checkNoErrors(t, unit)

	class, ok := firstDirective(t, program).(*ast.ClassDefinition)
	if !ok {
		t.Fatalf("expected *ast.ClassDefinition, got %T", firstDirective(t, program))
	}
	if class.Name != "Greeter" {
		t.Fatalf("expected class name 'Greeter', got %q", class.Name)
	}
	if len(class.Block.Directives) != 1 {
		t.Fatalf("expected 1 member, got %d", len(class.Block.Directives))
	}
	fn, ok := class.Block.Directives[0].(*ast.FunctionDefinition)
	if !ok {
		t.Fatalf("expected *ast.FunctionDefinition, got %T", class.Block.Directives[0])
	}
	if fn.Name != "greet" {
		t.Fatalf("expected function name 'greet', got %q", fn.Name)
	}
	if fn.Common.Body == nil {
		t.Fatalf("expected a function body, got nil")
	}
}

func TestParseProgram_InterfaceMethodHasNoBody(t *testing.T) {
	program, unit := parseProgram(t, `package {
	public interface IGreeter {
		function greet(name:String):String;
	}
}
`)
	checkNoErrors(t, unit)

	iface, ok := firstDirective(t, program).(*ast.InterfaceDefinition)
	if !ok {
		t.Fatalf("expected *ast.InterfaceDefinition, got %T", firstDirective(t, program))
	}
	fn, ok := iface.Block.Directives[0].(*ast.FunctionDefinition)
	if !ok {
		t.Fatalf("expected *ast.FunctionDefinition, got %T", iface.Block.Directives[0])
	}
	if fn.Common.Body != nil {
		t.Fatalf("expected a signature-only method with no body, got %v", fn.Common.Body)
	}
}

func TestParseProgram_UseNamespaceRequiresKeyword(t *testing.T) {
	_, unit := parseProgram(t, `package {
	use namespace flash_proxy;
}
`)
	checkNoErrors(t, unit)
}

func TestParseProgram_UseNamespaceRejectsWrongKeyword(t *testing.T) {
	_, unit := parseProgram(t, `package {
	use something flash_proxy;
}
`)
	if unit.ErrorCount == 0 {
		t.Fatalf("expected a diagnostic for 'use something', got none")
	}
}
