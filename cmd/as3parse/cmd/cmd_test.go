package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func runRoot(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestParseCmd_WritesASTJSONAndDiagFiles(t *testing.T) {
	path := writeTempFile(t, "hello.as", "package { public class Hello {} }")

	if err := runRoot(t, "parse", path); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := os.Stat(path + ".ast.json"); err != nil {
		t.Fatalf("expected %s.ast.json to exist: %v", path, err)
	}
	if _, err := os.Stat(path + ".diag"); err != nil {
		t.Fatalf("expected %s.diag to exist: %v", path, err)
	}
}

func TestParseCmd_NonZeroExitOnSyntaxError(t *testing.T) {
	path := writeTempFile(t, "broken.as", "package { class }")

	err := runRoot(t, "parse", path)
	if err == nil {
		t.Fatalf("expected an error for malformed input")
	}
}

func TestMxmlCmd_WritesASTJSONAndDiagFiles(t *testing.T) {
	path := writeTempFile(t, "app.mxml", `<s:Button label="OK" xmlns:s="library://ns.adobe.com/flex/spark"/>`)

	if err := runRoot(t, "mxml", path); err != nil {
		t.Fatalf("mxml: %v", err)
	}
	if _, err := os.Stat(path + ".ast.json"); err != nil {
		t.Fatalf("expected %s.ast.json to exist: %v", path, err)
	}
}

func TestCssCmd_WritesASTJSONAndDiagFiles(t *testing.T) {
	path := writeTempFile(t, "style.css", ".a { color: red; }")

	if err := runRoot(t, "css", path); err != nil {
		t.Fatalf("css: %v", err)
	}
	if _, err := os.Stat(path + ".ast.json"); err != nil {
		t.Fatalf("expected %s.ast.json to exist: %v", path, err)
	}
}

func TestLexCmd_SucceedsOnWellFormedInput(t *testing.T) {
	path := writeTempFile(t, "hello.as", "package { public class Hello {} }")

	if err := runRoot(t, "lex", path); err != nil {
		t.Fatalf("lex: %v", err)
	}
}
