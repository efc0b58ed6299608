package source

import "testing"

func TestGetLineNumber(t *testing.T) {
	u := New("test.as", "one\ntwo\nthree")
	u.RecordLineStart(4) // after "one\n"
	u.RecordLineStart(8) // after "two\n"

	tests := []struct {
		offset int
		want   int
	}{
		{0, 1},
		{3, 1},
		{4, 2},
		{7, 2},
		{8, 3},
		{12, 3},
	}
	for _, tt := range tests {
		if got := u.GetLineNumber(tt.offset); got != tt.want {
			t.Errorf("GetLineNumber(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestRecordLineStart_Monotonic(t *testing.T) {
	u := New("test.as", "one\ntwo\n")
	u.RecordLineStart(4)
	u.RecordLineStart(4) // duplicate, must be ignored
	u.RecordLineStart(2) // out of order, must be ignored

	if got := u.GetLineNumber(5); got != 2 {
		t.Fatalf("expected line 2 after one RecordLineStart(4), got %d", got)
	}
}

func TestAddDiagnostic_TracksErrorAndWarningCounts(t *testing.T) {
	u := New("test.as", "x")
	u.AddDiagnostic(NewSyntaxError(NewCollapsedLocation(u, 0), 0))
	if u.ErrorCount != 1 {
		t.Fatalf("expected ErrorCount 1, got %d", u.ErrorCount)
	}
	if !u.Invalidated {
		t.Fatalf("expected Invalidated to be set after a syntax error")
	}

	u.AddDiagnostic(NewWarning(NewCollapsedLocation(u, 0), 0))
	if u.WarningCount != 1 {
		t.Fatalf("expected WarningCount 1, got %d", u.WarningCount)
	}
}

func TestPreventEqualOffsetError(t *testing.T) {
	u := New("test.as", "x")
	loc := NewCollapsedLocation(u, 0)
	if u.PreventEqualOffsetError(loc) {
		t.Fatalf("expected no prior diagnostic at offset 0")
	}
	u.AddDiagnostic(NewSyntaxError(loc, 0))
	if !u.PreventEqualOffsetError(loc) {
		t.Fatalf("expected a second diagnostic at the same offset to be suppressed")
	}
}

func TestAddComment_DedupesBySameStartOffset(t *testing.T) {
	u := New("test.as", "// a\n// b\n")
	u.AddComment(Comment{Location: NewLocation(u, 0, 4)})
	u.AddComment(Comment{Location: NewLocation(u, 0, 4)})
	if len(u.Comments) != 1 {
		t.Fatalf("expected duplicate same-offset comment to be ignored, got %d comments", len(u.Comments))
	}
}

func TestNestedDiagnostics_DepthFirstInclusionOrder(t *testing.T) {
	root := New("root.as", "root")
	child := New("child.as", "child")
	root.Nested = append(root.Nested, child)

	root.AddDiagnostic(NewSyntaxError(NewCollapsedLocation(root, 0), 0))
	child.AddDiagnostic(NewSyntaxError(NewCollapsedLocation(child, 0), 0))

	all := root.NestedDiagnostics()
	if len(all) != 2 {
		t.Fatalf("expected 2 diagnostics total, got %d", len(all))
	}
	if all[0].Location.Unit != root || all[1].Location.Unit != child {
		t.Fatalf("expected root's diagnostic before child's")
	}
}
