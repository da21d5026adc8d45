package diag

import (
	"testing"

	"colony-hq/colony-ls/pkg/blueprint/ast"
)

func span(line, col, endCol int) ast.Range {
	return ast.Range{
		Start: ast.Position{Line: line, Column: col},
		End:   ast.Position{Line: line, Column: endCol},
	}
}

func TestCollector_PreservesInsertionOrder(t *testing.T) {
	c := NewCollector()
	c.Warning(span(0, 0, 4), "first")
	c.Error(span(3, 2, 8), "second")
	c.Extend([]Diagnostic{
		{Range: span(1, 0, 1), Message: "third", Severity: SeverityError},
		{Range: span(0, 5, 9), Message: "fourth", Severity: SeverityWarning},
	})

	got := c.All()
	if len(got) != 4 {
		t.Fatalf("expected 4 diagnostics, got %d", len(got))
	}

	wantOrder := []string{"first", "second", "third", "fourth"}
	for i, want := range wantOrder {
		if got[i].Message != want {
			t.Errorf("diagnostic %d: got %q, want %q", i, got[i].Message, want)
		}
	}

	if got[0].Severity != SeverityWarning {
		t.Errorf("expected first diagnostic to keep warning severity, got %v", got[0].Severity)
	}
	if got[1].Severity != SeverityError {
		t.Errorf("expected second diagnostic to keep error severity, got %v", got[1].Severity)
	}
}

func TestCollector_EmptyByDefault(t *testing.T) {
	c := NewCollector()
	if c.Len() != 0 {
		t.Errorf("expected empty collector, got %d diagnostics", c.Len())
	}
	if c.All() == nil {
		t.Error("All() should return an empty slice, not nil")
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityError, "error"},
		{SeverityWarning, "warning"},
		{Severity(9), "severity(9)"},
	}
	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(tt.severity), got, tt.want)
		}
	}
}
