package main

import (
	"os"
	"path/filepath"
	"testing"
)

// writeWorkspace lays out a workspace with one application definition and
// returns its root.
func writeWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "applications", "web")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	def := "kind: application\ninputs:\n  - PORT\n"
	if err := os.WriteFile(filepath.Join(dir, "web.yaml"), []byte(def), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func writeBlueprint(t *testing.T, root, body string) string {
	t.Helper()
	path := filepath.Join(root, "blueprint.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLintBlueprintFile_Valid(t *testing.T) {
	root := writeWorkspace(t)
	path := writeBlueprint(t, root, `kind: blueprint
inputs:
  - PORT: 8080
applications:
  - web:
      input_values:
        - PORT: $PORT
`)

	result := lintBlueprintFile(path, root)
	if !result.Valid {
		t.Errorf("expected a valid result, got errors %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestLintBlueprintFile_ErrorsAndWarnings(t *testing.T) {
	root := writeWorkspace(t)
	path := writeBlueprint(t, root, `kind: blueprint
inputs:
  - UNUSED
applications:
  - ghost
`)

	result := lintBlueprintFile(path, root)
	if result.Valid {
		t.Fatal("expected an invalid result")
	}

	if len(result.Errors) != 1 ||
		result.Errors[0].Message != "The app 'ghost' could not be found in the applications folder" {
		t.Errorf("Errors = %v, want the missing-application finding", result.Errors)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Message != "Unused variable UNUSED" {
		t.Errorf("Warnings = %v, want the unused-input finding", result.Warnings)
	}
	if result.Warnings[0].Severity != "warning" || result.Errors[0].Severity != "error" {
		t.Errorf("severity labels wrong: %v / %v", result.Warnings[0].Severity, result.Errors[0].Severity)
	}
}

func TestLintBlueprintFile_UnreadableFile(t *testing.T) {
	result := lintBlueprintFile(filepath.Join(t.TempDir(), "missing.yaml"), t.TempDir())
	if result.Valid || len(result.Errors) != 1 {
		t.Errorf("expected one error for a missing file, got %+v", result)
	}
}
