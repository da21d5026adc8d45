package parser

import (
	"testing"

	"gopkg.in/yaml.v3"

	"colony-hq/colony-ls/pkg/blueprint/ast"
)

const sampleBlueprint = `spec_version: 1
kind: blueprint

inputs:
  - PORT: 8080
  - DB_USER

applications:
  - web:
      input_values:
        - PORT: $PORT
      depends_on:
        - db

services:
  - db:
      input_values:
        - USER: ${DB_USER}

artifacts:
  - web: builds/web.tar.gz
`

func TestParse_FullBlueprint(t *testing.T) {
	bp, err := New().Parse([]byte(sampleBlueprint), "sample.yaml")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if bp.Kind != "blueprint" {
		t.Errorf("Kind = %q, want %q", bp.Kind, "blueprint")
	}
	if bp.SpecVersion != "1" {
		t.Errorf("SpecVersion = %q, want %q", bp.SpecVersion, "1")
	}
	if bp.Source != "sample.yaml" {
		t.Errorf("Source = %q, want %q", bp.Source, "sample.yaml")
	}

	if len(bp.Inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(bp.Inputs))
	}
	if bp.Inputs[0].Key.Text != "PORT" {
		t.Errorf("first input = %q, want PORT", bp.Inputs[0].Key.Text)
	}
	if bp.Inputs[0].Default == nil || bp.Inputs[0].Default.Text != "8080" {
		t.Errorf("PORT default = %v, want 8080", bp.Inputs[0].Default)
	}
	if bp.Inputs[1].Key.Text != "DB_USER" || bp.Inputs[1].Default != nil {
		t.Errorf("second input = %q (default %v), want DB_USER with no default",
			bp.Inputs[1].Key.Text, bp.Inputs[1].Default)
	}

	if len(bp.Applications) != 1 {
		t.Fatalf("expected 1 application, got %d", len(bp.Applications))
	}
	web := bp.Applications[0]
	if web.ID.Text != "web" {
		t.Errorf("application name = %q, want web", web.ID.Text)
	}
	if len(web.DependsOn) != 1 || web.DependsOn[0].Text != "db" {
		t.Fatalf("web.DependsOn = %v, want [db]", web.DependsOn)
	}
	if len(web.Inputs) != 1 || web.Inputs[0].Key.Text != "PORT" || web.Inputs[0].Value.Text != "$PORT" {
		t.Fatalf("web.Inputs = %v, want PORT=$PORT", web.Inputs)
	}

	if len(bp.Services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(bp.Services))
	}
	db := bp.Services[0]
	if db.ID.Text != "db" {
		t.Errorf("service name = %q, want db", db.ID.Text)
	}
	if len(db.Inputs) != 1 || db.Inputs[0].Value.Text != "${DB_USER}" {
		t.Fatalf("db.Inputs = %v, want USER=${DB_USER}", db.Inputs)
	}

	if len(bp.Artifacts) != 1 || bp.Artifacts[0].Key.Text != "web" {
		t.Fatalf("Artifacts = %v, want one artifact for web", bp.Artifacts)
	}
	if bp.Artifacts[0].Value.Text != "builds/web.tar.gz" {
		t.Errorf("artifact value = %q, want builds/web.tar.gz", bp.Artifacts[0].Value.Text)
	}
}

func TestParse_Positions(t *testing.T) {
	bp, err := New().Parse([]byte(sampleBlueprint), "sample.yaml")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	tests := []struct {
		name string
		id   ast.Identifier
		want ast.Position
	}{
		{"input key", bp.Inputs[0].Key, ast.Position{Line: 4, Column: 4}},
		{"application name", bp.Applications[0].ID, ast.Position{Line: 8, Column: 4}},
		{"supplied value", bp.Applications[0].Inputs[0].Value, ast.Position{Line: 10, Column: 16}},
		{"dependency", bp.Applications[0].DependsOn[0], ast.Position{Line: 12, Column: 10}},
		{"service name", bp.Services[0].ID, ast.Position{Line: 15, Column: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.id.Start != tt.want {
				t.Errorf("start = %v, want %v", tt.id.Start, tt.want)
			}
			wantEnd := ast.Position{Line: tt.want.Line, Column: tt.want.Column + len(tt.id.Text)}
			if tt.id.End != wantEnd {
				t.Errorf("end = %v, want %v", tt.id.End, wantEnd)
			}
		})
	}
}

func TestIdentifier_MultilineScalarEnd(t *testing.T) {
	tests := []struct {
		name  string
		value string
		start ast.Position
		end   ast.Position
	}{
		{
			name:  "single line",
			value: "first",
			start: ast.Position{Line: 4, Column: 12},
			end:   ast.Position{Line: 4, Column: 17},
		},
		{
			name:  "two lines end on the second",
			value: "first\nsecond",
			start: ast.Position{Line: 4, Column: 12},
			end:   ast.Position{Line: 5, Column: 6},
		},
		{
			name:  "trailing newline ends at column zero",
			value: "first\nsecond\n",
			start: ast.Position{Line: 4, Column: 12},
			end:   ast.Position{Line: 6, Column: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &yaml.Node{
				Kind:   yaml.ScalarNode,
				Value:  tt.value,
				Line:   tt.start.Line + 1,
				Column: tt.start.Column + 1,
			}
			id := identifier(node)
			if id.Start != tt.start {
				t.Errorf("start = %v, want %v", id.Start, tt.start)
			}
			if id.End != tt.end {
				t.Errorf("end = %v, want %v", id.End, tt.end)
			}
			if id.End.Before(id.Start) {
				t.Errorf("end %v precedes start %v", id.End, id.Start)
			}
		})
	}
}

func TestParse_AbsentSectionsAreEmpty(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"kind only", "kind: blueprint\n"},
		{"empty document", ""},
		{"unknown sections ignored", "kind: blueprint\nclouds:\n  - aws\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp, err := New().Parse([]byte(tt.yaml), "minimal.yaml")
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if bp.Applications == nil || len(bp.Applications) != 0 {
				t.Errorf("Applications = %v, want empty slice", bp.Applications)
			}
			if bp.Services == nil || len(bp.Services) != 0 {
				t.Errorf("Services = %v, want empty slice", bp.Services)
			}
			if bp.Inputs == nil || len(bp.Inputs) != 0 {
				t.Errorf("Inputs = %v, want empty slice", bp.Inputs)
			}
			if bp.Artifacts == nil || len(bp.Artifacts) != 0 {
				t.Errorf("Artifacts = %v, want empty slice", bp.Artifacts)
			}
		})
	}
}

func TestParse_ArtifactsMappingForm(t *testing.T) {
	src := "artifacts:\n  web: builds/web.tar.gz\n  api: builds/api.tar.gz\n"
	bp, err := New().Parse([]byte(src), "artifacts.yaml")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(bp.Artifacts) != 2 {
		t.Fatalf("expected 2 artifacts, got %d", len(bp.Artifacts))
	}
	if bp.Artifacts[0].Key.Text != "web" || bp.Artifacts[1].Key.Text != "api" {
		t.Errorf("artifact keys = %q, %q; want web, api",
			bp.Artifacts[0].Key.Text, bp.Artifacts[1].Key.Text)
	}
}

func TestParse_BareResourceNames(t *testing.T) {
	src := "applications:\n  - web\n  - api\n"
	bp, err := New().Parse([]byte(src), "bare.yaml")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(bp.Applications) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(bp.Applications))
	}
	for _, app := range bp.Applications {
		if app.DependsOn == nil || app.Inputs == nil {
			t.Errorf("application %q: depends_on and inputs must be empty slices", app.ID.Text)
		}
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := New().Parse([]byte("applications:\n  - web: [unclosed\n"), "broken.yaml")
	if err == nil {
		t.Fatal("expected a parse error for malformed YAML")
	}
}
