package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestVariablesFromTFVars(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{
			name: "simple assignments",
			data: "region = \"eu\"\nsize = 3\n",
			want: []string{"region", "size"},
		},
		{
			name: "no space before equals",
			data: "region=\"eu\"\n",
			want: []string{"region"},
		},
		{
			name: "comments skipped",
			data: "# region = \"eu\"\nsize = 3\n",
			want: []string{"size"},
		},
		{
			name: "empty file",
			data: "",
			want: []string{},
		},
		{
			name: "lines without assignments ignored",
			data: "just a note\nvalue = 1\n",
			want: []string{"value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := variablesFromTFVars([]byte(tt.data))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVariablesFromTFVarsDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.tfvars":   "zeta = 1\n",
		"a.tfvars":   "alpha = 2\n",
		"notes.txt":  "ignored = 3\n",
		"extra.yaml": "also: ignored\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got := variablesFromTFVarsDir(dir)
	if !reflect.DeepEqual(got, []string{"alpha", "zeta"}) {
		t.Errorf("got %v, want sorted [alpha zeta]", got)
	}
}

func TestVariablesFromTFVarsDir_MissingDir(t *testing.T) {
	got := variablesFromTFVarsDir(filepath.Join(t.TempDir(), "nope"))
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
