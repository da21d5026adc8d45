package catalog

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// tfvarsAssignment matches one variable assignment per line in a tfvars
// file; the capture is the variable name.
var tfvarsAssignment = regexp.MustCompile(`(?m)^(.+?)\s*=`)

// variablesFromTFVars extracts the variable names assigned in tfvars
// content.
func variablesFromTFVars(data []byte) []string {
	matches := tfvarsAssignment.FindAllStringSubmatch(string(data), -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		names = append(names, name)
	}
	return names
}

// variablesFromTFVarsDir collects variable names from every *.tfvars file
// in a directory, sorted for deterministic catalog answers.
func variablesFromTFVarsDir(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}
	}
	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tfvars") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		names = append(names, variablesFromTFVars(data)...)
	}
	sort.Strings(names)
	return names
}
