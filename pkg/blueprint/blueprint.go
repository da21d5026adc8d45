// Package blueprint ties the parser, the catalogs, and the validator into
// one convenience surface for embedding processes (the language server, the
// lint command).
package blueprint

import (
	"colony-hq/colony-ls/pkg/blueprint/ast"
	"colony-hq/colony-ls/pkg/blueprint/diag"
	"colony-hq/colony-ls/pkg/blueprint/parser"
	"colony-hq/colony-ls/pkg/blueprint/validator"
	"colony-hq/colony-ls/pkg/catalog"
)

// Parse parses a blueprint file without validating it.
func Parse(path string) (*ast.Blueprint, error) {
	return parser.New().ParseFile(path)
}

// ParseBytes parses blueprint YAML without validating it.
func ParseBytes(data []byte, source string) (*ast.Blueprint, error) {
	return parser.New().Parse(data, source)
}

// Validate runs the full validation sequence for an already-parsed tree
// against the given catalogs.
func Validate(tree *ast.Blueprint, rootPath string, apps, services catalog.Catalog, opts ...validator.Option) []diag.Diagnostic {
	return validator.New(tree, rootPath, apps, services, opts...).Validate()
}

// ParseAndValidate parses a blueprint file and validates it against fresh
// filesystem catalogs rooted at rootPath. The returned diagnostics are in
// publication order; the error covers I/O and YAML syntax only.
func ParseAndValidate(path, rootPath string, opts ...validator.Option) (*ast.Blueprint, []diag.Diagnostic, error) {
	tree, err := Parse(path)
	if err != nil {
		return nil, nil, err
	}
	apps := catalog.NewApplications()
	services := catalog.NewServices()
	return tree, Validate(tree, rootPath, apps, services, opts...), nil
}
