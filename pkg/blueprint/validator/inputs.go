package validator

import (
	"fmt"
	"strings"

	"colony-hq/colony-ls/pkg/blueprint/ast"
	"colony-hq/colony-ls/pkg/blueprint/diag"
	"colony-hq/colony-ls/pkg/catalog"
)

// checkInputExistence verifies that every input supplied to a resource is
// among the inputs its catalog definition declares.
func (v *Validator) checkInputExistence(items []*ast.Resource, cat catalog.Catalog, kind resourceKind) []diag.Diagnostic {
	c := diag.NewCollector()
	for _, item := range items {
		declared := toSet(cat.DeclaredInputs(item.ID.Text))
		for _, input := range item.Inputs {
			if _, ok := declared[input.Key.Text]; !ok {
				c.Error(input.Key.Range(),
					fmt.Sprintf("The %s '%s' does not have an input named '%s'", kind.noun, item.ID.Text, input.Key.Text))
			}
		}
	}
	return c.All()
}

// checkUnusedInputs warns about blueprint-declared inputs no application
// input value ever references. This is the only warning-severity pass.
func (v *Validator) checkUnusedInputs() []diag.Diagnostic {
	used := make(map[string]struct{})
	for _, app := range v.tree.Applications {
		for _, input := range app.Inputs {
			for _, tok := range scanTokens(input.Value.Text) {
				used[strings.TrimPrefix(tok.normalized, "$")] = struct{}{}
			}
		}
	}

	c := diag.NewCollector()
	for _, input := range v.tree.Inputs {
		if _, ok := used[input.Key.Text]; !ok {
			c.Warning(input.Key.Range(), fmt.Sprintf("Unused variable %s", input.Key.Text))
		}
	}
	return c.All()
}
