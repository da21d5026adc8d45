package validator

import (
	"fmt"

	"colony-hq/colony-ls/pkg/blueprint/ast"
	"colony-hq/colony-ls/pkg/blueprint/diag"
	"colony-hq/colony-ls/pkg/catalog"
)

// checkResourceExistence verifies that every declared resource has a
// definition in its catalog folder.
func (v *Validator) checkResourceExistence(items []*ast.Resource, cat catalog.Catalog, kind resourceKind) []diag.Diagnostic {
	c := diag.NewCollector()
	for _, item := range items {
		if !cat.Has(item.ID.Text) {
			c.Error(item.ID.Range(),
				fmt.Sprintf("The %s '%s' could not be found in the %s folder", kind.short, item.ID.Text, kind.folder))
		}
	}
	return c.All()
}
