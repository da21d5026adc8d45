package validator

import (
	"fmt"

	"colony-hq/colony-ls/pkg/blueprint/ast"
	"colony-hq/colony-ls/pkg/blueprint/diag"
)

const msgDependencyNotDefined = "The application/service '%s' is not defined in the applications/services section"

// checkDependencies verifies that every depends_on entry names an
// application or service declared in this blueprint and that no resource
// depends on itself. The two findings are mutually exclusive per entry:
// a dangling name is reported as undefined, never also as self-referential.
func (v *Validator) checkDependencies() []diag.Diagnostic {
	c := diag.NewCollector()
	v.checkResourceDependencies(c, appResources(v.tree), appKind)
	v.checkResourceDependencies(c, serviceResources(v.tree), serviceKind)
	return c.All()
}

func (v *Validator) checkResourceDependencies(c *diag.Collector, items []*ast.Resource, kind resourceKind) {
	for _, item := range items {
		for _, dep := range item.DependsOn {
			if !v.isKnownName(dep.Text) {
				c.Error(dep.Range(), fmt.Sprintf(msgDependencyNotDefined, dep.Text))
			} else if dep.Text == item.ID.Text {
				c.Error(dep.Range(), fmt.Sprintf("The %s '%s' cannot be dependent of itself", kind.short, dep.Text))
			}
		}
	}
}
