package validator

import (
	"colony-hq/colony-ls/pkg/blueprint/ast"
	"colony-hq/colony-ls/pkg/blueprint/diag"
)

// checkArtifactTargets verifies that every artifact is bound to an
// application declared in this blueprint.
func (v *Validator) checkArtifactTargets() []diag.Diagnostic {
	c := diag.NewCollector()
	for _, art := range v.tree.Artifacts {
		if _, ok := v.appNames[art.Key.Text]; !ok {
			c.Error(art.Key.Range(), "This application is not defined in this blueprint.")
		}
	}
	return c.All()
}

// checkArtifactUniqueness reports artifacts defined more than once, with
// the same duplicate-detection pattern used for resource names.
func (v *Validator) checkArtifactUniqueness() []diag.Diagnostic {
	keys := make([]ast.Identifier, 0, len(v.tree.Artifacts))
	for _, art := range v.tree.Artifacts {
		keys = append(keys, art.Key)
	}
	_, diags := findDuplicates(keys, "This artifact is already defined. Each artifact should be defined only once.")
	return diags
}
