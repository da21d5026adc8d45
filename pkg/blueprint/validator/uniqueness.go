package validator

import (
	"fmt"

	"colony-hq/colony-ls/pkg/blueprint/ast"
	"colony-hq/colony-ls/pkg/blueprint/diag"
)

// duplicateScan tracks first occurrences and already-reported names while
// walking a sequence of identifiers in document order.
type duplicateScan struct {
	message string
	first   map[string]ast.Identifier
	flagged map[string]bool
}

func newDuplicateScan(message string) *duplicateScan {
	return &duplicateScan{
		message: message,
		first:   make(map[string]ast.Identifier),
		flagged: make(map[string]bool),
	}
}

// observe records one identifier and returns the diagnostics it produces:
// nothing for a first occurrence; for a duplicate, a diagnostic at the
// duplicate's range plus, only the first time a name turns out duplicated,
// one at the original occurrence's range.
func (s *duplicateScan) observe(id ast.Identifier) []diag.Diagnostic {
	orig, seen := s.first[id.Text]
	if !seen {
		s.first[id.Text] = id
		return nil
	}
	diags := []diag.Diagnostic{{Range: id.Range(), Message: s.message, Severity: diag.SeverityError}}
	if !s.flagged[id.Text] {
		diags = append(diags, diag.Diagnostic{Range: orig.Range(), Message: s.message, Severity: diag.SeverityError})
		s.flagged[id.Text] = true
	}
	return diags
}

// findDuplicates walks an ordered sequence of identifiers and reports every
// duplicate with the given message. It returns the first-occurrence map so
// callers can run cross-namespace checks against it.
func findDuplicates(ids []ast.Identifier, message string) (map[string]ast.Identifier, []diag.Diagnostic) {
	scan := newDuplicateScan(message)
	var diags []diag.Diagnostic
	for _, id := range ids {
		diags = append(diags, scan.observe(id)...)
	}
	return scan.first, diags
}

func duplicateMessage(kind resourceKind) string {
	return fmt.Sprintf("This %s is already defined. Each %s should be defined only once.", kind.noun, kind.noun)
}

// checkNameUniqueness enforces the single shared namespace of application
// and service names. It walks applications first, then services; while
// walking services it also reports cross-namespace collisions against the
// applications seen so far, interleaved in document order as a single pass.
func (v *Validator) checkNameUniqueness() []diag.Diagnostic {
	c := diag.NewCollector()

	apps, appDiags := findDuplicates(resourceIDs(appResources(v.tree)), duplicateMessage(appKind))
	c.Extend(appDiags)

	srvScan := newDuplicateScan(duplicateMessage(serviceKind))
	for _, srv := range v.tree.Services {
		c.Extend(srvScan.observe(srv.ID))

		if app, ok := apps[srv.ID.Text]; ok {
			c.Error(srv.ID.Range(),
				"There is already an application with the same name in this blueprint. Make sure the names are unique.")
			c.Error(app.Range(),
				"There is already a service with the same name in this blueprint. Make sure the names are unique.")
		}
	}

	return c.All()
}

func resourceIDs(items []*ast.Resource) []ast.Identifier {
	ids := make([]ast.Identifier, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
