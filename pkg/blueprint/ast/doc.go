// Package ast defines the positioned document tree for Colony blueprints.
//
// The tree is produced by the parser (or any other front end) and consumed
// read-only by the validator. Every named entity carries the exact source
// range it was read from, so diagnostics can be rendered in an editor
// without re-parsing the document.
//
// Optional document sections (applications, services, inputs, artifacts)
// are represented as possibly-empty slices, never nil sentinels: an absent
// section and an empty section are indistinguishable to consumers.
package ast
