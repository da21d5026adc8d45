// Package validator is the semantic-validation engine for Colony
// blueprints.
//
// Given a parsed blueprint tree and the applications/services catalogs, it
// runs a fixed ordered sequence of validation passes and returns positioned
// diagnostics an editor can surface inline. Every pass is a pure function
// of the tree and the catalogs; the orchestrator concatenates their output,
// so diagnostic order is pass order, then document order.
//
// A Validator is constructed per validation request and must not be reused
// or invoked concurrently. Validation is synchronous and runs every pass to
// completion; semantic findings are diagnostics, never Go errors.
package validator
