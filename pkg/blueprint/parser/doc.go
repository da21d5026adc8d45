// Package parser builds the positioned blueprint AST from YAML source.
//
// It walks the yaml.Node tree directly instead of decoding into structs so
// that every identifier keeps the exact line and column it was read from.
// Positions are converted from the YAML library's one-based convention to
// the zero-based convention used throughout the AST.
//
// The parser is deliberately tolerant: unknown top-level sections are
// ignored and malformed entries are skipped, because semantic validation is
// responsible for reporting problems with positions, not the parser.
package parser
