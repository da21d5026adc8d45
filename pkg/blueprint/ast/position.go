package ast

import "fmt"

// Position is a zero-based line/column pair, matching editor conventions:
// the first character of a document is line 0, column 0.
type Position struct {
	Line   int
	Column int
}

// String returns a human-readable "line:column" representation.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p precedes q in document order.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// Range is a span of source text between two positions.
// Start never follows End.
type Range struct {
	Start Position
	End   Position
}

// String returns a human-readable "start-end" representation.
func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
