package validator

import (
	"fmt"
	"strings"

	"colony-hq/colony-ls/pkg/blueprint/ast"
	"colony-hq/colony-ls/pkg/blueprint/diag"
)

// token is one embedded variable reference found in a supplied input value.
// A token never spans lines.
type token struct {
	// raw is the original text, e.g. "${port}".
	raw string
	// normalized is the bare sigil form, e.g. "$port". For bare tokens it
	// equals raw.
	normalized string
	// line is the token's line within the containing value, counted from
	// zero; col is its column within that line.
	line int
	col  int
}

// scanTokens finds embedded variable references in a free-text value. Two
// surface forms exist: a braced token "${name}", any number of which may
// appear anywhere in a line and which ends at the first closing brace on
// that line, and a bare token "$name" which is only recognized at the start
// of the value (or of a line within it) and runs to the end of that line.
// An empty braced token "${}" names nothing and is skipped.
//
// An unterminated "${" at the start of a line degrades to a bare token, so
// the author still gets a diagnostic pointing at it.
func scanTokens(value string) []token {
	var tokens []token
	lineStart := true
	line, lineOrigin := 0, 0
	for i := 0; i < len(value); {
		ch := value[i]
		if ch == '\n' {
			lineStart = true
			line++
			i++
			lineOrigin = i
			continue
		}
		if ch == '$' {
			if closed, end := bracedEnd(value, i); closed {
				if end > i+3 {
					tokens = append(tokens, token{
						raw:        value[i:end],
						normalized: "$" + value[i+2:end-1],
						line:       line,
						col:        i - lineOrigin,
					})
				}
				i = end
				lineStart = false
				continue
			}
			if lineStart {
				end := len(value)
				if nl := strings.IndexByte(value[i:], '\n'); nl >= 0 {
					end = i + nl
				}
				tokens = append(tokens, token{
					raw:        value[i:end],
					normalized: value[i:end],
					line:       line,
					col:        i - lineOrigin,
				})
				i = end
				continue
			}
		}
		lineStart = false
		i++
	}
	return tokens
}

// bracedEnd reports whether value[i:] opens a braced token terminated on
// the same line, and the offset just past its closing brace.
func bracedEnd(value string, i int) (bool, int) {
	if i+1 >= len(value) || value[i+1] != '{' {
		return false, 0
	}
	rest := value[i+2:]
	j := strings.IndexByte(rest, '}')
	if j < 0 || strings.IndexByte(rest[:j], '\n') >= 0 {
		return false, 0
	}
	return true, i + 2 + j + 1
}

// tokenRange positions a token within the document. The value's start
// column offsets only tokens on the value's first line; later lines of a
// multi-line value start at column zero.
func tokenRange(value ast.Identifier, tok token) ast.Range {
	line := value.Start.Line + tok.line
	col := tok.col
	if tok.line == 0 {
		col += value.Start.Column
	}
	return ast.Range{
		Start: ast.Position{Line: line, Column: col},
		End:   ast.Position{Line: line, Column: col + len(tok.raw)},
	}
}

// checkVariableReferences resolves every variable token embedded in the
// applications' supplied input values. Tokens without a path separator must
// name a declared blueprint input; tokens with the colony prefix must
// satisfy the auto-variable grammar. Anything else is plain text.
func (v *Validator) checkVariableReferences() []diag.Diagnostic {
	declared := make(map[string]struct{}, len(v.tree.Inputs))
	for _, input := range v.tree.Inputs {
		declared[input.Key.Text] = struct{}{}
	}

	c := diag.NewCollector()
	for _, app := range v.tree.Applications {
		for _, input := range app.Inputs {
			for _, tok := range scanTokens(input.Value.Text) {
				isAutoVar := strings.HasPrefix(strings.ToLower(tok.normalized), autoVarPrefix)
				switch {
				case isAutoVar:
					if ok, message := v.validateAutoVariable(tok.normalized); !ok {
						c.Error(tokenRange(input.Value, tok), message)
					}
				case !strings.Contains(tok.normalized, "."):
					name := strings.TrimPrefix(tok.normalized, "$")
					if _, ok := declared[name]; !ok {
						c.Error(tokenRange(input.Value, tok),
							fmt.Sprintf("Variable '%s' is not defined", tok.normalized))
					}
				}
			}
		}
	}
	return c.All()
}
