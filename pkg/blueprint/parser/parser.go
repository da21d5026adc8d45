package parser

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"colony-hq/colony-ls/pkg/blueprint/ast"
)

// Parser builds blueprint trees from YAML documents.
type Parser struct{}

// New returns a new blueprint parser.
func New() *Parser {
	return &Parser{}
}

// ParseFile reads and parses a blueprint file.
func (p *Parser) ParseFile(path string) (*ast.Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blueprint %s: %w", path, err)
	}
	return p.Parse(data, path)
}

// Parse parses blueprint YAML into a positioned tree. The source string is
// recorded on the tree for logging and is not otherwise interpreted.
func (p *Parser) Parse(data []byte, source string) (*ast.Blueprint, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse blueprint %s: %w", source, err)
	}

	bp := ast.NewBlueprint(source)

	doc := &root
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return bp, nil
		}
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return bp, nil
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		switch key.Value {
		case "kind":
			bp.Kind = value.Value
		case "spec_version":
			bp.SpecVersion = value.Value
		case "inputs":
			bp.Inputs = buildInputs(value)
		case "applications":
			for _, res := range buildResources(value) {
				bp.Applications = append(bp.Applications, &ast.Application{Resource: *res})
			}
		case "services":
			for _, res := range buildResources(value) {
				bp.Services = append(bp.Services, &ast.Service{Resource: *res})
			}
		case "artifacts":
			bp.Artifacts = buildArtifacts(value)
		}
	}

	return bp, nil
}

// identifier converts a scalar node into a positioned identifier. For a
// single-line scalar the end column is derived from the scalar length; a
// block scalar ends on its last content line, after that line's text.
func identifier(node *yaml.Node) ast.Identifier {
	start := ast.Position{Line: node.Line - 1, Column: node.Column - 1}
	end := ast.Position{Line: start.Line, Column: start.Column + len(node.Value)}
	if nl := strings.LastIndexByte(node.Value, '\n'); nl >= 0 {
		end = ast.Position{
			Line:   start.Line + strings.Count(node.Value, "\n"),
			Column: len(node.Value) - nl - 1,
		}
	}
	return ast.Identifier{
		Text:  node.Value,
		Start: start,
		End:   end,
	}
}

// buildInputs reads the blueprint-level inputs section: a sequence whose
// entries are either bare names or single-pair mappings carrying a default.
func buildInputs(node *yaml.Node) []*ast.InputDefinition {
	inputs := []*ast.InputDefinition{}
	if node.Kind != yaml.SequenceNode {
		return inputs
	}
	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			inputs = append(inputs, &ast.InputDefinition{Key: identifier(item)})
		case yaml.MappingNode:
			if len(item.Content) < 2 {
				continue
			}
			def := &ast.InputDefinition{Key: identifier(item.Content[0])}
			if item.Content[1].Kind == yaml.ScalarNode && item.Content[1].Value != "" {
				d := identifier(item.Content[1])
				def.Default = &d
			}
			inputs = append(inputs, def)
		}
	}
	return inputs
}

// buildResources reads an applications or services section: a sequence of
// entries that are either bare names or single-pair mappings whose value
// holds depends_on and input_values.
func buildResources(node *yaml.Node) []*ast.Resource {
	resources := []*ast.Resource{}
	if node.Kind != yaml.SequenceNode {
		return resources
	}
	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			id := identifier(item)
			resources = append(resources, &ast.Resource{
				ID:        id,
				DependsOn: []ast.Identifier{},
				Inputs:    []ast.InputValue{},
				Span:      id.Range(),
			})
		case yaml.MappingNode:
			if len(item.Content) < 2 {
				continue
			}
			resources = append(resources, buildResource(item.Content[0], item.Content[1]))
		}
	}
	return resources
}

func buildResource(name, body *yaml.Node) *ast.Resource {
	id := identifier(name)
	res := &ast.Resource{
		ID:        id,
		DependsOn: []ast.Identifier{},
		Inputs:    []ast.InputValue{},
		Span:      ast.Range{Start: id.Start, End: endOf(body, id.End)},
	}
	if body.Kind != yaml.MappingNode {
		return res
	}
	for i := 0; i+1 < len(body.Content); i += 2 {
		key, value := body.Content[i], body.Content[i+1]
		switch key.Value {
		case "depends_on":
			if value.Kind != yaml.SequenceNode {
				continue
			}
			for _, dep := range value.Content {
				if dep.Kind == yaml.ScalarNode {
					res.DependsOn = append(res.DependsOn, identifier(dep))
				}
			}
		case "input_values":
			res.Inputs = append(res.Inputs, buildInputValues(value)...)
		}
	}
	return res
}

// buildInputValues reads a sequence of single-pair mappings into supplied
// input key/value pairs. Non-scalar values keep their position but carry an
// empty literal; the validator has nothing to scan in them.
func buildInputValues(node *yaml.Node) []ast.InputValue {
	values := []ast.InputValue{}
	if node.Kind != yaml.SequenceNode {
		return values
	}
	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode || len(item.Content) < 2 {
			continue
		}
		iv := ast.InputValue{Key: identifier(item.Content[0])}
		if item.Content[1].Kind == yaml.ScalarNode {
			iv.Value = identifier(item.Content[1])
		} else {
			iv.Value = ast.Identifier{
				Start: ast.Position{Line: item.Content[1].Line - 1, Column: item.Content[1].Column - 1},
				End:   ast.Position{Line: item.Content[1].Line - 1, Column: item.Content[1].Column - 1},
			}
		}
		values = append(values, iv)
	}
	return values
}

// buildArtifacts reads the artifacts section, accepting both a sequence of
// single-pair mappings and a plain mapping.
func buildArtifacts(node *yaml.Node) []*ast.Artifact {
	artifacts := []*ast.Artifact{}
	switch node.Kind {
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind != yaml.MappingNode || len(item.Content) < 2 {
				continue
			}
			artifacts = append(artifacts, &ast.Artifact{
				Key:   identifier(item.Content[0]),
				Value: identifier(item.Content[1]),
			})
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			artifacts = append(artifacts, &ast.Artifact{
				Key:   identifier(node.Content[i]),
				Value: identifier(node.Content[i+1]),
			})
		}
	}
	return artifacts
}

// endOf returns the position just past the last scalar under node, falling
// back to the given position for empty bodies.
func endOf(node *yaml.Node, fallback ast.Position) ast.Position {
	end := fallback
	var walk func(n *yaml.Node)
	walk = func(n *yaml.Node) {
		if n.Kind == yaml.ScalarNode {
			p := ast.Position{Line: n.Line - 1, Column: n.Column - 1 + len(n.Value)}
			if end.Before(p) {
				end = p
			}
			return
		}
		for _, child := range n.Content {
			walk(child)
		}
	}
	walk(node)
	return end
}
