package ast

// Identifier is a positioned piece of scalar text: a resource name, an input
// key, or a raw input value. It is immutable once produced by the parser.
type Identifier struct {
	Text  string
	Start Position
	End   Position
}

// Range returns the source span covered by the identifier.
func (id Identifier) Range() Range {
	return Range{Start: id.Start, End: id.End}
}

// InputDefinition is a variable declared at blueprint scope, available for
// substitution into application and service input values.
type InputDefinition struct {
	Key Identifier

	// Default is the declared default value, if any.
	Default *Identifier
}

// InputValue is a key/value pair supplied to a specific application or
// service. The value is the raw literal and may embed variable tokens.
type InputValue struct {
	Key   Identifier
	Value Identifier
}

// Artifact binds a build artifact to an application by name.
type Artifact struct {
	Key   Identifier
	Value Identifier
}

// Resource is the shape shared by applications and services: a named,
// dependency-bearing, input-bearing unit. Dependency entries are raw text
// references resolved at validation time, not parse time.
type Resource struct {
	ID        Identifier
	DependsOn []Identifier
	Inputs    []InputValue
	Span      Range
}

// Application is a deployable application entry in the blueprint.
type Application struct {
	Resource
}

// Service is a supporting service entry in the blueprint. Applications and
// services share a single naming namespace.
type Service struct {
	Resource
}

// Blueprint is the parsed document tree handed to the validator.
type Blueprint struct {
	Kind        string
	SpecVersion string

	// Source is the path or URI the document was read from.
	Source string

	Applications []*Application
	Services     []*Service
	Inputs       []*InputDefinition
	Artifacts    []*Artifact
}

// NewBlueprint returns an empty blueprint with all sections initialized.
func NewBlueprint(source string) *Blueprint {
	return &Blueprint{
		Source:       source,
		Applications: []*Application{},
		Services:     []*Service{},
		Inputs:       []*InputDefinition{},
		Artifacts:    []*Artifact{},
	}
}
