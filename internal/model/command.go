// Package model holds the command schema produced by the OpenAPI parser:
// parameters, request body properties, operations and command groups, plus
// the derived name and type forms the project generator renders.
package model

import (
	"strings"

	"github.com/gmarciani/cliwizard/internal/naming"
)

type Location string

const (
	LocationPath   Location = "path"
	LocationQuery  Location = "query"
	LocationHeader Location = "header"
	LocationCookie Location = "cookie"
)

// Kind is the resolved scalar kind of a parameter or body property.
// Anything that is not a known scalar falls back to KindText.
type Kind string

const (
	KindText    Kind = "text"
	KindInteger Kind = "integer"
	KindFloat   Kind = "float"
	KindBool    Kind = "bool"
)

// KindOf maps an OpenAPI schema type to its resolved scalar kind.
func KindOf(schemaType string) Kind {
	switch schemaType {
	case "string":
		return KindText
	case "integer":
		return KindInteger
	case "number":
		return KindFloat
	case "boolean":
		return KindBool
	default:
		return KindText
	}
}

// GoType returns the Go type rendered for this kind.
func (k Kind) GoType() string {
	switch k {
	case KindInteger:
		return "int"
	case KindFloat:
		return "float64"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// FlagFunc returns the pflag setter method rendered for this kind.
func (k Kind) FlagFunc() string {
	switch k {
	case KindInteger:
		return "IntVar"
	case KindFloat:
		return "Float64Var"
	case KindBool:
		return "BoolVar"
	default:
		return "StringVar"
	}
}

// Parameter is one operation input carried outside the request body.
// Name is kept exactly as the spec declares it; the kebab and snake forms
// are derived on demand so they can never drift from it.
type Parameter struct {
	Name        string
	In          Location
	Type        string
	Required    bool
	Default     any
	Description string
	Enum        []any
}

// CLIName is the kebab-case flag surface name.
func (p Parameter) CLIName() string { return naming.KebabCase(p.Name) }

// CodeName is the snake_case identifier-safe name.
func (p Parameter) CodeName() string { return naming.SnakeCase(p.Name) }

func (p Parameter) Kind() Kind { return KindOf(p.Type) }

// RequestBodyProperty is one field of a flattened JSON object request body.
type RequestBodyProperty struct {
	Name        string
	Type        string
	Required    bool
	Description string
}

func (p RequestBodyProperty) CLIName() string  { return naming.KebabCase(p.Name) }
func (p RequestBodyProperty) CodeName() string { return naming.SnakeCase(p.Name) }
func (p RequestBodyProperty) Kind() Kind       { return KindOf(p.Type) }

// Operation is one HTTP method + path combination.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	Tags        []string
	Parameters  []Parameter
	Body        []RequestBodyProperty

	// NameOverride replaces the derived command name when the user maps
	// this operation id to a custom command name.
	NameOverride string
}

// CommandName is the kebab-case name the operation is exposed under.
func (o Operation) CommandName() string {
	if o.NameOverride != "" {
		return o.NameOverride
	}
	return naming.KebabCase(o.ID)
}

// FuncName is the snake_case identifier used in generated code.
func (o Operation) FuncName() string { return naming.SnakeCase(o.ID) }

// URLTemplate returns the operation path with every path parameter
// placeholder rewritten from its raw name to its code-safe name.
// Placeholder order and all literal text are preserved.
func (o Operation) URLTemplate() string {
	path := o.Path
	for _, p := range o.Parameters {
		if p.In != LocationPath {
			continue
		}
		path = strings.ReplaceAll(path, "{"+p.Name+"}", "{"+p.CodeName()+"}")
	}
	return path
}

// PathParameters returns the parameters with location path, in declared order.
func (o Operation) PathParameters() []Parameter {
	return o.parametersIn(LocationPath)
}

// QueryParameters returns the parameters with location query, in declared order.
func (o Operation) QueryParameters() []Parameter {
	return o.parametersIn(LocationQuery)
}

// HeaderParameters returns the parameters with location header, in declared order.
func (o Operation) HeaderParameters() []Parameter {
	return o.parametersIn(LocationHeader)
}

func (o Operation) parametersIn(loc Location) []Parameter {
	var result []Parameter
	for _, p := range o.Parameters {
		if p.In == loc {
			result = append(result, p)
		}
	}
	return result
}

// HasBody reports whether the operation carries flattened body properties.
func (o Operation) HasBody() bool { return len(o.Body) > 0 }

// DefaultGroup is the sentinel group key for untagged operations.
const DefaultGroup = "default"

// CommandGroup is the set of operations sharing one tag, exposed together
// as a command namespace.
type CommandGroup struct {
	Name        string
	CLIName     string
	Description string
	Operations  []Operation
}

// ModuleName is the snake_case source module name for the group.
func (g *CommandGroup) ModuleName() string { return naming.SnakeCase(g.CLIName) }
