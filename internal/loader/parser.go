package loader

import (
	"strings"

	"github.com/gmarciani/cliwizard/internal/model"
	"github.com/gmarciani/cliwizard/internal/naming"
	"go.yaml.in/yaml/v4"
)

// httpMethods are the path item keys treated as operations.
var httpMethods = map[string]bool{
	"get": true, "post": true, "put": true, "patch": true,
	"delete": true, "head": true, "options": true,
}

// Options control which operations make it into the command model and how
// their groups and commands are named. Nil/empty collections mean no
// filtering and no overrides.
type Options struct {
	// ExcludeTags drops an operation entirely when any of its tags matches.
	ExcludeTags []string
	// IncludeTags, when non-empty, keeps only operations carrying at least
	// one of these tags. Exclusion is evaluated first.
	IncludeTags []string
	// TagMapping overrides the derived cli name of a group, keyed by raw tag.
	TagMapping map[string]string
	// CommandMapping overrides the derived command name of an operation,
	// keyed by operation id.
	CommandMapping map[string]string
}

// Parser walks a loaded document's path/operation tree and produces the
// group-key → CommandGroup mapping. Parse may be called repeatedly with
// different options against the same document.
type Parser struct {
	doc *Document
}

func NewParser(doc *Document) *Parser {
	return &Parser{doc: doc}
}

// Parse builds the command model. Groups appear in first-seen order while
// walking paths in document order; an operation carrying several surviving
// tags is appended to each of their groups. The result is empty, not nil,
// when no operations survive filtering.
func (p *Parser) Parse(opts Options) *model.GroupMap {
	groups := model.NewGroupMap()
	exclude := toSet(opts.ExcludeTags)
	include := toSet(opts.IncludeTags)
	descriptions := p.tagDescriptions()

	paths := mapValue(p.doc.Root(), "paths")
	for path, pathItem := range mapPairs(paths) {
		for method, opNode := range mapPairs(pathItem) {
			if !httpMethods[strings.ToLower(method)] || !isMapping(opNode) {
				continue
			}

			op := p.buildOperation(method, path, opNode, opts.CommandMapping)

			tags := op.Tags
			if len(tags) == 0 {
				tags = []string{model.DefaultGroup}
			}
			if anyIn(tags, exclude) {
				continue
			}
			if len(include) > 0 && !anyIn(tags, include) {
				continue
			}

			for _, tag := range tags {
				if len(include) > 0 && !include[tag] {
					continue
				}
				group := groups.Get(tag)
				if group == nil {
					group = &model.CommandGroup{
						Name:        tag,
						CLIName:     cliName(tag, opts.TagMapping),
						Description: descriptions[tag],
					}
					groups.Set(tag, group)
				}
				group.Operations = append(group.Operations, op)
			}
		}
	}

	return groups
}

func (p *Parser) buildOperation(method, path string, opNode *yaml.Node, commandMapping map[string]string) model.Operation {
	op := model.Operation{
		ID:          stringValue(opNode, "operationId"),
		Method:      strings.ToUpper(method),
		Path:        path,
		Summary:     stringValue(opNode, "summary"),
		Description: stringValue(opNode, "description"),
		Tags:        stringSlice(mapValue(opNode, "tags")),
	}
	if op.ID == "" {
		op.ID = synthesizeID(method, path)
	}
	if name, ok := commandMapping[op.ID]; ok {
		op.NameOverride = name
	}

	if params := mapValue(opNode, "parameters"); params != nil && params.Kind == yaml.SequenceNode {
		for _, paramNode := range params.Content {
			if isMapping(paramNode) {
				op.Parameters = append(op.Parameters, buildParameter(paramNode))
			}
		}
	}

	op.Body = p.bodyProperties(opNode)

	return op
}

func buildParameter(node *yaml.Node) model.Parameter {
	param := model.Parameter{
		Name:        stringValue(node, "name"),
		In:          model.Location(stringValue(node, "in")),
		Required:    boolValue(node, "required"),
		Description: stringValue(node, "description"),
	}
	if param.In == "" {
		param.In = model.LocationQuery
	}

	if schema := mapValue(node, "schema"); schema != nil {
		param.Type = stringValue(schema, "type")
		param.Default = decodeAny(mapValue(schema, "default"))
		param.Enum = anySlice(mapValue(schema, "enum"))
	}

	// A path segment cannot be omitted, whatever the spec declares.
	if param.In == model.LocationPath {
		param.Required = true
	}

	return param
}

// bodyProperties flattens the JSON request body schema into one property
// per field. Only flat object schemas qualify: an inline properties map, or
// a single local $ref that resolves to one. Everything else, including
// unresolvable refs and refs to further refs, yields no properties.
func (p *Parser) bodyProperties(opNode *yaml.Node) []model.RequestBodyProperty {
	content := mapValue(mapValue(opNode, "requestBody"), "content")
	schema := mapValue(mapValue(content, "application/json"), "schema")
	if schema == nil {
		return nil
	}

	if ref := stringValue(schema, "$ref"); ref != "" {
		resolved, err := p.doc.Resolve(ref)
		if err != nil {
			return nil
		}
		if stringValue(resolved, "$ref") != "" {
			return nil
		}
		schema = resolved
	}

	if t := stringValue(schema, "type"); t != "" && t != "object" {
		return nil
	}
	properties := mapValue(schema, "properties")
	if !isMapping(properties) {
		return nil
	}

	required := toSet(stringSlice(mapValue(schema, "required")))

	var props []model.RequestBodyProperty
	for name, propNode := range mapPairs(properties) {
		props = append(props, model.RequestBodyProperty{
			Name:        name,
			Type:        stringValue(propNode, "type"),
			Required:    required[name],
			Description: stringValue(propNode, "description"),
		})
	}
	return props
}

// tagDescriptions indexes the document's top-level tag metadata.
func (p *Parser) tagDescriptions() map[string]string {
	descriptions := make(map[string]string)
	tags := mapValue(p.doc.Root(), "tags")
	if tags == nil || tags.Kind != yaml.SequenceNode {
		return descriptions
	}
	for _, tagNode := range tags.Content {
		if name := stringValue(tagNode, "name"); name != "" {
			descriptions[name] = stringValue(tagNode, "description")
		}
	}
	return descriptions
}

// synthesizeID derives a stable operation id from method and path for
// operations that do not declare one: GET /users/{id} → get_users_by_id.
func synthesizeID(method, path string) string {
	parts := []string{strings.ToLower(method)}
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			parts = append(parts, "by", naming.SnakeCase(strings.Trim(segment, "{}")))
		} else {
			parts = append(parts, naming.SnakeCase(segment))
		}
	}
	return strings.Join(parts, "_")
}

func cliName(tag string, tagMapping map[string]string) string {
	if name, ok := tagMapping[tag]; ok && name != "" {
		return name
	}
	return naming.KebabCase(tag)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func anyIn(values []string, set map[string]bool) bool {
	for _, v := range values {
		if set[v] {
			return true
		}
	}
	return false
}
