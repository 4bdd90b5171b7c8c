package loader

import (
	"iter"

	"go.yaml.in/yaml/v4"
)

// Helpers for walking raw yaml mapping nodes. Mapping content alternates
// key and value nodes, so pairs sit at even offsets.

func isMapping(node *yaml.Node) bool {
	return node != nil && node.Kind == yaml.MappingNode
}

// mapValue returns the value node for key, or nil if node is not a mapping
// or the key is absent.
func mapValue(node *yaml.Node, key string) *yaml.Node {
	if !isMapping(node) {
		return nil
	}
	for i := 0; i < len(node.Content)-1; i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// mapPairs iterates the key/value pairs of a mapping node in document order.
func mapPairs(node *yaml.Node) iter.Seq2[string, *yaml.Node] {
	return func(yield func(string, *yaml.Node) bool) {
		if !isMapping(node) {
			return
		}
		for i := 0; i < len(node.Content)-1; i += 2 {
			if !yield(node.Content[i].Value, node.Content[i+1]) {
				return
			}
		}
	}
}

// stringValue returns the scalar string at key, or "".
func stringValue(node *yaml.Node, key string) string {
	v := mapValue(node, key)
	if v == nil || v.Kind != yaml.ScalarNode {
		return ""
	}
	return v.Value
}

// boolValue returns the scalar bool at key, or false.
func boolValue(node *yaml.Node, key string) bool {
	v := mapValue(node, key)
	if v == nil || v.Kind != yaml.ScalarNode {
		return false
	}
	var b bool
	if err := v.Decode(&b); err != nil {
		return false
	}
	return b
}

// decodeAny decodes a node into a plain Go value, or nil.
func decodeAny(node *yaml.Node) any {
	if node == nil {
		return nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil
	}
	return v
}

// anySlice decodes a sequence node into plain Go values, or nil.
func anySlice(node *yaml.Node) []any {
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil
	}
	var values []any
	for _, item := range node.Content {
		values = append(values, decodeAny(item))
	}
	return values
}

// stringSlice decodes a sequence node of scalars into strings, or nil.
func stringSlice(node *yaml.Node) []string {
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil
	}
	var values []string
	for _, item := range node.Content {
		if item.Kind == yaml.ScalarNode {
			values = append(values, item.Value)
		}
	}
	return values
}
