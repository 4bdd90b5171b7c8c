package loader

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Resolve follows a local reference of the form "#/a/b/c" from the document
// root and returns the node it points at. References into other documents
// fail with ErrReferenceNotLocal; missing path segments fail with
// ErrReferenceNotFound. Resolution is a pure lookup and never mutates the
// tree, and it does not recurse into nested $ref values.
func (d *Document) Resolve(ref string) (*yaml.Node, error) {
	if !strings.HasPrefix(ref, "#/") {
		return nil, fmt.Errorf("%w: %q", ErrReferenceNotLocal, ref)
	}

	node := d.root
	for _, key := range strings.Split(strings.TrimPrefix(ref, "#/"), "/") {
		node = mapValue(node, key)
		if node == nil {
			return nil, fmt.Errorf("%w: %q", ErrReferenceNotFound, ref)
		}
	}
	return node, nil
}
