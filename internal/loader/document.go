// Package loader reads OpenAPI 3.x documents and turns their path/operation
// tree into the command model. The document is kept as a raw yaml node tree
// so that key order is preserved and malformed corners of a spec degrade to
// defaults instead of failing the whole document.
package loader

import (
	"fmt"
	"os"

	"github.com/pb33f/libopenapi/datamodel"
	"go.yaml.in/yaml/v4"
)

// Document is a loaded OpenAPI document. The tree is read-only after
// construction; resolution and parsing never mutate it.
type Document struct {
	root    *yaml.Node
	version string
}

// LoadFile reads and loads the document at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}
	return Load(data)
}

// Load parses data as JSON or YAML based on content, not file extension.
// Content that is valid JSON is handled as JSON; anything else is attempted
// as YAML. Data that is neither fails with ErrSpecLoad.
func Load(data []byte) (*Document, error) {
	info, err := datamodel.ExtractSpecInfoWithDocumentCheck(data, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpecLoad, err)
	}

	root := info.RootNode
	if root == nil {
		return nil, fmt.Errorf("%w: empty document", ErrSpecLoad)
	}
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("%w: empty document", ErrSpecLoad)
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: document root is not an object", ErrSpecLoad)
	}

	return &Document{root: root, version: info.Version}, nil
}

// Version reports the declared OpenAPI version, or "" if absent.
func (d *Document) Version() string { return d.version }

// Root returns the document's root mapping node.
func (d *Document) Root() *yaml.Node { return d.root }
