package loader

import "errors"

var (
	// ErrSpecLoad marks a document that could not be parsed as JSON or YAML.
	// Fatal to construction; never raised after a document is loaded.
	ErrSpecLoad = errors.New("spec is neither valid JSON nor valid YAML")

	// ErrReferenceNotFound marks a local $ref whose path does not exist in
	// the document. Recovered inside body resolution, never propagated.
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrReferenceNotLocal marks a $ref that does not start with "#/".
	// External documents are out of scope; recovered like a missing ref.
	ErrReferenceNotLocal = errors.New("reference is not local")
)
