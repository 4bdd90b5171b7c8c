package loader

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const resolverDoc = `
openapi: 3.0.0
components:
  schemas:
    User:
      type: object
      properties:
        name:
          type: string
`

func TestResolve(t *testing.T) {
	doc, err := Load([]byte(resolverDoc))
	require.NoError(t, err)

	node, err := doc.Resolve("#/components/schemas/User")
	require.NoError(t, err)
	require.Equal(t, "object", stringValue(node, "type"))
}

func TestResolveNotFound(t *testing.T) {
	doc, err := Load([]byte(resolverDoc))
	require.NoError(t, err)

	tests := []string{
		"#/components/schemas/Missing",
		"#/components/missing/User",
		"#/invalid/path",
	}
	for _, ref := range tests {
		t.Run(ref, func(t *testing.T) {
			_, err := doc.Resolve(ref)
			require.ErrorIs(t, err, ErrReferenceNotFound)
		})
	}
}

func TestResolveNotLocal(t *testing.T) {
	doc, err := Load([]byte(resolverDoc))
	require.NoError(t, err)

	tests := []string{
		"other.yaml#/components/schemas/User",
		"https://example.com/spec.yaml#/components/schemas/User",
		"components/schemas/User",
	}
	for _, ref := range tests {
		t.Run(ref, func(t *testing.T) {
			_, err := doc.Resolve(ref)
			require.ErrorIs(t, err, ErrReferenceNotLocal)
		})
	}
}
