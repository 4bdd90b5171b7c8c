package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	embedded "github.com/gmarciani/cliwizard/templates"
)

func TestEngineEmbeddedSet(t *testing.T) {
	e, err := NewEngine(embedded.FS, "project", "", nil)
	require.NoError(t, err)

	names := e.Names()
	assert.Contains(t, names, "main.go.tmpl")
	assert.Contains(t, names, "client.go.tmpl")
	assert.Contains(t, names, ".gitignore")
	assert.Contains(t, names, ".github/workflows/ci.yml")

	assert.True(t, e.IsTemplate("main.go.tmpl"))
	assert.False(t, e.IsTemplate(".gitignore"))

	raw, err := e.Raw(".gitignore")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "bin/")

	_, err = e.Raw("main.go.tmpl")
	require.Error(t, err, "templates are rendered, not copied")
}

func TestEngineCustomOverlay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "greeting.txt.tmpl"), []byte("hello {{ upper .Name }}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("overridden\n"), 0o644))

	funcs := template.FuncMap{"upper": strings.ToUpper}
	e, err := NewEngine(embedded.FS, "project", dir, funcs)
	require.NoError(t, err)

	out, err := e.Execute("greeting.txt.tmpl", map[string]string{"Name": "world"})
	require.NoError(t, err)
	assert.Equal(t, "hello WORLD", string(out))

	raw, err := e.Raw(".gitignore")
	require.NoError(t, err)
	assert.Equal(t, "overridden\n", string(raw))
}

func TestEngineExecuteUnknownName(t *testing.T) {
	e, err := NewEngine(embedded.FS, "project", "", nil)
	require.NoError(t, err)

	_, err = e.Execute("nope.tmpl", nil)
	assert.ErrorContains(t, err, "template not found")
}

func TestExpandPath(t *testing.T) {
	e, err := NewEngine(embedded.FS, "project", "", nil)
	require.NoError(t, err)

	plain, err := e.ExpandPath("main.go", nil)
	require.NoError(t, err)
	assert.Equal(t, "main.go", plain)

	expanded, err := e.ExpandPath("{{ .Name }}.go", map[string]string{"Name": "pets"})
	require.NoError(t, err)
	assert.Equal(t, "pets.go", expanded)
}
