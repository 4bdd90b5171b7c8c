package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmarciani/cliwizard/internal/config"
	"github.com/gmarciani/cliwizard/internal/model"
)

func testGroups(t *testing.T) *model.GroupMap {
	t.Helper()

	groups := model.NewGroupMap()
	groups.Set("users", &model.CommandGroup{
		Name:        "users",
		CLIName:     "users",
		Description: "Manage users",
		Operations: []model.Operation{
			{
				ID:      "get_user",
				Method:  "GET",
				Path:    "/users/{userId}",
				Summary: "Get a user",
				Parameters: []model.Parameter{
					{Name: "userId", In: model.LocationPath, Type: "string", Required: true},
					{Name: "limit", In: model.LocationQuery, Type: "integer", Default: 10},
					{Name: "verbose", In: model.LocationQuery, Type: "boolean"},
					{Name: "X-Tenant", In: model.LocationHeader, Type: "string"},
				},
			},
			{
				ID:      "create_user",
				Method:  "POST",
				Path:    "/users",
				Summary: "Create a user",
				Body: []model.RequestBodyProperty{
					{Name: "email", Type: "string", Required: true},
					{Name: "age", Type: "integer"},
				},
			},
		},
	})
	return groups
}

func findFile(t *testing.T, files []File, path string) File {
	t.Helper()
	for _, f := range files {
		if f.Path == path {
			return f
		}
	}
	t.Fatalf("no generated file %s", path)
	return File{}
}

func filePaths(files []File) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths
}

func TestGenerateScaffold(t *testing.T) {
	gen, err := New(config.Default(), "")
	require.NoError(t, err)

	files, err := gen.Generate(nil)
	require.NoError(t, err)

	paths := filePaths(files)
	for _, want := range []string{
		"main.go", "client.go", "go.mod", "README.md",
		"Makefile", "LICENSE", ".gitignore", ".github/workflows/ci.yml",
	} {
		assert.Contains(t, paths, want)
	}
	assert.NotContains(t, paths, config.ConfigFileName,
		"the wizard config is rendered separately during bootstrap")
	for _, p := range paths {
		assert.NotContains(t, p, ".tmpl")
	}

	mainGo := findFile(t, files, "main.go")
	assert.Contains(t, string(mainGo.Content), `"my-project"`)
	assert.Contains(t, string(mainGo.Content), "func main()")
	assert.NotContains(t, string(mainGo.Content), "AddCommand")

	goMod := findFile(t, files, "go.mod")
	assert.Contains(t, string(goMod.Content), "module github.com/username/my-project")
	assert.Contains(t, string(goMod.Content), "github.com/spf13/cobra")

	clientGo := findFile(t, files, "client.go")
	assert.Contains(t, string(clientGo.Content), `defaultBaseURL     = "http://localhost:3000"`)
	assert.Contains(t, string(clientGo.Content), "MY_PROJECT_BASE_URL")
}

func TestGenerateGroups(t *testing.T) {
	gen, err := New(config.Default(), "")
	require.NoError(t, err)

	files, err := gen.Generate(testGroups(t))
	require.NoError(t, err)

	src := string(findFile(t, files, "users.go").Content)

	assert.Contains(t, src, "func new_users_group() *cobra.Command")
	assert.Contains(t, src, `"Manage users"`)
	assert.Contains(t, src, "func new_get_user_cmd() *cobra.Command")
	assert.Contains(t, src, "func new_create_user_cmd() *cobra.Command")

	// Path placeholders are rewritten to code-safe names and interpolated.
	assert.Contains(t, src, `"/users/{user_id}"`)
	assert.Contains(t, src, `strings.ReplaceAll(urlPath, "{user_id}"`)

	// Flags are typed by kind and wired to the raw API names.
	assert.Contains(t, src, `StringVar(&flag_user_id, "user-id"`)
	assert.Contains(t, src, `IntVar(&flag_limit, "limit", 10`)
	assert.Contains(t, src, `BoolVar(&flag_verbose, "verbose", false`)
	assert.Contains(t, src, `query.Set("limit"`)
	assert.Contains(t, src, `header.Set("X-Tenant"`)
	assert.Contains(t, src, `cmd.MarkFlagRequired("user-id")`)

	// Body properties become flags keyed by their raw names.
	assert.Contains(t, src, `body["email"] = flag_email`)
	assert.Contains(t, src, `body["age"] = flag_age`)
	assert.Contains(t, src, `cmd.MarkFlagRequired("email")`)

	mainGo := string(findFile(t, files, "main.go").Content)
	assert.Contains(t, mainGo, "root.AddCommand(new_users_group())")
}

func TestGenerateCustomTemplates(t *testing.T) {
	dir := t.TempDir()
	overlay := "# {{ .Config.ProjectName }}\ncustomized\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md.tmpl"), []byte(overlay), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "NOTICE"), []byte("extra file\n"), 0o644))

	gen, err := New(config.Default(), dir)
	require.NoError(t, err)

	files, err := gen.Generate(nil)
	require.NoError(t, err)

	readme := findFile(t, files, "README.md")
	assert.Equal(t, "# My Project\ncustomized\n", string(readme.Content))
	notice := findFile(t, files, "NOTICE")
	assert.Equal(t, "extra file\n", string(notice.Content))
}

func TestConfigFile(t *testing.T) {
	gen, err := New(config.Default(), "")
	require.NoError(t, err)

	file, err := gen.ConfigFile(config.DefaultsMap())
	require.NoError(t, err)
	assert.Equal(t, config.ConfigFileName, file.Path)

	content := string(file.Content)
	assert.Contains(t, content, `ProjectName: "My Project"`)
	assert.Contains(t, content, "# Human-readable project name (title case)")
	assert.Contains(t, content, "ExcludeTags: []")
	assert.Contains(t, content, "TagMapping: {}")
	assert.Contains(t, content, "JsonIndent: 2")
	assert.Contains(t, content, "RetryBackoffFactor: 0.5")
	assert.Contains(t, content, `Version: "1.0.0"`)
}

func TestFlagDefault(t *testing.T) {
	tests := []struct {
		name string
		kind model.Kind
		def  any
		want string
	}{
		{"text nil", model.KindText, nil, `""`},
		{"text value", model.KindText, "asc", `"asc"`},
		{"integer nil", model.KindInteger, nil, "0"},
		{"integer value", model.KindInteger, 25, "25"},
		{"integer from yaml float", model.KindInteger, 25.0, "25"},
		{"float value", model.KindFloat, 0.5, "0.5"},
		{"bool nil", model.KindBool, nil, "false"},
		{"bool true", model.KindBool, true, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flagDefault(tt.kind, tt.def))
		})
	}
}

func TestFlagHelp(t *testing.T) {
	withEnum := model.Parameter{
		Name:        "sort",
		Description: "Sort order",
		Enum:        []any{"asc", "desc"},
	}
	assert.Equal(t, "Sort order (one of: asc, desc)", flagHelp(withEnum))

	bare := model.Parameter{Name: "limit"}
	assert.Equal(t, "limit", flagHelp(bare))

	prop := model.RequestBodyProperty{Name: "email", Description: "User email"}
	assert.Equal(t, "User email", flagHelp(prop))
}

func TestYamlValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string quoted", "1.0.0", `"1.0.0"`},
		{"hex color quoted", "#FFFFFF", `"#FFFFFF"`},
		{"int", 30, "30"},
		{"float", 0.5, "0.5"},
		{"bool", true, "true"},
		{"nil", nil, "null"},
		{"empty list", []string{}, "[]"},
		{"string list", []string{"a", "b"}, `["a", "b"]`},
		{"empty map", map[string]string{}, "{}"},
		{"map sorted", map[string]string{"b": "y", "a": "x"}, `{a: "x", b: "y"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, yamlValue(tt.in))
		})
	}
}
