// Package generator renders the command model into a complete Go CLI
// project: one source module per command group plus the shared client,
// entrypoint and project scaffolding.
package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/gmarciani/cliwizard/internal/config"
	"github.com/gmarciani/cliwizard/internal/model"
	"github.com/gmarciani/cliwizard/internal/naming"
	tmplengine "github.com/gmarciani/cliwizard/internal/templates"
	embedded "github.com/gmarciani/cliwizard/templates"
)

const (
	templatePrefix = "project"

	// Rendered per group and per bootstrap respectively, not as part of the
	// fixed project scaffold.
	groupTemplate  = "command_group.go.tmpl"
	configTemplate = config.ConfigFileName + ".tmpl"
)

// File is one generated output, with a path relative to the project root.
type File struct {
	Path    string
	Content []byte
}

// Context carries everything the project templates can reference.
type Context struct {
	Config        *config.Config
	Groups        []*model.CommandGroup
	RepositoryURL string
	CopyrightYear int
	EnvPrefix     string
}

// NewContext derives the template context from the configuration and the
// parsed command groups. groups may be nil when only scaffolding is wanted.
func NewContext(cfg *config.Config, groups *model.GroupMap) *Context {
	ctx := &Context{
		Config:        cfg,
		RepositoryURL: "https://" + cfg.ModulePath,
		CopyrightYear: time.Now().Year(),
		EnvPrefix:     strings.ToUpper(naming.SnakeCase(cfg.CommandName)),
	}
	if groups != nil {
		ctx.Groups = groups.Groups()
	}
	return ctx
}

type groupData struct {
	*Context
	Group *model.CommandGroup
}

// Generator renders the embedded project template set, optionally overlaid
// with templates from a custom directory.
type Generator struct {
	cfg    *config.Config
	engine *tmplengine.Engine
}

// New builds a generator for cfg. customDir, when non-empty, overrides
// embedded templates file by file.
func New(cfg *config.Config, customDir string) (*Generator, error) {
	engine, err := tmplengine.NewEngine(embedded.FS, templatePrefix, customDir, templateFuncs())
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, engine: engine}, nil
}

// Generate renders the full project for the given command groups. Go sources
// are returned gofmt-formatted with unused imports pruned.
func (g *Generator) Generate(groups *model.GroupMap) ([]File, error) {
	ctx := NewContext(g.cfg, groups)

	var files []File
	for _, name := range g.engine.Names() {
		if name == groupTemplate || name == configTemplate {
			continue
		}

		var content []byte
		var err error
		outPath := name
		if g.engine.IsTemplate(name) {
			outPath = strings.TrimSuffix(name, ".tmpl")
			content, err = g.engine.Execute(name, ctx)
		} else {
			content, err = g.engine.Raw(name)
		}
		if err != nil {
			return nil, err
		}

		outPath, err = g.engine.ExpandPath(outPath, ctx)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: outPath, Content: content})
	}

	for _, group := range ctx.Groups {
		content, err := g.engine.Execute(groupTemplate, &groupData{Context: ctx, Group: group})
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: group.ModuleName() + ".go", Content: content})
	}

	for i := range files {
		if !strings.HasSuffix(files[i].Path, ".go") {
			continue
		}
		formatted, err := formatSource(files[i].Content)
		if err != nil {
			return nil, fmt.Errorf("formatting %s: %w", files[i].Path, err)
		}
		files[i].Content = formatted
	}
	return files, nil
}

// ConfigFile renders the wizard configuration file for the given values,
// keyed by schema parameter name.
func (g *Generator) ConfigFile(values map[string]any) (File, error) {
	data := struct {
		Fields []config.Field
		Values map[string]any
	}{
		Fields: config.Fields(),
		Values: values,
	}
	content, err := g.engine.Execute(configTemplate, data)
	if err != nil {
		return File{}, err
	}
	return File{Path: config.ConfigFileName, Content: content}, nil
}
