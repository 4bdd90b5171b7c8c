// Package templates loads the project template set: embedded by default,
// optionally overlaid by a custom directory. Files ending in .tmpl are
// rendered; everything else is copied through verbatim.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"
)

type Engine struct {
	templates *template.Template
	funcs     template.FuncMap
	raw       map[string][]byte
	names     []string
	embedded  embed.FS
	prefix    string
	customDir string
}

// NewEngine loads every file under prefix in the embedded FS, then overlays
// files from customDir when set. Template names are paths relative to the
// prefix, with forward slashes.
func NewEngine(embedded embed.FS, prefix, customDir string, funcs template.FuncMap) (*Engine, error) {
	e := &Engine{
		embedded:  embedded,
		prefix:    prefix,
		customDir: customDir,
		funcs:     funcs,
		raw:       make(map[string][]byte),
	}
	if err := e.load(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) load() error {
	e.templates = template.New("").Funcs(e.funcs)

	err := fs.WalkDir(e.embedded, e.prefix, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := e.embedded.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading embedded template %s: %w", path, err)
		}
		return e.add(strings.TrimPrefix(path, e.prefix+"/"), content)
	})
	if err != nil {
		return fmt.Errorf("loading embedded templates: %w", err)
	}

	if e.customDir != "" {
		err = filepath.WalkDir(e.customDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading custom template %s: %w", path, err)
			}
			relPath, _ := filepath.Rel(e.customDir, path)
			return e.add(filepath.ToSlash(relPath), content)
		})
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("loading custom templates: %w", err)
		}
	}

	slices.Sort(e.names)
	return nil
}

func (e *Engine) add(name string, content []byte) error {
	if !slices.Contains(e.names, name) {
		e.names = append(e.names, name)
	}
	if strings.HasSuffix(name, ".tmpl") {
		if _, err := e.templates.New(name).Parse(string(content)); err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}
		return nil
	}
	e.raw[name] = content
	return nil
}

// Names returns every loaded file name, sorted.
func (e *Engine) Names() []string {
	return slices.Clone(e.names)
}

// IsTemplate reports whether name is rendered rather than copied.
func (e *Engine) IsTemplate(name string) bool {
	return strings.HasSuffix(name, ".tmpl")
}

// Execute renders the named template with data.
func (e *Engine) Execute(name string, data any) ([]byte, error) {
	tmpl := e.templates.Lookup(name)
	if tmpl == nil {
		return nil, fmt.Errorf("template not found: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Raw returns the verbatim content of a non-template file.
func (e *Engine) Raw(name string) ([]byte, error) {
	content, ok := e.raw[name]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	return content, nil
}

// ExpandPath renders template expressions inside an output path, so a
// single template can emit per-project file names.
func (e *Engine) ExpandPath(path string, data any) (string, error) {
	if !strings.Contains(path, "{{") {
		return path, nil
	}
	tmpl, err := template.New("path").Funcs(e.funcs).Parse(path)
	if err != nil {
		return "", fmt.Errorf("parsing path template %s: %w", path, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("expanding path %s: %w", path, err)
	}
	return buf.String(), nil
}
