// Package config owns the cliwizard configuration: the schema with its
// defaults and descriptions, file loading, `#[Param]` reference expansion,
// and the persisted user configuration store.
//
// The schema is the single source of truth for parameter names (PascalCase,
// as they appear in the YAML file), the descriptions used as prompt text and
// generated-config comments, and the default values.
package config

import (
	"fmt"
	"regexp"
	"slices"
)

// ConfigFileName is the name of the wizard configuration file.
const ConfigFileName = "cliwizard.yaml"

type Config struct {
	// Project identification.
	ProjectName string `koanf:"ProjectName"`
	CommandName string `koanf:"CommandName"`
	PackageName string `koanf:"PackageName"`
	Description string `koanf:"Description"`
	Version     string `koanf:"Version"`

	// Author information.
	AuthorName  string `koanf:"AuthorName"`
	AuthorEmail string `koanf:"AuthorEmail"`
	GithubUser  string `koanf:"GithubUser"`

	// Go settings for the generated project.
	GoVersion  string `koanf:"GoVersion"`
	ModulePath string `koanf:"ModulePath"`

	// API settings.
	DefaultBaseUrl string `koanf:"DefaultBaseUrl"`

	// Output locations for the generated CLI's runtime data.
	MainDir     string `koanf:"MainDir"`
	ProfileFile string `koanf:"ProfileFile"`

	// OpenAPI settings.
	OpenapiSpec    string            `koanf:"OpenapiSpec"`
	ExcludeTags    []string          `koanf:"ExcludeTags"`
	IncludeTags    []string          `koanf:"IncludeTags"`
	TagMapping     map[string]string `koanf:"TagMapping"`
	CommandMapping map[string]string `koanf:"CommandMapping"`

	// Output formatting for the generated CLI.
	OutputFormat string `koanf:"OutputFormat"`
	OutputColors bool   `koanf:"OutputColors"`
	JsonIndent   int    `koanf:"JsonIndent"`
	TableStyle   string `koanf:"TableStyle"`

	// Splash screen.
	SplashFile  string `koanf:"SplashFile"`
	SplashColor string `koanf:"SplashColor"`

	// Logging for the generated CLI.
	LogLevel string `koanf:"LogLevel"`
	LogFile  string `koanf:"LogFile"`

	// API client settings for the generated CLI.
	Timeout            int     `koanf:"Timeout"`
	RetryMaxAttempts   int     `koanf:"RetryMaxAttempts"`
	RetryBackoffFactor float64 `koanf:"RetryBackoffFactor"`
}

// Field describes one schema parameter: its YAML key, the description shown
// in prompts and generated config comments, and its default value.
type Field struct {
	Name        string
	Description string
	Default     any
}

// fields is the schema, in declaration order. String defaults may carry
// #[Param] cross-references and ${VAR} environment references; the former
// are expanded by ExpandRefs, the latter are left for the generated CLI.
var fields = []Field{
	{"ProjectName", "Human-readable project name (title case)", "My Project"},
	{"CommandName", "CLI command name (kebab-case)", "my-project"},
	{"PackageName", "Package name for generated code (snake_case)", "my_project"},
	{"Description", "Project description", "A CLI application"},
	{"Version", "Project version", "1.0.0"},
	{"AuthorName", "Author name", "Your Name"},
	{"AuthorEmail", "Author email", "your.email@example.com"},
	{"GithubUser", "GitHub username", "username"},
	{"GoVersion", "Minimum Go version", "1.24"},
	{"ModulePath", "Go module path for the generated project", "github.com/#[GithubUser]/#[CommandName]"},
	{"DefaultBaseUrl", "Default API base URL", "http://localhost:3000"},
	{"MainDir", "Main directory for CLI data (config, cache, logging, etc.)", "${HOME}/.#[CommandName]"},
	{"ProfileFile", "Path to profiles YAML file", "#[MainDir]/profiles.yaml"},
	{"OpenapiSpec", "Path to OpenAPI spec (relative to config file or absolute)", "openapi.json"},
	{"ExcludeTags", "Tags to exclude from generation", []string{}},
	{"IncludeTags", "Tags to include (if empty, all non-excluded tags are included)", []string{}},
	{"TagMapping", "Map OpenAPI tags to CLI command group names", map[string]string{}},
	{"CommandMapping", "Customize command names (operationId -> command name)", map[string]string{}},
	{"OutputFormat", "Default output format", "json"},
	{"OutputColors", "Enable colored output", true},
	{"JsonIndent", "JSON indentation", 2},
	{"TableStyle", "Table style", "rounded"},
	{"SplashFile", "Path to splash text file (relative to config or absolute)", ""},
	{"SplashColor", "Color for splash text (hex code)", "#FFFFFF"},
	{"LogLevel", "Default log level", "INFO"},
	{"LogFile", "Path to log file (empty means no file logging)", "#[MainDir]/#[CommandName].log"},
	{"Timeout", "Request timeout in seconds", 30},
	{"RetryMaxAttempts", "Retry max attempts", 3},
	{"RetryBackoffFactor", "Retry backoff factor", 0.5},
}

// BootstrapFields are the parameters prompted during bootstrap, in order.
var BootstrapFields = []string{
	"CommandName",
	"ProjectName",
	"PackageName",
	"Description",
	"AuthorName",
	"AuthorEmail",
	"GoVersion",
	"GithubUser",
	"Version",
}

// Fields returns the schema fields in declaration order.
func Fields() []Field {
	return slices.Clone(fields)
}

// FieldByName returns the schema field named name.
func FieldByName(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// DefaultsMap returns the schema defaults as a fresh key → value mapping.
func DefaultsMap() map[string]any {
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Name] = f.Default
	}
	return m
}

// IsKnownKey reports whether key is a schema parameter.
func IsKnownKey(key string) bool {
	_, ok := FieldByName(key)
	return ok
}

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func (c *Config) Validate() error {
	validFormats := map[string]bool{"json": true, "table": true, "yaml": true}
	if !validFormats[c.OutputFormat] {
		return fmt.Errorf("invalid output format: %s (valid: json, table, yaml)", c.OutputFormat)
	}

	validStyles := map[string]bool{"ascii": true, "rounded": true, "minimal": true, "markdown": true}
	if !validStyles[c.TableStyle] {
		return fmt.Errorf("invalid table style: %s (valid: ascii, rounded, minimal, markdown)", c.TableStyle)
	}

	validLevels := map[string]bool{"DEBUG": true, "INFO": true, "WARNING": true, "ERROR": true}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (valid: DEBUG, INFO, WARNING, ERROR)", c.LogLevel)
	}

	if !hexColorPattern.MatchString(c.SplashColor) {
		return fmt.Errorf("invalid hex color code: %s (must be #RRGGBB)", c.SplashColor)
	}

	if c.JsonIndent < 0 {
		return fmt.Errorf("json indent must not be negative")
	}
	if c.Timeout < 1 {
		return fmt.Errorf("timeout must be at least 1 second")
	}
	if c.RetryMaxAttempts < 0 {
		return fmt.Errorf("retry max attempts must not be negative")
	}
	if c.RetryBackoffFactor < 0 {
		return fmt.Errorf("retry backoff factor must not be negative")
	}

	return nil
}
