package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load reads the wizard configuration at path, layered over the schema
// defaults, expands #[Param] cross-references, and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(DefaultsMap(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return fromMap(ExpandRefs(k.Raw()))
}

// Default returns the schema defaults with references expanded.
func Default() *Config {
	cfg, err := fromMap(ExpandRefs(DefaultsMap()))
	if err != nil {
		// The schema defaults always validate.
		panic(err)
	}
	return cfg
}

// FromMap builds a validated Config from an already-expanded value mapping.
func FromMap(values map[string]any) (*Config, error) {
	return fromMap(values)
}

func fromMap(values map[string]any) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return nil, fmt.Errorf("loading config values: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
