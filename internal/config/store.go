package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv4 "go.yaml.in/yaml/v4"
)

// Store persists user-level configuration values between runs. Values read
// back are always layered over the schema defaults, so a missing or broken
// file degrades to defaults instead of failing.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore returns the store in the user's configuration directory.
func DefaultStore() *Store {
	return NewStore(filepath.Join(xdg.ConfigHome, "cliwizard"))
}

// Path returns the location of the persisted configuration file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, ConfigFileName)
}

// Load returns the persisted values merged over the schema defaults.
func (s *Store) Load() map[string]any {
	k := koanf.New(".")
	_ = k.Load(confmap.Provider(DefaultsMap(), "."), nil)

	if _, err := os.Stat(s.Path()); err == nil {
		// An unreadable or malformed file falls back to defaults.
		_ = k.Load(file.Provider(s.Path()), yaml.Parser())
	}

	return k.Raw()
}

// Overrides returns only the values present in the persisted file, without
// the schema defaults layered underneath.
func (s *Store) Overrides() map[string]any {
	k := koanf.New(".")
	if _, err := os.Stat(s.Path()); err == nil {
		_ = k.Load(file.Provider(s.Path()), yaml.Parser())
	}
	return k.Raw()
}

// Save writes values to the persisted configuration file.
func (s *Store) Save(values map[string]any) error {
	data, err := yamlv4.Marshal(values)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Reset deletes the persisted configuration file, reverting to defaults.
func (s *Store) Reset() error {
	err := os.Remove(s.Path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing config file: %w", err)
	}
	return nil
}
