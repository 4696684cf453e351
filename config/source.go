package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// KeyDelimiter separates segments of a configuration key path.
const KeyDelimiter = ":"

// Source is a hierarchical configuration source backed by Viper, using ":" as
// the key delimiter so key paths match declared property hierarchies
// ("App:Db:Host").
type Source struct {
	v *viper.Viper
}

// New creates an empty source.
func New() *Source {
	return &Source{v: newViper()}
}

// FromMap creates a source from a nested map, useful in tests.
func FromMap(values map[string]any) (*Source, error) {
	v := newViper()
	if err := v.MergeConfigMap(values); err != nil {
		return nil, fmt.Errorf("config: merging map: %w", err)
	}
	return &Source{v: v}, nil
}

func newViper() *viper.Viper {
	return viper.NewWithOptions(viper.KeyDelimiter(KeyDelimiter))
}

// Viper exposes the underlying viper instance.
func (s *Source) Viper() *viper.Viper { return s.v }

// Has reports whether a key path exists in the source, either as a value or
// as a section with children.
func (s *Source) Has(path string) bool {
	if s.v.IsSet(path) {
		return true
	}
	return s.v.Sub(path) != nil
}

// Sub returns the section rooted at path, or nil if absent.
func (s *Source) Sub(path string) *viper.Viper {
	return s.v.Sub(path)
}

// Get returns the raw value at a key path.
func (s *Source) Get(path string) any {
	return s.v.Get(path)
}

// Set overrides a value at a key path. Overrides take precedence over file
// and environment values.
func (s *Source) Set(path string, value any) {
	s.v.Set(path, value)
}

// Unmarshal populates target from the section at path. An empty path
// unmarshals the whole source.
func (s *Source) Unmarshal(path string, target any) error {
	if path == "" {
		return s.v.Unmarshal(target)
	}
	return s.v.UnmarshalKey(path, target)
}

// Watch starts watching the backing configuration file, invoking onChange on
// every modification. It has no effect for sources without a file.
func (s *Source) Watch(onChange func()) {
	if s.v.ConfigFileUsed() == "" {
		return
	}
	s.v.OnConfigChange(func(fsnotify.Event) {
		onChange()
	})
	s.v.WatchConfig()
}

// AllKeys returns every key path currently present in the source.
func (s *Source) AllKeys() []string {
	return s.v.AllKeys()
}

// NormalizeKey rewrites dot-delimited paths to the canonical colon form.
func NormalizeKey(path string) string {
	return strings.ReplaceAll(path, ".", KeyDelimiter)
}
