// File: docconf/registry.go
package docconf

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LocaleLabel pairs a locale identifier with its display label.
type LocaleLabel struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// registryEntry is one registered locale.
type registryEntry struct {
	id    string
	label string
	dir   string
}

// Registry is the explicit, ordered set of locales a documentation tree
// can be built for. Insertion order is display order for the language
// selector. A Registry is populated once and then read-only; it holds no
// cross-locale mutable state, so independent locale builds may share it.
type Registry struct {
	entries      []registryEntry
	index        map[string]int
	defaultID    string
	selectorHost string
}

// NewRegistry creates an empty locale registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Add registers a locale under the given identifier. The identifier must
// be a parsable language tag (e.g. "en", "ru", "pt-BR"). dir is the
// locale's directory relative to the docs root; the default locale may
// live at the root itself ("."). label may be empty, in which case the
// language's autonym is used for display.
func (r *Registry) Add(id, label, dir string) error {
	if id == "" {
		return ErrEmptyLocale
	}
	if _, err := language.Parse(id); err != nil {
		return fmt.Errorf("invalid locale identifier %q: %w", id, err)
	}
	if _, exists := r.index[id]; exists {
		return fmt.Errorf("locale %q already registered", id)
	}
	if dir == "" {
		dir = id
	}
	r.index[id] = len(r.entries)
	r.entries = append(r.entries, registryEntry{id: id, label: label, dir: dir})
	return nil
}

// SetDefault designates the locale resolved when no explicit locale is
// requested. The identifier is checked against the registry at
// resolution time, so deployment errors surface before any build output.
func (r *Registry) SetDefault(id string) {
	r.defaultID = id
}

// SetSelectorHost designates the locale whose build output presents the
// language selector and therefore carries the full locale registry.
func (r *Registry) SetSelectorHost(id string) error {
	if _, exists := r.index[id]; !exists {
		return fmt.Errorf("%w: %q", ErrUnknownLocale, id)
	}
	r.selectorHost = id
	return nil
}

// Has reports whether the locale is registered.
func (r *Registry) Has(id string) bool {
	_, exists := r.index[id]
	return exists
}

// Dir returns the locale's directory relative to the docs root.
func (r *Registry) Dir(id string) (string, bool) {
	i, exists := r.index[id]
	if !exists {
		return "", false
	}
	return r.entries[i].dir, true
}

// Label returns the locale's display label. A locale registered without a
// label falls back to the language's autonym, and to the identifier
// itself when the tag has no display name.
func (r *Registry) Label(id string) string {
	i, exists := r.index[id]
	if !exists {
		return ""
	}
	if r.entries[i].label != "" {
		return r.entries[i].label
	}
	return autonym(id)
}

// Default returns the designated default locale identifier.
func (r *Registry) Default() string {
	return r.defaultID
}

// SelectorHost returns the designated selector-host locale identifier.
func (r *Registry) SelectorHost() string {
	return r.selectorHost
}

// Len returns the number of registered locales.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Locales returns all registered locales with their display labels, in
// registration order. The slice is a copy; callers may hold it without
// affecting the registry.
func (r *Registry) Locales() []LocaleLabel {
	out := make([]LocaleLabel, 0, len(r.entries))
	for _, e := range r.entries {
		label := e.label
		if label == "" {
			label = autonym(e.id)
		}
		out = append(out, LocaleLabel{ID: e.id, Label: label})
	}
	return out
}

// autonym returns the language's name in the language itself.
func autonym(id string) string {
	tag, err := language.Parse(id)
	if err != nil {
		return id
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return id
}

// registryFile is the on-disk shape of a locale registry (locales.toml).
type registryFile struct {
	Default      string `toml:"default"`
	SelectorHost string `toml:"selector_host"`
	Locales      []struct {
		ID    string `toml:"id"`
		Label string `toml:"label"`
		Dir   string `toml:"dir"`
	} `toml:"locale"`
}

// LoadRegistry reads a locale registry from a TOML file. The file's
// array-of-tables order becomes the registry's display order.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file '%s': %w", path, err)
	}

	var rf registryFile
	if err := toml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse registry file '%s': %w", path, err)
	}

	reg := NewRegistry()
	for _, l := range rf.Locales {
		if err := reg.Add(l.ID, l.Label, l.Dir); err != nil {
			return nil, fmt.Errorf("registry file '%s': %w", path, err)
		}
	}
	reg.SetDefault(rf.Default)
	if rf.SelectorHost != "" {
		if err := reg.SetSelectorHost(rf.SelectorHost); err != nil {
			return nil, fmt.Errorf("registry file '%s': %w", path, err)
		}
	}
	return reg, nil
}
