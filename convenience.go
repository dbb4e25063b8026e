// File: docconf/convenience.go
package docconf

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// RegistryFileName is the registry file expected at the docs root.
const RegistryFileName = "locales.toml"

// Quick resolves a locale with a single call, reading the registry from
// locales.toml at the docs root. Pass an empty locale to follow the
// default-locale redirect. This is the recommended entry point for most
// build scripts.
func Quick(root, locale string) (*ResolvedConfig, error) {
	reg, err := LoadRegistry(filepath.Join(root, RegistryFileName))
	if err != nil {
		return nil, err
	}
	if locale == "" {
		return ResolveDefault(root, reg)
	}
	return Resolve(root, locale, reg)
}

// MustQuick is like Quick but panics on error
func MustQuick(root, locale string) *ResolvedConfig {
	rc, err := Quick(root, locale)
	if err != nil {
		panic(fmt.Sprintf("configuration resolution failed: %v", err))
	}
	return rc
}

// Dump writes the resolved configuration to w in TOML format.
func (rc *ResolvedConfig) Dump(w io.Writer) error {
	encoder := toml.NewEncoder(w)
	if err := encoder.Encode(rc); err != nil {
		return fmt.Errorf("failed to marshal resolved configuration to TOML: %w", err)
	}
	return nil
}
