// File: docconf/builder.go
package docconf

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ValidatorFunc defines the signature for a function that can validate a
// resolved configuration. It receives the fully built record and should
// return an error if validation fails.
type ValidatorFunc func(rc *ResolvedConfig) error

// Builder provides a fluent interface for resolving a locale build
// configuration.
type Builder struct {
	root        string
	locale      string
	registry    *Registry
	declaration *Declaration
	validators  []ValidatorFunc
	err         error
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{
		validators: make([]ValidatorFunc, 0),
	}
}

// WithRoot sets the docs root directory containing the locale directories.
func (b *Builder) WithRoot(root string) *Builder {
	b.root = root
	return b
}

// WithLocale sets the locale to resolve. When no locale is set, Build
// follows the default-locale redirect.
func (b *Builder) WithLocale(locale string) *Builder {
	b.locale = locale
	return b
}

// WithRegistry sets the locale registry.
func (b *Builder) WithRegistry(reg *Registry) *Builder {
	b.registry = reg
	return b
}

// WithRegistryFile loads the locale registry from a file. Ignored when
// WithRegistry was also called; a load failure is reported by Build.
func (b *Builder) WithRegistryFile(path string) *Builder {
	if b.registry != nil {
		return b
	}
	loaded, err := LoadRegistry(path)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	b.registry = loaded
	return b
}

// WithDeclaration supplies the locale declaration directly, bypassing the
// declaration file in the locale directory.
func (b *Builder) WithDeclaration(decl Declaration) *Builder {
	b.declaration = &decl
	return b
}

// WithValidator adds a validation function that runs at the end of the
// build process. Multiple validators can be added and are executed in the
// order they are added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build resolves the configuration with all specified options. A missing
// declaration file is reported as ErrDeclarationNotFound alongside a
// valid record built from the defaults; every other error is fatal.
func (b *Builder) Build() (*ResolvedConfig, error) {
	if b.err != nil {
		return nil, b.err
	}

	reg := b.registry
	if reg == nil {
		return nil, fmt.Errorf("a locale registry is required: use WithRegistry or WithRegistryFile")
	}

	locale := b.locale
	if locale == "" {
		locale = reg.Default()
		if locale == "" {
			return nil, fmt.Errorf("%w: no default locale designated", ErrUnknownLocale)
		}
	}
	if !reg.Has(locale) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}

	var (
		rc      *ResolvedConfig
		loadErr error
	)
	if b.declaration != nil {
		dir, _ := reg.Dir(locale)
		rc, loadErr = buildResolved(filepath.Join(b.root, dir), *b.declaration, locale, reg)
		if loadErr != nil {
			return nil, loadErr
		}
	} else {
		rc, loadErr = Resolve(b.root, locale, reg)
		if loadErr != nil && !errors.Is(loadErr, ErrDeclarationNotFound) {
			return nil, loadErr
		}
	}

	// Run validators
	for _, validator := range b.validators {
		if err := validator(rc); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	// ErrDeclarationNotFound or nil
	return rc, loadErr
}

// MustBuild is like Build but panics on error. A missing declaration file
// is not fatal; the build proceeds with the defaults.
func (b *Builder) MustBuild() *ResolvedConfig {
	rc, err := b.Build()
	if err != nil && !errors.Is(err, ErrDeclarationNotFound) {
		panic(fmt.Sprintf("configuration resolution failed: %v", err))
	}
	return rc
}
