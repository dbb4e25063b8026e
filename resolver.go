// File: docconf/resolver.go
package docconf

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ResolvedConfig is the single configuration record consumed by the
// rendering engine for one build of one locale. It is constructed once
// per build invocation and never mutated afterward.
type ResolvedConfig struct {
	Project             Project           `toml:"project" json:"project"`
	Locale              string            `toml:"locale" json:"locale"`
	Extensions          []string          `toml:"extensions" json:"extensions"`
	Theme               map[string]any    `toml:"theme" json:"theme"`
	TemplatesPath       []string          `toml:"templates_path" json:"templates_path"`
	StaticPath          []string          `toml:"static_path" json:"static_path"`
	ExcludePatterns     []string          `toml:"exclude_patterns" json:"exclude_patterns"`
	CSSFiles            []string          `toml:"css_files" json:"css_files"`
	JSFiles             []string          `toml:"js_files" json:"js_files"`
	Intersphinx         map[string]string `toml:"intersphinx" json:"intersphinx"`
	IntersphinxDisabled []string          `toml:"intersphinx_disabled" json:"intersphinx_disabled"`
	LocaleDirs          []string          `toml:"locale_dirs" json:"locale_dirs"`
	GettextUUID         bool              `toml:"gettext_uuid" json:"gettext_uuid"`
	GettextCompact      bool              `toml:"gettext_compact" json:"gettext_compact"`
	EPUBShowURLs        string            `toml:"epub_show_urls" json:"epub_show_urls"`

	// Logo and Favicon are advisory assets. The empty string marks an
	// absent asset; absence is not an error.
	Logo    string `toml:"logo" json:"logo"`
	Favicon string `toml:"favicon" json:"favicon"`

	Context Context `toml:"context" json:"context"`
}

// Context is the renderer-facing build context: hosted-build override
// fields plus the language-selector fields carried only by the
// selector-host locale.
type Context struct {
	Hosted           bool   `toml:"hosted" json:"hosted"`
	DisplayLowerLeft bool   `toml:"display_lower_left" json:"display_lower_left"`
	Version          string `toml:"version" json:"version"`

	DisplaySelector  bool          `toml:"display_selector" json:"display_selector"`
	CurrentLanguage  string        `toml:"current_language" json:"current_language"`
	AvailableLocales []LocaleLabel `toml:"available_locales" json:"available_locales"`
}

// Resolve produces the resolved configuration for one registered locale.
// The locale's declaration file is read from its directory under root; a
// missing declaration is non-fatal and resolution proceeds with the
// built-in defaults, returning ErrDeclarationNotFound alongside the
// record. Any other error aborts resolution before any output is
// produced.
func Resolve(root, locale string, reg *Registry) (*ResolvedConfig, error) {
	if reg == nil {
		return nil, fmt.Errorf("nil locale registry")
	}
	if locale == "" {
		return nil, ErrEmptyLocale
	}

	dir, ok := reg.Dir(locale)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	localeDir := filepath.Join(root, dir)

	decl, declErr := LoadDeclaration(localeDir, locale)
	if declErr != nil && !errors.Is(declErr, ErrDeclarationNotFound) {
		return nil, declErr
	}

	rc, err := buildResolved(localeDir, decl, locale, reg)
	if err != nil {
		return nil, err
	}

	// declErr is nil or ErrDeclarationNotFound
	return rc, declErr
}

// buildResolved assembles the record field by field in a fixed order:
//
//  1. identity: project metadata, locale, extensions
//  2. theme options: declared keys overlaid on the known defaults
//  3. asset paths: confinement check, then advisory probes
//  4. environment: the single hosted-build override merge
//  5. selector: registry attachment for the selector-host locale
//
// Each field has exactly one declared source, so steps 1-3 are a pure
// deterministic merge; only step 4 reads the process environment.
func buildResolved(dir string, decl Declaration, locale string, reg *Registry) (*ResolvedConfig, error) {
	// -- 1. Identity
	if decl.Locale != "" && decl.Locale != locale {
		return nil, fmt.Errorf("declaration in '%s' declares locale %q, want %q", dir, decl.Locale, locale)
	}

	extensions := decl.Extensions
	if extensions == nil {
		extensions = DefaultExtensions()
	}
	seen := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		if seen[ext] {
			return nil, fmt.Errorf("%w: %q in locale %q", ErrDuplicateExtension, ext, locale)
		}
		seen[ext] = true
	}

	rc := &ResolvedConfig{
		Project:    decl.Project,
		Locale:     locale,
		Extensions: copyStrings(extensions),
	}

	// -- 2. Theme options
	theme := DefaultThemeOptions()
	for k, v := range decl.Theme {
		theme[k] = v
	}
	rc.Theme = theme

	// -- 3. Asset paths
	rc.TemplatesPath = orDefault(decl.TemplatesPath, []string{"_templates"})
	rc.StaticPath = orDefault(decl.StaticPath, []string{"_static"})
	rc.ExcludePatterns = orDefault(decl.ExcludePatterns, defaultExcludePatterns())
	rc.LocaleDirs = orDefault(decl.LocaleDirs, []string{"locale"})
	rc.CSSFiles = copyStrings(decl.CSSFiles)
	rc.JSFiles = copyStrings(decl.JSFiles)

	for _, group := range [][]string{rc.TemplatesPath, rc.StaticPath, rc.LocaleDirs} {
		for _, p := range group {
			if !withinLocaleDir(p) {
				return nil, fmt.Errorf("%w: %q in locale %q", ErrPathEscape, p, locale)
			}
		}
	}

	logo := decl.Logo
	if logo == "" {
		logo = filepath.Join("_static", "logo.png")
	}
	favicon := decl.Favicon
	if favicon == "" {
		favicon = filepath.Join("_static", "favicon.ico")
	}
	for _, p := range []string{logo, favicon} {
		if !withinLocaleDir(p) {
			return nil, fmt.Errorf("%w: %q in locale %q", ErrPathEscape, p, locale)
		}
	}
	rc.Logo = probeAsset(dir, logo)
	rc.Favicon = probeAsset(dir, favicon)

	rc.Intersphinx = decl.Intersphinx
	if rc.Intersphinx == nil {
		rc.Intersphinx = DefaultIntersphinx()
	}
	rc.IntersphinxDisabled = orDefault(decl.IntersphinxDisabled, []string{"std"})
	rc.GettextUUID = decl.GettextUUID
	rc.GettextCompact = decl.GettextCompact
	rc.EPUBShowURLs = decl.EPUBShowURLs

	// -- 4. Environment overrides, applied once after the base record is
	// fully built. Overrides add or replace fields, never remove.
	if err := applyHostedOverrides(rc); err != nil {
		return nil, err
	}

	// -- 5. Selector attachment
	if reg.SelectorHost() == locale {
		rc.Context.DisplaySelector = true
		rc.Context.CurrentLanguage = locale
		rc.Context.AvailableLocales = reg.Locales()
		if rc.CSSFiles == nil {
			rc.CSSFiles = []string{"language-selector.css"}
		}
		if rc.JSFiles == nil {
			rc.JSFiles = []string{"language-selector.js"}
		}
	}

	return rc, nil
}

// orDefault returns declared unless it is nil. An explicitly declared
// empty list stays empty.
func orDefault(declared, fallback []string) []string {
	if declared == nil {
		return fallback
	}
	return copyStrings(declared)
}

// copyStrings returns a copy so the resolved record does not alias the
// declaration's slices.
func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
