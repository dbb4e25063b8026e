// File: docconf/declaration.go
package docconf

// Project holds the project-level constants carried into every resolved
// configuration. The values are immutable for a given build.
type Project struct {
	Name    string `toml:"name" json:"name"`
	Owner   string `toml:"owner" json:"owner"`
	Version string `toml:"version" json:"version"`
	Release string `toml:"release" json:"release"`
}

// Declaration is the static per-locale declaration read from the locale
// directory. Fields left unset fall back to the built-in defaults during
// resolution; the declaration never sees the process environment.
type Declaration struct {
	Project             Project           `toml:"project"`
	Locale              string            `toml:"locale"`
	Extensions          []string          `toml:"extensions"`
	Theme               map[string]any    `toml:"theme"`
	TemplatesPath       []string          `toml:"templates_path"`
	StaticPath          []string          `toml:"static_path"`
	ExcludePatterns     []string          `toml:"exclude_patterns"`
	CSSFiles            []string          `toml:"css_files"`
	JSFiles             []string          `toml:"js_files"`
	Intersphinx         map[string]string `toml:"intersphinx"`
	IntersphinxDisabled []string          `toml:"intersphinx_disabled"`
	LocaleDirs          []string          `toml:"locale_dirs"`
	GettextUUID         bool              `toml:"gettext_uuid"`
	GettextCompact      bool              `toml:"gettext_compact"`
	EPUBShowURLs        string            `toml:"epub_show_urls"`
	Logo                string            `toml:"logo"`
	Favicon             string            `toml:"favicon"`
}

// DefaultDeclaration returns the baseline declaration for a locale.
// Slice and map fields stay nil so a declaration file replaces them
// wholesale; the resolver substitutes the defaults below for fields that
// remain unset after loading.
func DefaultDeclaration(locale string) Declaration {
	return Declaration{
		Project: Project{
			Name:    "VibeMQ",
			Owner:   "Darkboy",
			Version: "1.0.0",
			Release: "1.0.0",
		},
		Locale:       locale,
		GettextUUID:  true,
		EPUBShowURLs: "footnote",
	}
}

// DefaultExtensions returns the build extensions enabled when a locale
// declares none. Order matters downstream: the renderer loads extensions
// in sequence and later ones may override earlier ones.
func DefaultExtensions() []string {
	return []string{
		"sphinx.ext.duration",
		"sphinx.ext.doctest",
		"sphinx.ext.autodoc",
		"sphinx.ext.autosummary",
		"sphinx.ext.intersphinx",
		"sphinx.ext.viewcode",
		"sphinx.ext.githubpages",
		"sphinx_copybutton",
	}
}

// DefaultThemeOptions returns the known theme option set with its default
// values. Unknown keys added by a declaration are passed through; the
// downstream renderer rejects keys it does not recognize.
func DefaultThemeOptions() map[string]any {
	return map[string]any{
		"logo_only":                  false,
		"display_version":            true,
		"prev_next_buttons_location": "bottom",
		"style_external_links":       true,
		"navigation_depth":           int64(4),
		"collapse_navigation":        false,
		"sticky_navigation":          true,
		"includehidden":              true,
		"titles_only":                false,
	}
}

// DefaultIntersphinx returns the default cross-project inventory mapping.
func DefaultIntersphinx() map[string]string {
	return map[string]string{
		"rtd":    "https://docs.readthedocs.io/en/stable/",
		"python": "https://docs.python.org/3/",
	}
}

// defaultExcludePatterns lists build artifacts and per-locale trees the
// renderer must skip.
func defaultExcludePatterns() []string {
	return []string{"_build", "Thumbs.db", ".DS_Store", "**.ipynb_checkpoints", "locale"}
}
