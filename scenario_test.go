// File: docconf/scenario_test.go
package docconf_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docconf"
)

// writeDocsTree lays out the two-locale tree the package is built around:
// the default "en" locale at the docs root, "ru" in its own directory
// hosting the language selector.
func writeDocsTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ru"), 0755))

	registry := `default = "en"
selector_host = "ru"

[[locale]]
id = "en"
label = "English"
dir = "."

[[locale]]
id = "ru"
label = "Русский"
dir = "ru"
`
	enDecl := `locale = "en"
exclude_patterns = ["_build", "Thumbs.db", ".DS_Store", "**.ipynb_checkpoints", "locale", "ru"]
`
	ruDecl := `locale = "ru"
css_files = ["language-selector.css"]
js_files = ["language-selector.js"]
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "locales.toml"), []byte(registry), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docconf.toml"), []byte(enDecl), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "ru", "docconf.toml"), []byte(ruDecl), 0644))
	return root
}

func TestQuick(t *testing.T) {
	t.Setenv("READTHEDOCS", "false")

	t.Run("NoLocaleResolvesDefault", func(t *testing.T) {
		root := writeDocsTree(t)

		rc, err := docconf.Quick(root, "")
		require.NoError(t, err)
		assert.Equal(t, "en", rc.Locale)
		assert.False(t, rc.Context.DisplaySelector)
	})

	t.Run("ExplicitLocale", func(t *testing.T) {
		root := writeDocsTree(t)

		rc, err := docconf.Quick(root, "ru")
		require.NoError(t, err)

		assert.Equal(t, "ru", rc.Locale)
		assert.True(t, rc.Context.DisplaySelector)
		assert.Equal(t, []docconf.LocaleLabel{
			{ID: "en", Label: "English"},
			{ID: "ru", Label: "Русский"},
		}, rc.Context.AvailableLocales)
	})

	t.Run("DefaultEqualsExplicitDefault", func(t *testing.T) {
		root := writeDocsTree(t)

		implicit, err := docconf.Quick(root, "")
		require.NoError(t, err)
		explicit, err := docconf.Quick(root, "en")
		require.NoError(t, err)

		assert.Equal(t, explicit, implicit)
	})

	t.Run("UnknownLocale", func(t *testing.T) {
		root := writeDocsTree(t)

		_, err := docconf.Quick(root, "fr")
		assert.ErrorIs(t, err, docconf.ErrUnknownLocale)
	})

	t.Run("MissingRegistry", func(t *testing.T) {
		_, err := docconf.Quick(t.TempDir(), "")
		assert.Error(t, err)
	})

	t.Run("MustQuickPanicsOnMissingRegistry", func(t *testing.T) {
		assert.Panics(t, func() {
			docconf.MustQuick(t.TempDir(), "")
		})
	})
}

func TestDump(t *testing.T) {
	t.Setenv("READTHEDOCS", "false")
	root := writeDocsTree(t)

	rc, err := docconf.Quick(root, "ru")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rc.Dump(&buf))

	out := buf.String()
	assert.Contains(t, out, `locale = "ru"`)
	assert.Contains(t, out, "[project]")
	assert.Contains(t, out, `name = "VibeMQ"`)
}
