// File: docconf/registry_test.go
package docconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("OrderedRegistration", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Add("en", "English", "."))
		require.NoError(t, reg.Add("ru", "Русский", "ru"))
		require.NoError(t, reg.Add("fr", "Français", "fr"))

		locales := reg.Locales()
		require.Len(t, locales, 3)
		assert.Equal(t, "en", locales[0].ID)
		assert.Equal(t, "ru", locales[1].ID)
		assert.Equal(t, "fr", locales[2].ID)
		assert.Equal(t, "Русский", locales[1].Label)

		dir, ok := reg.Dir("en")
		assert.True(t, ok)
		assert.Equal(t, ".", dir)
	})

	t.Run("DuplicateIdentifier", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Add("en", "English", "."))
		err := reg.Add("en", "English again", "en2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("EmptyIdentifier", func(t *testing.T) {
		reg := NewRegistry()
		err := reg.Add("", "Nothing", "x")
		assert.ErrorIs(t, err, ErrEmptyLocale)
	})

	t.Run("InvalidLanguageTag", func(t *testing.T) {
		reg := NewRegistry()
		err := reg.Add("not a tag!", "", "")
		assert.Error(t, err)
	})

	t.Run("DirDefaultsToIdentifier", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Add("ru", "Русский", ""))
		dir, ok := reg.Dir("ru")
		assert.True(t, ok)
		assert.Equal(t, "ru", dir)
	})

	t.Run("AutonymFallback", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Add("de", "", ""))

		label := reg.Label("de")
		assert.NotEmpty(t, label)
		assert.NotEqual(t, "de", label)

		locales := reg.Locales()
		assert.Equal(t, label, locales[0].Label)
	})

	t.Run("SelectorHostMustBeRegistered", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Add("en", "English", "."))

		err := reg.SetSelectorHost("ru")
		assert.ErrorIs(t, err, ErrUnknownLocale)

		require.NoError(t, reg.SetSelectorHost("en"))
		assert.Equal(t, "en", reg.SelectorHost())
	})
}

func TestLoadRegistry(t *testing.T) {
	t.Run("FileOrderIsDisplayOrder", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "locales.toml")
		content := `default = "en"
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
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		reg, err := LoadRegistry(path)
		require.NoError(t, err)

		assert.Equal(t, "en", reg.Default())
		assert.Equal(t, "ru", reg.SelectorHost())
		assert.Equal(t, 2, reg.Len())

		locales := reg.Locales()
		assert.Equal(t, []LocaleLabel{
			{ID: "en", Label: "English"},
			{ID: "ru", Label: "Русский"},
		}, locales)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadRegistry(filepath.Join(t.TempDir(), "locales.toml"))
		assert.Error(t, err)
	})

	t.Run("UnregisteredSelectorHost", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "locales.toml")
		content := `default = "en"
selector_host = "ru"

[[locale]]
id = "en"
label = "English"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := LoadRegistry(path)
		assert.ErrorIs(t, err, ErrUnknownLocale)
	})

	t.Run("MalformedTOML", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "locales.toml")
		require.NoError(t, os.WriteFile(path, []byte(`default = [`), 0644))

		_, err := LoadRegistry(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse registry file")
	})
}
