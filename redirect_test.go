// File: docconf/redirect_test.go
package docconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefault(t *testing.T) {
	t.Setenv("READTHEDOCS", "false")

	t.Run("IdenticalToExplicitDefaultLocale", func(t *testing.T) {
		root := testDocsRoot(t)
		reg := testRegistry(t)

		viaRedirect, err := ResolveDefault(root, reg)
		require.NoError(t, err)

		explicit, err := Resolve(root, "en", reg)
		require.NoError(t, err)

		// Field for field identical: the redirector adds, removes, and
		// alters nothing.
		assert.Equal(t, explicit, viaRedirect)
	})

	t.Run("NoDefaultDesignated", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Add("en", "English", "."))

		_, err := ResolveDefault(t.TempDir(), reg)
		assert.ErrorIs(t, err, ErrUnknownLocale)
	})

	t.Run("DefaultNotRegistered", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Add("en", "English", "."))
		reg.SetDefault("ru")

		_, err := ResolveDefault(t.TempDir(), reg)
		assert.ErrorIs(t, err, ErrUnknownLocale)
	})

	t.Run("NilRegistry", func(t *testing.T) {
		_, err := ResolveDefault(t.TempDir(), nil)
		assert.Error(t, err)
	})
}
