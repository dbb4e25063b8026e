// File: docconf/errors.go
package docconf

import "errors"

var (
	// ErrUnknownLocale is returned when a requested or default locale is
	// not present in the registry. This is a deployment error, not a
	// runtime data error.
	ErrUnknownLocale = errors.New("locale not registered")

	// ErrDuplicateExtension is returned when the same extension identifier
	// is declared twice for a locale.
	ErrDuplicateExtension = errors.New("duplicate extension")

	// ErrEmptyLocale is returned when a locale identifier is empty.
	ErrEmptyLocale = errors.New("empty locale identifier")

	// ErrPathEscape is returned when a declared asset path resolves
	// outside the locale's own directory.
	ErrPathEscape = errors.New("asset path escapes locale directory")

	// ErrDeclarationNotFound indicates the locale directory carries no
	// declaration file. It is not fatal; resolution proceeds with the
	// built-in defaults.
	ErrDeclarationNotFound = errors.New("locale declaration file not found")
)
