// File: docconf/redirect.go
package docconf

import "fmt"

// ResolveDefault resolves configuration when the caller specifies no
// locale. It delegates entirely to Resolve for the registry's designated
// default locale and returns the result verbatim: no field is added,
// removed, or altered here, so a "default" build is field-for-field
// identical to an explicit build of the default locale.
func ResolveDefault(root string, reg *Registry) (*ResolvedConfig, error) {
	if reg == nil {
		return nil, fmt.Errorf("nil locale registry")
	}

	id := reg.Default()
	if id == "" {
		return nil, fmt.Errorf("%w: no default locale designated", ErrUnknownLocale)
	}
	if !reg.Has(id) {
		return nil, fmt.Errorf("%w: default locale %q", ErrUnknownLocale, id)
	}

	return Resolve(root, id, reg)
}
