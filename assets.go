// File: docconf/assets.go
package docconf

import (
	"os"
	"path/filepath"
	"strings"
)

// withinLocaleDir reports whether a declared asset path stays inside the
// locale's own directory. Absolute paths and ".."-style traversal are
// rejected so each locale's build remains self-contained; shared assets
// must be declared per locale, not reached by escaping the locale root.
func withinLocaleDir(p string) bool {
	if p == "" {
		return false
	}
	if filepath.IsAbs(p) {
		return false
	}
	clean := filepath.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return false
	}
	return true
}

// probeAsset checks for an optional asset below the locale directory.
// Returns the relative path when the file exists, or the empty string as
// the explicit absent marker. The probe is advisory and read-only; a
// missing asset is a valid, non-erroring outcome.
func probeAsset(dir, rel string) string {
	stat, err := os.Stat(filepath.Join(dir, rel))
	if err != nil || stat.IsDir() {
		return ""
	}
	return rel
}
