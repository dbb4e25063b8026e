// File: docconf/selector.go
package docconf

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// SelectorManifest is the record the client-side language selector
// consumes. Languages keep the registry's display order, and Current is
// always one of their codes.
type SelectorManifest struct {
	Caption   string          `json:"caption"`
	Current   string          `json:"current"`
	Languages []SelectorEntry `json:"languages"`
}

// SelectorEntry is one switchable language. Path addresses the locale's
// build output by its identifier alone, one directory per locale.
type SelectorEntry struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// SelectorManifest builds the language-selector manifest from a resolved
// configuration. Only the selector-host locale carries the full locale
// registry, so asking any other locale for a manifest is an error.
func (rc *ResolvedConfig) SelectorManifest() (*SelectorManifest, error) {
	if !rc.Context.DisplaySelector {
		return nil, fmt.Errorf("locale %q is not the selector host", rc.Locale)
	}

	m := &SelectorManifest{
		Caption: "Languages",
		Current: rc.Context.CurrentLanguage,
	}
	for _, l := range rc.Context.AvailableLocales {
		m.Languages = append(m.Languages, SelectorEntry{
			Code:  l.ID,
			Label: l.Label,
			Path:  "/" + l.ID + "/",
		})
	}
	return m, nil
}

// WriteSelectorManifest writes the selector manifest as JSON, ready to be
// dropped next to language-selector.js in the selector host's static
// output.
func WriteSelectorManifest(w io.Writer, rc *ResolvedConfig) error {
	m, err := rc.SelectorManifest()
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(m); err != nil {
		return fmt.Errorf("failed to encode selector manifest: %w", err)
	}
	return nil
}

// SelectorCaption returns the selector widget caption localized for the
// given locale. Translations come from an optional messages.<locale>.toml
// file in the locale directory; when the file or the message is absent
// the English default is used. Absence is advisory, never an error.
func SelectorCaption(dir, locale string) string {
	const fallback = "Languages"

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	path := filepath.Join(dir, fmt.Sprintf("messages.%s.toml", locale))
	if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return fallback
		}
	}

	localizer := i18n.NewLocalizer(bundle, locale)
	caption, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    "SelectorCaption",
			Other: fallback,
		},
	})
	if err != nil || caption == "" {
		return fallback
	}
	return caption
}
