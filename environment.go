// File: docconf/environment.go
package docconf

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// hostedEnv is the recognized hosted-build environment fragment. The
// READTHEDOCS variable is the single signal that the build is running
// under a managed documentation-hosting platform.
type hostedEnv struct {
	Hosted   bool   `env:"READTHEDOCS"`
	Version  string `env:"READTHEDOCS_VERSION"`
	Language string `env:"READTHEDOCS_LANGUAGE"`
}

// applyHostedOverrides merges the hosted-build override fields into the
// record. It runs exactly once, after the base record is fully built.
// Without the hosted signal it contributes nothing; with it, the
// override fields take precedence over any same-named base field, and
// non-overridden fields are left unchanged.
func applyHostedOverrides(rc *ResolvedConfig) error {
	var he hostedEnv
	if err := env.Parse(&he); err != nil {
		return fmt.Errorf("failed to parse hosted environment: %w", err)
	}

	if !he.Hosted {
		return nil
	}

	rc.Context.Hosted = true
	rc.Context.DisplayLowerLeft = true
	if he.Version != "" {
		rc.Context.Version = he.Version
	} else {
		rc.Context.Version = rc.Project.Version
	}

	return nil
}

// DetectLocale returns the locale identifier implied by the environment:
// the hosting platform's language variable when present, otherwise the
// primary subtag of the usual POSIX locale variables. Returns "" when
// nothing usable is set; the caller decides whether to fall back to the
// registry default.
func DetectLocale() string {
	if lang := os.Getenv("READTHEDOCS_LANGUAGE"); lang != "" {
		return normalizeLocale(lang)
	}
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"} {
		if lang := normalizeLocale(os.Getenv(name)); lang != "" {
			return lang
		}
	}
	return ""
}

// normalizeLocale reduces a POSIX locale value ("ru_RU.UTF-8") to its
// primary language subtag ("ru").
func normalizeLocale(val string) string {
	val = strings.ToLower(strings.TrimSpace(val))
	if val == "" || val == "c" || val == "posix" {
		return ""
	}
	for _, sep := range []string{".", "_", "-", "@"} {
		if idx := strings.Index(val, sep); idx >= 0 {
			val = val[:idx]
		}
	}
	return val
}
