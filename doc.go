// File: docconf/doc.go

// Package docconf composes the per-locale build configuration for a
// multi-language documentation tree: a base declaration, per-locale
// overrides, and environment-conditional settings become the single
// resolved record consumed by the rendering engine, and the selector-host
// locale additionally carries the registry the client-side language
// selector depends on.
//
// Features:
//   - Explicit, ordered locale registry (insertion order = display order)
//   - Per-locale declaration files in TOML, YAML, or JSON
//   - Fixed, documented field assembly order inside the resolver
//   - Single hosted-build override merge driven by the READTHEDOCS signal
//   - Default-locale redirect that re-exports the resolver's record verbatim
//   - Advisory asset probes: a missing logo or favicon is not an error
//
// Quick Start:
//
//	reg := docconf.NewRegistry()
//	reg.Add("en", "English", ".")
//	reg.Add("ru", "Русский", "ru")
//	reg.SetDefault("en")
//	reg.SetSelectorHost("ru")
//
//	rc, err := docconf.Resolve("docs", "ru", reg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Resolution order (fixed):
//  1. Project metadata, locale, extensions
//  2. Theme options
//  3. Asset paths
//  4. Hosted-build environment overrides
//  5. Selector context (selector host only)
//
// Concurrency:
// Resolution is synchronous and side-effect-free with respect to shared
// state. Each build constructs its own record; the registry is read-only
// after population, so independent locale builds are safely
// parallelizable by an external orchestrator.
package docconf
