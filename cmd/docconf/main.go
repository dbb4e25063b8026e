// File: docconf/cmd/docconf/main.go
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"docconf"
)

func main() {
	root := flag.String("root", "docs", "docs root directory")
	locale := flag.String("locale", "", "locale to resolve (default: environment-detected, then registry default)")
	registryPath := flag.String("registry", "", "registry file (default: <root>/locales.toml)")
	format := flag.String("format", "toml", "output format: toml or json")
	manifest := flag.Bool("selector-manifest", false, "emit the language-selector manifest instead of the resolved configuration")
	flag.Parse()

	log.SetFlags(0)

	// A .env next to the invocation is optional.
	_ = godotenv.Load()

	regPath := *registryPath
	if regPath == "" {
		regPath = filepath.Join(*root, docconf.RegistryFileName)
	}
	reg, err := docconf.LoadRegistry(regPath)
	if err != nil {
		log.Fatalf("docconf: %v", err)
	}

	id := *locale
	if id == "" {
		if detected := docconf.DetectLocale(); detected != "" && reg.Has(detected) {
			id = detected
		}
	}

	var rc *docconf.ResolvedConfig
	if id == "" {
		rc, err = docconf.ResolveDefault(*root, reg)
	} else {
		rc, err = docconf.Resolve(*root, id, reg)
	}
	if err != nil && !errors.Is(err, docconf.ErrDeclarationNotFound) {
		log.Fatalf("docconf: %v", err)
	}

	if *manifest {
		m, err := rc.SelectorManifest()
		if err != nil {
			log.Fatalf("docconf: %v", err)
		}
		dir, _ := reg.Dir(rc.Locale)
		m.Caption = docconf.SelectorCaption(filepath.Join(*root, dir), rc.Locale)
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(m); err != nil {
			log.Fatalf("docconf: %v", err)
		}
		return
	}

	switch *format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(rc); err != nil {
			log.Fatalf("docconf: %v", err)
		}
	case "toml":
		if err := rc.Dump(os.Stdout); err != nil {
			log.Fatalf("docconf: %v", err)
		}
	default:
		log.Fatalf("docconf: unknown output format %q", *format)
	}
}
