// File: docconf/loader.go
package docconf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// declarationBase is the declaration file name without extension. One
// declaration file per locale directory.
const declarationBase = "docconf"

// declarationExtensions lists the recognized declaration file extensions,
// in probe order.
var declarationExtensions = []string{".toml", ".yaml", ".yml", ".json"}

// LoadDeclaration reads the locale's declaration file from its directory
// and layers it over the built-in defaults. When the directory carries no
// declaration file, the defaults are returned together with
// ErrDeclarationNotFound; callers may treat that as non-fatal.
func LoadDeclaration(dir, locale string) (Declaration, error) {
	decl := DefaultDeclaration(locale)

	path := declarationFile(dir)
	if path == "" {
		return decl, fmt.Errorf("%w: directory '%s'", ErrDeclarationNotFound, dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return decl, fmt.Errorf("failed to read declaration file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return decl, fmt.Errorf("unable to determine declaration format for file '%s'", path)
		}
	}

	raw := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return decl, fmt.Errorf("failed to parse TOML declaration file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return decl, fmt.Errorf("failed to parse YAML declaration file '%s': %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&raw); err != nil {
			return decl, fmt.Errorf("failed to parse JSON declaration file '%s': %w", path, err)
		}
	}

	if err := decodeDeclaration(raw, &decl); err != nil {
		return decl, fmt.Errorf("declaration file '%s': %w", path, err)
	}

	return decl, nil
}

// declarationFile locates the declaration file inside a locale directory.
// Returns "" when no recognized file exists; absence is a valid outcome.
func declarationFile(dir string) string {
	for _, ext := range declarationExtensions {
		path := filepath.Join(dir, declarationBase+ext)
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			return path
		}
	}
	return ""
}

// decodeDeclaration decodes a parsed declaration map into the target
// using the "toml" struct tags, with weak typing so the YAML and JSON
// formats behave identically to TOML.
func decodeDeclaration(raw map[string]any, target *Declaration) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode declaration: %w", err)
	}

	return nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// Try YAML (superset of JSON, so check after JSON)
	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	// Try TOML last
	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}
