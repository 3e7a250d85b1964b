// File: internal/catalog/loader.go
// Brief: Catalog file loading with an embedded default.

package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// The catalog stays schema-simple on purpose so it can be inspected and
// edited directly in the field without tooling.
//
//go:embed catalog.json
var defaultCatalogJSON []byte

var (
	defaultOnce sync.Once
	defaultCol  Collection
	defaultErr  error
)

// Default returns the catalog compiled into the binary.
func Default() (Collection, error) {
	defaultOnce.Do(func() {
		defaultErr = json.Unmarshal(defaultCatalogJSON, &defaultCol)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("parse embedded catalog: %w", defaultErr)
		}
	})
	return defaultCol, defaultErr
}

// Load reads a catalog from a JSON or YAML file, chosen by extension.
func Load(path string) (Collection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Collection{}, fmt.Errorf("read catalog: %w", err)
	}
	var col Collection
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &col); err != nil {
			return Collection{}, fmt.Errorf("parse catalog %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &col); err != nil {
			return Collection{}, fmt.Errorf("parse catalog %s: %w", path, err)
		}
	}
	return col, nil
}
