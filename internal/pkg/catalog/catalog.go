// Package catalog loads the seed translation files shipped with the
// service: one directory per locale code holding a ui.yaml file.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Strings map[string]string

// Catalog maps locale code to its key/value strings.
type Catalog map[string]Strings

func Load(localePath string) (Catalog, error) {
	entries, err := os.ReadDir(localePath)
	if err != nil {
		return nil, err
	}

	catalog := make(Catalog)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		locale := entry.Name()
		filePath := filepath.Join(localePath, locale, "ui.yaml")

		data, err := os.ReadFile(filePath)
		if err != nil {
			continue
		}

		var file struct {
			Strings Strings `yaml:"STRINGS"`
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
		}

		catalog[locale] = file.Strings
	}

	return catalog, nil
}
