// Package mcp serves the parser's capabilities catalog — the record
// types, blip types, property IDs, and resource limits the legacy PPT
// decoder understands — as embedded JSON, in the style of the
// teacher's generic resource-catalog provider.
package mcp

import (
	"embed"
	"fmt"
)

//go:embed catalog/*.json
var CatalogFS embed.FS

// CatalogProvider reads catalog documents out of the embedded
// filesystem by resource code (the JSON file's base name).
type CatalogProvider struct{}

func NewCatalogProvider() *CatalogProvider {
	return &CatalogProvider{}
}

// GetCatalogMetadata returns the raw JSON for one catalog resource,
// e.g. "record_types", "blip_types", "property_ids", "limits".
func (p *CatalogProvider) GetCatalogMetadata(resourceCode string) (string, error) {
	fileName := fmt.Sprintf("catalog/%s.json", resourceCode)
	content, err := CatalogFS.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("could not read embedded catalog file %s: %w", fileName, err)
	}
	return string(content), nil
}

// GetAllCatalogs lists every available resource code.
func (p *CatalogProvider) GetAllCatalogs() ([]string, error) {
	entries, err := CatalogFS.ReadDir("catalog")
	if err != nil {
		return nil, err
	}
	var codes []string
	for _, e := range entries {
		if !e.IsDir() {
			name := e.Name()
			if len(name) > 5 {
				codes = append(codes, name[:len(name)-5])
			}
		}
	}
	return codes, nil
}
