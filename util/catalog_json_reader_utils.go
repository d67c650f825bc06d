package util

import (
	"encoding/json"
	"fmt"
	"os"

	"lp-server/models"
)

// ReadMockCatalogFromJSON loads a placeholder-catalog override from JSON on
// disk. Used to swap the built-in mock catalog without rebuilding.
func ReadMockCatalogFromJSON(filePath string) ([]models.PlaceTemplate, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var catalog []models.PlaceTemplate
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mock catalog: %w", err)
	}
	return catalog, nil
}
