package storage

import (
	"fmt"
	"math"
	"strings"

	"github.com/shoproute/backend/internal/domain"
)

// CatalogRecord is a product location in the store's persisted catalog format
type CatalogRecord struct {
	ProductName string  `json:"nome_produto" yaml:"nome_produto"`
	Aisle       string  `json:"corredor" yaml:"corredor"`
	Section     string  `json:"secção" yaml:"secção"`
	Shelf       string  `json:"prateleira" yaml:"prateleira"`
	Bin         string  `json:"caixa" yaml:"caixa"`
	X           float64 `json:"coordenada_x" yaml:"coordenada_x"`
	Y           float64 `json:"coordenada_y" yaml:"coordenada_y"`
}

// MapToCatalog converts persisted records to catalog entries, keeping their order.
// Records without a product name or with non-finite coordinates are rejected.
func MapToCatalog(records []CatalogRecord) ([]domain.CatalogEntry, error) {
	entries := make([]domain.CatalogEntry, 0, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.ProductName) == "" {
			return nil, fmt.Errorf("%w: record %d has no product name", domain.ErrInvalidCatalog, i)
		}
		if !isFinite(rec.X) || !isFinite(rec.Y) {
			return nil, fmt.Errorf("%w: record %d (%s) has invalid coordinates", domain.ErrInvalidCatalog, i, rec.ProductName)
		}
		entries = append(entries, domain.CatalogEntry{
			ProductName: rec.ProductName,
			Aisle:       rec.Aisle,
			Section:     rec.Section,
			Shelf:       rec.Shelf,
			Bin:         rec.Bin,
			X:           rec.X,
			Y:           rec.Y,
		})
	}
	return entries, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
