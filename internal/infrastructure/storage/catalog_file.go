package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shoproute/backend/internal/domain"
)

// CatalogFile reads the store catalog from a JSON or YAML file.
// The file is read on every call, so edits show up without a restart.
type CatalogFile struct {
	path string
}

// NewCatalogFile creates a catalog provider backed by path
func NewCatalogFile(path string) *CatalogFile {
	return &CatalogFile{path: path}
}

// LoadCatalog reads and decodes the catalog file
func (f *CatalogFile) LoadCatalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, f.path)
		}
		return nil, fmt.Errorf("failed to read catalog file %s: %w", f.path, err)
	}

	records, err := ParseCatalog(data, filepath.Ext(f.path))
	if err != nil {
		return nil, err
	}

	return MapToCatalog(records)
}

// ParseCatalog decodes catalog records. YAML is used for ".yaml" and ".yml", JSON otherwise.
// Empty input is an empty catalog.
func ParseCatalog(data []byte, ext string) ([]CatalogRecord, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []CatalogRecord{}, nil
	}

	var records []CatalogRecord
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
		}
	default:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
		}
	}

	return records, nil
}
