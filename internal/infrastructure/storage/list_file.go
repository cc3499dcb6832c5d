package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shoproute/backend/internal/domain"
)

// ListFile keeps the shopping list as a JSON array of item names
type ListFile struct {
	path string
}

// NewListFile creates a list repository backed by path
func NewListFile(path string) *ListFile {
	return &ListFile{path: path}
}

// LoadList reads the saved list. A missing file means nothing was saved yet.
func (f *ListFile) LoadList(ctx context.Context) (*domain.ShoppingList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNoSavedList
		}
		return nil, fmt.Errorf("failed to read list file %s: %w", f.path, err)
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode list file %s: %w", f.path, err)
	}

	list := &domain.ShoppingList{Items: items}
	if info, err := os.Stat(f.path); err == nil {
		list.SavedAt = info.ModTime()
	}
	return list, nil
}

// SaveList replaces the saved list. The file is written to a temp file and renamed into place.
func (f *ListFile) SaveList(ctx context.Context, list *domain.ShoppingList) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if list == nil {
		return domain.ErrInvalidRequest
	}

	items := list.Items
	if items == nil {
		items = []string{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode list: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create list directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".list-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp list file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write list file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write list file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to write list file %s: %w", f.path, err)
	}
	return nil
}
