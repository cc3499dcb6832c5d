package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoproute/backend/internal/domain"
)

func TestListFile_LoadMissing(t *testing.T) {
	repo := NewListFile(filepath.Join(t.TempDir(), "itemList.json"))

	list, err := repo.LoadList(context.Background())

	assert.Nil(t, list)
	assert.ErrorIs(t, err, domain.ErrNoSavedList)
}

func TestListFile_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "itemList.json")
	repo := NewListFile(path)
	ctx := context.Background()

	err := repo.SaveList(ctx, &domain.ShoppingList{Items: []string{"leite", "pão", "leite"}})
	require.NoError(t, err)

	list, err := repo.LoadList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"leite", "pão", "leite"}, list.Items)
	assert.False(t, list.SavedAt.IsZero())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "pão", "list file should be plain UTF-8")

	var items []string
	require.NoError(t, json.Unmarshal(raw, &items))
	assert.Len(t, items, 3)
}

func TestListFile_SaveReplaces(t *testing.T) {
	repo := NewListFile(filepath.Join(t.TempDir(), "itemList.json"))
	ctx := context.Background()

	require.NoError(t, repo.SaveList(ctx, &domain.ShoppingList{Items: []string{"atum", "morangos"}}))
	require.NoError(t, repo.SaveList(ctx, &domain.ShoppingList{Items: []string{"bacalhau"}}))

	list, err := repo.LoadList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bacalhau"}, list.Items)

	entries, err := os.ReadDir(filepath.Dir(repo.path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should not be left behind")
}

func TestListFile_SaveNil(t *testing.T) {
	repo := NewListFile(filepath.Join(t.TempDir(), "itemList.json"))

	err := repo.SaveList(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestListFile_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itemList.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items": 1}`), 0o644))

	_, err := NewListFile(path).LoadList(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode list file")
}
