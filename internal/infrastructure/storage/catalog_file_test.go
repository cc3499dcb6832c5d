package storage

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoproute/backend/internal/domain"
)

const catalogJSON = `[
  {"nome_produto": "Leite Meio Gordo", "corredor": "3", "secção": "Laticínios", "prateleira": "2", "caixa": "A", "coordenada_x": 1, "coordenada_y": 1},
  {"nome_produto": "Pão de Forma", "corredor": "5", "secção": "Padaria", "prateleira": "1", "caixa": "C", "coordenada_x": 2.5, "coordenada_y": 1}
]`

const catalogYAML = `
- nome_produto: Atum em Lata
  corredor: "7"
  secção: Conservas
  prateleira: "3"
  caixa: B
  coordenada_x: 10
  coordenada_y: 4
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCatalogFile_LoadJSON(t *testing.T) {
	provider := NewCatalogFile(writeFile(t, "productLocation.json", catalogJSON))

	catalog, err := provider.LoadCatalog(context.Background())

	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, domain.CatalogEntry{
		ProductName: "Leite Meio Gordo",
		Aisle:       "3",
		Section:     "Laticínios",
		Shelf:       "2",
		Bin:         "A",
		X:           1,
		Y:           1,
	}, catalog[0])
	assert.Equal(t, "Pão de Forma", catalog[1].ProductName)
	assert.Equal(t, 2.5, catalog[1].X)
}

func TestCatalogFile_LoadYAML(t *testing.T) {
	provider := NewCatalogFile(writeFile(t, "catalog.yaml", catalogYAML))

	catalog, err := provider.LoadCatalog(context.Background())

	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "Atum em Lata", catalog[0].ProductName)
	assert.Equal(t, "Conservas", catalog[0].Section)
	assert.Equal(t, 10.0, catalog[0].X)
	assert.Equal(t, 4.0, catalog[0].Y)
}

func TestCatalogFile_ReadsFreshEachCall(t *testing.T) {
	path := writeFile(t, "catalog.json", catalogJSON)
	provider := NewCatalogFile(path)

	first, err := provider.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)

	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	second, err := provider.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestCatalogFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		provider := NewCatalogFile(filepath.Join(t.TempDir(), "missing.json"))
		_, err := provider.LoadCatalog(context.Background())
		assert.ErrorIs(t, err, domain.ErrCatalogNotFound)
	})

	t.Run("malformed json", func(t *testing.T) {
		provider := NewCatalogFile(writeFile(t, "bad.json", `{not json`))
		_, err := provider.LoadCatalog(context.Background())
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})

	t.Run("empty file is an empty catalog", func(t *testing.T) {
		provider := NewCatalogFile(writeFile(t, "empty.json", "  \n"))
		catalog, err := provider.LoadCatalog(context.Background())
		require.NoError(t, err)
		assert.Empty(t, catalog)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		provider := NewCatalogFile(writeFile(t, "catalog.json", catalogJSON))
		_, err := provider.LoadCatalog(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMapToCatalog(t *testing.T) {
	tests := []struct {
		name    string
		records []CatalogRecord
		wantErr bool
	}{
		{
			name:    "valid records",
			records: []CatalogRecord{{ProductName: "milk", X: 1, Y: 2}, {ProductName: "milk", X: 3, Y: 4}},
		},
		{
			name:    "blank product name",
			records: []CatalogRecord{{ProductName: "  ", X: 1, Y: 2}},
			wantErr: true,
		},
		{
			name:    "NaN coordinate",
			records: []CatalogRecord{{ProductName: "milk", X: math.NaN(), Y: 2}},
			wantErr: true,
		},
		{
			name:    "infinite coordinate",
			records: []CatalogRecord{{ProductName: "milk", X: 1, Y: math.Inf(1)}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := MapToCatalog(tt.records)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
				return
			}
			require.NoError(t, err)
			assert.Len(t, entries, len(tt.records))
		})
	}
}
