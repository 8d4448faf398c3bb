package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hendaya/pedidos-api/internal/infrastructure/storage"
)

func TestFileStore_ClaveAusente(t *testing.T) {
	s, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := s.Get(context.Background(), "hendaya_inventory")
	require.NoError(t, err)
	assert.False(t, ok, "una clave ausente no es un error")
}

func TestFileStore_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	doc := `[{"productId":"ase-1","stock":2}]`
	require.NoError(t, s.Set(ctx, "hendaya_inventory", doc))

	got, ok, err := s.Get(ctx, "hendaya_inventory")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, doc, got)
}

func TestFileStore_SobreescribeElValorCompleto(t *testing.T) {
	ctx := context.Background()
	s, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "po_sequence_hendaya", "3"))
	require.NoError(t, s.Set(ctx, "po_sequence_hendaya", "4"))

	got, ok, err := s.Get(ctx, "po_sequence_hendaya")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "4", got)
}

func TestFileStore_NoDejaTemporalesTrasEscribir(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(context.Background(), "k", "v"))

	matches, err := filepath.Glob(filepath.Join(dir, ".tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFileStore_SanitizaClavesRaras(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "../fuera/de/rango", "x"))

	got, ok, err := s.Get(ctx, "../fuera/de/rango")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "x", got)

	// Nada fuera del directorio de datos
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_CreaElDirectorioSiNoExiste(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "data")
	_, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v"))
	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", got)
}
