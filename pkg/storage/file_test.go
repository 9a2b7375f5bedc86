package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.connectwisedev.com/storefront-client/models"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "cart.json")
	st := NewFileStorage(path)
	ctx := context.Background()

	items := []models.CartItem{
		{ProductID: "ring-1", Name: "Gold Ring", Price: 100, Quantity: 2},
	}
	require.NoError(t, st.Save(ctx, items), "Save must create missing parent directories")

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, loaded)
}

func TestFileStorage_MissingFileIsEmptyCart(t *testing.T) {
	st := NewFileStorage(filepath.Join(t.TempDir(), "never-written.json"))

	loaded, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileStorage_CorruptFileIsEmptyCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{truncated"), 0o600))

	st := NewFileStorage(path)
	loaded, err := st.Load(context.Background())
	require.NoError(t, err, "corrupt data is treated as absent, not fatal")
	assert.Empty(t, loaded)
}

func TestFileStorage_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	st := NewFileStorage(path)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, []models.CartItem{{ProductID: "ring-1", Quantity: 1}}))
	require.NoError(t, st.Clear(ctx))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, st.Clear(ctx), "clearing twice must not fail")
}

func TestMemoryStorage_CopiesOnSaveAndLoad(t *testing.T) {
	st := NewMemoryStorage()
	ctx := context.Background()

	items := []models.CartItem{{ProductID: "ring-1", Quantity: 1}}
	require.NoError(t, st.Save(ctx, items))
	items[0].Quantity = 99 // Callers mutating their slice must not affect storage

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded[0].Quantity)
}
