package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.connectwisedev.com/storefront-client/models"
	"gitlab.connectwisedev.com/storefront-client/pkg/storage"
)

func newTestCart(t *testing.T) (*Cart, *storage.MemoryStorage) {
	t.Helper()
	st := storage.NewMemoryStorage()
	cart, err := NewCart(context.Background(), st)
	require.NoError(t, err)
	return cart, st
}

func product(id string, priceValue float64) models.Product {
	return models.Product{
		ID:        id,
		Name:      "Product " + id,
		Price:     priceValue,
		MetalType: "Gold",
		Images:    []string{"https://cdn.example.com/" + id + ".jpg"},
	}
}

func TestCart_AddItemAccumulatesQuantity(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()
	p := product("ring-1", 100)

	require.NoError(t, cart.AddItem(ctx, p, 2))
	require.NoError(t, cart.AddItem(ctx, p, 3))
	require.NoError(t, cart.AddItem(ctx, p, 1))

	items := cart.Items()
	require.Len(t, items, 1, "repeated adds of the same product must not create new lines")
	assert.Equal(t, 6, items[0].Quantity)
	assert.Equal(t, 600.0, cart.TotalPrice())
}

func TestCart_AddItemKeepsInsertionOrder(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, product("a", 10), 1))
	require.NoError(t, cart.AddItem(ctx, product("b", 20), 1))
	require.NoError(t, cart.AddItem(ctx, product("c", 30), 1))
	require.NoError(t, cart.AddItem(ctx, product("a", 10), 1))

	items := cart.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].ProductID)
	assert.Equal(t, "b", items[1].ProductID)
	assert.Equal(t, "c", items[2].ProductID)
}

func TestCart_AddItemClampsNonPositiveQuantity(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, product("ring-1", 100), 0))
	require.NoError(t, cart.AddItem(ctx, product("ring-2", 50), -5))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 150.0, cart.TotalPrice())
}

func TestCart_TotalTracksEveryMutation(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	// Worked example: A(100 x2) + B(50 x1) = 250, then A +1 -> 350.
	require.NoError(t, cart.AddItem(ctx, product("A", 100), 2))
	require.NoError(t, cart.AddItem(ctx, product("B", 50), 1))
	assert.Equal(t, 250.0, cart.TotalPrice())

	require.NoError(t, cart.AddItem(ctx, product("A", 100), 1))
	assert.Equal(t, 350.0, cart.TotalPrice())

	require.NoError(t, cart.UpdateItemQuantity(ctx, "B", 4))
	assert.Equal(t, 500.0, cart.TotalPrice())

	require.NoError(t, cart.RemoveItem(ctx, "A"))
	assert.Equal(t, 200.0, cart.TotalPrice())
}

func TestCart_UpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, quantity := range []int{0, -3} {
		cart, _ := newTestCart(t)
		ctx := context.Background()

		require.NoError(t, cart.AddItem(ctx, product("ring-1", 100), 2))
		require.NoError(t, cart.UpdateItemQuantity(ctx, "ring-1", quantity))

		assert.Equal(t, 0, cart.Len(), "quantity %d should remove the line", quantity)
		assert.Equal(t, 0.0, cart.TotalPrice())
	}
}

func TestCart_UpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, product("ring-1", 100), 2))
	require.NoError(t, cart.UpdateItemQuantity(ctx, "missing", 5))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 200.0, cart.TotalPrice())
}

func TestCart_ClearIsIdempotent(t *testing.T) {
	cart, st := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, product("ring-1", 100), 2))
	require.NoError(t, cart.Clear(ctx))
	require.NoError(t, cart.Clear(ctx))

	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, 0.0, cart.TotalPrice())

	persisted, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestCart_PersistsAfterEveryMutation(t *testing.T) {
	cart, st := newTestCart(t)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, product("ring-1", 100), 2))
	persisted, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, 2, persisted[0].Quantity)

	require.NoError(t, cart.UpdateItemQuantity(ctx, "ring-1", 7))
	persisted, err = st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, 7, persisted[0].Quantity)

	require.NoError(t, cart.RemoveItem(ctx, "ring-1"))
	persisted, err = st.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestCart_RestoresFromStorage(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemoryStorage()
	require.NoError(t, st.Save(ctx, []models.CartItem{
		{ProductID: "ring-1", Name: "Gold Ring", Price: 100, Quantity: 2},
		{ProductID: "chain-1", Name: "Silver Chain", Price: 50, Quantity: 1},
	}))

	cart, err := NewCart(ctx, st)
	require.NoError(t, err)

	assert.Equal(t, 2, cart.Len())
	assert.Equal(t, 250.0, cart.TotalPrice(), "total must be recomputed on restore, not trusted from storage")
}
