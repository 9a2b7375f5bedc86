package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.connectwisedev.com/storefront-client/models"
)

func testOrder(id string, total float64) models.Order {
	return models.Order{
		ID:          id,
		TotalAmount: total,
		Status:      models.OrderPending,
		CreatedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestOrders_SetOrdersPreservesBackendOrder(t *testing.T) {
	os := NewOrders()
	os.SetOrders([]models.Order{testOrder("o3", 300), testOrder("o1", 100), testOrder("o2", 200)})

	orders := os.Orders()
	require.Len(t, orders, 3)
	assert.Equal(t, "o3", orders[0].ID)
	assert.Equal(t, "o1", orders[1].ID)
	assert.Equal(t, "o2", orders[2].ID)
}

func TestOrders_AddOrderAppends(t *testing.T) {
	os := NewOrders()
	os.SetOrders([]models.Order{testOrder("o1", 100)})
	os.AddOrder(testOrder("o2", 200))

	orders := os.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "o2", orders[1].ID, "optimistic insert goes at the end")
}

func TestOrders_SelectedOrder(t *testing.T) {
	os := NewOrders()
	assert.Nil(t, os.SelectedOrder())

	order := testOrder("o1", 100)
	os.SetSelectedOrder(&order)
	require.NotNil(t, os.SelectedOrder())
	assert.Equal(t, "o1", os.SelectedOrder().ID)

	os.SetSelectedOrder(nil)
	assert.Nil(t, os.SelectedOrder())
}
