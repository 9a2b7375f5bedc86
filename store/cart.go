// Package store holds the storefront's client-side state: the cart, the
// product catalog with its filters, and the order history. Each store owns
// its state exclusively and is safe for concurrent reads; mutations are
// atomic, so a reader never observes a half-applied change.
package store

import (
	"context"
	"sync"

	"gitlab.connectwisedev.com/storefront-client/models"
	"gitlab.connectwisedev.com/storefront-client/pkg/price"
	"gitlab.connectwisedev.com/storefront-client/pkg/storage"
)

// Cart holds the cart line items and their derived total. Every mutation
// recomputes the total and writes the item list through the injected storage
// before returning, so the persisted snapshot never lags the in-memory state.
type Cart struct {
	mu         sync.RWMutex
	items      []models.CartItem
	totalPrice float64
	storage    storage.CartStorage
}

// NewCart restores the cart from storage. Missing or corrupt persisted data
// comes back from the storage layer as an empty cart, never an error here.
func NewCart(ctx context.Context, st storage.CartStorage) (*Cart, error) {
	items, err := st.Load(ctx)
	if err != nil {
		return nil, err
	}
	c := &Cart{items: items, storage: st}
	c.recalculateTotal()
	return c, nil
}

// AddItem puts a product in the cart. Adding a product that is already in
// the cart increments its quantity instead of creating a second line.
// Quantities below one are clamped to one.
func (c *Cart) AddItem(ctx context.Context, product models.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	found := false
	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		c.items = append(c.items, models.NewCartItem(product, quantity))
	}
	return c.commit(ctx)
}

// UpdateItemQuantity sets the quantity of a cart line. A quantity of zero or
// less removes the line entirely. Unknown ids are a no-op.
func (c *Cart) UpdateItemQuantity(ctx context.Context, productID string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = quantity
		}
		break
	}
	return c.commit(ctx)
}

// RemoveItem removes a cart line if present
func (c *Cart) RemoveItem(ctx context.Context, productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	return c.commit(ctx)
}

// Clear empties the cart and drops the persisted snapshot
func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.totalPrice = 0
	return c.storage.Clear(ctx)
}

// Items returns a copy of the cart lines in insertion order
func (c *Cart) Items() []models.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalPrice returns the derived cart total
func (c *Cart) TotalPrice() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.totalPrice
}

// Len returns the number of distinct cart lines
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// commit recomputes the total and persists the item list. Callers must hold
// the write lock.
func (c *Cart) commit(ctx context.Context) error {
	c.recalculateTotal()
	return c.storage.Save(ctx, c.items)
}

func (c *Cart) recalculateTotal() {
	c.totalPrice = price.Sum(c.items)
}
