package store

import (
	"sync"

	"gitlab.connectwisedev.com/storefront-client/models"
)

// Orders holds the user's order history as returned by the backend, plus the
// order selected for the detail view. There are no derived fields.
type Orders struct {
	mu            sync.RWMutex
	orders        []models.Order
	selectedOrder *models.Order
	loading       bool
	err           string
}

// NewOrders returns an empty orders store
func NewOrders() *Orders {
	return &Orders{}
}

// SetOrders replaces the order list, preserving the backend's ordering
func (o *Orders) SetOrders(orders []models.Order) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.orders = make([]models.Order, len(orders))
	copy(o.orders, orders)
}

// AddOrder appends a freshly created order. This is the optimistic insert
// used right after checkout, before the next full refresh from the backend.
func (o *Orders) AddOrder(order models.Order) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.orders = append(o.orders, order)
}

// SetSelectedOrder sets the detail-view order; nil clears it
func (o *Orders) SetSelectedOrder(order *models.Order) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.selectedOrder = order
}

// SetLoading flags an in-flight order fetch
func (o *Orders) SetLoading(loading bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.loading = loading
}

// SetError records the last fetch error message; empty clears it
func (o *Orders) SetError(msg string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.err = msg
}

// Orders returns a copy of the order list
func (o *Orders) Orders() []models.Order {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]models.Order, len(o.orders))
	copy(out, o.orders)
	return out
}

// SelectedOrder returns the detail-view order, or nil
func (o *Orders) SelectedOrder() *models.Order {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.selectedOrder
}

// Loading reports whether an order fetch is in flight
func (o *Orders) Loading() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.loading
}

// Error returns the last recorded fetch error message
func (o *Orders) Error() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.err
}
