// Package storage persists the cart snapshot between storefront runs.
//
// The cart store only sees the CartStorage interface; which backend is used
// (Redis, a local file, or nothing at all) is decided by the composition
// root. Missing or corrupt persisted data is never an error: every backend
// falls back to an empty cart so a bad snapshot can't take the storefront
// down.
package storage

import (
	"context"

	"gitlab.connectwisedev.com/storefront-client/models"
)

// CartStorage is the persistence port for the cart item list
type CartStorage interface {
	// Load returns the persisted item list, or an empty list if nothing
	// usable is stored.
	Load(ctx context.Context) ([]models.CartItem, error)
	// Save overwrites the persisted snapshot with the given items.
	Save(ctx context.Context, items []models.CartItem) error
	// Clear removes the persisted snapshot entirely.
	Clear(ctx context.Context) error
}
