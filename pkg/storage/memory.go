package storage

import (
	"context"
	"sync"

	"gitlab.connectwisedev.com/storefront-client/models"
)

// MemoryStorage holds the cart snapshot in memory only. Useful for tests and
// for running the storefront without any persistence at all.
type MemoryStorage struct {
	mu    sync.RWMutex
	items []models.CartItem
}

// NewMemoryStorage returns an empty in-memory cart storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Load returns a copy of the stored item list
func (s *MemoryStorage) Load(ctx context.Context) ([]models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items, nil
}

// Save replaces the stored item list with a copy of the given one
func (s *MemoryStorage) Save(ctx context.Context, items []models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]models.CartItem, len(items))
	copy(s.items, items)
	return nil
}

// Clear drops the stored item list
func (s *MemoryStorage) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}
