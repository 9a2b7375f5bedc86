package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gitlab.connectwisedev.com/storefront-client/models"
)

// FileStorage keeps the cart snapshot in a JSON file on disk. This is the
// default backend when no Redis address is configured.
type FileStorage struct {
	path string
}

// NewFileStorage returns a cart storage writing to the given path
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads the snapshot file. A missing or unparseable file yields an
// empty cart.
func (s *FileStorage) Load(ctx context.Context) ([]models.CartItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.CartItem{}, nil
		}
		return nil, fmt.Errorf("failed to read cart file %s: %w", s.path, err)
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("Discarding corrupt cart file %s: %v", s.path, err)
		return []models.CartItem{}, nil
	}
	return items, nil
}

// Save overwrites the snapshot file, creating its directory if needed
func (s *FileStorage) Save(ctx context.Context, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart items: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create cart directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write cart file %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the snapshot file; a file that never existed is fine
func (s *FileStorage) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cart file %s: %w", s.path, err)
	}
	return nil
}
