package models

import (
	"time"
)

// Product represents a catalog product as served by the backend
type Product struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"` // Pointer for nullable field
	Discount      *int      `json:"discount,omitempty"`
	MetalType     string    `json:"metalType"`
	PolishType    string    `json:"polishType"`
	Rating        *float64  `json:"rating,omitempty"` // Unrated products carry no rating at all
	Images        []string  `json:"images"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Category represents a product category as served by the backend
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// PriceRange is the store-wide min/max price served by the filters endpoint
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
