package price

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.connectwisedev.com/storefront-client/models"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0.00"},
		{500, "₹500.00"},
		{999.5, "₹999.50"},
		{1000, "₹1,000.00"},
		{100000, "₹1,00,000.00"},
		{123456, "₹1,23,456.00"},
		{12345678.9, "₹1,23,45,678.90"},
		{-1500, "-₹1,500.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.amount), "amount %v", tt.amount)
	}
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, 25, DiscountPercent(2000, 1500))
	assert.Equal(t, 33, DiscountPercent(300, 200))
	assert.Equal(t, 50, DiscountPercent(100, 50))
	assert.Equal(t, 0, DiscountPercent(100, 100))
	assert.Equal(t, 0, DiscountPercent(0, 50), "non-positive original price must not divide")
}

func TestSum(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "a", Price: 100, Quantity: 2},
		{ProductID: "b", Price: 50, Quantity: 1},
	}
	assert.Equal(t, 250.0, Sum(items))
	assert.Equal(t, 0.0, Sum(nil))

	// Decimal math keeps float artifacts out of the total.
	items = []models.CartItem{
		{ProductID: "a", Price: 0.1, Quantity: 3},
	}
	assert.Equal(t, 0.3, Sum(items))
}
