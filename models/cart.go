package models

// CartItem is a single line item in the shopping cart. The full item list is
// what gets serialized into persistent storage, so the display fields are
// denormalized from the product rather than looked up again on restore.
type CartItem struct {
	ProductID string  `json:"_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	MetalType string  `json:"metalType"`
	Quantity  int     `json:"quantity"`
}

// NewCartItem builds a cart line from a catalog product
func NewCartItem(p Product, quantity int) CartItem {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     image,
		Price:     p.Price,
		MetalType: p.MetalType,
		Quantity:  quantity,
	}
}
