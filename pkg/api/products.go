package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"gitlab.connectwisedev.com/storefront-client/models"
)

// ProductQuery holds the optional query parameters for product listings
type ProductQuery struct {
	Category  string
	MetalType string
	Sort      string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.MetalType != "" {
		v.Set("metalType", q.MetalType)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	return v
}

// Products fetches the product catalog
func (c *Client) Products(ctx context.Context, query ProductQuery) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", query.values(), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single product by id
func (c *Client) Product(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchProducts runs a free-text catalog search
func (c *Client) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	v := url.Values{}
	v.Set("query", query)
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products/search", v, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// MetalTypes fetches the distinct metal types available for filtering
func (c *Client) MetalTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := c.do(ctx, http.MethodGet, "/filters/metal-types", nil, nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// PolishTypes fetches the distinct polish types available for filtering
func (c *Client) PolishTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := c.do(ctx, http.MethodGet, "/filters/polish-types", nil, nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// PriceRange fetches the store-wide min/max product price
func (c *Client) PriceRange(ctx context.Context) (*models.PriceRange, error) {
	var pr models.PriceRange
	if err := c.do(ctx, http.MethodGet, "/filters/price-range", nil, nil, &pr); err != nil {
		return nil, err
	}
	if pr.Max < pr.Min {
		return nil, fmt.Errorf("backend returned inverted price range [%v, %v]", pr.Min, pr.Max)
	}
	return &pr, nil
}
