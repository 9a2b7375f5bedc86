package api

import (
	"context"
	"net/http"
	"net/url"

	"gitlab.connectwisedev.com/storefront-client/models"
)

// Categories fetches all product categories
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Category fetches a single category by id
func (c *Client) Category(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodGet, "/categories/"+url.PathEscape(id), nil, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// CategoryProducts fetches the products belonging to a category
func (c *Client) CategoryProducts(ctx context.Context, id string, query ProductQuery) ([]models.Product, error) {
	var products []models.Product
	path := "/categories/" + url.PathEscape(id) + "/products"
	if err := c.do(ctx, http.MethodGet, path, query.values(), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
