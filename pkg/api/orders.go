package api

import (
	"context"
	"net/http"
	"net/url"

	"gitlab.connectwisedev.com/storefront-client/models"
)

// Orders fetches the authenticated user's order history
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches a single order by id
func (c *Client) Order(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder places a new order and returns it as persisted by the backend
func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrder updates an order, e.g. to cancel it while still pending
func (c *Client) UpdateOrder(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	payload := map[string]models.OrderStatus{"status": status}
	if err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id), nil, payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
