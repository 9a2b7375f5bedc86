package main

import (
	"context"
	"fmt"

	"gitlab.connectwisedev.com/storefront-client/models"
	"gitlab.connectwisedev.com/storefront-client/pkg/price"
	"gitlab.connectwisedev.com/storefront-client/pkg/validation"
)

// checkout is the checkout page flow: validate the shipping address, place
// the order, optimistically append it to the orders store, then clear the
// cart. A backend failure aborts before any local state changes.
func (a *app) checkout(ctx context.Context) error {
	items := a.cart.Items()
	if len(items) == 0 {
		return fmt.Errorf("cart is empty, nothing to check out")
	}

	a.renderCart()
	fmt.Println("\nShipping address")

	form := validation.AddressForm{
		FullName:     a.prompt("Full name"),
		Email:        a.prompt("Email"),
		Phone:        a.prompt("Phone"),
		AddressLine1: a.prompt("Address line 1"),
		AddressLine2: a.prompt("Address line 2 (optional)"),
		City:         a.prompt("City"),
		State:        a.prompt("State"),
		Pincode:      a.prompt("Pincode"),
	}
	if errs := validation.Check(form); errs != nil {
		renderFieldErrors(errs)
		return fmt.Errorf("shipping address is invalid")
	}

	orderItems := make([]models.OrderItem, len(items))
	for i, item := range items {
		orderItems[i] = models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	order, err := a.client.CreateOrder(ctx, models.CreateOrderRequest{
		Items: orderItems,
		ShippingAddress: models.ShippingAddress{
			FullName:     form.FullName,
			Email:        form.Email,
			Phone:        form.Phone,
			AddressLine1: form.AddressLine1,
			AddressLine2: form.AddressLine2,
			City:         form.City,
			State:        form.State,
			Pincode:      form.Pincode,
		},
		TotalAmount: a.cart.TotalPrice(),
		Status:      models.OrderPending,
	})
	if err != nil {
		return err
	}

	a.orders.AddOrder(*order)
	if err := a.cart.Clear(ctx); err != nil {
		return err
	}

	fmt.Printf("\nOrder %s placed for %s. Thank you!\n", order.ID, price.Format(order.TotalAmount))
	return nil
}
