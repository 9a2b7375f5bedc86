package main

import (
	"context"
	"fmt"
	"strconv"

	"gitlab.connectwisedev.com/storefront-client/pkg/price"
)

// cartCommand dispatches the cart page actions
func (a *app) cartCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		a.renderCart()
		return nil
	case "add":
		return a.cartAdd(ctx, args[1:])
	case "update":
		return a.cartUpdate(ctx, args[1:])
	case "remove":
		return a.cartRemove(ctx, args[1:])
	case "clear":
		if err := a.cart.Clear(ctx); err != nil {
			return err
		}
		fmt.Println("Cart cleared.")
		return nil
	default:
		return fmt.Errorf("usage: storefront cart list|add|update|remove|clear")
	}
}

// cartAdd looks the product up so the cart line carries current display
// fields, then adds it.
func (a *app) cartAdd(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: storefront cart add <product-id> [quantity]")
	}
	quantity := 1
	if len(args) == 2 {
		q, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		quantity = q
	}

	product, err := a.client.Product(ctx, args[0])
	if err != nil {
		return err
	}
	if err := a.cart.AddItem(ctx, *product, quantity); err != nil {
		return err
	}
	fmt.Printf("Added %s to cart.\n", product.Name)
	a.renderCart()
	return nil
}

func (a *app) cartUpdate(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: storefront cart update <product-id> <quantity>")
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity %q", args[1])
	}
	if err := a.cart.UpdateItemQuantity(ctx, args[0], quantity); err != nil {
		return err
	}
	a.renderCart()
	return nil
}

func (a *app) cartRemove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: storefront cart remove <product-id>")
	}
	if err := a.cart.RemoveItem(ctx, args[0]); err != nil {
		return err
	}
	a.renderCart()
	return nil
}

func (a *app) renderCart() {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}
	for _, item := range items {
		fmt.Printf("%-24s  %-30s  x%-3d  %s\n",
			item.ProductID, truncateText(item.Name, 30), item.Quantity, price.Format(item.Price))
	}
	fmt.Printf("\nTotal: %s\n", price.Format(a.cart.TotalPrice()))
}
