package main

import (
	"fmt"
	"sort"
	"strings"

	"gitlab.connectwisedev.com/storefront-client/models"
	"gitlab.connectwisedev.com/storefront-client/pkg/price"
	"gitlab.connectwisedev.com/storefront-client/pkg/validation"
)

func renderProducts(products []models.Product) {
	if len(products) == 0 {
		fmt.Println("No products match your filters.")
		return
	}
	for _, p := range products {
		line := fmt.Sprintf("%-24s  %-34s  %-10s  %s",
			p.ID, truncateText(p.Name, 34), p.MetalType, price.Format(p.Price))
		if p.OriginalPrice != nil && *p.OriginalPrice > p.Price {
			line += fmt.Sprintf("  (%d%% off)", price.DiscountPercent(*p.OriginalPrice, p.Price))
		}
		fmt.Println(line)
	}
}

func renderProductDetails(p models.Product) {
	fmt.Printf("%s\n%s\n\n", p.Name, p.Description)
	fmt.Printf("Price:  %s\n", price.Format(p.Price))
	if p.OriginalPrice != nil && *p.OriginalPrice > p.Price {
		fmt.Printf("Was:    %s (%d%% off)\n", price.Format(*p.OriginalPrice), price.DiscountPercent(*p.OriginalPrice, p.Price))
	}
	fmt.Printf("Metal:  %s\n", p.MetalType)
	fmt.Printf("Polish: %s\n", p.PolishType)
	if p.Rating != nil {
		fmt.Printf("Rating: %.1f/5\n", *p.Rating)
	}
}

func renderOrders(orders []models.Order) {
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return
	}
	for _, o := range orders {
		fmt.Printf("%-24s  %-12s  %-10s  %s\n",
			o.ID, o.CreatedAt.Format("2006-01-02"), o.Status, price.Format(o.TotalAmount))
	}
}

func renderOrderDetails(o models.Order) {
	fmt.Printf("Order %s (%s), placed %s\n\n", o.ID, o.Status, o.CreatedAt.Format("2006-01-02 15:04"))
	for _, item := range o.Items {
		fmt.Printf("  %-34s  x%-3d  %s\n", truncateText(item.Name, 34), item.Quantity, price.Format(item.Price))
	}
	addr := o.ShippingAddress
	fmt.Printf("\nShip to: %s (%s), %s", addr.FullName, initials(addr.FullName), addr.AddressLine1)
	if addr.AddressLine2 != "" {
		fmt.Printf(", %s", addr.AddressLine2)
	}
	fmt.Printf(", %s, %s %s\n", addr.City, addr.State, addr.Pincode)
	fmt.Printf("Total:   %s\n", price.Format(o.TotalAmount))
}

// renderFieldErrors prints validation errors in a stable field order
func renderFieldErrors(errs validation.Errors) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Printf("  %s: %s\n", field, errs[field])
	}
}

// truncateText shortens a string for list display
func truncateText(text string, length int) string {
	if len(text) <= length {
		return text
	}
	return text[:length] + "..."
}

// initials returns the uppercased first letters of each word in a name
func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(word[:1]))
	}
	return b.String()
}
