// Package price holds the money math and display formatting shared by the
// cart and the storefront views. All arithmetic goes through decimals so the
// cart total can never drift from the sum of its lines.
package price

import (
	"strings"

	"github.com/shopspring/decimal"

	"gitlab.connectwisedev.com/storefront-client/models"
)

// Sum returns the exact total of price x quantity over all cart lines
func Sum(items []models.CartItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Float64()
	return f
}

// Format renders an amount as Indian rupees with Indian digit grouping,
// e.g. 123456 -> "₹1,23,456.00".
func Format(amount float64) string {
	d := decimal.NewFromFloat(amount)
	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-3:] // includes the dot

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	b.WriteString(groupIndian(intPart))
	b.WriteString(fracPart)
	return b.String()
}

// groupIndian inserts commas per the Indian numbering system: the last three
// digits form one group, everything before that groups in twos.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// DiscountPercent returns the discount as a whole percentage, rounded to the
// nearest integer. A non-positive original price yields zero rather than a
// division blowup.
func DiscountPercent(originalPrice, discountedPrice float64) int {
	original := decimal.NewFromFloat(originalPrice)
	if !original.IsPositive() {
		return 0
	}
	discounted := decimal.NewFromFloat(discountedPrice)
	pct := original.Sub(discounted).Div(original).Mul(decimal.NewFromInt(100)).Round(0)
	return int(pct.IntPart())
}
