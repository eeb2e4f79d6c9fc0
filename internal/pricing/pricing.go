package pricing

import "github.com/spicetable/pos/internal/domain"

// Subtotal sums the extended price of every line.
func Subtotal(lines []domain.CartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.LineTotal()
	}
	return sum
}

// Total applies a flat discount to a subtotal, clamped so the bill total
// never goes negative however large the discount.
func Total(subtotal, discount float64) float64 {
	total := subtotal - discount
	if total < 0 {
		return 0
	}
	return total
}
