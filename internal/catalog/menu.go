package catalog

import (
	"github.com/google/uuid"

	"github.com/spicetable/pos/internal/domain"
)

// DefaultMenu returns the built-in menu used when no product store is
// configured. IDs are generated at startup; they only need to be stable
// for the lifetime of the process.
func DefaultMenu() []domain.Product {
	items := []struct {
		name     string
		price    float64
		category string
	}{
		{"Masala Dosa", 80, "South Indian"},
		{"Idli Sambar", 50, "South Indian"},
		{"Medu Vada", 45, "South Indian"},
		{"Rava Upma", 55, "South Indian"},
		{"Paneer Butter Masala", 180, "North Indian"},
		{"Dal Makhani", 150, "North Indian"},
		{"Butter Naan", 35, "North Indian"},
		{"Veg Biryani", 160, "North Indian"},
		{"Chilli Paneer", 170, "Chinese"},
		{"Veg Fried Rice", 130, "Chinese"},
		{"Hakka Noodles", 120, "Chinese"},
		{"Manchurian", 140, "Chinese"},
		{"Masala Chai", 20, "Beverages"},
		{"Filter Coffee", 30, "Beverages"},
		{"Fresh Lime Soda", 40, "Beverages"},
		{"Mango Lassi", 60, "Beverages"},
		{"Gulab Jamun", 50, "Desserts"},
		{"Rasmalai", 70, "Desserts"},
	}

	products := make([]domain.Product, len(items))
	for i, it := range items {
		products[i] = domain.Product{
			ID:       uuid.New(),
			Name:     it.name,
			Price:    it.price,
			Category: it.category,
		}
	}
	return products
}

// Categories returns the distinct categories present in the catalog, in
// first-seen order, prefixed with the "All" wildcard.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	out := []string{CategoryAll}
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
