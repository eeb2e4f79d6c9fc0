package catalog

import (
	"strings"

	"github.com/spicetable/pos/internal/domain"
)

// CategoryAll is the wildcard category that matches every product.
const CategoryAll = "All"

// DefaultPageSize is the number of products shown per catalog page.
const DefaultPageSize = 8

// Catalog holds the purchasable products in insertion order. It is
// read-only to consumers; pagination state lives with the caller.
type Catalog struct {
	products []domain.Product
}

// New creates a catalog over the given products. The slice is copied so
// later mutations by the caller don't leak into the catalog.
func New(products []domain.Product) *Catalog {
	c := &Catalog{products: make([]domain.Product, len(products))}
	copy(c.products, products)
	return c
}

// Products returns all products in insertion order.
func (c *Catalog) Products() []domain.Product {
	return c.products
}

// Len returns the total number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Filter returns the products matching the category and search text, in
// insertion order. Category "All" matches every product; the search is a
// case-insensitive substring match on the product name, and an empty
// search matches everything.
func (c *Catalog) Filter(category, search string) []domain.Product {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// TotalPages returns the page count for n items at the given page size,
// never less than 1 even when the filtered set is empty.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (n + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate returns the slice of filtered for the 1-based page. Pages
// outside [1, TotalPages] are clamped.
func Paginate(filtered []domain.Product, pageSize, page int) []domain.Product {
	if pageSize <= 0 {
		return nil
	}
	total := TotalPages(len(filtered), pageSize)
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return []domain.Product{}
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}
