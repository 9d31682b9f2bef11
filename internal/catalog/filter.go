package catalog

import (
	"sort"
	"strings"

	"product-order-system/pkg/models"
)

// Filter returns the products whose name or code contains query
// (case-insensitive), optionally restricted to one category. An empty
// category or "All" keeps every category.
func Filter(products []models.Product, query, category string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Code), q) {
			continue
		}
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the sorted set of categories present in products.
func Categories(products []models.Product) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	sort.Strings(cats)
	return cats
}
