package catalog

import (
	"strings"

	"github.com/Kariqs/laptopzone-api/models"
)

// AllBrands is the brand sentinel that disables brand filtering.
const AllBrands = "All"

// Filter keeps products whose title, CPU, GPU and brand contain query
// (case-insensitive) and whose brand equals brand unless brand is AllBrands.
// Input order is preserved.
func Filter(products []models.Product, query, brand string) []models.Product {
	q := strings.ToLower(query)
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if brand != AllBrands && p.Brand != brand {
			continue
		}
		hay := strings.ToLower(strings.Join([]string{p.Title, p.CPU, p.GPU, p.Brand}, " "))
		if !strings.Contains(hay, q) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
