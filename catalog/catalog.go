// Package catalog holds the static product list. Products are
// build-time reference data: there is no table, no admin CRUD, and no
// runtime mutation. Lookups that miss return a zero value and false
// rather than an error.
package catalog

import "github.com/Oghenetega16/audiophile-api/models"

// All returns every product in display order.
func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ByID returns the product with the given id.
func ByID(id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// BySlug returns the product with the given URL slug.
func BySlug(slug string) (models.Product, bool) {
	for _, p := range products {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Product{}, false
}

// ByCategory returns all products in a category, keeping catalog order.
func ByCategory(cat models.Category) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// Related resolves a product's related ids. Ids that no longer exist
// are skipped.
func Related(p models.Product) []models.Product {
	var out []models.Product
	for _, id := range p.Related {
		if rel, ok := ByID(id); ok {
			out = append(out, rel)
		}
	}
	return out
}
