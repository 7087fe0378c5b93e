package models

type Category string

const (
	CategoryHeadphones Category = "headphones"
	CategorySpeakers   Category = "speakers"
	CategoryEarphones  Category = "earphones"
)

// IncludedItem is one "in the box" line for a product.
type IncludedItem struct {
	Quantity int    `json:"quantity"`
	Item     string `json:"item"`
}

// Product is static reference data. The catalog is compiled into the
// binary (see the catalog package); products are never written to the
// DB. Orders snapshot the fields they need instead of referencing a
// product.
type Product struct {
	ID          int            `json:"id"`
	Slug        string         `json:"slug"`
	Name        string         `json:"name"`
	Price       float64        `json:"price"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Category    Category       `json:"category"`
	IsNew       bool           `json:"is_new"`
	Includes    []IncludedItem `json:"includes"`
	Related     []int          `json:"related"` // product ids, never the product's own
}
