package catalog

import "github.com/shopspring/decimal"

// Product is one record of the storefront dataset. The collection is loaded
// once at startup and never mutated afterwards.
type Product struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	InStock     bool            `json:"in_stock"`
}
