package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"go.uber.org/multierr"

	pkgerrors "github.com/yallashop/yallashop-backend/pkg/errors"
)

// CategoryAll is the sentinel facet entry meaning "no category filter".
const CategoryAll = "All"

//go:embed data/products.json
var embeddedDataset []byte

// Catalog is the immutable product collection plus its derived facets and
// lookup indexes. Safe for concurrent reads.
type Catalog struct {
	products   []Product
	byID       map[string]int
	bySlug     map[string]int
	categories []string
	brands     []string
}

// Load builds the catalog from the dataset at path, or from the dataset
// bundled into the binary when path is empty.
func Load(path string) (*Catalog, error) {
	raw := embeddedDataset
	if path != "" {
		external, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog dataset: %w", err)
		}
		raw = external
	}

	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode catalog dataset: %w", err)
	}
	return New(products)
}

// New validates the product records and builds the indexes and facets.
// Dataset order is preserved; it defines the "featured" ordering.
func New(products []Product) (*Catalog, error) {
	if err := validateDataset(products); err != nil {
		return nil, fmt.Errorf("invalid catalog dataset: %w", err)
	}

	c := &Catalog{
		products: append([]Product(nil), products...),
		byID:     make(map[string]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}

	seenCategories := make(map[string]struct{})
	seenBrands := make(map[string]struct{})
	c.categories = append(c.categories, CategoryAll)
	for i, p := range c.products {
		c.byID[p.ID] = i
		c.bySlug[p.Slug] = i
		if _, ok := seenCategories[p.Category]; !ok {
			seenCategories[p.Category] = struct{}{}
			c.categories = append(c.categories, p.Category)
		}
		if _, ok := seenBrands[p.Brand]; !ok {
			seenBrands[p.Brand] = struct{}{}
			c.brands = append(c.brands, p.Brand)
		}
	}
	sort.Strings(c.brands)

	return c, nil
}

func validateDataset(products []Product) error {
	var errs error
	seenIDs := make(map[string]struct{}, len(products))
	seenSlugs := make(map[string]struct{}, len(products))

	for i, p := range products {
		if p.ID == "" {
			errs = multierr.Append(errs, fmt.Errorf("product %d: id is required", i))
		} else if _, ok := seenIDs[p.ID]; ok {
			errs = multierr.Append(errs, fmt.Errorf("product %d: duplicate id %q", i, p.ID))
		} else {
			seenIDs[p.ID] = struct{}{}
		}

		if p.Slug == "" {
			errs = multierr.Append(errs, fmt.Errorf("product %d: slug is required", i))
		} else if _, ok := seenSlugs[p.Slug]; ok {
			errs = multierr.Append(errs, fmt.Errorf("product %d: duplicate slug %q", i, p.Slug))
		} else {
			seenSlugs[p.Slug] = struct{}{}
		}

		if p.Title == "" {
			errs = multierr.Append(errs, fmt.Errorf("product %d: title is required", i))
		}
		if p.Price.IsNegative() {
			errs = multierr.Append(errs, fmt.Errorf("product %d: price cannot be negative", i))
		}
		if p.Rating < 0 || p.Rating > 5 {
			errs = multierr.Append(errs, fmt.Errorf("product %d: rating must be within [0,5]", i))
		}
		if p.Reviews < 0 {
			errs = multierr.Append(errs, fmt.Errorf("product %d: reviews cannot be negative", i))
		}
	}

	return errs
}

// Len reports how many products the dataset holds.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns the collection in dataset order. Callers must treat the
// slice as read-only.
func (c *Catalog) Products() []Product {
	return c.products
}

// FindBySlug resolves a product by its slug.
func (c *Catalog) FindBySlug(slug string) (Product, error) {
	idx, ok := c.bySlug[slug]
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return c.products[idx], nil
}

// FindByID resolves a product by its identifier.
func (c *Catalog) FindByID(id string) (Product, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return c.products[idx], nil
}

// Categories lists the distinct categories present in the dataset, in
// first-seen order, with the "All" sentinel prepended.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Brands lists the distinct brands present in the dataset, sorted.
func (c *Catalog) Brands() []string {
	return append([]string(nil), c.brands...)
}
