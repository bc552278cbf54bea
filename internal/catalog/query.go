package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
)

// ParseSortKey maps a request value to a sort key. Unknown or empty values
// fall back to the featured (dataset) order.
func ParseSortKey(value string) SortKey {
	switch SortKey(value) {
	case SortPriceLow, SortPriceHigh, SortRating, SortName:
		return SortKey(value)
	default:
		return SortFeatured
	}
}

// BandKey names one of the predefined price ranges.
type BandKey string

const (
	BandAll          BandKey = "all"
	BandUnder1000    BandKey = "under-1000"
	Band1000To10000  BandKey = "1000-10000"
	Band10000To50000 BandKey = "10000-50000"
	BandOver50000    BandKey = "over-50000"
)

var (
	band1000  = decimal.NewFromInt(1000)
	band10000 = decimal.NewFromInt(10000)
	band50000 = decimal.NewFromInt(50000)
)

// ParseBandKey maps a request value to a band key. Unknown or empty values
// fall back to no price filtering.
func ParseBandKey(value string) BandKey {
	switch BandKey(value) {
	case BandUnder1000, Band1000To10000, Band10000To50000, BandOver50000:
		return BandKey(value)
	default:
		return BandAll
	}
}

// PriceFilter narrows results to a price range. Either a predefined band or
// a custom inclusive [Min, Max] range; a custom range takes precedence over
// the band when both are present.
type PriceFilter struct {
	Band BandKey
	Min  *decimal.Decimal
	Max  *decimal.Decimal
}

// CustomPriceFilter builds an inclusive [min, max] filter. Degenerate bounds
// (negative min, or min greater than max) disable price filtering.
func CustomPriceFilter(min, max decimal.Decimal) PriceFilter {
	if min.IsNegative() || min.GreaterThan(max) {
		return PriceFilter{Band: BandAll}
	}
	return PriceFilter{Min: &min, Max: &max}
}

func (f PriceFilter) matches(price decimal.Decimal) bool {
	if f.Min != nil && f.Max != nil {
		return price.GreaterThanOrEqual(*f.Min) && price.LessThanOrEqual(*f.Max)
	}
	switch f.Band {
	case BandUnder1000:
		return price.LessThan(band1000)
	case Band1000To10000:
		return price.GreaterThanOrEqual(band1000) && price.LessThan(band10000)
	case Band10000To50000:
		return price.GreaterThanOrEqual(band10000) && price.LessThan(band50000)
	case BandOver50000:
		return price.GreaterThanOrEqual(band50000)
	default:
		return true
	}
}

// Query describes one catalog listing request. The zero value matches the
// full dataset in featured order.
type Query struct {
	Search   string
	Category string
	Price    PriceFilter
	Sort     SortKey
}

// Search runs the filter and sort pipeline over the dataset and returns a
// fresh slice. Filters narrow in order (search, category, price), then the
// sort is applied stably so equal keys keep dataset order.
func (c *Catalog) Search(q Query) []Product {
	results := make([]Product, 0, len(c.products))

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range c.products {
		if needle != "" && !matchesSearch(p, needle) {
			continue
		}
		if q.Category != "" && q.Category != CategoryAll && p.Category != q.Category {
			continue
		}
		if !q.Price.matches(p.Price) {
			continue
		}
		results = append(results, p)
	}

	sortProducts(results, q.Sort)
	return results
}

func matchesSearch(p Product, needle string) bool {
	for _, field := range []string{p.Title, p.Description, p.Brand, p.Category, p.Subcategory} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortName:
		// Collators carry internal buffers, so build one per call instead
		// of sharing across requests.
		collator := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(products, func(i, j int) bool {
			return collator.CompareString(products[i].Title, products[j].Title) < 0
		})
	}
}
