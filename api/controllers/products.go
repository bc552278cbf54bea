package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/yallashop/yallashop-backend/api/responses"
	"github.com/yallashop/yallashop-backend/api/validators"
	"github.com/yallashop/yallashop-backend/internal/catalog"
	pkgerrors "github.com/yallashop/yallashop-backend/pkg/errors"
	"github.com/yallashop/yallashop-backend/pkg/logger"
)

type productListResponse struct {
	Products []catalog.Product `json:"products"`
	Count    int               `json:"count"`
}

type productFacetsResponse struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}

// ProductList serves the filtered, sorted product listing.
func ProductList(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		products := cat.Search(listQueryFromRequest(r))
		responses.WriteSuccess(w, productListResponse{
			Products: products,
			Count:    len(products),
		})
	}
}

// ProductFacets serves the filter options derived from the dataset.
func ProductFacets(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		responses.WriteSuccess(w, productFacetsResponse{
			Categories: cat.Categories(),
			Brands:     cat.Brands(),
		})
	}
}

// ProductDetail serves a single product looked up by slug.
func ProductDetail(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		product, err := cat.FindBySlug(chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// Unknown sort and band values degrade to the defaults rather than failing,
// so stale storefront links keep working. A custom price range needs both
// bounds; otherwise the predefined band applies.
func listQueryFromRequest(r *http.Request) catalog.Query {
	params := r.URL.Query()

	query := catalog.Query{
		Search:   params.Get("search"),
		Category: strings.TrimSpace(params.Get("category")),
		Sort:     catalog.ParseSortKey(strings.TrimSpace(params.Get("sort"))),
	}

	minPrice := validators.ParseQueryDecimal(r, "min_price")
	maxPrice := validators.ParseQueryDecimal(r, "max_price")
	if minPrice != nil && maxPrice != nil {
		query.Price = catalog.CustomPriceFilter(*minPrice, *maxPrice)
	} else {
		query.Price = catalog.PriceFilter{Band: catalog.ParseBandKey(strings.TrimSpace(params.Get("price")))}
	}

	return query
}
