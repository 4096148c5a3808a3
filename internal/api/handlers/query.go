package handlers

import (
	"net/http"
	"strings"

	"github.com/threadly-market/marketplace-backend/internal/api/middleware"
	service "github.com/threadly-market/marketplace-backend/internal/services"
	"github.com/threadly-market/marketplace-backend/internal/utils"
)

const (
	categoriesMount = "/api/v1/categories"
	searchMount     = "/api/v1/search"
)

// storefrontPath translates the API mount point into the storefront URL
// namespace the resolver reasons about ("/category/...", "/search"), so the
// canonical-path comparison happens in one URL space.
func storefrontPath(p string) string {
	switch {
	case strings.HasPrefix(p, categoriesMount):
		return "/category" + strings.TrimPrefix(p, categoriesMount)
	case strings.HasPrefix(p, searchMount):
		return "/search" + strings.TrimPrefix(p, searchMount)
	}

	return p
}

// apiLocation translates a storefront-namespace redirect target back onto
// the API mount so the Location header points at a servable route.
func apiLocation(location string) string {
	switch {
	case location == "/category" || strings.HasPrefix(location, "/category/") || strings.HasPrefix(location, "/category?"):
		return categoriesMount + strings.TrimPrefix(location, "/category")
	case location == "/search" || strings.HasPrefix(location, "/search?") || strings.HasPrefix(location, "/search/"):
		return searchMount + strings.TrimPrefix(location, "/search")
	}

	return location
}

// pageQueryFrom maps storefront query parameters onto the service-level
// query. The viewer's country (from an optional session token) wins over the
// configured default.
func pageQueryFrom(r *http.Request, defaultCountry string) service.PageQuery {
	country := defaultCountry
	if viewer := middleware.ViewerFromContext(r.Context()); viewer != nil && viewer.CountryCode != "" {
		country = viewer.CountryCode
	}

	q := service.PageQuery{
		Path:        storefrontPath(r.URL.Path),
		RawQuery:    r.URL.RawQuery,
		TextQuery:   r.URL.Query().Get("q"),
		PriceMin:    utils.QueryFloat(r, "min_price"),
		PriceMax:    utils.QueryFloat(r, "max_price"),
		Conditions:  utils.QueryAll(r, "condition"),
		Brands:      utils.QueryAll(r, "brand"),
		Sizes:       utils.QueryAll(r, "size"),
		SortBy:      r.URL.Query().Get("sort"),
		Page:        utils.QueryInt(r, "page", 1),
		Limit:       utils.QueryInt(r, "limit", 0),
		Cursor:      r.URL.Query().Get("cursor"),
		CountryCode: country,
	}

	if q.TextQuery == "" {
		q.TextQuery = r.URL.Query().Get("search")
	}

	if q.SortBy == "" {
		q.SortBy = r.URL.Query().Get("sortBy")
	}

	return q
}
