package models

import (
	"github.com/google/uuid"
)

type SortKey string

const (
	SortByCreatedAt  SortKey = "created_at"
	SortByPrice      SortKey = "price"
	SortByPopularity SortKey = "popularity"
	SortByRelevance  SortKey = "relevance"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type SortSpec struct {
	By        SortKey       `json:"by" validate:"omitempty,oneof=created_at price popularity relevance"`
	Direction SortDirection `json:"direction" validate:"omitempty,oneof=asc desc"`
}

// ProductFilterSpec is the single input shape for browse and search queries.
// Sets are OR'd within a field and AND'd across fields.
type ProductFilterSpec struct {
	TextQuery   string      `json:"text_query"`
	CategoryIDs []uuid.UUID `json:"category_ids"`
	PriceMin    *float64    `json:"price_min" validate:"omitempty,gte=0"`
	PriceMax    *float64    `json:"price_max" validate:"omitempty,gte=0"`
	Conditions  []string    `json:"conditions"`
	Brands      []string    `json:"brands"`
	Sizes       []string    `json:"sizes"`
	CountryCode string      `json:"country_code"`
	Sort        SortSpec    `json:"sort"`
	Limit       int         `json:"limit" validate:"gte=1,lte=100"`
	Offset      int         `json:"offset" validate:"gte=0"`
	// Cursor is the opaque infinite-scroll position (base64 of created_at:id).
	// Cursor and Offset must not be combined in one call.
	Cursor string `json:"cursor,omitempty"`
}

type SearchResultPage struct {
	Items      []AssembledProduct `json:"items"`
	Total      int                `json:"total"`
	HasMore    bool               `json:"has_more"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type Pagination struct {
	Page        int  `json:"page"`
	TotalPages  int  `json:"totalPages"`
	Total       int  `json:"total"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
	Limit       int  `json:"limit"`
}

type FilterEcho struct {
	Category    string   `json:"category,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
	Specific    string   `json:"specific,omitempty"`
	MinPrice    *float64 `json:"minPrice,omitempty"`
	MaxPrice    *float64 `json:"maxPrice,omitempty"`
	Conditions  []string `json:"condition"`
	Brands      []string `json:"brand"`
	Sizes       []string `json:"size"`
	SortBy      string   `json:"sortBy"`
}

type PageMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Canonical   string `json:"canonical"`
}

// CategoryPageData is the full browse page payload.
type CategoryPageData struct {
	Products      []AssembledProduct  `json:"products"`
	Categories    []CategoryWithCount `json:"categories"`
	Breadcrumbs   []BreadcrumbItem    `json:"breadcrumbs"`
	BreadcrumbsLD string              `json:"breadcrumbs_jsonld,omitempty"`
	Subcategories []CategoryPill      `json:"subcategories"`
	Pills         []CategoryPill      `json:"pills"`
	Sellers       []TopSeller         `json:"sellers"`
	Pagination    Pagination          `json:"pagination"`
	Filters       FilterEcho          `json:"filters"`
	Meta          PageMeta            `json:"meta"`
	// Error carries the "search failed" banner text when the primary product
	// branch failed; the rest of the page still renders.
	Error string `json:"error,omitempty"`
}

// SearchPageData is the free-text search payload.
type SearchPageData struct {
	Products   []AssembledProduct  `json:"products"`
	Categories []CategoryWithCount `json:"categories"`
	Query      string              `json:"searchQuery"`
	Pagination Pagination          `json:"pagination"`
	NextCursor string              `json:"nextCursor,omitempty"`
	Filters    FilterEcho          `json:"filters"`
	Error      string              `json:"error,omitempty"`
}
