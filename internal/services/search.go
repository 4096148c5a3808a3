package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/threadly-market/marketplace-backend/internal/cache"
	"github.com/threadly-market/marketplace-backend/internal/catalog"
	"github.com/threadly-market/marketplace-backend/internal/config"
	"github.com/threadly-market/marketplace-backend/internal/errors"
	"github.com/threadly-market/marketplace-backend/internal/metrics"
	"github.com/threadly-market/marketplace-backend/internal/models"
	repository "github.com/threadly-market/marketplace-backend/internal/repositories"
)

type SearchService interface {
	Search(ctx context.Context, q PageQuery) (*models.SearchPageData, error)
}

type searchService struct {
	browse *browseService
}

func NewSearchService(snapshot *cache.CategorySnapshot, repos *repository.Repository, cfg *config.Catalog) SearchService {
	return &searchService{
		browse: &browseService{
			snapshot: snapshot,
			products: repos.Products,
			profiles: repos.Profiles,
			images:   repos.Images,
			virtual:  catalog.NewDefaultVirtualRegistry(),
			cfg:      cfg,
			sanitize: bluemonday.StrictPolicy(),
			validate: validator.New(),
		},
	}
}

// Search serves the free-text search page: no category resolution, but the
// same filter, sort and pagination semantics as category browse. Legacy
// category query parameters redirect to the segment-path form first.
func (s *searchService) Search(ctx context.Context, q PageQuery) (*models.SearchPageData, error) {
	if redirect, target := catalog.Canonicalize(q.Path, q.RawQuery, nil); redirect {
		return nil, errors.RedirectError(target)
	}

	b := s.browse

	nodes, err := b.snapshot.Load(ctx)
	if err != nil {
		return nil, errors.UpstreamQueryError("Failed to load categories").WithError(err)
	}

	tree := catalog.NewTree(nodes)

	spec, err := b.specFor(q, nil)
	if err != nil {
		return nil, err
	}

	page := &models.SearchPageData{
		Query:   spec.TextQuery,
		Filters: filterEcho(nil, tree, spec),
	}

	products, total, searchErr := b.products.Search(ctx, spec)
	if searchErr != nil {
		slog.Error("search query failed",
			slog.String("query", spec.TextQuery),
			slog.String("error", searchErr.Error()),
		)

		page.Products = []models.AssembledProduct{}
		page.Error = errors.SearchError(searchErr).Message
	} else {
		page.Products = b.assembleWithJoins(ctx, tree, products)
	}

	direct, err := b.products.CountByCategory(ctx, q.CountryCode)
	if err != nil {
		slog.Warn("category count branch failed", slog.String("error", err.Error()))
		metrics.BranchFailure("counts")

		direct = nil
	}

	page.Categories = catalog.NewCounter(tree, direct).RootsWithCounts()
	page.Pagination = paginate(spec, total)

	// Infinite-scroll callers get a cursor for the next page only under the
	// default newest-first ordering, where the cursor predicate is defined.
	if searchErr == nil && len(products) == spec.Limit && usesCursorOrdering(spec) {
		last := products[len(products)-1]
		page.NextCursor = repository.EncodeCursor(last.CreatedAt, last.ID)
	}

	return page, nil
}

func usesCursorOrdering(spec *models.ProductFilterSpec) bool {
	if spec.Offset > 0 {
		return false
	}

	by := spec.Sort.By

	return (by == "" || by == models.SortByCreatedAt || by == models.SortByRelevance && strings.TrimSpace(spec.TextQuery) != "") &&
		spec.Sort.Direction != models.SortAsc
}
