package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/threadly-market/marketplace-backend/internal/cache"
	"github.com/threadly-market/marketplace-backend/internal/catalog"
	"github.com/threadly-market/marketplace-backend/internal/config"
	"github.com/threadly-market/marketplace-backend/internal/errors"
	"github.com/threadly-market/marketplace-backend/internal/metrics"
	"github.com/threadly-market/marketplace-backend/internal/models"
	repository "github.com/threadly-market/marketplace-backend/internal/repositories"
)

// PageQuery carries everything a storefront request supplies beyond the path
// segments. Handlers parse it from the URL, services never touch the request.
type PageQuery struct {
	Path        string
	RawQuery    string
	TextQuery   string
	PriceMin    *float64
	PriceMax    *float64
	Conditions  []string
	Brands      []string
	Sizes       []string
	SortBy      string
	Page        int
	Limit       int
	Cursor      string
	CountryCode string
}

type BrowseService interface {
	LoadCategoryPage(ctx context.Context, segments []string, q PageQuery) (*models.CategoryPageData, error)
}

type browseService struct {
	snapshot *cache.CategorySnapshot
	products repository.ProductRepository
	profiles repository.ProfileRepository
	images   repository.ImageRepository
	virtual  *catalog.VirtualRegistry
	cfg      *config.Catalog
	sanitize *bluemonday.Policy
	validate *validator.Validate
}

func NewBrowseService(snapshot *cache.CategorySnapshot, repos *repository.Repository, cfg *config.Catalog) BrowseService {
	return &browseService{
		snapshot: snapshot,
		products: repos.Products,
		profiles: repos.Profiles,
		images:   repos.Images,
		virtual:  catalog.NewDefaultVirtualRegistry(),
		cfg:      cfg,
		sanitize: bluemonday.StrictPolicy(),
		validate: validator.New(),
	}
}

func (s *browseService) LoadCategoryPage(ctx context.Context, segments []string, q PageQuery) (*models.CategoryPageData, error) {
	nodes, err := s.snapshot.Load(ctx)
	if err != nil {
		return nil, errors.UpstreamQueryError("Failed to load categories").WithError(err)
	}

	tree := catalog.NewTree(nodes)
	resolver := catalog.NewResolver(tree, s.virtual)

	res, err := resolver.Resolve(segments)
	if err != nil {
		return nil, err
	}

	// Old listing URLs carried one combined slug ("women-clothing-dresses").
	// A dashed token that matches no stored slug falls back to a text search.
	if !res.IsValid && len(segments) == 1 {
		if parts := catalog.SplitCombinedSlug(tree, segments[0]); parts != nil {
			target := "/category/" + strings.Join(parts, "/")
			if q.RawQuery != "" {
				target += "?" + q.RawQuery
			}

			return nil, errors.RedirectError(target)
		}

		if strings.Contains(segments[0], "-") {
			return nil, errors.RedirectError("/search?q=" + url.QueryEscape(strings.ReplaceAll(segments[0], "-", " ")))
		}
	}

	if redirect, target := catalog.Canonicalize(q.Path, q.RawQuery, res); redirect {
		return nil, errors.RedirectError(target)
	}

	if !res.IsValid {
		return nil, errors.NotFoundError("Category not found")
	}

	spec, err := s.specFor(q, expandCategoryIDs(tree, res))
	if err != nil {
		return nil, err
	}

	var (
		wg sync.WaitGroup

		products  []models.Product
		total     int
		searchErr error

		counter *catalog.Counter
		sellers []models.TopSeller
	)

	wg.Add(3)

	go func() {
		defer wg.Done()

		bctx, cancel := context.WithTimeout(ctx, s.cfg.BranchTimeout)
		defer cancel()

		products, total, searchErr = s.products.Search(bctx, spec)
	}()

	go func() {
		defer wg.Done()

		bctx, cancel := context.WithTimeout(ctx, s.cfg.BranchTimeout)
		defer cancel()

		direct, err := s.products.CountByCategory(bctx, q.CountryCode)
		if err != nil {
			slog.Warn("category count branch failed", slog.String("error", err.Error()))
			metrics.BranchFailure("counts")

			direct = nil
		}

		counter = catalog.NewCounter(tree, direct)
	}()

	go func() {
		defer wg.Done()

		bctx, cancel := context.WithTimeout(ctx, s.cfg.BranchTimeout)
		defer cancel()

		var err error

		sellers, err = s.products.TopSellers(bctx, q.CountryCode, spec.CategoryIDs, s.cfg.TopSellerLimit)
		if err != nil {
			slog.Warn("top sellers branch failed", slog.String("error", err.Error()))
			metrics.BranchFailure("sellers")

			sellers = nil
		}
	}()

	wg.Wait()

	page := &models.CategoryPageData{
		Categories: counter.RootsWithCounts(),
		Sellers:    sellers,
		Filters:    filterEcho(res, tree, spec),
	}

	if searchErr != nil {
		slog.Error("product search branch failed",
			slog.String("path", q.Path),
			slog.String("error", searchErr.Error()),
		)

		page.Products = []models.AssembledProduct{}
		page.Error = errors.SearchError(searchErr).Message
	} else {
		page.Products = s.assembleWithJoins(ctx, tree, products)
	}

	aggregates := counter.ChildAggregates(aggregateParents(tree, res))
	page.Subcategories = subcategoryList(tree, aggregates)
	page.Pills = catalog.Pills(tree, aggregates, s.cfg.PillLimit)

	page.Breadcrumbs = catalog.Breadcrumbs(tree, res)
	if ld, err := json.Marshal(catalog.BreadcrumbsLD(page.Breadcrumbs, s.cfg.SiteBaseURL)); err == nil {
		page.BreadcrumbsLD = string(ld)
	}

	page.Pagination = paginate(spec, total)
	page.Meta = s.metaFor(res, page.Breadcrumbs, total)

	return page, nil
}

// specFor validates and normalizes the query into the repository filter spec.
func (s *browseService) specFor(q PageQuery, categoryIDs []uuid.UUID) (*models.ProductFilterSpec, error) {
	if q.PriceMin != nil && q.PriceMax != nil && *q.PriceMin > *q.PriceMax {
		return nil, errors.ValidationError("minimum price cannot exceed maximum price")
	}

	if q.Cursor != "" && q.Page > 1 {
		return nil, errors.ValidationError("cursor and page pagination cannot be combined")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = s.cfg.PageSize
	}

	if limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}

	page := q.Page
	if page < 1 {
		page = 1
	}

	spec := &models.ProductFilterSpec{
		TextQuery:   strings.TrimSpace(s.sanitize.Sanitize(q.TextQuery)),
		CategoryIDs: categoryIDs,
		PriceMin:    q.PriceMin,
		PriceMax:    q.PriceMax,
		Conditions:  q.Conditions,
		Brands:      q.Brands,
		Sizes:       q.Sizes,
		CountryCode: q.CountryCode,
		Sort:        parseSort(q.SortBy),
		Limit:       limit,
		Offset:      (page - 1) * limit,
		Cursor:      q.Cursor,
	}

	if err := s.validate.Struct(spec); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			return nil, errors.ValidationError("Invalid filter parameters").WithDetail(validationErrs.Error())
		}

		return nil, errors.ValidationError("Invalid filter parameters")
	}

	return spec, nil
}

// assembleWithJoins fetches seller and image data for one result page and
// joins them in. Both lookups are non-critical; on failure the products still
// render with placeholder sellers or empty galleries.
func (s *browseService) assembleWithJoins(ctx context.Context, tree *catalog.Tree, products []models.Product) []models.AssembledProduct {
	if len(products) == 0 {
		return []models.AssembledProduct{}
	}

	sellerIDs := make([]uuid.UUID, 0, len(products))
	productIDs := make([]uuid.UUID, 0, len(products))
	seenSellers := make(map[uuid.UUID]bool, len(products))

	for _, p := range products {
		productIDs = append(productIDs, p.ID)

		if !seenSellers[p.SellerID] {
			seenSellers[p.SellerID] = true

			sellerIDs = append(sellerIDs, p.SellerID)
		}
	}

	var (
		wg       sync.WaitGroup
		profiles map[uuid.UUID]models.SellerProfile
		images   map[uuid.UUID][]models.ProductImage
	)

	wg.Add(2)

	go func() {
		defer wg.Done()

		bctx, cancel := context.WithTimeout(ctx, s.cfg.BranchTimeout)
		defer cancel()

		var err error

		profiles, err = s.profiles.GetByIDs(bctx, sellerIDs)
		if err != nil {
			slog.Warn("seller profile join failed", slog.String("error", err.Error()))
			metrics.BranchFailure("profiles")

			profiles = nil
		}
	}()

	go func() {
		defer wg.Done()

		bctx, cancel := context.WithTimeout(ctx, s.cfg.BranchTimeout)
		defer cancel()

		var err error

		images, err = s.images.ListByProductIDs(bctx, productIDs)
		if err != nil {
			slog.Warn("product image join failed", slog.String("error", err.Error()))
			metrics.BranchFailure("images")

			images = nil
		}
	}()

	wg.Wait()

	return AssembleProducts(tree, products, profiles, images)
}

// expandCategoryIDs flattens the resolution into the concrete leaf set the
// flat product query understands.
func expandCategoryIDs(tree *catalog.Tree, res *catalog.Resolution) []uuid.UUID {
	var ids []uuid.UUID

	for _, id := range res.CategoryIDs {
		ids = append(ids, tree.DescendantIDs(id)...)
	}

	return ids
}

// aggregateParents picks the nodes whose children feed the pill list.
func aggregateParents(tree *catalog.Tree, res *catalog.Resolution) []*models.CategoryNode {
	if res.IsVirtual {
		if res.Level == 1 {
			return res.VirtualTargets
		}

		parents := make([]*models.CategoryNode, 0, len(res.CategoryIDs))
		for _, id := range res.CategoryIDs {
			parents = append(parents, tree.ByID(id))
		}

		return parents
	}

	return []*models.CategoryNode{res.DeepestNode()}
}

func subcategoryList(tree *catalog.Tree, aggregates []models.CategoryWithCount) []models.CategoryPill {
	out := make([]models.CategoryPill, 0, len(aggregates))

	for i := range aggregates {
		out = append(out, models.CategoryPill{
			ID:           aggregates[i].ID,
			Name:         aggregates[i].Name,
			Slug:         tree.CleanSlug(&aggregates[i].CategoryNode),
			ProductCount: aggregates[i].ProductCount,
		})
	}

	return out
}

func parseSort(sortBy string) models.SortSpec {
	switch sortBy {
	case "price-low", "price_asc":
		return models.SortSpec{By: models.SortByPrice, Direction: models.SortAsc}
	case "price-high", "price_desc":
		return models.SortSpec{By: models.SortByPrice, Direction: models.SortDesc}
	case "popular", "popularity":
		return models.SortSpec{By: models.SortByPopularity, Direction: models.SortDesc}
	case "relevance":
		return models.SortSpec{By: models.SortByRelevance, Direction: models.SortDesc}
	default:
		return models.SortSpec{By: models.SortByCreatedAt, Direction: models.SortDesc}
	}
}

func paginate(spec *models.ProductFilterSpec, total int) models.Pagination {
	page := spec.Offset/spec.Limit + 1

	totalPages := (total + spec.Limit - 1) / spec.Limit
	if totalPages < 1 {
		totalPages = 1
	}

	return models.Pagination{
		Page:        page,
		TotalPages:  totalPages,
		Total:       total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
		Limit:       spec.Limit,
	}
}

func filterEcho(res *catalog.Resolution, tree *catalog.Tree, spec *models.ProductFilterSpec) models.FilterEcho {
	echo := models.FilterEcho{
		MinPrice:   spec.PriceMin,
		MaxPrice:   spec.PriceMax,
		Conditions: spec.Conditions,
		Brands:     spec.Brands,
		Sizes:      spec.Sizes,
		SortBy:     string(spec.Sort.By),
	}

	if res == nil {
		return echo
	}

	if res.IsVirtual {
		echo.Category = res.VirtualSlug

		if res.Level >= 2 && len(res.CategoryIDs) > 0 {
			if node := tree.ByID(res.CategoryIDs[0]); node != nil {
				echo.Subcategory = tree.CleanSlug(node)
			}
		}

		return echo
	}

	if res.L1 != nil {
		echo.Category = tree.CleanSlug(res.L1)
	}

	if res.L2 != nil {
		echo.Subcategory = tree.CleanSlug(res.L2)
	}

	if res.L3 != nil {
		echo.Specific = tree.CleanSlug(res.L3)
	}

	return echo
}

func (s *browseService) metaFor(res *catalog.Resolution, breadcrumbs []models.BreadcrumbItem, total int) models.PageMeta {
	names := make([]string, 0, len(breadcrumbs))
	for _, b := range breadcrumbs[1:] {
		names = append(names, b.Name)
	}

	title := "Shop Secondhand Fashion"
	description := fmt.Sprintf("Browse %d secondhand fashion listings on Threadly.", total)

	if len(names) > 0 {
		title = strings.Join(names, " / ")
		description = fmt.Sprintf("Browse %d secondhand %s listings. Buy and sell pre-loved fashion on Threadly.", total, strings.ToLower(names[len(names)-1]))
	}

	return models.PageMeta{
		Title:       title + " | Threadly",
		Description: s.sanitize.Sanitize(description),
		Canonical:   strings.TrimSuffix(s.cfg.SiteBaseURL, "/") + res.CanonicalPath,
	}
}
