package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/threadly-market/marketplace-backend/internal/cache"
	appErrors "github.com/threadly-market/marketplace-backend/internal/errors"
	"github.com/threadly-market/marketplace-backend/internal/models"
	repository "github.com/threadly-market/marketplace-backend/internal/repositories"
	service "github.com/threadly-market/marketplace-backend/internal/services"
)

func newSearchService(t *testing.T, c *testCatalog, d *browseDeps) service.SearchService {
	t.Helper()

	repos := &repository.Repository{
		Categories: d.categories,
		Products:   d.products,
		Profiles:   d.profiles,
		Images:     d.images,
	}

	return service.NewSearchService(cache.NewCategorySnapshot(nil, d.categories, time.Minute), repos, testCatalogConfig())
}

func TestSearch_Success(t *testing.T) {
	c := newTestCatalog()
	d := newBrowseDeps(t, c)
	d.allowJoins()
	svc := newSearchService(t, c, d)

	d.products.On("CountByCategory", mock.Anything, "BG").Return(nil, nil).Once()
	d.products.On("Search", mock.Anything, mock.MatchedBy(func(spec *models.ProductFilterSpec) bool {
		return spec.TextQuery == "vintage levis" && spec.CategoryIDs == nil && spec.Limit == 24
	})).Return([]models.Product{listing(c.menTShirts.ID, "Vintage Levis tee", 25)}, 1, nil).Once()

	page, err := svc.Search(t.Context(), service.PageQuery{
		Path:        "/search",
		TextQuery:   "vintage levis",
		CountryCode: "BG",
	})

	require.NoError(t, err)
	assert.Equal(t, "vintage levis", page.Query)
	require.Len(t, page.Products, 1)
	assert.Equal(t, 1, page.Pagination.Total)
	assert.Empty(t, page.NextCursor, "partial page has no next cursor")
	d.products.AssertExpectations(t)
}

func TestSearch_SanitizesQuery(t *testing.T) {
	c := newTestCatalog()
	d := newBrowseDeps(t, c)
	d.allowJoins()
	svc := newSearchService(t, c, d)

	d.products.On("CountByCategory", mock.Anything, mock.Anything).Return(nil, nil).Once()
	d.products.On("Search", mock.Anything, mock.MatchedBy(func(spec *models.ProductFilterSpec) bool {
		return spec.TextQuery == "dress"
	})).Return(nil, 0, nil).Once()

	_, err := svc.Search(t.Context(), service.PageQuery{
		Path:      "/search",
		TextQuery: `<script>alert(1)</script>dress`,
	})

	require.NoError(t, err)
	d.products.AssertExpectations(t)
}

func TestSearch_NextCursorOnFullPage(t *testing.T) {
	c := newTestCatalog()
	d := newBrowseDeps(t, c)
	d.allowJoins()
	svc := newSearchService(t, c, d)

	full := make([]models.Product, 24)
	for i := range full {
		full[i] = listing(c.menTShirts.ID, "Tee", 10)
	}

	last := full[23]

	d.products.On("CountByCategory", mock.Anything, mock.Anything).Return(nil, nil).Once()
	d.products.On("Search", mock.Anything, mock.Anything).Return(full, 60, nil).Once()

	page, err := svc.Search(t.Context(), service.PageQuery{Path: "/search"})

	require.NoError(t, err)
	require.NotEmpty(t, page.NextCursor)

	createdAt, id, err := repository.DecodeCursor(page.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, last.ID, id)
	assert.True(t, last.CreatedAt.UTC().Equal(createdAt))
}

func TestSearch_NoCursorForPriceSort(t *testing.T) {
	c := newTestCatalog()
	d := newBrowseDeps(t, c)
	d.allowJoins()
	svc := newSearchService(t, c, d)

	full := make([]models.Product, 24)
	for i := range full {
		full[i] = listing(c.menTShirts.ID, "Tee", 10)
	}

	d.products.On("CountByCategory", mock.Anything, mock.Anything).Return(nil, nil).Once()
	d.products.On("Search", mock.Anything, mock.Anything).Return(full, 60, nil).Once()

	page, err := svc.Search(t.Context(), service.PageQuery{Path: "/search", SortBy: "price-low"})

	require.NoError(t, err)
	assert.Empty(t, page.NextCursor)
}

func TestSearch_LegacyParamsRedirect(t *testing.T) {
	c := newTestCatalog()
	d := newBrowseDeps(t, c)
	svc := newSearchService(t, c, d)

	_, err := svc.Search(t.Context(), service.PageQuery{
		Path:     "/search",
		RawQuery: "category=men&subcategory=clothing&min_price=10",
	})

	appErr, ok := appErrors.IsRedirect(err)
	require.True(t, ok)
	assert.Equal(t, "/category/men/clothing?min_price=10", appErr.Location)
	d.products.AssertNotCalled(t, "Search")
}

func TestSearch_FailureRendersShell(t *testing.T) {
	c := newTestCatalog()
	d := newBrowseDeps(t, c)
	svc := newSearchService(t, c, d)

	d.products.On("Search", mock.Anything, mock.Anything).Return(nil, 0, errors.New("query timeout")).Once()
	d.products.On("CountByCategory", mock.Anything, mock.Anything).Return(nil, nil).Once()

	page, err := svc.Search(t.Context(), service.PageQuery{Path: "/search", TextQuery: "coat"})

	require.NoError(t, err)
	assert.NotEmpty(t, page.Error)
	assert.Empty(t, page.Products)
	assert.NotEmpty(t, page.Categories)
}

func TestSearch_CursorAndPageConflict(t *testing.T) {
	c := newTestCatalog()
	d := newBrowseDeps(t, c)
	svc := newSearchService(t, c, d)

	_, err := svc.Search(t.Context(), service.PageQuery{
		Path:   "/search",
		Page:   3,
		Cursor: "abc",
	})

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	d.products.AssertNotCalled(t, "Search")
}
