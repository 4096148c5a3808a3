package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/threadly-market/marketplace-backend/internal/api/handlers"
	"github.com/threadly-market/marketplace-backend/internal/cache"
	"github.com/threadly-market/marketplace-backend/internal/config"
	"github.com/threadly-market/marketplace-backend/internal/models"
	repository "github.com/threadly-market/marketplace-backend/internal/repositories"
	"github.com/threadly-market/marketplace-backend/internal/repositories/mocks"
	service "github.com/threadly-market/marketplace-backend/internal/services"
)

// newRoutedServer wires the real browse service behind the real mux so the
// request path, canonical-path comparison, and Location headers are exercised
// end to end instead of through a stub.
func newRoutedServer(t *testing.T) *http.ServeMux {
	t.Helper()

	men := models.CategoryNode{ID: uuid.New(), Name: "Men", Slug: "men", Level: 1, IsActive: true}
	clothing := models.CategoryNode{ID: uuid.New(), Name: "Clothing", Slug: "men-clothing", Level: 2, ParentID: &men.ID, IsActive: true}

	categories := new(mocks.CategoryRepository)
	categories.On("ListActive", mock.Anything).Return([]models.CategoryNode{men, clothing}, nil)

	products := new(mocks.ProductRepository)
	products.On("Search", mock.Anything, mock.Anything).Return(nil, 0, nil).Maybe()
	products.On("CountByCategory", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	products.On("TopSellers", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	profiles := new(mocks.ProfileRepository)
	profiles.On("GetByIDs", mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	images := new(mocks.ImageRepository)
	images.On("ListByProductIDs", mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	repos := &repository.Repository{Categories: categories, Products: products, Profiles: profiles, Images: images}
	snapshot := cache.NewCategorySnapshot(nil, categories, time.Minute)

	cfg := &config.Catalog{
		PageSize:       24,
		MaxPageSize:    100,
		PillLimit:      20,
		TopSellerLimit: 12,
		BranchTimeout:  2 * time.Second,
		DefaultCountry: "BG",
		SiteBaseURL:    "https://threadly.example",
	}

	handler := handlers.NewBrowseHandler(service.NewBrowseService(snapshot, repos, cfg), cfg.DefaultCountry)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/categories", handler.CategoryPage())
	mux.HandleFunc("GET /api/v1/categories/{segments...}", handler.CategoryPage())

	return mux
}

func TestCategoryRoutes_EndToEnd(t *testing.T) {
	mux := newRoutedServer(t)

	get := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		return rec
	}

	t.Run("canonical URL serves without redirecting", func(t *testing.T) {
		rec := get("/api/v1/categories/men/clothing")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Location"))
	})

	t.Run("stale slug redirect stays on the API mount and settles", func(t *testing.T) {
		rec := get("/api/v1/categories/men/men-clothing")

		require.Equal(t, http.StatusMovedPermanently, rec.Code)

		location := rec.Header().Get("Location")
		assert.Equal(t, "/api/v1/categories/men/clothing", location)

		// Following the redirect must terminate, not bounce again.
		assert.Equal(t, http.StatusOK, get(location).Code)
	})

	t.Run("empty path redirects to the search route", func(t *testing.T) {
		rec := get("/api/v1/categories")

		require.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/api/v1/search", rec.Header().Get("Location"))
	})
}
