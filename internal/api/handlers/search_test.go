package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadly-market/marketplace-backend/internal/api/handlers"
	appErrors "github.com/threadly-market/marketplace-backend/internal/errors"
	"github.com/threadly-market/marketplace-backend/internal/models"
	service "github.com/threadly-market/marketplace-backend/internal/services"
	"github.com/threadly-market/marketplace-backend/internal/utils/response"
)

type stubSearchService struct {
	gotQuery service.PageQuery
	page     *models.SearchPageData
	err      error
}

func (s *stubSearchService) Search(_ context.Context, q service.PageQuery) (*models.SearchPageData, error) {
	s.gotQuery = q

	if s.err != nil {
		return nil, s.err
	}

	return s.page, nil
}

func newSearchServer(svc service.SearchService) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/search", handlers.NewSearchHandler(svc, "BG").Search())

	return mux
}

func TestSearchHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		stub := &stubSearchService{page: &models.SearchPageData{Query: "vintage"}}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=vintage&cursor=abc", nil)
		rec := httptest.NewRecorder()

		newSearchServer(stub).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "vintage", stub.gotQuery.TextQuery)
		assert.Equal(t, "abc", stub.gotQuery.Cursor)

		var body response.APIResponse

		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
	})

	t.Run("Legacy search param accepted", func(t *testing.T) {
		stub := &stubSearchService{page: &models.SearchPageData{}}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/search?search=coat", nil)
		rec := httptest.NewRecorder()

		newSearchServer(stub).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "coat", stub.gotQuery.TextQuery)
	})

	t.Run("Redirect for legacy category params", func(t *testing.T) {
		stub := &stubSearchService{err: appErrors.RedirectError("/category/men/clothing")}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/search?category=men&subcategory=clothing", nil)
		rec := httptest.NewRecorder()

		newSearchServer(stub).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/api/v1/categories/men/clothing", rec.Header().Get("Location"))
	})

	t.Run("Validation error", func(t *testing.T) {
		stub := &stubSearchService{err: appErrors.ValidationError("cursor and page pagination cannot be combined")}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/search?cursor=abc&page=3", nil)
		rec := httptest.NewRecorder()

		newSearchServer(stub).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
