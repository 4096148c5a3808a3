package handlers

import (
	"net/http"

	"github.com/threadly-market/marketplace-backend/internal/errors"
	service "github.com/threadly-market/marketplace-backend/internal/services"
	"github.com/threadly-market/marketplace-backend/internal/utils/response"
)

type SearchHandler struct {
	searchService  service.SearchService
	defaultCountry string
}

func NewSearchHandler(searchService service.SearchService, defaultCountry string) *SearchHandler {
	return &SearchHandler{searchService: searchService, defaultCountry: defaultCountry}
}

// Search serves GET /api/v1/search.
func (h *SearchHandler) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.searchService.Search(r.Context(), pageQueryFrom(r, h.defaultCountry))
		if err != nil {
			if appErr, ok := errors.IsRedirect(err); ok {
				http.Redirect(w, r, apiLocation(appErr.Location), http.StatusMovedPermanently)

				return
			}

			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, page)
	}
}
