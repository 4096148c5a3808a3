package handlers

import (
	"net/http"

	"github.com/threadly-market/marketplace-backend/internal/errors"
	service "github.com/threadly-market/marketplace-backend/internal/services"
	"github.com/threadly-market/marketplace-backend/internal/utils"
	"github.com/threadly-market/marketplace-backend/internal/utils/response"
)

type BrowseHandler struct {
	browseService  service.BrowseService
	defaultCountry string
}

func NewBrowseHandler(browseService service.BrowseService, defaultCountry string) *BrowseHandler {
	return &BrowseHandler{browseService: browseService, defaultCountry: defaultCountry}
}

// CategoryPage serves GET /api/v1/categories/{segments...}.
func (h *BrowseHandler) CategoryPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		segments := utils.PathSegments(r.PathValue("segments"))

		page, err := h.browseService.LoadCategoryPage(r.Context(), segments, pageQueryFrom(r, h.defaultCountry))
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
