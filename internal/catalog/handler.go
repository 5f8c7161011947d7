package catalog

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/timesheet-management/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
}

func NewHandler(base *transport.BaseHandler) *Handler {
	return &Handler{BaseHandler: base}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/catalog", h.Catalog)
}

// Catalog serves every dropdown list in one response so clients fetch
// it once at startup.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"departments":       Departments,
		"projectCategories": ProjectCategories,
		"phaseOptions":      PhaseOptions,
		"taskOptions":       TaskOptions,
	})
}
