package approval

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/timesheet-management/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(base *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: base,
		Service:     service,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/timesheets/{timesheetID}/approvals", h.HistoryForTimesheet)
	r.Get("/employees/{employeeID}/approvals", h.HistoryForEmployee)
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/timesheets/{timesheetID}/approval", h.Review)
}

func (h *Handler) Review(w http.ResponseWriter, r *http.Request) {
	timesheetID, err := strconv.ParseInt(chi.URLParam(r, "timesheetID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid timesheet id")
		return
	}

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, svcErr := h.Service.Review(r.Context(), timesheetID, &req)
	if svcErr != nil {
		h.HandleServiceError(w, svcErr)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToRecordResponse(rec))
}

func (h *Handler) HistoryForTimesheet(w http.ResponseWriter, r *http.Request) {
	timesheetID, err := strconv.ParseInt(chi.URLParam(r, "timesheetID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid timesheet id")
		return
	}

	records, svcErr := h.Service.HistoryForTimesheet(r.Context(), timesheetID)
	if svcErr != nil {
		h.HandleServiceError(w, svcErr)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToRecordResponses(records))
}

func (h *Handler) HistoryForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	records, svcErr := h.Service.HistoryForEmployee(r.Context(), employeeID)
	if svcErr != nil {
		h.HandleServiceError(w, svcErr)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToRecordResponses(records))
}
