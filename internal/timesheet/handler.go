package timesheet

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

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

// RegisterRoutes mounts the authenticated timesheet endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Put("/timesheets", h.SaveDay)
	r.Get("/timesheets", h.MonthForEmployee)
	r.Get("/timesheets/day", h.DayForEmployee)
	r.Get("/timesheets/employee/{employeeID}", h.AllForEmployee)
}

// RegisterAdminRoutes mounts the endpoints that require the admin role.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/timesheets/all", h.AllEntries)
}

func (h *Handler) SaveDay(w http.ResponseWriter, r *http.Request) {
	var req SaveDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.Service.SaveDay(r.Context(), &req)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToEntryResponse(entry))
}

func (h *Handler) MonthForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(r.URL.Query().Get("employee_id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "employee_id is required")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "year is required")
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.WriteError(w, http.StatusBadRequest, "month must be between 1 and 12")
		return
	}

	entries, svcErr := h.Service.MonthForEmployee(r.Context(), employeeID, year, time.Month(month))
	if svcErr != nil {
		h.HandleServiceError(w, svcErr)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToEntryResponses(entries))
}

func (h *Handler) DayForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(r.URL.Query().Get("employee_id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "employee_id is required")
		return
	}
	date, err := time.Parse(dateLayout, r.URL.Query().Get("date"))
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	entry, svcErr := h.Service.DayForEmployee(r.Context(), employeeID, date)
	if svcErr != nil {
		h.HandleServiceError(w, svcErr)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToEntryResponse(entry))
}

func (h *Handler) AllForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	entries, svcErr := h.Service.AllForEmployee(r.Context(), employeeID)
	if svcErr != nil {
		h.HandleServiceError(w, svcErr)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToEntryResponses(entries))
}

func (h *Handler) AllEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.AllEntries(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToEntryResponses(entries))
}
