package project

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

// RegisterRoutes mounts the read endpoints every authenticated user
// can reach.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/projects", h.List)
	r.Get("/projects/{projectID}", h.Get)
	r.Get("/projects/{projectID}/staffing", h.Staffing)
	r.Get("/projects/hours", h.EmployeeHours)
}

// RegisterAdminRoutes mounts the mutating endpoints.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/projects", h.Create)
	r.Put("/projects/{projectID}", h.Update)
	r.Delete("/projects/{projectID}", h.Delete)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ToProjectResponse(p))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, svcErr := h.Service.Update(r.Context(), id, &req)
	if svcErr != nil {
		h.HandleServiceError(w, svcErr)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToProjectResponse(p))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "project deleted"})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	p, svcErr := h.Service.Get(r.Context(), id)
	if svcErr != nil {
		h.HandleServiceError(w, svcErr)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToProjectResponse(p))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Service.List(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToProjectResponses(projects))
}

func (h *Handler) Staffing(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	staffing, svcErr := h.Service.Staffing(r.Context(), id, r.URL.Query().Get("department"))
	if svcErr != nil {
		h.HandleServiceError(w, svcErr)
		return
	}

	h.WriteJSON(w, http.StatusOK, staffing)
}

func (h *Handler) EmployeeHours(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(r.URL.Query().Get("employee_id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "employee_id is required")
		return
	}
	projectName := r.URL.Query().Get("project")
	if projectName == "" {
		h.WriteError(w, http.StatusBadRequest, "project is required")
		return
	}

	hours, svcErr := h.Service.EmployeeHours(r.Context(), employeeID, projectName, r.URL.Query().Get("phase"))
	if svcErr != nil {
		h.HandleServiceError(w, svcErr)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"employeeId": employeeID,
		"project":    projectName,
		"phase":      r.URL.Query().Get("phase"),
		"hours":      hours,
	})
}

func projectIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "projectID"), 10, 64)
}
