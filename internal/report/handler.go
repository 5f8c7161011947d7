package report

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/timesheet-management/internal/transport"
)

const (
	formatCSV   = "csv"
	formatExcel = "xlsx"

	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
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
	r.Get("/reports/employees/{employeeID}", h.EmployeeRange)
	r.Get("/reports/employees/{employeeID}/summary", h.EmployeeSummary)
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/reports/employees", h.AllEmployees)
}

// AllEmployees downloads the yearly all-employees report.
func (h *Handler) AllEmployees(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	rep, err := h.Service.AllEmployees(r.Context(), year)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.download(w, r, rep.Table())
}

// EmployeeRange downloads one employee's per-day report for a range.
func (h *Handler) EmployeeRange(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	from, err := parseDateParam(r, "from")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := parseDateParam(r, "to")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	rep, svcErr := h.Service.EmployeeRange(r.Context(), employeeID, from, to)
	if svcErr != nil {
		h.HandleServiceError(w, svcErr)
		return
	}

	h.download(w, r, rep.Table())
}

// EmployeeSummary returns aggregated hours as JSON instead of a file.
func (h *Handler) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	filter := Filter{
		Project: r.URL.Query().Get("project"),
		Phase:   r.URL.Query().Get("phase"),
	}
	if y := r.URL.Query().Get("year"); y != "" {
		filter.Year, err = strconv.Atoi(y)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid year")
			return
		}
	} else {
		if filter.From, err = parseDateParam(r, "from"); err != nil {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if filter.To, err = parseDateParam(r, "to"); err != nil {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	summary, svcErr := h.Service.EmployeeSummary(r.Context(), employeeID, filter)
	if svcErr != nil {
		h.HandleServiceError(w, svcErr)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"totalHours":   summary.TotalHours,
		"averageHours": summary.AverageHours,
		"workingDays":  summary.WorkingDays,
	})
}

// download streams the table in the requested format. The report was
// already built, so by this point no refusal can occur mid-file.
func (h *Handler) download(w http.ResponseWriter, r *http.Request, t Table) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatCSV
	}
	protected := r.URL.Query().Get("protected") == "true"

	switch format {
	case formatCSV:
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, t.FileBase))
		if err := WriteCSV(w, t); err != nil {
			h.Logger.Error("csv export failed", "file", t.FileBase, "error", err)
		}
	case formatExcel:
		w.Header().Set("Content-Type", excelContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, t.FileBase))
		if err := WriteExcel(w, t, protected); err != nil {
			h.Logger.Error("excel export failed", "file", t.FileBase, "error", err)
		}
	default:
		h.WriteError(w, http.StatusBadRequest, "format must be csv or xlsx")
	}
}

func parseDateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be YYYY-MM-DD", name)
	}
	return d, nil
}
