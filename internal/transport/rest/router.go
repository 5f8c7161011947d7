package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/timesheet-management/internal/approval"
	"github.com/frahmantamala/timesheet-management/internal/auth"
	"github.com/frahmantamala/timesheet-management/internal/catalog"
	"github.com/frahmantamala/timesheet-management/internal/employee"
	"github.com/frahmantamala/timesheet-management/internal/project"
	"github.com/frahmantamala/timesheet-management/internal/report"
	"github.com/frahmantamala/timesheet-management/internal/timesheet"
	"github.com/frahmantamala/timesheet-management/internal/transport/middleware"
	"github.com/frahmantamala/timesheet-management/internal/transport/swagger"
)

// Handlers bundles every module handler the router mounts.
type Handlers struct {
	Auth      *auth.Handler
	Employee  *employee.Handler
	Timesheet *timesheet.Handler
	Report    *report.Handler
	Project   *project.Handler
	Approval  *approval.Handler
	Catalog   *catalog.Handler
}

// NewRouter assembles the full HTTP surface: ambient middleware, the
// public auth endpoints, the authenticated API and the admin subtree.
func NewRouter(logger *slog.Logger, db *sql.DB, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.CORS)

	health := NewHealthHandler(db)
	r.Get("/ping", health.Ping)
	r.Get("/health", health.Health)

	swagger.RegisterRoutes(r)

	r.Route("/api/v1", func(r chi.Router) {
		// public
		h.Auth.RegisterPublicRoutes(r)
		h.Employee.RegisterPublicRoutes(r)
		h.Catalog.RegisterRoutes(r)

		// authenticated
		r.Group(func(r chi.Router) {
			r.Use(h.Auth.Middleware)

			h.Employee.RegisterRoutes(r)
			h.Timesheet.RegisterRoutes(r)
			h.Report.RegisterRoutes(r)
			h.Project.RegisterRoutes(r)
			h.Approval.RegisterRoutes(r)

			// admin only
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)

				h.Employee.RegisterAdminRoutes(r)
				h.Timesheet.RegisterAdminRoutes(r)
				h.Report.RegisterAdminRoutes(r)
				h.Project.RegisterAdminRoutes(r)
				h.Approval.RegisterAdminRoutes(r)
			})
		})
	})

	return r
}
