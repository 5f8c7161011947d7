package swagger

import (
	"net/http"
	"os"

	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"
)

const specPath = "api/openapi.yml"

// RegisterRoutes serves the OpenAPI document and the swagger UI.
func RegisterRoutes(r chi.Router) {
	r.Get("/openapi.yml", func(w http.ResponseWriter, req *http.Request) {
		if _, err := os.Stat(specPath); err != nil {
			http.NotFound(w, req)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		http.ServeFile(w, req, specPath)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/openapi.yml"),
	))
}
