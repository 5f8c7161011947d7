package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

var sensitiveFields = []string{"password", "new_password", "old_password", "token", "refresh_token"}

// LoggingMiddleware logs each request with method, path, status and
// duration. Request bodies are logged for mutating methods with
// sensitive fields masked.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			var bodyCopy []byte
			if r.Body != nil && (r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch) {
				bodyCopy, _ = io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewReader(bodyCopy))
			}

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", rw.statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", r.RemoteAddr,
			}
			if len(bodyCopy) > 0 {
				attrs = append(attrs, "body", maskSensitive(bodyCopy))
			}

			if rw.statusCode >= http.StatusInternalServerError {
				logger.Error("http request", attrs...)
			} else {
				logger.Info("http request", attrs...)
			}
		})
	}
}

func maskSensitive(body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "<non-json body>"
	}
	for key := range payload {
		for _, field := range sensitiveFields {
			if strings.EqualFold(key, field) {
				payload[key] = "***"
			}
		}
	}
	masked, err := json.Marshal(payload)
	if err != nil {
		return "<unloggable body>"
	}
	return string(masked)
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
