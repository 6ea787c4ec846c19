package handlers

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/http/middleware"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", logging.FieldError, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := requestID(r)
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeHTML renders a page into a buffer first so a template failure can
// still produce a clean 500.
func writeHTML(w http.ResponseWriter, status int, page string, data any, logger *slog.Logger) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, page, data); err != nil {
		logging.Error(logger, "failed to render page", err, slog.String("page", page))
		http.Error(w, "Error Generating Shot Chart: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

type errorPage struct {
	PageTitle string
	Message   string
	RequestID string
}

// writeErrorPage answers with the HTML error page and the failure text.
func writeErrorPage(w http.ResponseWriter, r *http.Request, status int, err error, logger *slog.Logger) {
	writeHTML(w, status, "error.html", errorPage{
		PageTitle: "Error Generating Shot Chart",
		Message:   err.Error(),
		RequestID: requestID(r),
	}, logger)
}

func requestID(r *http.Request) string {
	if r == nil {
		return ""
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	return r.Header.Get("X-Request-ID")
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
