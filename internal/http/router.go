package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/http/handlers"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/http/middleware"
)

// NewRouter registers the HTTP routes. Page routes answer GET and HEAD; every path answers OPTIONS.
func NewRouter(handler *handlers.Handler, logger *slog.Logger) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.QueryLogger(logger))
	r.Use(answerOptions(handler.Options))

	r.Get("/health", handler.Health)

	pages := map[string]nethttp.HandlerFunc{
		"/":               handler.DefaultChart,
		"/nhl-shot-chart": handler.DefaultChart,
		"/nhl-schedule":   handler.ScheduleChart,
		"/shot-chart":     handler.EdgeChart,
	}
	for path, h := range pages {
		r.Get(path, h)
		r.Head(path, handler.Head)
	}

	r.Get("/game-data", handler.GameData)
	r.Get("/qrcode", handler.QRCodePage)
	r.Get("/qrcode/download", handler.QRCodeDownload)

	r.Route("/api", func(api chi.Router) {
		api.Get("/load-game-data", handler.LoadGameData)
		api.Get("/play-types", handler.PlayTypes)
	})

	r.Get("/favicon.ico", handler.StaticFile("favicon.ico", "image/x-icon"))
	r.Get("/apple-touch-icon.png", handler.StaticFile("apple-touch-icon.png", "image/png"))
	r.Get("/apple-touch-icon-precomposed.png", handler.StaticFile("apple-touch-icon-precomposed.png", "image/png"))
	r.Handle("/static/*", handler.Static())

	r.NotFound(handler.NotFound)

	return r
}

// answerOptions short-circuits OPTIONS on every path, registered or not.
func answerOptions(options nethttp.HandlerFunc) func(nethttp.Handler) nethttp.Handler {
	return func(next nethttp.Handler) nethttp.Handler {
		return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			if r.Method == nethttp.MethodOptions {
				options(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
