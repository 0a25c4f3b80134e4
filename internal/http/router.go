package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lightscore/nfl-playoff-service/internal/metrics"
)

// NewRouter registers all routes behind the logging middleware.
func NewRouter(handler *Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(LoggingMiddleware(logger, recorder))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/standings/live", handler.StandingsLive)

	r.Route("/games/weekly", func(r chi.Router) {
		r.Get("/", handler.GamesWeekly)
		r.Get("/context", handler.GamesWeeklyContext)
		r.Get("/navigation", handler.GamesWeeklyNavigation)
	})

	r.Route("/playoffs", func(r chi.Router) {
		r.Get("/bracket", handler.PlayoffsBracket)
		r.Get("/picture", handler.PlayoffsPicture)
	})

	r.Get("/teams", handler.Teams)

	r.NotFound(func(w nethttp.ResponseWriter, req *nethttp.Request) {
		writeError(w, req, nethttp.StatusNotFound, "not found", logger)
	})
	r.MethodNotAllowed(func(w nethttp.ResponseWriter, req *nethttp.Request) {
		writeError(w, req, nethttp.StatusMethodNotAllowed, "method not allowed", logger)
	})

	return r
}
