package http

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"

	apppicture "github.com/lightscore/nfl-playoff-service/internal/app/picture"
	appschedule "github.com/lightscore/nfl-playoff-service/internal/app/schedule"
	appstandings "github.com/lightscore/nfl-playoff-service/internal/app/standings"
	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	"github.com/lightscore/nfl-playoff-service/internal/logging"
	"github.com/lightscore/nfl-playoff-service/internal/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/poller"
	"github.com/lightscore/nfl-playoff-service/internal/providers"
)

// Handler wires HTTP routes to the app services.
type Handler struct {
	standings *appstandings.Service
	schedule  *appschedule.Service
	picture   *apppicture.Service
	logger    *slog.Logger
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(standings *appstandings.Service, schedule *appschedule.Service, picture *apppicture.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		standings: standings,
		schedule:  schedule,
		picture:   picture,
		logger:    logger,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// StandingsLive returns the latest standings snapshot.
func (h *Handler) StandingsLive(w nethttp.ResponseWriter, r *nethttp.Request) {
	records, err := h.standings.Live()
	if err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "standings data not available", h.logger)
		return
	}

	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served standings", logging.FieldCount, len(records))
	}
	writeJSON(w, nethttp.StatusOK, records, h.logger)
}

// GamesWeekly returns games for the current or an explicitly requested week.
func (h *Handler) GamesWeekly(w nethttp.ResponseWriter, r *nethttp.Request) {
	query, err := weekQueryFromRequest(r)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	resp, err := h.schedule.Weekly(r.Context(), query)
	if err != nil {
		if errors.Is(err, appschedule.ErrUnavailable) {
			writeError(w, r, nethttp.StatusServiceUnavailable, "weekly games not available", h.logger)
			return
		}
		writeError(w, r, nethttp.StatusBadGateway, "upstream fetch failed", h.logger)
		return
	}

	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served weekly games",
			logging.FieldYear, resp.Context.Year,
			logging.FieldWeek, resp.Context.Week,
			logging.FieldCount, len(resp.Games),
		)
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// GamesWeeklyContext returns the week context of the stored snapshot.
func (h *Handler) GamesWeeklyContext(w nethttp.ResponseWriter, r *nethttp.Request) {
	ctx, ok := h.schedule.Context()
	if !ok {
		writeError(w, r, nethttp.StatusServiceUnavailable, "no weekly snapshot yet", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, ctx, h.logger)
}

// GamesWeeklyNavigation steps one week from the given context.
func (h *Handler) GamesWeeklyNavigation(w nethttp.ResponseWriter, r *nethttp.Request) {
	query, err := weekQueryFromRequest(r)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	next, err := h.schedule.Navigate(domaingames.WeekContext{
		Year:       query.Year,
		Week:       query.Week,
		SeasonType: query.SeasonType,
	}, r.URL.Query().Get("direction"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, next, h.logger)
}

// PlayoffsBracket returns the latest stored bracket.
func (h *Handler) PlayoffsBracket(w nethttp.ResponseWriter, r *nethttp.Request) {
	bracket, ok := h.picture.Bracket()
	if !ok {
		writeError(w, r, nethttp.StatusServiceUnavailable, "bracket not available", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, bracket, h.logger)
}

// PlayoffsPicture returns the playoff picture for the requested season type.
func (h *Handler) PlayoffsPicture(w nethttp.ResponseWriter, r *nethttp.Request) {
	seasonType, err := intQueryParam(r, "seasonType")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	pic, err := h.picture.Picture(seasonType)
	if err != nil {
		if errors.Is(err, apppicture.ErrUnavailable) {
			writeError(w, r, nethttp.StatusServiceUnavailable, "playoff picture not available", h.logger)
			return
		}
		writeError(w, r, nethttp.StatusInternalServerError, "failed to build playoff picture", h.logger)
		return
	}

	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served playoff picture",
			logging.FieldSeasonType, pic.SeasonType,
			logging.FieldYear, pic.SeasonYear,
		)
	}
	writeJSON(w, nethttp.StatusOK, pic, h.logger)
}

// Teams returns the team name/abbreviation table.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, playoffs.KnownTeams(), h.logger)
}

func weekQueryFromRequest(r *nethttp.Request) (providers.WeekQuery, error) {
	year, err := intQueryParam(r, "year")
	if err != nil {
		return providers.WeekQuery{}, err
	}
	week, err := intQueryParam(r, "week")
	if err != nil {
		return providers.WeekQuery{}, err
	}
	seasonType, err := intQueryParam(r, "seasonType")
	if err != nil {
		return providers.WeekQuery{}, err
	}
	return providers.WeekQuery{Year: year, Week: week, SeasonType: seasonType}, nil
}

func intQueryParam(r *nethttp.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + name + " parameter")
	}
	return v, nil
}
