package espn

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	"github.com/lightscore/nfl-playoff-service/internal/domain/standings"
	"github.com/lightscore/nfl-playoff-service/internal/providers"
	"github.com/lightscore/nfl-playoff-service/internal/timeutil"
)

// Config controls how the ESPN client reaches the public endpoints.
type Config struct {
	StandingsURL  string
	ScoreboardURL string
	HTTPClient    *http.Client
	Timeout       time.Duration
	Timezone      string
	Logger        *slog.Logger
}

// Client fetches NFL data from ESPN's public endpoints and maps it to
// domain models.
type Client struct {
	standingsURL  string
	scoreboardURL string
	httpClient    httpDoer
	loc           *time.Location
	logger        *slog.Logger
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		standingsURL:  resolveURL(cfg.StandingsURL, defaultStandingsURL),
		scoreboardURL: resolveURL(cfg.ScoreboardURL, defaultScoreboardURL),
		httpClient:    resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		loc:           timeutil.ResolveLocation(cfg.Timezone),
		logger:        cfg.Logger,
	}
}

// FetchStandings retrieves the live standings grid.
func (c *Client) FetchStandings(ctx context.Context) ([]standings.TeamRecord, error) {
	var payload standingsPayload
	if err := c.getJSON(ctx, c.standingsURL, &payload); err != nil {
		return nil, err
	}
	return mapStandings(payload), nil
}

// FetchScoreboard retrieves one week of games. Zero query fields are left
// out of the request so the upstream resolves the current week.
func (c *Client) FetchScoreboard(ctx context.Context, query providers.WeekQuery) (domaingames.WeeklyResponse, error) {
	payload, err := c.fetchScoreboardPayload(ctx, query)
	if err != nil {
		return domaingames.WeeklyResponse{}, err
	}

	resp := domaingames.WeeklyResponse{
		Context: mapWeekContext(payload),
		Games:   make([]domaingames.WeeklyGame, 0, len(payload.Events)),
	}
	for _, ev := range payload.Events {
		if game, ok := mapWeeklyGame(ev, c.loc); ok {
			resp.Games = append(resp.Games, game)
		}
	}
	return resp, nil
}

func (c *Client) fetchScoreboardPayload(ctx context.Context, query providers.WeekQuery) (scoreboardPayload, error) {
	target, err := url.Parse(c.scoreboardURL)
	if err != nil {
		return scoreboardPayload{}, err
	}

	q := target.Query()
	if query.Year > 0 {
		q.Set("year", strconv.Itoa(query.Year))
	}
	if query.Week > 0 {
		q.Set("week", strconv.Itoa(query.Week))
	}
	if query.SeasonType > 0 {
		q.Set("seasontype", strconv.Itoa(query.SeasonType))
	}
	target.RawQuery = q.Encode()

	var payload scoreboardPayload
	if err := c.getJSON(ctx, target.String(), &payload); err != nil {
		return scoreboardPayload{}, err
	}
	return payload, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return &providers.UpstreamError{Provider: providerName, StatusCode: resp.StatusCode}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
