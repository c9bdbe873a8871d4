package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/preston-bernstein/nba-highlights-service/internal/app/highlights"
	domaingames "github.com/preston-bernstein/nba-highlights-service/internal/domain/games"
	domainhighlights "github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
	"github.com/preston-bernstein/nba-highlights-service/internal/logging"
)

// GamesService lists the tracked team's completed games.
type GamesService interface {
	CompletedGames(ctx context.Context) ([]domaingames.Game, error)
	TeamID() int
}

// Aggregator assembles the highlight reel of one game.
type Aggregator interface {
	Run(ctx context.Context, gameID string) highlights.Result
}

// Options carries the read-only values echoed in responses.
type Options struct {
	PlayerID int
	Season   string
}

// HighlightsResponse is the payload returned by /games/{id}/highlights.
type HighlightsResponse struct {
	GameID   string                   `json:"gameId"`
	PlayerID int                      `json:"playerId"`
	Season   string                   `json:"season"`
	Events   []domainhighlights.Event `json:"events"`
	Summary  highlights.Summary       `json:"summary"`
}

// Handler wires HTTP routes to the schedule service and the aggregator.
type Handler struct {
	games      GamesService
	aggregator Aggregator
	opts       Options
	logger     *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(games GamesService, aggregator Aggregator, opts Options, logger *slog.Logger) *Handler {
	return &Handler{
		games:      games,
		aggregator: aggregator,
		opts:       opts,
		logger:     logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Games returns the tracked team's completed games, newest first.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	games, err := h.games.CompletedGames(r.Context())
	if err != nil {
		logging.Error(logger, "schedule unavailable", err)
		writeError(w, r, nethttp.StatusBadGateway, "schedule unavailable", h.logger)
		return
	}

	logging.Info(logger, "served completed games", slog.Int(logging.FieldCount, len(games)))
	writeJSON(w, nethttp.StatusOK, domaingames.GamesResponse{
		TeamID: h.games.TeamID(),
		Season: h.opts.Season,
		Games:  games,
	}, h.logger)
}

// GameHighlights aggregates the highlight reel of /games/{id}/highlights.
// Upstream failures shrink the event list; they never fail the request.
func (h *Handler) GameHighlights(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, ok := parseHighlightsPath(r.URL.Path)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	if id == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	result := h.aggregator.Run(r.Context(), id)
	if result.Summary.Interrupted && r.Context().Err() != nil {
		// Client went away; nobody is left to read a response.
		return
	}

	writeJSON(w, nethttp.StatusOK, HighlightsResponse{
		GameID:   id,
		PlayerID: h.opts.PlayerID,
		Season:   h.opts.Season,
		Events:   result.Events,
		Summary:  result.Summary,
	}, h.logger)
}

// parseHighlightsPath expects /games/{id}/highlights. ok is false for any
// other shape; id is empty when the segment is present but unusable.
func parseHighlightsPath(path string) (id string, ok bool) {
	rest, found := strings.CutPrefix(path, "/games/")
	if !found {
		return "", false
	}
	raw, found := strings.CutSuffix(rest, "/highlights")
	if !found || strings.Contains(raw, "/") {
		return "", false
	}
	id, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(id) == "" || strings.ContainsAny(id, " \t/") {
		return "", true
	}
	return id, true
}
