// Package highlights assembles the clutch highlight reel of one game.
package highlights

import (
	"context"
	"log/slog"
	"time"

	domainhighlights "github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
	"github.com/preston-bernstein/nba-highlights-service/internal/logging"
	"github.com/preston-bernstein/nba-highlights-service/internal/metrics"
	"github.com/preston-bernstein/nba-highlights-service/internal/providers"
	"github.com/preston-bernstein/nba-highlights-service/internal/throttle"
)

// Summary describes one aggregation run.
type Summary struct {
	GameID          string `json:"gameId"`
	FullGameEvents  int    `json:"fullGameEvents"`
	ClutchEventIDs  int    `json:"clutchEventIds"`
	Participants    int    `json:"participants"`
	ClutchEvents    int    `json:"clutchEvents"`
	Events          int    `json:"events"`
	UpstreamCalls   int    `json:"upstreamCalls"`
	UpstreamErrors  int    `json:"upstreamErrors"`
	DurationMs      int64  `json:"durationMs"`
	Interrupted     bool   `json:"interrupted,omitempty"`
	ClutchAvailable bool   `json:"clutchAvailable"`
}

// Result carries the merged events of a run with its Summary.
type Result struct {
	Events  []domainhighlights.Event `json:"events"`
	Summary Summary                  `json:"summary"`
}

// Aggregator combines the tracked player's full-game events with clutch
// events from the other players on the floor.
type Aggregator struct {
	provider providers.DataProvider
	cfg      Config
	logger   *slog.Logger
	metrics  *metrics.Recorder

	fullGame *throttle.Sequencer
	clutch   *throttle.Sequencer
}

// New constructs an Aggregator. Zero config fields take their defaults.
func New(provider providers.DataProvider, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Aggregator {
	cfg = cfg.withDefaults()
	return &Aggregator{
		provider: provider,
		cfg:      cfg,
		logger:   logger,
		metrics:  recorder,
		fullGame: throttle.New(cfg.FullGameDelay),
		clutch:   throttle.New(cfg.ClutchDelay),
	}
}

// Config returns the effective configuration.
func (a *Aggregator) Config() Config {
	return a.cfg
}

// Aggregate returns the merged, deduplicated events of a game sorted by event id.
// Upstream failures only shrink the result.
func (a *Aggregator) Aggregate(ctx context.Context, gameID string) []domainhighlights.Event {
	return a.Run(ctx, gameID).Events
}

// Run is Aggregate with a Summary of the work done. If ctx ends mid-run the
// events merged so far are returned and the summary is marked interrupted.
func (a *Aggregator) Run(ctx context.Context, gameID string) Result {
	start := time.Now()
	summary := Summary{GameID: gameID}

	fullGame, err := a.collectFullGame(ctx, gameID, &summary)
	var clutchEvents []domainhighlights.Event
	if err == nil {
		clutchEvents, err = a.collectClutch(ctx, gameID, &summary)
	}
	if err != nil {
		summary.Interrupted = true
	}

	events := Merge(fullGame, clutchEvents)
	summary.FullGameEvents = len(fullGame)
	summary.ClutchEvents = len(clutchEvents)
	summary.Events = len(events)
	elapsed := time.Since(start)
	summary.DurationMs = elapsed.Milliseconds()

	a.metrics.RecordAggregation(elapsed, summary.Events, summary.ClutchEvents, summary.UpstreamErrors)
	a.logSummary(ctx, summary)

	if events == nil {
		events = []domainhighlights.Event{}
	}
	return Result{Events: events, Summary: summary}
}

// collectFullGame queries every tracked category for the tracked player,
// scoped to the tracked team.
func (a *Aggregator) collectFullGame(ctx context.Context, gameID string, summary *Summary) ([]domainhighlights.Event, error) {
	var events []domainhighlights.Event
	scope := domainhighlights.Team(a.cfg.TeamID)

	tasks := make([]throttle.Task, 0, len(a.cfg.Categories))
	for _, category := range a.cfg.Categories {
		tasks = append(tasks, func(ctx context.Context) {
			got, ok := a.fetchEvents(ctx, gameID, a.cfg.PlayerID, category, scope)
			summary.UpstreamCalls++
			if !ok {
				summary.UpstreamErrors++
			}
			events = append(events, got...)
		})
	}
	_, err := a.fullGame.Run(ctx, tasks...)
	return events, err
}

// collectClutch fans out over the capped clutch participants with an open
// team scope and keeps only events that happened in clutch time.
func (a *Aggregator) collectClutch(ctx context.Context, gameID string, summary *Summary) ([]domainhighlights.Event, error) {
	cc, ok := a.fetchClutchContext(ctx, gameID)
	summary.UpstreamCalls++
	if !ok {
		summary.UpstreamErrors++
	}
	summary.ClutchAvailable = ok
	summary.ClutchEventIDs = cc.Size()
	if cc.Size() == 0 {
		return nil, ctx.Err()
	}

	participants := cc.Capped(a.cfg.ParticipantCap)
	summary.Participants = len(participants)

	var events []domainhighlights.Event
	tasks := make([]throttle.Task, 0, len(participants)*len(a.cfg.ClutchCategories))
	for _, playerID := range participants {
		for _, category := range a.cfg.ClutchCategories {
			tasks = append(tasks, func(ctx context.Context) {
				got, ok := a.fetchEvents(ctx, gameID, playerID, category, domainhighlights.AnyTeam)
				summary.UpstreamCalls++
				if !ok {
					summary.UpstreamErrors++
				}
				events = append(events, FilterClutch(got, cc.Contains)...)
			})
		}
	}
	_, err := a.clutch.Run(ctx, tasks...)
	return events, err
}

func (a *Aggregator) logSummary(ctx context.Context, s Summary) {
	logger := logging.FromContext(ctx, a.logger)
	if logger == nil {
		return
	}
	level := slog.LevelInfo
	if s.Interrupted {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, "aggregation complete",
		slog.String(logging.FieldGameID, s.GameID),
		slog.Int(logging.FieldPlayerID, a.cfg.PlayerID),
		slog.Int(logging.FieldCount, s.Events),
		slog.Int("full_game_events", s.FullGameEvents),
		slog.Int("clutch_events", s.ClutchEvents),
		slog.Int("clutch_event_ids", s.ClutchEventIDs),
		slog.Int("participants", s.Participants),
		slog.Int("upstream_errors", s.UpstreamErrors),
		slog.Bool("interrupted", s.Interrupted),
		slog.Int64(logging.FieldDurationMS, s.DurationMs),
	)
}
