package highlights

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-highlights-service/internal/clutch"
	domainhighlights "github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
	"github.com/preston-bernstein/nba-highlights-service/internal/logging"
	"github.com/preston-bernstein/nba-highlights-service/internal/providers"
)

// FetchEvents runs one video query under the video timeout. Any failure is
// logged and yields an empty list.
func (a *Aggregator) FetchEvents(ctx context.Context, gameID string, playerID int, category domainhighlights.Category, scope domainhighlights.TeamScope) []domainhighlights.Event {
	events, _ := a.fetchEvents(ctx, gameID, playerID, category, scope)
	return events
}

func (a *Aggregator) fetchEvents(ctx context.Context, gameID string, playerID int, category domainhighlights.Category, scope domainhighlights.TeamScope) ([]domainhighlights.Event, bool) {
	callCtx, cancel := context.WithTimeout(ctx, a.cfg.VideoTimeout)
	defer cancel()

	start := time.Now()
	events, err := a.provider.FetchVideoEvents(callCtx, providers.VideoQuery{
		GameID:   gameID,
		PlayerID: playerID,
		Category: category,
		Scope:    scope,
		Season:   a.cfg.Season,
	})
	if err != nil {
		a.logFetchFailure(ctx, providers.FeedVideo, "video fetch failed", err,
			slog.String(logging.FieldGameID, gameID),
			slog.Int(logging.FieldPlayerID, playerID),
			slog.String(logging.FieldCategory, string(category)),
			slog.Int(logging.FieldTeamID, scope.TeamID),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		return nil, false
	}
	return events, true
}

// FetchClutchContext loads the play-by-play log once and classifies it.
// Any failure is logged and yields an empty context.
func (a *Aggregator) FetchClutchContext(ctx context.Context, gameID string) clutch.Context {
	cc, _ := a.fetchClutchContext(ctx, gameID)
	return cc
}

func (a *Aggregator) fetchClutchContext(ctx context.Context, gameID string) (clutch.Context, bool) {
	callCtx, cancel := context.WithTimeout(ctx, a.cfg.PlayByPlayTimeout)
	defer cancel()

	start := time.Now()
	actions, err := a.provider.FetchPlayByPlay(callCtx, gameID)
	if err != nil {
		a.logFetchFailure(ctx, providers.FeedPlayByPlay, "play-by-play fetch failed", err,
			slog.String(logging.FieldGameID, gameID),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		return clutch.Empty(), false
	}
	return clutch.Build(actions, a.cfg.PlayerID), true
}

func (a *Aggregator) logFetchFailure(ctx context.Context, feed, msg string, err error, attrs ...any) {
	logger := logging.FromContext(ctx, a.logger)
	if logger == nil {
		return
	}
	if providers.IsTimeout(err) {
		msg += ": timed out"
	}
	attrs = append(attrs, slog.String(logging.FieldFeed, feed), slog.Any("err", err))
	logger.WarnContext(ctx, msg, attrs...)
}
