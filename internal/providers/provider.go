package providers

import (
	"context"

	"github.com/preston-bernstein/nba-highlights-service/internal/clutch"
	domaingames "github.com/preston-bernstein/nba-highlights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
)

// Feed names used in logs and metrics.
const (
	FeedSchedule   = "schedule"
	FeedPlayByPlay = "playbyplay"
	FeedVideo      = "videodetails"
)

// VideoQuery identifies one per-category video asset lookup.
type VideoQuery struct {
	GameID   string
	PlayerID int
	Category highlights.Category
	Scope    highlights.TeamScope
	Season   string
}

// ScheduleProvider fetches the league schedule for the current season.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context) ([]domaingames.Game, error)
}

// PlayByPlayProvider fetches the ordered action log of a game.
type PlayByPlayProvider interface {
	FetchPlayByPlay(ctx context.Context, gameID string) ([]clutch.Action, error)
}

// VideoProvider fetches highlight events with their clips for one query.
type VideoProvider interface {
	FetchVideoEvents(ctx context.Context, q VideoQuery) ([]highlights.Event, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ScheduleProvider
	PlayByPlayProvider
	VideoProvider
}
