package server

import (
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-highlights-service/internal/app/games"
	"github.com/preston-bernstein/nba-highlights-service/internal/app/highlights"
	"github.com/preston-bernstein/nba-highlights-service/internal/config"
	"github.com/preston-bernstein/nba-highlights-service/internal/metrics"
	"github.com/preston-bernstein/nba-highlights-service/internal/providers"
)

// Components are the application services shared by the HTTP server and the CLI.
type Components struct {
	Provider   providers.DataProvider
	Games      *games.Service
	Aggregator *highlights.Aggregator
}

// BuildComponents wires the configured provider into the schedule service and aggregator.
func BuildComponents(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) Components {
	provider := newProviderFactory(logger, recorder).build(cfg)
	return buildComponentsWithProvider(cfg, logger, recorder, provider)
}

func buildComponentsWithProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.DataProvider) Components {
	return Components{
		Provider:   provider,
		Games:      games.NewService(provider, cfg.TrackedTeamID, cfg.ScheduleTimeout),
		Aggregator: highlights.New(provider, AggregatorConfig(cfg), logger, recorder),
	}
}

// AggregatorConfig maps loaded configuration onto the aggregator's tuning.
func AggregatorConfig(cfg config.Config) highlights.Config {
	return highlights.Config{
		PlayerID:          cfg.TrackedPlayerID,
		TeamID:            cfg.TrackedTeamID,
		Season:            cfg.Season,
		Categories:        cfg.Categories,
		ClutchCategories:  cfg.ClutchCategories,
		ParticipantCap:    cfg.ParticipantCap,
		FullGameDelay:     pauseOf(cfg.FullGameDelay),
		ClutchDelay:       pauseOf(cfg.ClutchDelay),
		PlayByPlayTimeout: cfg.PlayByPlayTimeout,
		VideoTimeout:      cfg.VideoTimeout,
	}
}

// pauseOf maps a configured delay onto the aggregator's pacing. Loaded config
// is already defaulted, so an explicit zero means calls go back to back.
func pauseOf(d time.Duration) time.Duration {
	if d <= 0 {
		return highlights.NoDelay
	}
	return d
}
