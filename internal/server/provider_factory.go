package server

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-highlights-service/internal/config"
	"github.com/preston-bernstein/nba-highlights-service/internal/logging"
	"github.com/preston-bernstein/nba-highlights-service/internal/metrics"
	"github.com/preston-bernstein/nba-highlights-service/internal/providers"
	"github.com/preston-bernstein/nba-highlights-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-highlights-service/internal/providers/nbastats"
)

// providerFactory assembles the upstream provider with the shared retry wrapper.
type providerFactory struct {
	logger     *slog.Logger
	metrics    *metrics.Recorder
	httpClient *http.Client
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := f.selectProvider(cfg)
	return providers.NewRetryingProvider(base, f.logger, f.metrics, cfg.RetryAttempts, cfg.RetryBackoff)
}

func (f providerFactory) selectProvider(cfg config.Config) providers.DataProvider {
	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New(cfg.TrackedPlayerID, cfg.TrackedTeamID)
	case config.ProviderNBAStats, "":
		return nbastats.NewClient(nbastats.Config{
			StatsBaseURL: cfg.StatsBaseURL,
			CDNBaseURL:   cfg.CDNBaseURL,
			UserAgent:    cfg.UserAgent,
			HTTPClient:   f.httpClient,
		})
	default:
		logging.Warn(f.logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New(cfg.TrackedPlayerID, cfg.TrackedTeamID)
	}
}
