package games

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	domaingames "github.com/preston-bernstein/nba-highlights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-highlights-service/internal/providers"
)

const defaultScheduleTimeout = 15 * time.Second

// Service answers schedule questions about the tracked team.
type Service struct {
	provider providers.ScheduleProvider
	teamID   int
	timeout  time.Duration
}

// NewService constructs a Service reading the schedule from provider.
func NewService(provider providers.ScheduleProvider, teamID int, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultScheduleTimeout
	}
	return &Service{provider: provider, teamID: teamID, timeout: timeout}
}

// TeamID returns the tracked team id.
func (s *Service) TeamID() int {
	return s.teamID
}

// CompletedGames returns the tracked team's final games, newest first.
func (s *Service) CompletedGames(ctx context.Context) ([]domaingames.Game, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	schedule, err := s.provider.FetchSchedule(callCtx)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}

	out := make([]domaingames.Game, 0, len(schedule))
	for _, g := range schedule {
		if g.Status == domaingames.StatusFinal && g.Involves(s.teamID) {
			out = append(out, g)
		}
	}
	slices.SortStableFunc(out, func(a, b domaingames.Game) int {
		if c := strings.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		if c := strings.Compare(b.StartTime, a.StartTime); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return out, nil
}
