package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/preston-bernstein/nba-highlights-service/internal/clutch"
	domaingames "github.com/preston-bernstein/nba-highlights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
	"github.com/preston-bernstein/nba-highlights-service/internal/providers"
)

// VideoKey identifies a scripted video response.
type VideoKey struct {
	PlayerID int
	Category highlights.Category
	TeamID   int
}

// KeyOf returns the VideoKey matching a query.
func KeyOf(q providers.VideoQuery) VideoKey {
	return VideoKey{PlayerID: q.PlayerID, Category: q.Category, TeamID: q.Scope.TeamID}
}

// StubProvider is a scripted providers.DataProvider that records every call.
type StubProvider struct {
	Schedule    []domaingames.Game
	ScheduleErr error

	Actions       []clutch.Action
	PlayByPlayErr error
	// BlockPlayByPlay makes FetchPlayByPlay wait until its context ends.
	BlockPlayByPlay bool

	Video     map[VideoKey][]highlights.Event
	VideoErrs map[VideoKey]error
	// BlockVideo makes every video fetch wait until its context ends.
	BlockVideo bool

	ScheduleCalls   atomic.Int32
	PlayByPlayCalls atomic.Int32

	mu        sync.Mutex
	queries   []providers.VideoQuery
	callTimes []time.Time
}

var _ providers.DataProvider = (*StubProvider)(nil)

// FetchSchedule returns the scripted schedule.
func (s *StubProvider) FetchSchedule(ctx context.Context) ([]domaingames.Game, error) {
	_ = ctx
	s.ScheduleCalls.Add(1)
	return s.Schedule, s.ScheduleErr
}

// FetchPlayByPlay returns the scripted actions.
func (s *StubProvider) FetchPlayByPlay(ctx context.Context, gameID string) ([]clutch.Action, error) {
	_ = gameID
	s.PlayByPlayCalls.Add(1)
	if s.BlockPlayByPlay {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.Actions, s.PlayByPlayErr
}

// FetchVideoEvents returns the events scripted for the query's key.
func (s *StubProvider) FetchVideoEvents(ctx context.Context, q providers.VideoQuery) ([]highlights.Event, error) {
	s.mu.Lock()
	s.queries = append(s.queries, q)
	s.callTimes = append(s.callTimes, time.Now())
	s.mu.Unlock()

	if s.BlockVideo {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	key := KeyOf(q)
	if err, ok := s.VideoErrs[key]; ok {
		return nil, err
	}
	return s.Video[key], nil
}

// Queries returns the video queries seen so far, in call order.
func (s *StubProvider) Queries() []providers.VideoQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]providers.VideoQuery, len(s.queries))
	copy(out, s.queries)
	return out
}

// CallTimes returns when each video query started, aligned with Queries.
func (s *StubProvider) CallTimes() []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Time, len(s.callTimes))
	copy(out, s.callTimes)
	return out
}

// Events builds bare events for the given ids and category.
func Events(category highlights.Category, ids ...int) []highlights.Event {
	out := make([]highlights.Event, 0, len(ids))
	for _, id := range ids {
		out = append(out, highlights.Event{EventID: id, GameID: "g1", Category: category})
	}
	return out
}
