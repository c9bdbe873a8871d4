// Package fixture serves a deterministic schedule, play-by-play and video
// catalogue for local runs without reaching the NBA endpoints.
package fixture

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/preston-bernstein/nba-highlights-service/internal/clutch"
	domaingames "github.com/preston-bernstein/nba-highlights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
	"github.com/preston-bernstein/nba-highlights-service/internal/providers"
	"github.com/preston-bernstein/nba-highlights-service/internal/timeutil"
)

const (
	TeammateID = 1631096
	OpponentID = 203999

	opponentTeamID = 1610612743
	neutralHomeID  = 1610612747
	neutralAwayID  = 1610612738

	videoHost = "https://fixtures.local/videos"
)

// Provider implements providers.DataProvider from static data built around
// the tracked player and team.
type Provider struct {
	playerID int
	teamID   int
	now      func() time.Time
}

var _ providers.DataProvider = (*Provider)(nil)

// New creates a fixture provider whose data features the given player and team.
func New(playerID, teamID int) *Provider {
	return &Provider{
		playerID: playerID,
		teamID:   teamID,
		now:      time.Now,
	}
}

type play struct {
	number      int
	period      int
	clock       string
	personID    int
	teamID      int
	category    highlights.Category
	description string
}

type scheduledGame struct {
	game     domaingames.Game
	overtime bool
}

// FetchSchedule returns three completed games of the tracked team, one
// upcoming game and one game between two other teams.
func (p *Provider) FetchSchedule(ctx context.Context) ([]domaingames.Game, error) {
	_ = ctx
	out := make([]domaingames.Game, 0, 5)
	for _, sg := range p.schedule() {
		out = append(out, sg.game)
	}
	return out, nil
}

// FetchPlayByPlay returns the action log of a completed fixture game.
func (p *Provider) FetchPlayByPlay(ctx context.Context, gameID string) ([]clutch.Action, error) {
	_ = ctx
	plays, err := p.playsFor(providers.FeedPlayByPlay, gameID)
	if err != nil {
		return nil, err
	}
	actions := make([]clutch.Action, 0, len(plays))
	for _, pl := range plays {
		actions = append(actions, clutch.Action{
			Number:      pl.number,
			Period:      pl.period,
			Clock:       pl.clock,
			PersonID:    pl.personID,
			ActionType:  string(pl.category),
			Description: pl.description,
		})
	}
	return actions, nil
}

// FetchVideoEvents returns the clips of one player and category in a game.
func (p *Provider) FetchVideoEvents(ctx context.Context, q providers.VideoQuery) ([]highlights.Event, error) {
	_ = ctx
	plays, err := p.playsFor(providers.FeedVideo, q.GameID)
	if err != nil {
		return nil, err
	}
	var events []highlights.Event
	for _, pl := range plays {
		if pl.personID != q.PlayerID || pl.category != q.Category || pl.category == "" {
			continue
		}
		if !q.Scope.IsWildcard() && pl.teamID != q.Scope.TeamID {
			continue
		}
		events = append(events, highlights.Event{
			EventID:         pl.number,
			GameID:          q.GameID,
			Period:          pl.period,
			Description:     pl.description,
			Category:        pl.category,
			VideoURL:        fmt.Sprintf("%s/%s/%d.mp4", videoHost, q.GameID, pl.number),
			ThumbnailURL:    fmt.Sprintf("%s/%s/%d.jpg", videoHost, q.GameID, pl.number),
			VideoDurationMs: 8000,
		})
	}
	return events, nil
}

func (p *Provider) playsFor(feed, gameID string) ([]play, error) {
	for _, sg := range p.schedule() {
		if sg.game.ID != gameID {
			continue
		}
		if sg.game.Status != domaingames.StatusFinal {
			return nil, nil
		}
		return p.plays(sg.overtime), nil
	}
	return nil, &providers.StatusError{Feed: feed, StatusCode: http.StatusNotFound, Body: "unknown fixture game " + gameID}
}

func (p *Provider) schedule() []scheduledGame {
	today := p.now().UTC().Truncate(24 * time.Hour)
	date := func(days int) string { return timeutil.FormatDate(today.AddDate(0, 0, days)) }

	tracked := domaingames.Team{ID: p.teamID, Tricode: "HOME", City: "Tracked", Name: "Team"}
	opponent := domaingames.Team{ID: opponentTeamID, Tricode: "DEN", City: "Denver", Name: "Nuggets"}

	game := func(id, day string, home, away domaingames.Team, status domaingames.GameStatus, score domaingames.Score) domaingames.Game {
		return domaingames.Game{
			ID:        id,
			Date:      day,
			StartTime: day + "T01:00:00Z",
			HomeTeam:  home,
			AwayTeam:  away,
			Status:    status,
			Score:     score,
		}
	}

	return []scheduledGame{
		{game: game("fixture-1", date(-6), tracked, opponent, domaingames.StatusFinal, domaingames.Score{Home: 121, Away: 117}), overtime: true},
		{game: game("fixture-2", date(-4), opponent, tracked, domaingames.StatusFinal, domaingames.Score{Home: 104, Away: 109})},
		{game: game("fixture-3", date(-2), tracked, opponent, domaingames.StatusFinal, domaingames.Score{Home: 98, Away: 101})},
		{game: game("fixture-4", date(-1),
			domaingames.Team{ID: neutralHomeID, Tricode: "LAL", City: "Los Angeles", Name: "Lakers"},
			domaingames.Team{ID: neutralAwayID, Tricode: "BOS", City: "Boston", Name: "Celtics"},
			domaingames.StatusFinal, domaingames.Score{Home: 110, Away: 99})},
		{game: game("fixture-5", date(2), opponent, tracked, domaingames.StatusScheduled, domaingames.Score{})},
	}
}

func (p *Provider) plays(overtime bool) []play {
	plays := []play{
		{10, 1, "PT11M40.00S", p.playerID, p.teamID, highlights.CategoryFieldGoalAttempt, "Pullup Jump Shot"},
		{20, 1, "PT10M02.00S", TeammateID, p.teamID, highlights.CategoryAssist, "Holmgren Assist"},
		{30, 2, "PT06M15.00S", p.playerID, p.teamID, highlights.CategoryAssist, "Lob Assist"},
		{40, 3, "PT08M00.00S", OpponentID, opponentTeamID, highlights.CategoryFieldGoalAttempt, "Jokic Hook Shot"},
		{50, 4, "PT07M30.00S", p.playerID, p.teamID, highlights.CategoryTurnover, "Bad Pass Turnover"},
		{60, 4, "PT04M45.00S", OpponentID, opponentTeamID, highlights.CategoryFieldGoalAttempt, "Jokic Fadeaway"},
		{70, 4, "PT03M10.00S", p.playerID, p.teamID, highlights.CategoryFieldGoalAttempt, "Step Back Jumper"},
		{80, 4, "PT02M05.00S", TeammateID, p.teamID, highlights.CategoryBlock, "Holmgren Block"},
		{90, 4, "PT01M12.00S", OpponentID, opponentTeamID, highlights.CategoryTurnover, "Lost Ball Turnover"},
		{100, 4, "PT00M20.00S", TeammateID, p.teamID, highlights.CategoryAssist, "Kick Out Assist"},
		{110, 4, "PT00M00.00S", 0, 0, "", "Period End"},
	}
	if overtime {
		plays = append(plays,
			play{120, 5, "PT03M30.00S", OpponentID, opponentTeamID, highlights.CategoryAssist, "Jokic Bounce Pass Assist"},
			play{130, 5, "PT00M40.00S", p.playerID, p.teamID, highlights.CategoryFieldGoalAttempt, "Driving Floating Jump Shot"},
		)
	}
	return plays
}
