package testutil

import (
	domaingames "github.com/preston-bernstein/nba-highlights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
)

// Thunder and Nuggets ids used across fixtures.
const (
	SampleTeamID     = 1610612760
	SampleOpponentID = 1610612743
)

// SampleGame returns a final game between the sample team (home) and its opponent.
func SampleGame(id, date string) domaingames.Game {
	return domaingames.Game{
		ID:        id,
		Date:      date,
		StartTime: date + "T01:30:00Z",
		HomeTeam:  domaingames.Team{ID: SampleTeamID, Tricode: "OKC", City: "Oklahoma City", Name: "Thunder"},
		AwayTeam:  domaingames.Team{ID: SampleOpponentID, Tricode: "DEN", City: "Denver", Name: "Nuggets"},
		Status:    domaingames.StatusFinal,
		Score:     domaingames.Score{Home: 112, Away: 108},
	}
}

// SampleEvent returns an event with a clip attached.
func SampleEvent(gameID string, eventID int, category highlights.Category) highlights.Event {
	return highlights.Event{
		EventID:         eventID,
		GameID:          gameID,
		Period:          4,
		Description:     "Pullup Jump Shot",
		Category:        category,
		VideoURL:        "https://videos.example.com/clip.mp4",
		ThumbnailURL:    "https://videos.example.com/clip.jpg",
		VideoDurationMs: 9000,
	}
}
