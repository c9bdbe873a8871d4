package games

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
)

// Score captures home and away points.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Team is the slim team reference carried on a scheduled game.
type Team struct {
	ID      int    `json:"id"`
	Tricode string `json:"tricode"`
	City    string `json:"city,omitempty"`
	Name    string `json:"name,omitempty"`
}

// Game is the canonical schedule entry exposed by the service.
type Game struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"`
	StartTime string     `json:"startTime,omitempty"`
	HomeTeam  Team       `json:"homeTeam"`
	AwayTeam  Team       `json:"awayTeam"`
	Status    GameStatus `json:"status"`
	Score     Score      `json:"score"`
}

// Involves reports whether the team played in the game.
func (g Game) Involves(teamID int) bool {
	return g.HomeTeam.ID == teamID || g.AwayTeam.ID == teamID
}

// Opponent returns the team facing teamID, or the away team when teamID did not play.
func (g Game) Opponent(teamID int) Team {
	if g.AwayTeam.ID == teamID {
		return g.HomeTeam
	}
	return g.AwayTeam
}

// GamesResponse is the payload returned by /games.
type GamesResponse struct {
	TeamID int    `json:"teamId"`
	Season string `json:"season"`
	Games  []Game `json:"games"`
}
