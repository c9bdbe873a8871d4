package highlights

// Event is a single highlight play attributed to one game.
// EventID is assigned by the upstream in chronological order within a game.
type Event struct {
	EventID         int      `json:"eventId"`
	GameID          string   `json:"gameId"`
	Period          int      `json:"period"`
	Description     string   `json:"description"`
	Category        Category `json:"category"`
	VideoURL        string   `json:"videoUrl,omitempty"`
	ThumbnailURL    string   `json:"thumbnailUrl,omitempty"`
	VideoDurationMs int64    `json:"videoDurationMs,omitempty"`
}

// HasVideo reports whether a clip was attached to the event.
func (e Event) HasVideo() bool {
	return e.VideoURL != ""
}

// TeamScope restricts a video query to one team or opens it to any team.
type TeamScope struct {
	TeamID int
}

// AnyTeam is the wildcard scope used for clutch fan-out queries.
var AnyTeam = TeamScope{}

// Team scopes a query to the given team.
func Team(id int) TeamScope {
	return TeamScope{TeamID: id}
}

// IsWildcard reports whether the scope matches every team.
func (s TeamScope) IsWildcard() bool {
	return s.TeamID == 0
}
