package nbastats

type scheduleResponse struct {
	LeagueSchedule struct {
		SeasonYear string              `json:"seasonYear"`
		GameDates  []scheduleGameDate `json:"gameDates"`
	} `json:"leagueSchedule"`
}

type scheduleGameDate struct {
	GameDate string         `json:"gameDate"`
	Games    []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GameID          string       `json:"gameId"`
	GameStatus      int          `json:"gameStatus"`
	GameStatusText  string       `json:"gameStatusText"`
	GameDateTimeUTC string       `json:"gameDateTimeUTC"`
	HomeTeam        scheduleTeam `json:"homeTeam"`
	AwayTeam        scheduleTeam `json:"awayTeam"`
}

type scheduleTeam struct {
	TeamID      int    `json:"teamId"`
	TeamCity    string `json:"teamCity"`
	TeamName    string `json:"teamName"`
	TeamTricode string `json:"teamTricode"`
	Score       int    `json:"score"`
}

type playByPlayResponse struct {
	Game struct {
		GameID  string           `json:"gameId"`
		Actions []actionResponse `json:"actions"`
	} `json:"game"`
}

type actionResponse struct {
	ActionNumber int    `json:"actionNumber"`
	Clock        string `json:"clock"`
	Period       int    `json:"period"`
	PersonID     int    `json:"personId"`
	ActionType   string `json:"actionType"`
	Description  string `json:"description"`
}

// videoResponse pairs playlist[i] with Meta.videoUrls[i] by position.
type videoResponse struct {
	ResultSets struct {
		Meta struct {
			VideoURLs []videoAsset `json:"videoUrls"`
		} `json:"Meta"`
		Playlist []playlistItem `json:"playlist"`
	} `json:"resultSets"`
}

type playlistItem struct {
	GameID      string `json:"gi"`
	EventID     int    `json:"ei"`
	Period      int    `json:"p"`
	Description string `json:"dsc"`
}

type videoAsset struct {
	UUID           string `json:"uuid"`
	SmallDuration  int64  `json:"sdur"`
	SmallURL       string `json:"surl"`
	SmallThumbnail string `json:"sth"`
	MedDuration    int64  `json:"mdur"`
	MedURL         string `json:"murl"`
	MedThumbnail   string `json:"mth"`
	LargeDuration  int64  `json:"ldur"`
	LargeURL       string `json:"lurl"`
	LargeThumbnail string `json:"lth"`
}
