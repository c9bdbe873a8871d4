package nbastats

import "time"

const (
	providerName = "nbastats"

	defaultStatsBaseURL = "https://stats.nba.com/stats"
	defaultCDNBaseURL   = "https://cdn.nba.com/static/json"
	defaultHTTPTimeout  = 20 * time.Second
	defaultLeagueID     = "00"
	defaultSeasonType   = "Regular Season"
	defaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	schedulePath   = "/staticData/scheduleLeagueV2.json"
	playByPlayPath = "/liveData/playbyplay/playbyplay_%s.json"
	videoPath      = "/videodetailsasset"

	// wildcardTeamID opens a video query to every team.
	wildcardTeamID = "0"

	errorBodyLimit = 512
)

// videoPlaceholderParams must be present (empty) on every video asset query or
// the upstream rejects the request.
var videoPlaceholderParams = []string{
	"AheadBehind", "ClutchTime", "ContextFilter", "DateFrom", "DateTo",
	"EndPeriod", "EndRange", "GameEventID", "GameSegment", "GroupID",
	"GroupMode", "LastNGames", "Location", "Month", "OnOff",
	"OppPlayerID", "OpponentTeamID", "Outcome", "PORound", "Period",
	"PlayerID1", "PlayerID2", "PlayerID3", "PlayerID4", "PlayerID5",
	"PlayerPosition", "PointDiff", "Position", "RangeType", "RookieYear",
	"SeasonSegment", "ShotClockRange", "StartPeriod", "StartRange", "StarterBench",
	"VsConference", "VsDivision", "VsPlayerID1", "VsPlayerID2", "VsPlayerID3",
	"VsPlayerID4", "VsPlayerID5", "VsTeamID",
}
