package nbastats

import (
	"strconv"

	"github.com/preston-bernstein/nba-highlights-service/internal/clutch"
	domaingames "github.com/preston-bernstein/nba-highlights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
	"github.com/preston-bernstein/nba-highlights-service/internal/timeutil"
)

// decodeVideoEvents zips the playlist with the asset list by index. A playlist
// entry without a matching asset still yields an event, just without video fields.
func decodeVideoEvents(payload videoResponse, gameID string, category highlights.Category) []highlights.Event {
	playlist := payload.ResultSets.Playlist
	assets := payload.ResultSets.Meta.VideoURLs

	events := make([]highlights.Event, 0, len(playlist))
	for i, item := range playlist {
		ev := highlights.Event{
			EventID:     item.EventID,
			GameID:      item.GameID,
			Period:      item.Period,
			Description: item.Description,
			Category:    category,
		}
		if ev.GameID == "" {
			ev.GameID = gameID
		}
		if i < len(assets) {
			ev.VideoURL, ev.ThumbnailURL, ev.VideoDurationMs = assets[i].best()
		}
		events = append(events, ev)
	}
	return events
}

// best returns the highest resolution clip available with its thumbnail and duration.
func (a videoAsset) best() (url, thumbnail string, durationMs int64) {
	switch {
	case a.LargeURL != "":
		return a.LargeURL, firstNonEmpty(a.LargeThumbnail, a.MedThumbnail, a.SmallThumbnail), a.LargeDuration
	case a.MedURL != "":
		return a.MedURL, firstNonEmpty(a.MedThumbnail, a.LargeThumbnail, a.SmallThumbnail), a.MedDuration
	case a.SmallURL != "":
		return a.SmallURL, firstNonEmpty(a.SmallThumbnail, a.MedThumbnail, a.LargeThumbnail), a.SmallDuration
	default:
		return "", firstNonEmpty(a.LargeThumbnail, a.MedThumbnail, a.SmallThumbnail), 0
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func mapActions(actions []actionResponse) []clutch.Action {
	out := make([]clutch.Action, 0, len(actions))
	for _, a := range actions {
		out = append(out, clutch.Action{
			Number:      a.ActionNumber,
			Period:      a.Period,
			Clock:       a.Clock,
			PersonID:    a.PersonID,
			ActionType:  a.ActionType,
			Description: a.Description,
		})
	}
	return out
}

func mapSchedule(payload scheduleResponse) []domaingames.Game {
	var out []domaingames.Game
	for _, day := range payload.LeagueSchedule.GameDates {
		date := timeutil.NormalizeScheduleDate(day.GameDate)
		for _, g := range day.Games {
			out = append(out, mapGame(g, date))
		}
	}
	return out
}

func mapGame(g scheduleGame, date string) domaingames.Game {
	return domaingames.Game{
		ID:        g.GameID,
		Date:      date,
		StartTime: g.GameDateTimeUTC,
		HomeTeam:  mapTeam(g.HomeTeam),
		AwayTeam:  mapTeam(g.AwayTeam),
		Status:    mapStatus(g.GameStatus),
		Score: domaingames.Score{
			Home: g.HomeTeam.Score,
			Away: g.AwayTeam.Score,
		},
	}
}

func mapTeam(t scheduleTeam) domaingames.Team {
	return domaingames.Team{
		ID:      t.TeamID,
		Tricode: t.TeamTricode,
		City:    t.TeamCity,
		Name:    t.TeamName,
	}
}

// mapStatus converts the upstream numeric game status (1 scheduled, 2 live, 3 final).
func mapStatus(status int) domaingames.GameStatus {
	switch status {
	case 3:
		return domaingames.StatusFinal
	case 2:
		return domaingames.StatusInProgress
	default:
		return domaingames.StatusScheduled
	}
}

func teamParam(scope highlights.TeamScope) string {
	if scope.IsWildcard() {
		return wildcardTeamID
	}
	return strconv.Itoa(scope.TeamID)
}
