package nbastats

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-highlights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
	"github.com/preston-bernstein/nba-highlights-service/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{
		StatsBaseURL: "http://stats.example.com/stats/",
		CDNBaseURL:   "http://cdn.example.com/static/json",
		HTTPClient:   &http.Client{Transport: rt},
	})
}

func TestFetchVideoEventsBuildsQueryAndZipsAssets(t *testing.T) {
	var captured *http.Request
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{
			"resultSets": {
				"Meta": {"videoUrls": [
					{"uuid": "a", "sdur": 9000, "surl": "s.mp4", "sth": "s.jpg", "mdur": 9100, "murl": "m.mp4", "mth": "m.jpg", "ldur": 9200, "lurl": "l.mp4", "lth": "l.jpg"},
					{"uuid": "b", "sdur": 8000, "surl": "s2.mp4", "sth": "s2.jpg"}
				]},
				"playlist": [
					{"gi": "0022400001", "ei": 12, "p": 1, "dsc": "Pullup Jump Shot"},
					{"gi": "0022400001", "ei": 48, "p": 2, "dsc": "Driving Layup"},
					{"gi": "", "ei": 90, "p": 4, "dsc": "Step Back 3PT"}
				]
			}
		}`), nil
	})

	events, err := client.FetchVideoEvents(context.Background(), providers.VideoQuery{
		GameID:   "0022400001",
		PlayerID: 1628983,
		Category: highlights.CategoryFieldGoalAttempt,
		Scope:    highlights.Team(1610612760),
		Season:   "2024-25",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if captured.URL.Path != "/stats/videodetailsasset" {
		t.Fatalf("unexpected path %s", captured.URL.Path)
	}
	q := captured.URL.Query()
	expected := map[string]string{
		"ContextMeasure": "FGA",
		"GameID":         "0022400001",
		"PlayerID":       "1628983",
		"TeamID":         "1610612760",
		"Season":         "2024-25",
		"LeagueID":       "00",
		"SeasonType":     "Regular Season",
	}
	for key, want := range expected {
		if got := q.Get(key); got != want {
			t.Fatalf("param %s: expected %q, got %q", key, want, got)
		}
	}
	for _, key := range videoPlaceholderParams {
		if _, ok := q[key]; !ok {
			t.Fatalf("expected placeholder param %s to be present", key)
		}
	}
	if captured.Header.Get("Referer") == "" || captured.Header.Get("User-Agent") == "" {
		t.Fatalf("expected browser headers on request")
	}

	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	first := events[0]
	if first.EventID != 12 || first.VideoURL != "l.mp4" || first.ThumbnailURL != "l.jpg" || first.VideoDurationMs != 9200 {
		t.Fatalf("expected large rendition on first event, got %+v", first)
	}
	if events[1].VideoURL != "s2.mp4" || events[1].ThumbnailURL != "s2.jpg" {
		t.Fatalf("expected small rendition fallback, got %+v", events[1])
	}
	last := events[2]
	if last.HasVideo() || last.ThumbnailURL != "" || last.VideoDurationMs != 0 {
		t.Fatalf("expected missing asset to leave video fields empty, got %+v", last)
	}
	if last.GameID != "0022400001" || last.Category != highlights.CategoryFieldGoalAttempt {
		t.Fatalf("expected game id fallback and category, got %+v", last)
	}
}

func TestFetchVideoEventsWildcardScope(t *testing.T) {
	var teamID string
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		teamID = req.URL.Query().Get("TeamID")
		return jsonResponse(http.StatusOK, `{"resultSets": null}`), nil
	})

	events, err := client.FetchVideoEvents(context.Background(), providers.VideoQuery{GameID: "g", Scope: highlights.AnyTeam})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if teamID != "0" {
		t.Fatalf("expected wildcard team id 0, got %q", teamID)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events from empty result sets, got %d", len(events))
	}
}

func TestFetchPlayByPlayMapsActions(t *testing.T) {
	var path string
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		path = req.URL.Path
		return jsonResponse(http.StatusOK, `{"game": {"gameId": "0022400001", "actions": [
			{"actionNumber": 4, "clock": "PT11M58.00S", "period": 1, "personId": 203999, "actionType": "jumpball", "description": "Jump Ball"},
			{"actionNumber": 610, "clock": "PT00M30.10S", "period": 4, "personId": 1628983, "actionType": "2pt", "description": "Gilgeous-Alexander 2' Layup"}
		]}}`), nil
	})

	actions, err := client.FetchPlayByPlay(context.Background(), "0022400001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path != "/static/json/liveData/playbyplay/playbyplay_0022400001.json" {
		t.Fatalf("unexpected path %s", path)
	}
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(actions))
	}
	a := actions[1]
	if a.Number != 610 || a.Period != 4 || a.Clock != "PT00M30.10S" || a.PersonID != 1628983 || a.ActionType != "2pt" {
		t.Fatalf("unexpected action %+v", a)
	}
}

func TestFetchScheduleMapsGames(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/static/json/staticData/scheduleLeagueV2.json" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, `{"leagueSchedule": {"seasonYear": "2024-25", "gameDates": [
			{"gameDate": "10/24/2024 00:00:00", "games": [
				{"gameId": "0022400061", "gameStatus": 3, "gameDateTimeUTC": "2024-10-24T23:30:00Z",
				 "homeTeam": {"teamId": 1610612750, "teamTricode": "MIN", "teamCity": "Minnesota", "teamName": "Timberwolves", "score": 103},
				 "awayTeam": {"teamId": 1610612760, "teamTricode": "OKC", "teamCity": "Oklahoma City", "teamName": "Thunder", "score": 104}}
			]},
			{"gameDate": "10/26/2024 00:00:00", "games": [
				{"gameId": "0022400080", "gameStatus": 1,
				 "homeTeam": {"teamId": 1610612760, "teamTricode": "OKC"},
				 "awayTeam": {"teamId": 1610612743, "teamTricode": "DEN"}}
			]}
		]}}`), nil
	})

	got, err := client.FetchSchedule(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 games, got %d", len(got))
	}
	g := got[0]
	if g.ID != "0022400061" || g.Date != "2024-10-24" || g.Status != games.StatusFinal {
		t.Fatalf("unexpected game %+v", g)
	}
	if g.AwayTeam.Tricode != "OKC" || g.Score.Away != 104 || g.Score.Home != 103 {
		t.Fatalf("unexpected teams/score %+v", g)
	}
	if got[1].Status != games.StatusScheduled {
		t.Fatalf("expected scheduled status, got %s", got[1].Status)
	}
}

func TestGetJSONHandlesNon200(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "boom"), nil
	})

	_, err := client.FetchPlayByPlay(context.Background(), "g")
	stErr, ok := providers.AsStatusError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if stErr.StatusCode != http.StatusBadGateway || stErr.Feed != providers.FeedPlayByPlay || stErr.Body != "boom" {
		t.Fatalf("unexpected status error %+v", stErr)
	}
}

func TestGetJSONMapsRateLimit(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "")
		resp.Header.Set("Retry-After", "3")
		return resp, nil
	})

	_, err := client.FetchVideoEvents(context.Background(), providers.VideoQuery{})
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rlErr.RetryAfter != 3*time.Second {
		t.Fatalf("expected 3s retry-after, got %s", rlErr.RetryAfter)
	}
}

func TestGetJSONHandlesDecodeError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "{bad json"), nil
	})

	_, err := client.FetchSchedule(context.Background())
	var decodeErr *providers.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestGetJSONWrapsTransportError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})

	_, err := client.FetchVideoEvents(context.Background(), providers.VideoQuery{})
	if !providers.IsTimeout(err) {
		t.Fatalf("expected timeout classification, got %v", err)
	}
}

func TestNewClientSetsDefaults(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout == 0 {
		t.Fatalf("expected timeout to be set on default http client")
	}
	if c.statsBaseURL != defaultStatsBaseURL || c.cdnBaseURL != defaultCDNBaseURL {
		t.Fatalf("unexpected base urls %s %s", c.statsBaseURL, c.cdnBaseURL)
	}
	if c.leagueID != defaultLeagueID || c.seasonType != defaultSeasonType || c.userAgent != defaultUserAgent {
		t.Fatalf("expected defaults, got %+v", c)
	}
}
