package nbastats

import (
	"testing"

	"github.com/preston-bernstein/nba-highlights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
)

func TestDecodeVideoEventsToleratesMoreAssetsThanPlaylist(t *testing.T) {
	var payload videoResponse
	payload.ResultSets.Playlist = []playlistItem{{GameID: "g", EventID: 1, Period: 1}}
	payload.ResultSets.Meta.VideoURLs = []videoAsset{{MedURL: "m1.mp4"}, {MedURL: "m2.mp4"}}

	events := decodeVideoEvents(payload, "g", highlights.CategorySteal)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].VideoURL != "m1.mp4" || events[0].Category != highlights.CategorySteal {
		t.Fatalf("unexpected event %+v", events[0])
	}
}

func TestVideoAssetBestPrefersLargest(t *testing.T) {
	cases := []struct {
		name      string
		asset     videoAsset
		url       string
		thumbnail string
		duration  int64
	}{
		{"large", videoAsset{LargeURL: "l", LargeDuration: 3, MedURL: "m", MedThumbnail: "mt"}, "l", "mt", 3},
		{"medium", videoAsset{MedURL: "m", MedThumbnail: "mt", MedDuration: 2}, "m", "mt", 2},
		{"small", videoAsset{SmallURL: "s", SmallThumbnail: "st", SmallDuration: 1}, "s", "st", 1},
		{"thumbnail only", videoAsset{SmallThumbnail: "st"}, "", "st", 0},
		{"empty", videoAsset{}, "", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			url, thumb, dur := tc.asset.best()
			if url != tc.url || thumb != tc.thumbnail || dur != tc.duration {
				t.Fatalf("expected (%q,%q,%d), got (%q,%q,%d)", tc.url, tc.thumbnail, tc.duration, url, thumb, dur)
			}
		})
	}
}

func TestMapStatusCoversVariants(t *testing.T) {
	cases := map[int]games.GameStatus{
		1: games.StatusScheduled,
		2: games.StatusInProgress,
		3: games.StatusFinal,
		0: games.StatusScheduled,
	}

	for input, expected := range cases {
		if got := mapStatus(input); got != expected {
			t.Fatalf("status %d expected %s, got %s", input, expected, got)
		}
	}
}

func TestTeamParam(t *testing.T) {
	if got := teamParam(highlights.AnyTeam); got != "0" {
		t.Fatalf("expected wildcard 0, got %s", got)
	}
	if got := teamParam(highlights.Team(1610612760)); got != "1610612760" {
		t.Fatalf("unexpected team param %s", got)
	}
}
