package highlights

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEventOmitsAbsentVideoFields(t *testing.T) {
	raw, err := json.Marshal(Event{EventID: 7, GameID: "0022400001", Period: 4, Description: "Jump shot", Category: CategoryFieldGoalAttempt})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(raw)
	for _, key := range []string{"videoUrl", "thumbnailUrl", "videoDurationMs"} {
		if strings.Contains(body, key) {
			t.Fatalf("expected %s omitted, got %s", key, body)
		}
	}
	if !strings.Contains(body, `"eventId":7`) || !strings.Contains(body, `"category":"FGA"`) {
		t.Fatalf("unexpected payload %s", body)
	}
}

func TestEventHasVideo(t *testing.T) {
	if (Event{}).HasVideo() {
		t.Fatalf("expected no video on zero event")
	}
	if !(Event{VideoURL: "https://example.com/clip.mp4"}).HasVideo() {
		t.Fatalf("expected video when url present")
	}
}

func TestTeamScope(t *testing.T) {
	if !AnyTeam.IsWildcard() {
		t.Fatalf("expected AnyTeam to be wildcard")
	}
	if Team(1610612760).IsWildcard() {
		t.Fatalf("expected team scope not to be wildcard")
	}
}

func TestDefaultCategoryLists(t *testing.T) {
	full := FullGameCategories()
	if len(full) != 7 {
		t.Fatalf("expected 7 full-game categories, got %d", len(full))
	}
	for _, c := range full {
		if c == "FTA" {
			t.Fatalf("free throws must not be tracked")
		}
	}
	clutch := ClutchCategories()
	want := []Category{CategoryFieldGoalAttempt, CategoryAssist, CategoryTurnover}
	if len(clutch) != len(want) {
		t.Fatalf("expected %d clutch categories, got %d", len(want), len(clutch))
	}
	for i := range want {
		if clutch[i] != want[i] {
			t.Fatalf("clutch category %d: expected %s, got %s", i, want[i], clutch[i])
		}
	}
}

func TestParseCategories(t *testing.T) {
	got, err := ParseCategories([]string{" fga", "AST", "ast", ""})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(got) != 2 || got[0] != CategoryFieldGoalAttempt || got[1] != CategoryAssist {
		t.Fatalf("unexpected categories %v", got)
	}

	if _, err := ParseCategories([]string{"FTA"}); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestCategoryLabel(t *testing.T) {
	if CategoryTurnover.Label() != "Turnover" {
		t.Fatalf("unexpected label %s", CategoryTurnover.Label())
	}
	if Category("XYZ").Label() != "XYZ" {
		t.Fatalf("expected raw fallback label")
	}
}
