package highlights

import (
	"fmt"
	"strings"
)

// Category is the upstream context measure a video query is partitioned by.
type Category string

const (
	CategoryFieldGoalAttempt Category = "FGA"
	CategoryAssist           Category = "AST"
	CategoryTurnover         Category = "TOV"
	CategoryRebound          Category = "REB"
	CategoryBlock            Category = "BLK"
	CategorySteal            Category = "STL"
	CategoryPersonalFoul     Category = "PF"
)

// FullGameCategories is the default ordered list queried for the tracked player.
// Free throws are absent because the upstream never attaches clips to them.
func FullGameCategories() []Category {
	return []Category{
		CategoryFieldGoalAttempt,
		CategoryAssist,
		CategoryTurnover,
		CategoryRebound,
		CategoryBlock,
		CategorySteal,
		CategoryPersonalFoul,
	}
}

// ClutchCategories is the default reduced subset used for clutch fan-out.
func ClutchCategories() []Category {
	return []Category{
		CategoryFieldGoalAttempt,
		CategoryAssist,
		CategoryTurnover,
	}
}

// Label returns a human-readable name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryFieldGoalAttempt:
		return "Shot attempt"
	case CategoryAssist:
		return "Assist"
	case CategoryTurnover:
		return "Turnover"
	case CategoryRebound:
		return "Rebound"
	case CategoryBlock:
		return "Block"
	case CategorySteal:
		return "Steal"
	case CategoryPersonalFoul:
		return "Personal foul"
	default:
		return string(c)
	}
}

// ParseCategory normalizes a context measure string.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range FullGameCategories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", raw)
}

// ParseCategories parses a list, rejecting unknown entries and dropping duplicates.
func ParseCategories(raw []string) ([]Category, error) {
	out := make([]Category, 0, len(raw))
	seen := make(map[Category]struct{}, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		c, err := ParseCategory(r)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}
