package highlights

import (
	"time"

	domainhighlights "github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
)

const (
	defaultParticipantCap    = 8
	defaultPlayByPlayTimeout = 10 * time.Second
	defaultVideoTimeout      = 15 * time.Second
	defaultFullGameDelay     = 500 * time.Millisecond
	defaultClutchDelay       = 100 * time.Millisecond
)

// NoDelay disables the pause between upstream calls of a phase.
const NoDelay time.Duration = -1

// Config is the read-only tuning of one Aggregator.
type Config struct {
	PlayerID int
	TeamID   int
	Season   string

	Categories       []domainhighlights.Category
	ClutchCategories []domainhighlights.Category

	// ParticipantCap bounds the clutch fan-out. Zero selects the default,
	// a negative value fans out to every participant.
	ParticipantCap int

	// Pauses between consecutive upstream calls of each phase. Zero selects
	// the default, a negative value (NoDelay) sends calls back to back.
	FullGameDelay time.Duration
	ClutchDelay   time.Duration

	PlayByPlayTimeout time.Duration
	VideoTimeout      time.Duration
}

func (c Config) withDefaults() Config {
	if len(c.Categories) == 0 {
		c.Categories = domainhighlights.FullGameCategories()
	}
	if len(c.ClutchCategories) == 0 {
		c.ClutchCategories = domainhighlights.ClutchCategories()
	}
	if c.ParticipantCap == 0 {
		c.ParticipantCap = defaultParticipantCap
	}
	if c.FullGameDelay == 0 {
		c.FullGameDelay = defaultFullGameDelay
	}
	if c.ClutchDelay == 0 {
		c.ClutchDelay = defaultClutchDelay
	}
	if c.PlayByPlayTimeout <= 0 {
		c.PlayByPlayTimeout = defaultPlayByPlayTimeout
	}
	if c.VideoTimeout <= 0 {
		c.VideoTimeout = defaultVideoTimeout
	}
	return c
}
