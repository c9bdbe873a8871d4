package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
	"github.com/preston-bernstein/nba-highlights-service/internal/timeutil"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port      string `koanf:"port"`
	Provider  string `koanf:"provider"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	StatsBaseURL string `koanf:"stats_base_url"`
	CDNBaseURL   string `koanf:"cdn_base_url"`
	UserAgent    string `koanf:"user_agent"`

	TrackedPlayerID int    `koanf:"tracked_player_id"`
	TrackedTeamID   int    `koanf:"tracked_team_id"`
	Season          string `koanf:"season"`

	ScheduleTimeout   time.Duration `koanf:"schedule_timeout"`
	PlayByPlayTimeout time.Duration `koanf:"playbyplay_timeout"`
	VideoTimeout      time.Duration `koanf:"video_timeout"`
	FullGameDelay     time.Duration `koanf:"full_game_delay"`
	ClutchDelay       time.Duration `koanf:"clutch_delay"`
	ParticipantCap    int           `koanf:"participant_cap"`

	CategoryNames       []string `koanf:"categories"`
	ClutchCategoryNames []string `koanf:"clutch_categories"`

	// Parsed from CategoryNames and ClutchCategoryNames.
	Categories       []highlights.Category `koanf:"-"`
	ClutchCategories []highlights.Category `koanf:"-"`

	RetryAttempts int           `koanf:"retry_attempts"`
	RetryBackoff  time.Duration `koanf:"retry_backoff"`

	Metrics MetricsConfig `koanf:",squash"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Port:              defaultPort,
		Provider:          defaultProvider,
		LogLevel:          defaultLogLevel,
		LogFormat:         defaultLogFormat,
		TrackedPlayerID:   defaultTrackedPlayerID,
		TrackedTeamID:     defaultTrackedTeamID,
		ScheduleTimeout:   defaultScheduleTimeout,
		PlayByPlayTimeout: defaultPlayByPlayTimeout,
		VideoTimeout:      defaultVideoTimeout,
		FullGameDelay:     defaultFullGameDelay,
		ClutchDelay:       defaultClutchDelay,
		ParticipantCap:    defaultParticipantCap,
		RetryAttempts:     defaultRetryAttempts,
		RetryBackoff:      defaultRetryBackoff,
		Metrics: MetricsConfig{
			Enabled:      defaultMetricsEnabled,
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: defaultOtlpInsecure,
		},
	}
}

// Load builds a Config by layering defaults, an optional YAML file named by
// HIGHLIGHTS_CONFIG, and HIGHLIGHTS_* environment variables (highest wins).
func Load() (Config, error) {
	return load(time.Now())
}

func load(now time.Time) (Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(envConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// HIGHLIGHTS_VIDEO_TIMEOUT -> video_timeout
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := Defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.finalize(now); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// finalize fills derived fields and validates the result.
func (c *Config) finalize(now time.Time) error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	c.Season = strings.TrimSpace(c.Season)
	if c.Season == "" {
		c.Season = timeutil.SeasonFor(now)
	}

	var err error
	if c.Categories, err = parseCategoryList(c.CategoryNames, highlights.FullGameCategories()); err != nil {
		return fmt.Errorf("%w: categories: %v", ErrInvalidConfig, err)
	}
	if c.ClutchCategories, err = parseCategoryList(c.ClutchCategoryNames, highlights.ClutchCategories()); err != nil {
		return fmt.Errorf("%w: clutch_categories: %v", ErrInvalidConfig, err)
	}

	return c.validate()
}

func (c Config) validate() error {
	switch {
	case strings.TrimSpace(c.Port) == "":
		return fmt.Errorf("%w: port must not be empty", ErrInvalidConfig)
	case c.Provider != ProviderNBAStats && c.Provider != ProviderFixture:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, c.Provider)
	case c.TrackedPlayerID <= 0:
		return fmt.Errorf("%w: tracked_player_id must be positive", ErrInvalidConfig)
	case c.TrackedTeamID <= 0:
		return fmt.Errorf("%w: tracked_team_id must be positive", ErrInvalidConfig)
	case c.ScheduleTimeout <= 0 || c.PlayByPlayTimeout <= 0 || c.VideoTimeout <= 0:
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidConfig)
	case c.FullGameDelay < 0 || c.ClutchDelay < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	case c.RetryAttempts < 1:
		return fmt.Errorf("%w: retry_attempts must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// parseCategoryList falls back to defaults when nothing was configured.
func parseCategoryList(names []string, defaults []highlights.Category) ([]highlights.Category, error) {
	parsed, err := highlights.ParseCategories(splitList(names))
	if err != nil {
		return nil, err
	}
	if len(parsed) == 0 {
		return defaults, nil
	}
	return parsed, nil
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}
