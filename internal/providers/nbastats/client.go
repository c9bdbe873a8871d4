package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-highlights-service/internal/clutch"
	domaingames "github.com/preston-bernstein/nba-highlights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
	"github.com/preston-bernstein/nba-highlights-service/internal/providers"
)

// Config controls how the client reaches stats.nba.com and the NBA CDN.
type Config struct {
	StatsBaseURL string
	CDNBaseURL   string
	HTTPClient   *http.Client
	UserAgent    string
	LeagueID     string
	SeasonType   string
}

// Client fetches schedule, play-by-play and video asset data and maps them to domain models.
type Client struct {
	statsBaseURL string
	cdnBaseURL   string
	httpClient   httpDoer
	userAgent    string
	leagueID     string
	seasonType   string
	now          func() time.Time
}

var _ providers.DataProvider = (*Client)(nil)

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		statsBaseURL: normalizeBaseURL(cfg.StatsBaseURL, defaultStatsBaseURL),
		cdnBaseURL:   normalizeBaseURL(cfg.CDNBaseURL, defaultCDNBaseURL),
		httpClient:   resolveHTTPClient(cfg.HTTPClient),
		userAgent:    orDefault(cfg.UserAgent, defaultUserAgent),
		leagueID:     orDefault(cfg.LeagueID, defaultLeagueID),
		seasonType:   orDefault(cfg.SeasonType, defaultSeasonType),
		now:          time.Now,
	}
}

// FetchSchedule retrieves every game of the current league schedule.
func (c *Client) FetchSchedule(ctx context.Context) ([]domaingames.Game, error) {
	var payload scheduleResponse
	if err := c.getJSON(ctx, providers.FeedSchedule, c.cdnBaseURL+schedulePath, &payload); err != nil {
		return nil, err
	}
	return mapSchedule(payload), nil
}

// FetchPlayByPlay retrieves the full action log of a game.
func (c *Client) FetchPlayByPlay(ctx context.Context, gameID string) ([]clutch.Action, error) {
	endpoint := c.cdnBaseURL + fmt.Sprintf(playByPlayPath, url.PathEscape(gameID))
	var payload playByPlayResponse
	if err := c.getJSON(ctx, providers.FeedPlayByPlay, endpoint, &payload); err != nil {
		return nil, err
	}
	return mapActions(payload.Game.Actions), nil
}

// FetchVideoEvents retrieves the video assets of one player/category/game query.
func (c *Client) FetchVideoEvents(ctx context.Context, q providers.VideoQuery) ([]highlights.Event, error) {
	endpoint := c.statsBaseURL + videoPath + "?" + c.videoParams(q).Encode()
	var payload videoResponse
	if err := c.getJSON(ctx, providers.FeedVideo, endpoint, &payload); err != nil {
		return nil, err
	}
	return decodeVideoEvents(payload, q.GameID, q.Category), nil
}

func (c *Client) videoParams(q providers.VideoQuery) url.Values {
	params := make(url.Values, len(videoPlaceholderParams)+8)
	for _, key := range videoPlaceholderParams {
		params.Set(key, "")
	}
	params.Set("LeagueID", c.leagueID)
	params.Set("SeasonType", c.seasonType)
	params.Set("Season", q.Season)
	params.Set("ContextMeasure", string(q.Category))
	params.Set("GameID", q.GameID)
	params.Set("PlayerID", strconv.Itoa(q.PlayerID))
	params.Set("TeamID", teamParam(q.Scope))
	return params
}

func (c *Client) getJSON(ctx context.Context, feed, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", feed, err)
	}
	setBrowserHeaders(req, c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", feed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    feed + ": rate limited",
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &providers.StatusError{
			Feed:       feed,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", feed, ctxErr)
		}
		return &providers.DecodeError{Feed: feed, Err: err}
	}
	return nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
