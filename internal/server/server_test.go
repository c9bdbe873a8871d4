package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-highlights-service/internal/clutch"
	"github.com/preston-bernstein/nba-highlights-service/internal/config"
	domaingames "github.com/preston-bernstein/nba-highlights-service/internal/domain/games"
	domainhighlights "github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
	"github.com/preston-bernstein/nba-highlights-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-highlights-service/internal/metrics"
	"github.com/preston-bernstein/nba-highlights-service/internal/teststubs"
	"github.com/preston-bernstein/nba-highlights-service/internal/testutil"
)

func testConfig() config.Config {
	cfg := config.Defaults()
	cfg.Provider = config.ProviderFixture
	cfg.TrackedTeamID = testutil.SampleTeamID
	cfg.Season = "2024-25"
	cfg.Categories = domainhighlights.FullGameCategories()
	cfg.ClutchCategories = domainhighlights.ClutchCategories()
	cfg.FullGameDelay = 0
	cfg.ClutchDelay = 0
	cfg.Metrics.Enabled = false
	return cfg
}

func TestServerServesHealthGamesAndHighlights(t *testing.T) {
	cfg := testConfig()
	stub := &teststubs.StubProvider{
		Schedule: []domaingames.Game{testutil.SampleGame("g1", "2024-12-01")},
		Actions: []clutch.Action{
			{Number: 20, Period: 4, Clock: "PT02M00.00S", PersonID: 99},
		},
		Video: map[teststubs.VideoKey][]domainhighlights.Event{
			{PlayerID: cfg.TrackedPlayerID, Category: domainhighlights.CategoryFieldGoalAttempt, TeamID: cfg.TrackedTeamID}: teststubs.Events(domainhighlights.CategoryFieldGoalAttempt, 10),
			{PlayerID: 99, Category: domainhighlights.CategoryAssist, TeamID: 0}:                                                teststubs.Events(domainhighlights.CategoryAssist, 20, 21),
		},
	}
	rec, _ := testutil.NewRecorderWithShutdown()
	srv := newServerWithMetrics(cfg, nil, stub, rec)
	h := srv.Handler()

	rr := testutil.Serve(h, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(h, http.MethodGet, "/games", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var gamesResp domaingames.GamesResponse
	testutil.DecodeJSON(t, rr, &gamesResp)
	if len(gamesResp.Games) != 1 || gamesResp.Games[0].ID != "g1" {
		t.Fatalf("unexpected games payload %+v", gamesResp)
	}

	rr = testutil.Serve(h, http.MethodGet, "/games/g1/highlights", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header from middleware")
	}
	var hl handlers.HighlightsResponse
	if err := json.NewDecoder(rr.Body).Decode(&hl); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(hl.Events) != 2 || hl.Events[0].EventID != 10 || hl.Events[1].EventID != 20 {
		t.Fatalf("expected events [10 20], got %+v", hl.Events)
	}
	if rec.Aggregations().Runs != 1 {
		t.Fatalf("expected aggregation recorded")
	}
}

func TestServerUsesFixtureProviderEndToEnd(t *testing.T) {
	cfg := testConfig()
	rec := metrics.NewRecorder()
	srv := newServerWithMetrics(cfg, nil, nil, rec)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/games/fixture-1/highlights", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var hl handlers.HighlightsResponse
	testutil.DecodeJSON(t, rr, &hl)
	if len(hl.Events) == 0 || !hl.Summary.ClutchAvailable {
		t.Fatalf("expected fixture highlights, got %+v", hl)
	}
	for i := 1; i < len(hl.Events); i++ {
		if hl.Events[i-1].EventID >= hl.Events[i].EventID {
			t.Fatalf("expected ascending unique ids, got %+v", hl.Events)
		}
	}
}

func TestRunShutsDownOnContextCancel(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{AddrVal: ":0", HandlerVal: http.NewServeMux()}
	metricsSrv := &testutil.StubHTTPServer{AddrVal: ":0"}
	logger, _ := testutil.NewBufferLogger()
	srv := newServerWithDeps(testConfig(), logger, httpSrv, metricsSrv)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("run did not return after cancel")
	}
	if httpSrv.ShutdownCalls != 1 || metricsSrv.ShutdownCalls != 1 {
		t.Fatalf("expected both servers shut down, got %d/%d", httpSrv.ShutdownCalls, metricsSrv.ShutdownCalls)
	}
}

func TestRunStopsWhenListenFails(t *testing.T) {
	srv := newServerWithDeps(testConfig(), nil, &testutil.ErrHTTPServer{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("expected listen failure to stop the server")
	}
}

func TestRunIgnoresServerClosed(t *testing.T) {
	httpSrv := &testutil.CloseableHTTPServer{}
	srv := newServerWithDeps(testConfig(), nil, httpSrv, nil)

	ctx, cancel := context.WithCancel(context.Background())
	var stopped atomic.Bool
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, func() { stopped.Store(true) })
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	if stopped.Load() {
		t.Fatalf("ErrServerClosed must not stop the server")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("run did not return after cancel")
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown, got %d calls", httpSrv.ShutdownCalls)
	}
}

func TestGracefulShutdownHonorsTimeout(t *testing.T) {
	orig := shutdownTimeout
	shutdownTimeout = 10 * time.Millisecond
	defer func() { shutdownTimeout = orig }()

	blocking := &testutil.BlockingHTTPServer{AddrVal: ":0", Unblock: make(chan struct{})}
	logger, buf := testutil.NewBufferLogger()
	srv := newServerWithDeps(testConfig(), logger, blocking, nil)

	srv.gracefulShutdown()

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown attempted")
	}
	if buf.Len() == 0 {
		t.Fatalf("expected shutdown failure logged")
	}
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return metrics.NewRecorder(), http.NotFoundHandler(), func(context.Context) error { return nil }, nil
	}

	cfg := testConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: true, Port: "9999"}
	rec, srv, stop := buildMetrics(cfg, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("unexpected metrics addr %s", srv.Addr())
	}
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected /metrics routed to exporter handler, got %d", rr.Code)
	}
}

func TestBuildMetricsHandlesSetupFailure(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := testConfig()
	cfg.Metrics.Enabled = true
	rec, srv, stop := buildMetrics(cfg, nil, nil)
	if rec == nil {
		t.Fatalf("expected fallback recorder even on setup failure")
	}
	if srv != nil || stop != nil {
		t.Fatalf("expected no metrics server on failure")
	}
}

func TestBuildMetricsUsesInjectedRecorder(t *testing.T) {
	rec := metrics.NewRecorder()
	got, srv, stop := buildMetrics(testConfig(), nil, rec)
	if got != rec || srv != nil || stop != nil {
		t.Fatalf("expected injected recorder passthrough")
	}
}
