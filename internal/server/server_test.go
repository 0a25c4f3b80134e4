package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lightscore/nfl-playoff-service/internal/config"
	"github.com/lightscore/nfl-playoff-service/internal/metrics"
	"github.com/lightscore/nfl-playoff-service/internal/providers/fixture"
	"github.com/lightscore/nfl-playoff-service/internal/teststubs"
)

func testConfig() config.Config {
	return config.Config{
		Port:         "0",
		PollInterval: config.Duration(time.Hour),
		Provider:     "fixture",
		Metrics:      config.MetricsConfig{Enabled: false},
	}
}

func TestNewServerServesHealth(t *testing.T) {
	srv := New(testConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rec.Code)
	}
}

func TestServerServesPictureAfterWarmFetch(t *testing.T) {
	provider := fixture.New()
	srv := newServerWithProvider(testConfig(), nil, provider)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv.poller.Start(ctx)

	deadline := time.After(2 * time.Second)
	for {
		if _, ok := srv.store.Standings(); ok {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for warm fetch")
		case <-time.After(10 * time.Millisecond):
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/playoffs/picture", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /playoffs/picture, got %d", rec.Code)
	}

	_ = srv.poller.Stop(context.Background())
}

func TestServerRunShutsDownOnCancel(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, &teststubs.StubProvider{})

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, stop)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after cancel")
	}
}

func TestBuildMetricsFailureFallsBackToPlainRecorder(t *testing.T) {
	original := metricsSetup
	defer func() { metricsSetup = original }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("exporter down")
	}

	rec, metricsSrv, shutdown := buildMetrics(testConfig(), nil)
	if rec == nil {
		t.Fatal("expected fallback recorder")
	}
	if metricsSrv != nil || shutdown != nil {
		t.Fatal("expected no metrics server on setup failure")
	}
}

func TestSelectProviderFallsBackToFixture(t *testing.T) {
	cfg := testConfig()
	cfg.Provider = "mystery"

	if _, ok := selectProvider(cfg, nil).(*fixture.Provider); !ok {
		t.Fatal("expected fixture fallback for unknown provider")
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("espn"); got != "espn" {
		t.Fatalf("expected espn, got %q", got)
	}
	if got := normalizeProviderName("anything"); got != "fixture" {
		t.Fatalf("expected fixture, got %q", got)
	}
	if got := normalizeProviderName(""); got != "fixture" {
		t.Fatalf("expected fixture for empty name, got %q", got)
	}
}
