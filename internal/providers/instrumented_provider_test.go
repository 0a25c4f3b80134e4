package providers

import (
	"context"
	"testing"
	"time"

	"github.com/lightscore/nfl-playoff-service/internal/metrics"
)

func TestInstrumentedProviderRecordsCalls(t *testing.T) {
	rec := metrics.NewRecorder()
	fp := &flakeyProvider{}
	ip := NewInstrumentedProvider(fp, "espn", nil, rec)

	if _, err := ip.FetchStandings(context.Background()); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if _, err := ip.FetchScoreboard(context.Background(), WeekQuery{}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if got := rec.ProviderCalls("espn"); got != 2 {
		t.Fatalf("expected 2 recorded calls, got %d", got)
	}
	if got := rec.ProviderErrors("espn"); got != 0 {
		t.Fatalf("expected no errors, got %d", got)
	}
}

func TestInstrumentedProviderRecordsErrors(t *testing.T) {
	rec := metrics.NewRecorder()
	fp := &flakeyProvider{failures: 1}
	ip := NewInstrumentedProvider(fp, "espn", nil, rec)

	if _, err := ip.FetchBracket(context.Background(), 2024); err == nil {
		t.Fatal("expected error from provider")
	}

	if got := rec.ProviderErrors("espn"); got != 1 {
		t.Fatalf("expected 1 recorded error, got %d", got)
	}
}

func TestInstrumentedProviderRecordsRateLimits(t *testing.T) {
	rec := metrics.NewRecorder()
	fp := &flakeyProvider{
		failures: 1,
		err:      &RateLimitError{Provider: "espn", StatusCode: 429, RetryAfter: 45 * time.Second},
	}
	ip := NewInstrumentedProvider(fp, "espn", nil, rec)

	if _, err := ip.FetchStandings(context.Background()); err == nil {
		t.Fatal("expected rate limit error")
	}

	if got := rec.RateLimitHits("espn"); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", got)
	}
	if got := rec.LastRetryAfter("espn"); got != 45*time.Second {
		t.Fatalf("expected retry-after 45s, got %s", got)
	}
}
