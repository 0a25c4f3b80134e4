package schedule

import (
	"context"
	"errors"
	"testing"

	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	"github.com/lightscore/nfl-playoff-service/internal/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/providers"
	"github.com/lightscore/nfl-playoff-service/internal/store"
	"github.com/lightscore/nfl-playoff-service/internal/teststubs"
)

func storedWeek() domaingames.WeeklyResponse {
	return domaingames.WeeklyResponse{
		Context: domaingames.WeekContext{Year: 2024, Week: 15, SeasonType: playoffs.SeasonTypeRegular},
		Games: []domaingames.WeeklyGame{
			{TeamA: "Houston Texans", TeamB: "Kansas City Chiefs", Status: domaingames.StateFinal},
		},
	}
}

func TestWeeklyServesStoreForCurrentWeek(t *testing.T) {
	st := store.NewMemoryStore()
	st.SetWeekly(storedWeek())
	provider := &teststubs.StubProvider{}

	svc := NewService(st, provider)
	resp, err := svc.Weekly(context.Background(), providers.WeekQuery{})
	if err != nil {
		t.Fatalf("expected stored week, got %v", err)
	}
	if resp.Context.Week != 15 {
		t.Fatalf("unexpected context %+v", resp.Context)
	}
	if provider.ScoreboardCalls.Load() != 0 {
		t.Fatal("current week must not hit the provider")
	}
}

func TestWeeklyExplicitQueryGoesThroughProvider(t *testing.T) {
	st := store.NewMemoryStore()
	st.SetWeekly(storedWeek())
	provider := &teststubs.StubProvider{
		Weekly: domaingames.WeeklyResponse{
			Context: domaingames.WeekContext{Year: 2023, Week: 3, SeasonType: playoffs.SeasonTypeRegular},
		},
	}

	svc := NewService(st, provider)
	resp, err := svc.Weekly(context.Background(), providers.WeekQuery{Year: 2023, Week: 3, SeasonType: 2})
	if err != nil {
		t.Fatalf("expected provider week, got %v", err)
	}
	if resp.Context.Year != 2023 {
		t.Fatalf("unexpected context %+v", resp.Context)
	}
	if provider.ScoreboardCalls.Load() != 1 {
		t.Fatal("explicit query must hit the provider")
	}
}

func TestWeeklyColdStoreFallsBackToProvider(t *testing.T) {
	provider := &teststubs.StubProvider{Weekly: storedWeek()}
	svc := NewService(store.NewMemoryStore(), provider)

	resp, err := svc.Weekly(context.Background(), providers.WeekQuery{})
	if err != nil {
		t.Fatalf("expected provider fallback, got %v", err)
	}
	if resp.Context.Week != 15 {
		t.Fatalf("unexpected context %+v", resp.Context)
	}
	if provider.ScoreboardCalls.Load() != 1 {
		t.Fatal("cold store should fall back to the provider")
	}
}

func TestWeeklyUnavailableWithoutProvider(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), nil)
	if _, err := svc.Weekly(context.Background(), providers.WeekQuery{}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestContextReportsStoredSnapshot(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st, nil)

	if _, ok := svc.Context(); ok {
		t.Fatal("expected no context before first refresh")
	}

	st.SetWeekly(storedWeek())
	ctx, ok := svc.Context()
	if !ok || ctx.Year != 2024 || ctx.Week != 15 {
		t.Fatalf("unexpected context %+v ok=%v", ctx, ok)
	}
}

func TestNavigateClampsAndSteps(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), nil)

	next, err := svc.Navigate(domaingames.WeekContext{Year: 2024, Week: 18, SeasonType: playoffs.SeasonTypeRegular}, "next")
	if err != nil {
		t.Fatalf("navigate failed: %v", err)
	}
	if next.SeasonType != playoffs.SeasonTypePostseason || next.Week != 1 {
		t.Fatalf("expected postseason week 1, got %+v", next)
	}

	// Implausible year is clamped before navigating.
	next, err = svc.Navigate(domaingames.WeekContext{Year: 9999, Week: 1, SeasonType: playoffs.SeasonTypeRegular}, "next")
	if err != nil {
		t.Fatalf("navigate failed: %v", err)
	}
	if next.Year != 2025 {
		t.Fatalf("expected clamped year, got %+v", next)
	}

	if _, err := svc.Navigate(domaingames.WeekContext{Year: 2024, Week: 1, SeasonType: 2}, "sideways"); err == nil {
		t.Fatal("expected error for bad direction")
	}
}
