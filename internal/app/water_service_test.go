package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nutritrack/internal/adapter/memory"
	"nutritrack/internal/app"
	"nutritrack/internal/domain"
)

type mockWaterRepo struct {
	addFn          func(ctx context.Context, userID int64, d float64, t time.Time) (int64, error)
	deleteLatestFn func(ctx context.Context, userID int64) (*domain.WaterEvent, error)
	listFn         func(ctx context.Context, userID int64, limit int) ([]domain.WaterEvent, error)
	totalFn        func(ctx context.Context, userID int64, day string) (float64, error)
	totalsFn       func(ctx context.Context, userID int64, from, to string) (map[string]float64, error)
}

func (m *mockWaterRepo) AddWaterEvent(ctx context.Context, userID int64, d float64, t time.Time) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, userID, d, t)
	}
	return 0, nil
}

func (m *mockWaterRepo) DeleteLatestWaterEvent(ctx context.Context, userID int64) (*domain.WaterEvent, error) {
	if m.deleteLatestFn != nil {
		return m.deleteLatestFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockWaterRepo) ListRecentWaterEvents(ctx context.Context, userID int64, limit int) ([]domain.WaterEvent, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockWaterRepo) WaterTotalForLocalDay(ctx context.Context, userID int64, day string) (float64, error) {
	if m.totalFn != nil {
		return m.totalFn(ctx, userID, day)
	}
	return 0, nil
}

func (m *mockWaterRepo) WaterTotalsByLocalDay(ctx context.Context, userID int64, from, to string) (map[string]float64, error) {
	if m.totalsFn != nil {
		return m.totalsFn(ctx, userID, from, to)
	}
	return nil, nil
}

func TestAddIntake_Validation(t *testing.T) {
	called := false
	svc := app.NewWaterService(&mockWaterRepo{
		addFn: func(context.Context, int64, float64, time.Time) (int64, error) {
			called = true
			return 1, nil
		},
	})

	for _, delta := range []float64{0, 2.5, -2.01, 100} {
		_, err := svc.AddIntake(context.Background(), 1, delta)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) || verr.Field != "deltaLiters" {
			t.Errorf("AddIntake(%v) error = %v, want deltaLiters validation error", delta, err)
		}
	}
	if called {
		t.Fatal("invalid amounts must not reach the repository")
	}
}

func TestAddIntake_Boundaries(t *testing.T) {
	svc := app.NewWaterService(&mockWaterRepo{})
	for _, delta := range []float64{2.0, -2.0, 0.1} {
		if _, err := svc.AddIntake(context.Background(), 1, delta); err != nil {
			t.Errorf("AddIntake(%v) unexpected error: %v", delta, err)
		}
	}
}

func TestAddIntake_GoalJustReached(t *testing.T) {
	tests := []struct {
		name         string
		before       float64
		delta        float64
		wantJust     bool
		wantReach    bool
		wantProgress int
	}{
		{"below goal", 0.5, 0.25, false, false, 30},
		{"crosses goal", 2.25, 0.5, true, true, 100},
		{"lands on goal", 2.0, 0.5, true, true, 100},
		{"already over", 2.5, 0.25, false, true, 100},
		{"drops below", 2.75, -0.5, false, false, 90},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stored float64
			svc := app.NewWaterService(&mockWaterRepo{
				totalFn: func(context.Context, int64, string) (float64, error) { return tc.before, nil },
				addFn: func(_ context.Context, _ int64, d float64, _ time.Time) (int64, error) {
					stored = d
					return 9, nil
				},
			})
			got, err := svc.AddIntake(context.Background(), 1, tc.delta)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stored != tc.delta || got.ID != 9 {
				t.Fatalf("stored %v with id %d", stored, got.ID)
			}
			if got.GoalJustReached != tc.wantJust || got.GoalReached != tc.wantReach {
				t.Errorf("just=%v reached=%v, want %v %v", got.GoalJustReached, got.GoalReached, tc.wantJust, tc.wantReach)
			}
			if got.Progress != tc.wantProgress {
				t.Errorf("progress = %d, want %d", got.Progress, tc.wantProgress)
			}
		})
	}
}

func TestAddIntake_RepoError(t *testing.T) {
	svc := app.NewWaterService(&mockWaterRepo{
		totalFn: func(context.Context, int64, string) (float64, error) { return 0, errors.New("db down") },
	})
	if _, err := svc.AddIntake(context.Background(), 1, 0.5); err == nil {
		t.Fatal("expected error")
	}
}

func TestWaterDay(t *testing.T) {
	svc := app.NewWaterService(&mockWaterRepo{
		totalFn: func(_ context.Context, _ int64, day string) (float64, error) {
			if day != "2026-02-08" {
				t.Fatalf("unexpected day: %s", day)
			}
			return 1.25, nil
		},
	})
	day, err := svc.Day(context.Background(), 1, "2026-02-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := app.WaterDay{Day: "2026-02-08", TotalLiters: 1.25, GoalLiters: domain.DailyWaterGoalLiters, Progress: 50}
	if day != want {
		t.Fatalf("Day() = %+v, want %+v", day, want)
	}
}

func TestWaterResetAndUndo(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	svc := app.NewWaterService(db)

	for _, d := range []float64{1.0, 0.75} {
		if _, err := svc.AddIntake(ctx, 1, d); err != nil {
			t.Fatalf("AddIntake: %v", err)
		}
	}

	day, err := svc.ResetDay(ctx, 1)
	if err != nil {
		t.Fatalf("ResetDay: %v", err)
	}
	if day.TotalLiters != 0 {
		t.Fatalf("total after reset = %v", day.TotalLiters)
	}
	events, _ := svc.ListRecent(ctx, 1, 10)
	if len(events) != 3 || events[0].DeltaLiters != -1.75 {
		t.Fatalf("expected compensating event, got %+v", events)
	}

	removed, day, err := svc.UndoLast(ctx, 1)
	if err != nil {
		t.Fatalf("UndoLast: %v", err)
	}
	if removed == nil || removed.DeltaLiters != -1.75 {
		t.Fatalf("removed = %+v", removed)
	}
	if day.TotalLiters != 1.75 {
		t.Fatalf("total after undoing reset = %v", day.TotalLiters)
	}
}

func TestWaterReset_EmptyDayLogsNothing(t *testing.T) {
	svc := app.NewWaterService(&mockWaterRepo{
		addFn: func(context.Context, int64, float64, time.Time) (int64, error) {
			t.Fatal("reset of an empty day must not log an event")
			return 0, nil
		},
	})
	if _, err := svc.ResetDay(context.Background(), 1); err != nil {
		t.Fatalf("ResetDay: %v", err)
	}
}

func TestWaterUndoLast_Nothing(t *testing.T) {
	svc := app.NewWaterService(&mockWaterRepo{})
	removed, day, err := svc.UndoLast(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != nil || day.TotalLiters != 0 {
		t.Fatalf("removed=%v day=%+v", removed, day)
	}
}
