package app

import (
	"context"
	"fmt"
	"math"
	"time"

	"nutritrack/internal/domain"
)

// WaterService tracks daily hydration against domain.DailyWaterGoalLiters.
type WaterService struct {
	repo domain.WaterRepository
}

func NewWaterService(repo domain.WaterRepository) *WaterService {
	return &WaterService{repo: repo}
}

// WaterDay is one day's intake measured against the goal.
type WaterDay struct {
	Day         string  `json:"day"`
	TotalLiters float64 `json:"totalLiters"`
	GoalLiters  float64 `json:"goalLiters"`
	Progress    int     `json:"progress"`
	GoalReached bool    `json:"goalReached"`
}

func newWaterDay(day string, total float64) WaterDay {
	return WaterDay{
		Day:         day,
		TotalLiters: total,
		GoalLiters:  domain.DailyWaterGoalLiters,
		Progress:    domain.WaterProgress(total, domain.DailyWaterGoalLiters),
		GoalReached: total >= domain.DailyWaterGoalLiters,
	}
}

// WaterIntake is the result of logging water: the stored event id, the
// updated day and whether this event pushed the day over the goal.
type WaterIntake struct {
	ID int64 `json:"id"`
	WaterDay
	GoalJustReached bool `json:"goalJustReached"`
}

// Day returns the intake for a local day.
func (s *WaterService) Day(ctx context.Context, userID int64, day string) (WaterDay, error) {
	total, err := s.repo.WaterTotalForLocalDay(ctx, userID, day)
	if err != nil {
		return WaterDay{}, err
	}
	return newWaterDay(day, total), nil
}

// AddIntake logs a signed amount of water for today. Amounts must be non-zero
// and at most domain.MaxWaterEventLiters either way.
func (s *WaterService) AddIntake(ctx context.Context, userID int64, deltaLiters float64) (WaterIntake, error) {
	if deltaLiters == 0 || math.IsNaN(deltaLiters) || math.Abs(deltaLiters) > domain.MaxWaterEventLiters {
		return WaterIntake{}, &domain.ValidationError{
			Field:   "deltaLiters",
			Message: fmt.Sprintf("must be non-zero and within [-%g, %g]", domain.MaxWaterEventLiters, domain.MaxWaterEventLiters),
		}
	}

	now := time.Now()
	today := domain.LocalDay(now)
	before, err := s.repo.WaterTotalForLocalDay(ctx, userID, today)
	if err != nil {
		return WaterIntake{}, err
	}
	id, err := s.repo.AddWaterEvent(ctx, userID, deltaLiters, now)
	if err != nil {
		return WaterIntake{}, err
	}
	day := newWaterDay(today, before+deltaLiters)
	return WaterIntake{
		ID:              id,
		WaterDay:        day,
		GoalJustReached: day.GoalReached && before < domain.DailyWaterGoalLiters,
	}, nil
}

// ResetDay zeroes today's intake by logging a compensating event, so the
// history stays intact and the reset itself can be undone.
func (s *WaterService) ResetDay(ctx context.Context, userID int64) (WaterDay, error) {
	now := time.Now()
	today := domain.LocalDay(now)
	total, err := s.repo.WaterTotalForLocalDay(ctx, userID, today)
	if err != nil {
		return WaterDay{}, err
	}
	if total != 0 {
		if _, err := s.repo.AddWaterEvent(ctx, userID, -total, now); err != nil {
			return WaterDay{}, err
		}
	}
	return newWaterDay(today, 0), nil
}

// ListRecent returns up to limit events, newest first.
func (s *WaterService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.WaterEvent, error) {
	return s.repo.ListRecentWaterEvents(ctx, userID, limit)
}

// UndoLast removes the newest event and reports today's intake afterwards.
// The returned event is nil when there was nothing to undo.
func (s *WaterService) UndoLast(ctx context.Context, userID int64) (*domain.WaterEvent, WaterDay, error) {
	removed, err := s.repo.DeleteLatestWaterEvent(ctx, userID)
	if err != nil {
		return nil, WaterDay{}, err
	}
	day, err := s.Day(ctx, userID, domain.LocalDay(time.Now()))
	return removed, day, err
}
