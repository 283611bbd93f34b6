package app

import (
	"context"
	"errors"
	"time"

	"nutritrack/internal/domain"
)

// DashboardService assembles the daily overview.
type DashboardService struct {
	profiles *ProfileService
	meals    *MealService
	water    *WaterService
}

// NewDashboardService wires the services the dashboard reads from.
func NewDashboardService(p *ProfileService, m *MealService, w *WaterService) *DashboardService {
	return &DashboardService{profiles: p, meals: m, water: w}
}

// Dashboard is the day's state for one user.
type Dashboard struct {
	Day              string             `json:"day"`
	Plan             *Plan              `json:"plan"`
	Meals            []domain.MealEntry `json:"meals"`
	CaloriesConsumed int                `json:"caloriesConsumed"`
	CaloriesLeft     int                `json:"caloriesLeft"`
	CalorieProgress  int                `json:"calorieProgress"`
	Water            WaterDay           `json:"water"`
	Streak           int                `json:"streak"`
	Tip              domain.Tip         `json:"tip"`
}

// Today builds the dashboard for the given local day. Plan is nil when the
// user has no profile yet.
func (s *DashboardService) Today(ctx context.Context, userID int64, day string, unit domain.UnitSystem) (*Dashboard, error) {
	d := &Dashboard{Day: day}

	plan, err := s.profiles.Plan(ctx, userID, unit)
	switch {
	case errors.Is(err, ErrProfileNotFound):
		// no profile yet; the client shows the profile form
	case err != nil:
		return nil, err
	default:
		d.Plan = &plan
	}

	meals, consumed, err := s.meals.ListDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	d.Meals = meals
	d.CaloriesConsumed = consumed
	if d.Plan != nil {
		d.CaloriesLeft = d.Plan.CalorieTarget - consumed
		d.CalorieProgress = domain.CalorieProgress(consumed, d.Plan.CalorieTarget)
	}

	if d.Water, err = s.water.Day(ctx, userID, day); err != nil {
		return nil, err
	}
	if d.Streak, err = s.meals.Streak(ctx, userID, day); err != nil {
		return nil, err
	}

	goal := domain.Maintain
	if d.Plan != nil {
		goal = d.Plan.Goal
	}
	d.Tip = domain.TipFor(goal, time.Now().Hour())
	return d, nil
}
