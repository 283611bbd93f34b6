package app

import (
	"context"
	"time"

	"nutritrack/internal/domain"
)

// WeightService encapsulates weight-tracking use cases.
type WeightService struct {
	repo     domain.WeightRepository
	profiles domain.ProfileRepository
}

// NewWeightService creates a WeightService backed by the given repositories.
// profiles may be nil, in which case recorded weights do not touch the profile.
func NewWeightService(repo domain.WeightRepository, profiles domain.ProfileRepository) *WeightService {
	return &WeightService{repo: repo, profiles: profiles}
}

// GetTodayWeight returns the latest weight entry for the given local day.
func (s *WeightService) GetTodayWeight(ctx context.Context, userID int64, today string) (*domain.WeightEntry, error) {
	return s.repo.LatestWeightForLocalDay(ctx, userID, today)
}

// RecordWeight validates a measurement given in unit ("kg", "lb", "metric" or
// "imperial"), stores it in kilograms and moves the profile's current weight.
// It returns the latest entry for today after the insert.
func (s *WeightService) RecordWeight(ctx context.Context, userID int64, value float64, unit string) (*domain.WeightEntry, string, error) {
	system, err := domain.ParseUnitSystem(unit)
	if err != nil {
		return nil, "", &domain.ValidationError{Field: "unit", Message: `must be "kg" or "lb"`}
	}
	if err := domain.CheckWeight("value", value, system); err != nil {
		return nil, "", err
	}
	// The pound limits are rounded, so the stored value is checked again.
	kg := domain.WeightToKg(value, system)
	if err := domain.CheckWeight("value", kg, domain.Metric); err != nil {
		return nil, "", err
	}

	now := time.Now()
	today := domain.LocalDay(now)
	if _, err := s.repo.AddWeightEvent(ctx, userID, kg, now); err != nil {
		return nil, today, err
	}
	if err := s.syncProfile(ctx, userID, kg, now); err != nil {
		return nil, today, err
	}
	entry, err := s.repo.LatestWeightForLocalDay(ctx, userID, today)
	return entry, today, err
}

// syncProfile moves the profile's current weight, which drives the calorie
// target and goal progress. Users without a profile are left alone.
func (s *WeightService) syncProfile(ctx context.Context, userID int64, kg float64, at time.Time) error {
	if s.profiles == nil {
		return nil
	}
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil || p == nil {
		return err
	}
	return s.profiles.UpdateProfileWeight(ctx, userID, kg, at)
}

// restoreProfile sets the profile weight to the newest remaining event, or to
// the starting weight once the history is empty.
func (s *WeightService) restoreProfile(ctx context.Context, userID int64, at time.Time) error {
	if s.profiles == nil {
		return nil
	}
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil || p == nil {
		return err
	}
	kg := p.StartWeightKg
	recent, err := s.repo.ListRecentWeightEvents(ctx, userID, 1)
	if err != nil {
		return err
	}
	if len(recent) > 0 {
		kg = recent[0].ValueKg
	}
	return s.profiles.UpdateProfileWeight(ctx, userID, kg, at)
}

// ListRecent returns the most recent weight events up to limit.
func (s *WeightService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.WeightEntry, error) {
	return s.repo.ListRecentWeightEvents(ctx, userID, limit)
}

// UndoLast deletes the most recent weight event, moves the profile back to
// the newest remaining weight and returns the new latest entry for today.
func (s *WeightService) UndoLast(ctx context.Context, userID int64) (bool, *domain.WeightEntry, string, error) {
	now := time.Now()
	today := domain.LocalDay(now)
	deleted, err := s.repo.DeleteLatestWeightEvent(ctx, userID)
	if err != nil {
		return false, nil, today, err
	}
	if deleted {
		if err := s.restoreProfile(ctx, userID, now); err != nil {
			return true, nil, today, err
		}
	}
	entry, err := s.repo.LatestWeightForLocalDay(ctx, userID, today)
	return deleted, entry, today, err
}
