package app

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"nutritrack/internal/domain"

	"github.com/google/uuid"
)

const (
	minMealNameLen = 2
	maxMealNameLen = 50
	maxMealKcal    = 3000
)

// ErrMealNotFound is returned when deleting a meal that does not exist.
var ErrMealNotFound = errors.New("meal not found")

// MealService encapsulates meal logging use cases.
type MealService struct {
	repo domain.MealRepository
}

// NewMealService creates a MealService backed by the given repository.
func NewMealService(repo domain.MealRepository) *MealService {
	return &MealService{repo: repo}
}

// LogMeal validates and stores a meal eaten now.
func (s *MealService) LogMeal(ctx context.Context, userID int64, name string, kcal int) (*domain.MealEntry, error) {
	name = strings.TrimSpace(name)
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		return nil, &domain.ValidationError{Field: "name", Message: "enter the food name"}
	case n < minMealNameLen:
		return nil, &domain.ValidationError{Field: "name", Message: "name too short"}
	case n > maxMealNameLen:
		return nil, &domain.ValidationError{Field: "name", Message: "name too long (max 50 characters)"}
	}
	if kcal < 0 || kcal > maxMealKcal {
		return nil, &domain.ValidationError{Field: "kcal", Message: "calories must be between 0 and 3000"}
	}

	now := time.Now().UTC()
	m := domain.MealEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Kcal:      kcal,
		EatenAt:   now,
		CreatedAt: now,
	}
	if err := s.repo.AddMeal(ctx, m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete removes one of the user's meals.
func (s *MealService) Delete(ctx context.Context, userID int64, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrMealNotFound
	}
	ok, err := s.repo.DeleteMeal(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMealNotFound
	}
	return nil
}

// ListDay returns the meals logged on a local day and their calorie total.
func (s *MealService) ListDay(ctx context.Context, userID int64, day string) ([]domain.MealEntry, int, error) {
	meals, err := s.repo.ListMealsForLocalDay(ctx, userID, day)
	if err != nil {
		return nil, 0, err
	}
	total := 0
	for _, m := range meals {
		total += m.Kcal
	}
	return meals, total, nil
}

// Streak counts consecutive days with at least one meal, ending on today.
// A day without meals yet does not break a streak that ended yesterday.
func (s *MealService) Streak(ctx context.Context, userID int64, today string) (int, error) {
	day, err := time.ParseInLocation("2006-01-02", today, time.Local)
	if err != nil {
		return 0, err
	}
	since := day.AddDate(0, 0, -maxChartDays).Format("2006-01-02")
	days, err := s.repo.MealDaysSince(ctx, userID, since)
	if err != nil {
		return 0, err
	}
	logged := make(map[string]bool, len(days))
	for _, d := range days {
		logged[d] = true
	}

	if !logged[today] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for logged[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}
