package domain

import (
	"context"
	"time"
)

// MealEntry is a single logged food item.
type MealEntry struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Kcal      int       `json:"kcal"`
	EatenAt   time.Time `json:"eatenAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// MealRepository is the port for meal persistence.
type MealRepository interface {
	AddMeal(ctx context.Context, m MealEntry) error
	DeleteMeal(ctx context.Context, userID int64, id string) (bool, error)
	ListMealsForLocalDay(ctx context.Context, userID int64, localDay string) ([]MealEntry, error)
	// MealDaysSince returns the distinct local days (YYYY-MM-DD) on or after
	// sinceDay that have at least one meal, newest first.
	MealDaysSince(ctx context.Context, userID int64, sinceDay string) ([]string, error)
	// KcalByLocalDay sums meal energy for each local day from fromDay to toDay
	// inclusive.
	KcalByLocalDay(ctx context.Context, userID int64, fromDay, toDay string) (map[string]int, error)
}
