package domain

import (
	"context"
	"time"
)

// WeightEntry represents a single weight measurement, stored in kilograms.
type WeightEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Day       string    `json:"day"`
	ValueKg   float64   `json:"valueKg"`
	CreatedAt time.Time `json:"createdAt"`
}

// WeightRepository is the port for weight persistence.
type WeightRepository interface {
	AddWeightEvent(ctx context.Context, userID int64, valueKg float64, createdAt time.Time) (int64, error)
	DeleteLatestWeightEvent(ctx context.Context, userID int64) (bool, error)
	LatestWeightForLocalDay(ctx context.Context, userID int64, localDay string) (*WeightEntry, error)
	ListRecentWeightEvents(ctx context.Context, userID int64, limit int) ([]WeightEntry, error)
	// LatestWeightsByLocalDay returns the last entry of each local day from
	// fromDay to toDay inclusive, keyed by day. Days without one are absent.
	LatestWeightsByLocalDay(ctx context.Context, userID int64, fromDay, toDay string) (map[string]WeightEntry, error)
}
