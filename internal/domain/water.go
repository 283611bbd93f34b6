package domain

import (
	"context"
	"time"
)

// Hydration is tracked as an append-only log of signed intake events; a day's
// intake is the sum of its events.
const (
	DailyWaterGoalLiters = 2.5
	MaxWaterEventLiters  = 2.0
)

// WaterEvent is a signed change to the day's water intake.
type WaterEvent struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	DeltaLiters float64   `json:"deltaLiters"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WaterRepository is the port for water persistence.
type WaterRepository interface {
	AddWaterEvent(ctx context.Context, userID int64, deltaLiters float64, createdAt time.Time) (int64, error)
	// DeleteLatestWaterEvent removes and returns the user's newest event, or
	// nil when there is none.
	DeleteLatestWaterEvent(ctx context.Context, userID int64) (*WaterEvent, error)
	ListRecentWaterEvents(ctx context.Context, userID int64, limit int) ([]WaterEvent, error)
	WaterTotalForLocalDay(ctx context.Context, userID int64, localDay string) (float64, error)
	// WaterTotalsByLocalDay sums each local day from fromDay to toDay inclusive.
	WaterTotalsByLocalDay(ctx context.Context, userID int64, fromDay, toDay string) (map[string]float64, error)
}

// LocalDay formats t as a YYYY-MM-DD day in the server's local time zone.
func LocalDay(t time.Time) string {
	return t.In(time.Local).Format(time.DateOnly)
}
