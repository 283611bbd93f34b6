package app

import (
	"context"
	"time"

	"nutritrack/internal/domain"
)

const maxChartDays = 366

// ChartsService assembles per-day history for the trend charts.
type ChartsService struct {
	weights domain.WeightRepository
	water   domain.WaterRepository
	meals   domain.MealRepository
}

// NewChartsService wires the chart sources. meals may be nil, in which case
// the calorie series stays at zero.
func NewChartsService(weights domain.WeightRepository, water domain.WaterRepository, meals domain.MealRepository) *ChartsService {
	return &ChartsService{weights: weights, water: water, meals: meals}
}

// DayPoint is one day of chart history.
type DayPoint struct {
	Day         string       `json:"day"`
	WaterLiters float64      `json:"waterLiters"`
	Calories    int          `json:"calories"`
	Weight      *WeightPoint `json:"weight"`
}

// WeightPoint is the day's last weigh-in, absent on days without one.
type WeightPoint struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// GetDaily returns the last days days ending today, oldest first, with
// weights in unit. days is clamped to [1, 366]. Each series is read with a
// single range query.
func (s *ChartsService) GetDaily(ctx context.Context, userID int64, days int, unit domain.UnitSystem) ([]DayPoint, error) {
	days = max(1, min(days, maxChartDays))
	today := time.Now()
	from, to := domain.LocalDay(today.AddDate(0, 0, 1-days)), domain.LocalDay(today)

	water, err := s.water.WaterTotalsByLocalDay(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	weights, err := s.weights.LatestWeightsByLocalDay(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	var kcal map[string]int
	if s.meals != nil {
		if kcal, err = s.meals.KcalByLocalDay(ctx, userID, from, to); err != nil {
			return nil, err
		}
	}

	points := make([]DayPoint, days)
	for i := range points {
		day := domain.LocalDay(today.AddDate(0, 0, i-days+1))
		p := DayPoint{Day: day, WaterLiters: water[day], Calories: kcal[day]}
		if e, ok := weights[day]; ok {
			p.Weight = &WeightPoint{Value: domain.WeightFromKg(e.ValueKg, unit), Unit: unit.WeightLabel()}
		}
		points[i] = p
	}
	return points, nil
}
