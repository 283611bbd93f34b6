package app

import (
	"context"
	"errors"
	"time"

	"nutritrack/internal/domain"
)

// ErrProfileNotFound is returned when the user has not created a profile yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService manages biometric profiles and derives nutrition plans.
type ProfileService struct {
	repo domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the user's profile or ErrProfileNotFound.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.Profile, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// Exists reports whether the user has completed a profile.
func (s *ProfileService) Exists(ctx context.Context, userID int64) (bool, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

// Save validates the input and creates or replaces the profile. The weight at
// creation time is kept as the starting point for progress tracking.
func (s *ProfileService) Save(ctx context.Context, userID int64, in domain.ProfileInput) (*domain.Profile, error) {
	p, err := in.Normalize()
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.UserID = userID
	p.UpdatedAt = now
	if existing != nil {
		p.CreatedAt = existing.CreatedAt
		p.StartWeightKg = existing.StartWeightKg
	} else {
		p.CreatedAt = now
		p.StartWeightKg = p.WeightKg
	}

	if err := s.repo.SaveProfile(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Plan is everything the dashboard derives from a profile.
type Plan struct {
	domain.NutritionPlan
	BMI               float64            `json:"bmi"`
	BMICategory       domain.BMICategory `json:"bmiCategory"`
	HealthyRange      domain.WeightRange `json:"healthyRange"`
	Unit              domain.UnitSystem  `json:"unit"`
	Weight            float64            `json:"weight"`
	TargetWeight      float64            `json:"targetWeight"`
	WeightLabel       string             `json:"weightLabel"`
	GoalProgress      int                `json:"goalProgress"`
	NearGoal          bool               `json:"nearGoal"`
	RemainingToTarget float64            `json:"remainingToTarget"`
	ActivityFactor    float64            `json:"activityFactor"`
	Goal              domain.Goal        `json:"goal"`
}

// PlanFor derives a Plan from a profile. When unit is empty the profile's
// preferred unit system is used.
func PlanFor(p *domain.Profile, unit domain.UnitSystem) Plan {
	if unit == "" {
		unit = p.UnitSystem
	}
	if unit == "" {
		unit = domain.Metric
	}
	bmi := domain.ComputeBMI(p.WeightKg, p.HeightCm)
	return Plan{
		NutritionPlan:     domain.ComputePlan(p.Metrics()),
		BMI:               bmi,
		BMICategory:       domain.BMICategoryFor(bmi),
		HealthyRange:      domain.HealthyWeightRange(p.HeightCm, p.Sex).In(unit),
		Unit:              unit,
		Weight:            domain.WeightFromKg(p.WeightKg, unit),
		TargetWeight:      domain.WeightFromKg(p.TargetWeightKg, unit),
		WeightLabel:       domain.FormatWeight(p.WeightKg, unit),
		GoalProgress:      domain.GoalProgress(p.WeightKg, p.StartWeightKg, p.TargetWeightKg),
		NearGoal:          domain.IsNearGoal(p.WeightKg, p.TargetWeightKg),
		RemainingToTarget: domain.WeightFromKg(domain.WeightDifference(p.WeightKg, p.TargetWeightKg), unit),
		ActivityFactor:    p.ActivityFactor,
		Goal:              p.Goal,
	}
}

// Plan loads the profile and derives its Plan.
func (s *ProfileService) Plan(ctx context.Context, userID int64, unit domain.UnitSystem) (Plan, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return Plan{}, err
	}
	return PlanFor(p, unit), nil
}
