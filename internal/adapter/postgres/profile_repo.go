package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"nutritrack/internal/domain"
)

// GetProfile returns the user's profile, or nil if none was saved.
func (d *DB) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	p := domain.Profile{UserID: userID}
	var sex, goal, unit string
	err := d.sql.QueryRowContext(ctx,
		`SELECT name, sex, age_years, height_cm, weight_kg, start_weight_kg, target_weight_kg,
			activity_factor, goal, unit_system, created_at, updated_at
		FROM profiles WHERE user_id=$1;`, userID,
	).Scan(&p.Name, &sex, &p.AgeYears, &p.HeightCm, &p.WeightKg, &p.StartWeightKg, &p.TargetWeightKg,
		&p.ActivityFactor, &goal, &unit, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Sex = domain.Sex(sex)
	p.Goal = domain.Goal(goal)
	p.UnitSystem = domain.UnitSystem(unit)
	return &p, nil
}

// SaveProfile creates or replaces the profile for p.UserID.
func (d *DB) SaveProfile(ctx context.Context, p *domain.Profile) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO profiles(user_id, name, sex, age_years, height_cm, weight_kg, start_weight_kg,
			target_weight_kg, activity_factor, goal, unit_system, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id) DO UPDATE SET
			name=EXCLUDED.name, sex=EXCLUDED.sex, age_years=EXCLUDED.age_years,
			height_cm=EXCLUDED.height_cm, weight_kg=EXCLUDED.weight_kg,
			start_weight_kg=EXCLUDED.start_weight_kg, target_weight_kg=EXCLUDED.target_weight_kg,
			activity_factor=EXCLUDED.activity_factor, goal=EXCLUDED.goal,
			unit_system=EXCLUDED.unit_system, updated_at=EXCLUDED.updated_at;`,
		p.UserID, p.Name, string(p.Sex), p.AgeYears, p.HeightCm, p.WeightKg, p.StartWeightKg,
		p.TargetWeightKg, p.ActivityFactor, string(p.Goal), string(p.UnitSystem),
		p.CreatedAt.UTC(), p.UpdatedAt.UTC(),
	)
	return err
}

// UpdateProfileWeight moves the current weight of an existing profile.
func (d *DB) UpdateProfileWeight(ctx context.Context, userID int64, weightKg float64, updatedAt time.Time) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE profiles SET weight_kg=$2, updated_at=$3 WHERE user_id=$1;",
		userID, weightKg, updatedAt.UTC())
	return err
}
