package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"nutritrack/internal/domain"
)

const waterColumns = "id, user_id, delta_liters, created_at"

func scanWaterEvent(row interface{ Scan(...any) error }) (domain.WaterEvent, error) {
	var e domain.WaterEvent
	err := row.Scan(&e.ID, &e.UserID, &e.DeltaLiters, &e.CreatedAt)
	return e, err
}

func (d *DB) AddWaterEvent(ctx context.Context, userID int64, deltaLiters float64, createdAt time.Time) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO water_events(user_id, delta_liters, created_at) VALUES($1, $2, $3) RETURNING id;`,
		userID, deltaLiters, createdAt.UTC(),
	).Scan(&id)
	return id, err
}

// DeleteLatestWaterEvent removes the user's newest event and returns it, or
// nil when the user has none.
func (d *DB) DeleteLatestWaterEvent(ctx context.Context, userID int64) (*domain.WaterEvent, error) {
	e, err := scanWaterEvent(d.sql.QueryRowContext(ctx,
		`DELETE FROM water_events WHERE id = (
			SELECT id FROM water_events WHERE user_id=$1 ORDER BY created_at DESC, id DESC LIMIT 1
		) RETURNING `+waterColumns+`;`, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (d *DB) ListRecentWaterEvents(ctx context.Context, userID int64, limit int) ([]domain.WaterEvent, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT `+waterColumns+` FROM water_events WHERE user_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2;`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.WaterEvent
	for rows.Next() {
		e, err := scanWaterEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// WaterTotalForLocalDay sums the signed events of one local day.
func (d *DB) WaterTotalForLocalDay(ctx context.Context, userID int64, localDay string) (float64, error) {
	start, end, err := localDayBounds(localDay)
	if err != nil {
		return 0, err
	}
	var total float64
	err = d.sql.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(delta_liters), 0) FROM water_events
		 WHERE user_id=$1 AND created_at >= $2 AND created_at < $3;`,
		userID, start, end,
	).Scan(&total)
	return total, err
}

// WaterTotalsByLocalDay sums the signed events of each local day in the range.
func (d *DB) WaterTotalsByLocalDay(ctx context.Context, userID int64, fromDay, toDay string) (map[string]float64, error) {
	start, end, err := dayRangeBounds(fromDay, toDay)
	if err != nil {
		return nil, err
	}
	rows, err := d.sql.QueryContext(ctx,
		`SELECT delta_liters, created_at FROM water_events
		 WHERE user_id=$1 AND created_at >= $2 AND created_at < $3;`,
		userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make(map[string]float64)
	for rows.Next() {
		var (
			delta float64
			at    time.Time
		)
		if err := rows.Scan(&delta, &at); err != nil {
			return nil, err
		}
		out[domain.LocalDay(at)] += delta
	}
	return out, rows.Err()
}
