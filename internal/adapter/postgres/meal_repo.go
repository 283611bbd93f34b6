package postgres

import (
	"context"
	"time"

	"nutritrack/internal/domain"
)

// AddMeal inserts a meal entry.
func (d *DB) AddMeal(ctx context.Context, m domain.MealEntry) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO meal_entries(id, user_id, name, kcal, eaten_at, created_at) VALUES($1, $2, $3, $4, $5, $6);",
		m.ID, m.UserID, m.Name, m.Kcal, m.EatenAt.UTC(), m.CreatedAt.UTC(),
	)
	return err
}

// DeleteMeal removes one of the user's meals and reports whether a row was deleted.
func (d *DB) DeleteMeal(ctx context.Context, userID int64, id string) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM meal_entries WHERE id=$1 AND user_id=$2;", id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ListMealsForLocalDay returns the user's meals for a local calendar day, oldest first.
func (d *DB) ListMealsForLocalDay(ctx context.Context, userID int64, localDay string) ([]domain.MealEntry, error) {
	start, end, err := localDayBounds(localDay)
	if err != nil {
		return nil, err
	}
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, name, kcal, eaten_at, created_at FROM meal_entries
		WHERE user_id=$1 AND eaten_at >= $2 AND eaten_at < $3
		ORDER BY eaten_at ASC;`,
		userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.MealEntry
	for rows.Next() {
		m := domain.MealEntry{UserID: userID}
		if err := rows.Scan(&m.ID, &m.Name, &m.Kcal, &m.EatenAt, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MealDaysSince returns the distinct local days on or after sinceDay with a
// meal, newest first. Days are bucketed in the server's local zone.
func (d *DB) MealDaysSince(ctx context.Context, userID int64, sinceDay string) ([]string, error) {
	start, _, err := localDayBounds(sinceDay)
	if err != nil {
		return nil, err
	}
	rows, err := d.sql.QueryContext(ctx,
		"SELECT eaten_at FROM meal_entries WHERE user_id=$1 AND eaten_at >= $2 ORDER BY eaten_at DESC;",
		userID, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var days []string
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		day := t.In(time.Local).Format("2006-01-02")
		if len(days) == 0 || days[len(days)-1] != day {
			days = append(days, day)
		}
	}
	return days, rows.Err()
}

// KcalByLocalDay sums meal energy for each local day in the range.
func (d *DB) KcalByLocalDay(ctx context.Context, userID int64, fromDay, toDay string) (map[string]int, error) {
	start, end, err := dayRangeBounds(fromDay, toDay)
	if err != nil {
		return nil, err
	}
	rows, err := d.sql.QueryContext(ctx,
		"SELECT kcal, eaten_at FROM meal_entries WHERE user_id=$1 AND eaten_at >= $2 AND eaten_at < $3;",
		userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make(map[string]int)
	for rows.Next() {
		var (
			kcal int
			at   time.Time
		)
		if err := rows.Scan(&kcal, &at); err != nil {
			return nil, err
		}
		out[domain.LocalDay(at)] += kcal
	}
	return out, rows.Err()
}
