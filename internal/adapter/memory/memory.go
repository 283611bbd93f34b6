// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"nutritrack/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu          sync.Mutex
	weights     []domain.WeightEntry
	waterEvents []domain.WaterEvent
	meals       []domain.MealEntry
	profiles    map[int64]domain.Profile
	users       []*domain.User
	sessions    map[string]*domain.Session

	weightIDCounter int64
	waterIDCounter  int64
	userIDCounter   int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		profiles: make(map[int64]domain.Profile),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var (
	_ domain.WeightRepository  = (*DB)(nil)
	_ domain.WaterRepository   = (*DB)(nil)
	_ domain.MealRepository    = (*DB)(nil)
	_ domain.ProfileRepository = (*DB)(nil)
	_ domain.UserRepository    = (*DB)(nil)
	_ domain.SessionRepository = (*SessionRepo)(nil)
)

// localDayBounds returns the UTC half-open interval covering a local day.
func localDayBounds(localDay string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", localDay, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start.UTC(), start.AddDate(0, 0, 1).UTC(), nil
}

// dayRangeBounds covers fromDay through toDay inclusive.
func dayRangeBounds(fromDay, toDay string) (time.Time, time.Time, error) {
	start, _, err := localDayBounds(fromDay)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	_, end, err := localDayBounds(toDay)
	return start, end, err
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func localDay(t time.Time) string {
	return domain.LocalDay(t)
}

// newer orders events by creation time, then by id, matching the
// "ORDER BY created_at DESC, id DESC" of the SQL adapter.
func newer(at time.Time, id int64, thanAt time.Time, thanID int64) bool {
	if !at.Equal(thanAt) {
		return at.After(thanAt)
	}
	return id > thanID
}

// --- WeightRepository ---

// AddWeightEvent adds a weight event.
func (db *DB) AddWeightEvent(_ context.Context, userID int64, valueKg float64, createdAt time.Time) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.weightIDCounter++
	id := db.weightIDCounter

	db.weights = append(db.weights, domain.WeightEntry{
		ID:        id,
		UserID:    userID,
		ValueKg:   valueKg,
		CreatedAt: createdAt.UTC(),
	})
	return id, nil
}

// DeleteLatestWeightEvent deletes the user's most recent weight event.
func (db *DB) DeleteLatestWeightEvent(_ context.Context, userID int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	lastIdx := -1
	for i, w := range db.weights {
		if w.UserID != userID {
			continue
		}
		if lastIdx == -1 || newer(w.CreatedAt, w.ID, db.weights[lastIdx].CreatedAt, db.weights[lastIdx].ID) {
			lastIdx = i
		}
	}
	if lastIdx == -1 {
		return false, nil
	}
	db.weights = append(db.weights[:lastIdx], db.weights[lastIdx+1:]...)
	return true, nil
}

// LatestWeightForLocalDay returns the latest weight for the given day.
func (db *DB) LatestWeightForLocalDay(_ context.Context, userID int64, day string) (*domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	start, end, err := localDayBounds(day)
	if err != nil {
		return nil, err
	}

	var latest *domain.WeightEntry
	for i := range db.weights {
		w := &db.weights[i]
		if w.UserID != userID || !within(w.CreatedAt, start, end) {
			continue
		}
		if latest == nil || newer(w.CreatedAt, w.ID, latest.CreatedAt, latest.ID) {
			latest = w
		}
	}
	if latest == nil {
		return nil, nil
	}
	ret := *latest
	ret.Day = day
	return &ret, nil
}

// ListRecentWeightEvents lists the user's most recent weight events, newest first.
func (db *DB) ListRecentWeightEvents(_ context.Context, userID int64, limit int) ([]domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []domain.WeightEntry
	for _, w := range db.weights {
		if w.UserID == userID {
			w.Day = localDay(w.CreatedAt)
			result = append(result, w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return newer(result[i].CreatedAt, result[i].ID, result[j].CreatedAt, result[j].ID)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// LatestWeightsByLocalDay returns the last weigh-in of each day in the range.
func (db *DB) LatestWeightsByLocalDay(_ context.Context, userID int64, fromDay, toDay string) (map[string]domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	start, end, err := dayRangeBounds(fromDay, toDay)
	if err != nil {
		return nil, err
	}

	out := make(map[string]domain.WeightEntry)
	for _, w := range db.weights {
		if w.UserID != userID || !within(w.CreatedAt, start, end) {
			continue
		}
		w.Day = localDay(w.CreatedAt)
		if cur, ok := out[w.Day]; !ok || newer(w.CreatedAt, w.ID, cur.CreatedAt, cur.ID) {
			out[w.Day] = w
		}
	}
	return out, nil
}

// --- WaterRepository ---

// AddWaterEvent adds a water event.
func (db *DB) AddWaterEvent(_ context.Context, userID int64, deltaLiters float64, createdAt time.Time) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.waterIDCounter++
	id := db.waterIDCounter

	db.waterEvents = append(db.waterEvents, domain.WaterEvent{
		ID:          id,
		UserID:      userID,
		DeltaLiters: deltaLiters,
		CreatedAt:   createdAt.UTC(),
	})
	return id, nil
}

// DeleteLatestWaterEvent removes the user's newest water event.
func (db *DB) DeleteLatestWaterEvent(_ context.Context, userID int64) (*domain.WaterEvent, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	latest := -1
	for i, w := range db.waterEvents {
		if w.UserID != userID {
			continue
		}
		if latest < 0 || newer(w.CreatedAt, w.ID, db.waterEvents[latest].CreatedAt, db.waterEvents[latest].ID) {
			latest = i
		}
	}
	if latest < 0 {
		return nil, nil
	}
	removed := db.waterEvents[latest]
	db.waterEvents = append(db.waterEvents[:latest], db.waterEvents[latest+1:]...)
	return &removed, nil
}

// ListRecentWaterEvents lists the user's most recent water events, newest first.
func (db *DB) ListRecentWaterEvents(_ context.Context, userID int64, limit int) ([]domain.WaterEvent, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []domain.WaterEvent
	for _, w := range db.waterEvents {
		if w.UserID == userID {
			result = append(result, w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return newer(result[i].CreatedAt, result[i].ID, result[j].CreatedAt, result[j].ID)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// WaterTotalForLocalDay returns the user's water intake for the given day.
func (db *DB) WaterTotalForLocalDay(_ context.Context, userID int64, day string) (float64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	start, end, err := localDayBounds(day)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, w := range db.waterEvents {
		if w.UserID == userID && within(w.CreatedAt, start, end) {
			total += w.DeltaLiters
		}
	}
	return total, nil
}

// WaterTotalsByLocalDay sums the user's water events per day in the range.
func (db *DB) WaterTotalsByLocalDay(_ context.Context, userID int64, fromDay, toDay string) (map[string]float64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	start, end, err := dayRangeBounds(fromDay, toDay)
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, w := range db.waterEvents {
		if w.UserID == userID && within(w.CreatedAt, start, end) {
			out[localDay(w.CreatedAt)] += w.DeltaLiters
		}
	}
	return out, nil
}

// --- MealRepository ---

// AddMeal stores a meal.
func (db *DB) AddMeal(_ context.Context, m domain.MealEntry) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, existing := range db.meals {
		if existing.ID == m.ID {
			return errors.New("meal already exists")
		}
	}
	m.EatenAt = m.EatenAt.UTC()
	m.CreatedAt = m.CreatedAt.UTC()
	db.meals = append(db.meals, m)
	return nil
}

// DeleteMeal removes one of the user's meals and reports whether it existed.
func (db *DB) DeleteMeal(_ context.Context, userID int64, id string) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, m := range db.meals {
		if m.ID == id && m.UserID == userID {
			db.meals = append(db.meals[:i], db.meals[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ListMealsForLocalDay returns the user's meals eaten on the given day, oldest first.
func (db *DB) ListMealsForLocalDay(_ context.Context, userID int64, day string) ([]domain.MealEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	start, end, err := localDayBounds(day)
	if err != nil {
		return nil, err
	}

	var result []domain.MealEntry
	for _, m := range db.meals {
		if m.UserID == userID && within(m.EatenAt, start, end) {
			result = append(result, m)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].EatenAt.Before(result[j].EatenAt)
	})
	return result, nil
}

// KcalByLocalDay sums the user's meal energy per day in the range.
func (db *DB) KcalByLocalDay(_ context.Context, userID int64, fromDay, toDay string) (map[string]int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	start, end, err := dayRangeBounds(fromDay, toDay)
	if err != nil {
		return nil, err
	}

	out := make(map[string]int)
	for _, m := range db.meals {
		if m.UserID == userID && within(m.EatenAt, start, end) {
			out[localDay(m.EatenAt)] += m.Kcal
		}
	}
	return out, nil
}

// MealDaysSince returns the distinct local days on or after sinceDay with a meal, newest first.
func (db *DB) MealDaysSince(_ context.Context, userID int64, sinceDay string) ([]string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	start, _, err := localDayBounds(sinceDay)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var days []string
	for _, m := range db.meals {
		if m.UserID != userID || m.EatenAt.Before(start) {
			continue
		}
		d := localDay(m.EatenAt)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	// YYYY-MM-DD sorts lexically.
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	return days, nil
}

// --- ProfileRepository ---

// GetProfile returns the user's profile, or nil if none was saved.
func (db *DB) GetProfile(_ context.Context, userID int64) (*domain.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// SaveProfile creates or replaces the profile for p.UserID.
func (db *DB) SaveProfile(_ context.Context, p *domain.Profile) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.profiles[p.UserID] = *p
	return nil
}

// UpdateProfileWeight moves the current weight of an existing profile.
func (db *DB) UpdateProfileWeight(_ context.Context, userID int64, weightKg float64, updatedAt time.Time) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.profiles[userID]
	if !ok {
		return nil
	}
	p.WeightKg = weightKg
	p.UpdatedAt = updatedAt.UTC()
	db.profiles[userID] = p
	return nil
}

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(_ context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(_ context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	cp := *u
	return &cp, nil
}

// Count returns the total number of users.
func (db *DB) Count(_ context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(_ context.Context, userID int64, token, userAgent, ip string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		UserAgent: userAgent,
		IP:        ip,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token. Expired sessions are returned as
// stored; the caller decides what to do with them.
func (r *SessionRepo) GetByToken(_ context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.sessions[token]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(_ context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(_ context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if v.ExpiredAt(now) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
