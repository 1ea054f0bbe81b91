// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sync"
	"time"

	"babytracker/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu           sync.Mutex
	feedings     []domain.FeedingEntry
	goals        []domain.DailyGoal
	measurements []domain.Measurement
	diapers      map[domain.DiaperKind][]domain.DiaperLog

	feedingIDCounter     int64
	goalIDCounter        int64
	measurementIDCounter int64
	diaperIDCounter      map[domain.DiaperKind]int64

	now func() time.Time
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		diapers:         make(map[domain.DiaperKind][]domain.DiaperLog),
		diaperIDCounter: make(map[domain.DiaperKind]int64),
		now:             time.Now,
	}
}

// Ensure interfaces are met.
var _ domain.FeedingRepository = (*DB)(nil)
var _ domain.GoalRepository = (*DB)(nil)
var _ domain.MeasurementRepository = (*DB)(nil)
var _ domain.DiaperRepository = (*DB)(nil)

// --- FeedingRepository ---

// InsertFeeding appends a feeding entry.
func (db *DB) InsertFeeding(ctx context.Context, e *domain.FeedingEntry) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.feedingIDCounter++
	e.ID = db.feedingIDCounter
	e.CreatedAt = db.now().UTC()
	db.feedings = append(db.feedings, *e)
	return e.ID, nil
}

// FeedingsByDate lists the feeding entries for a date.
func (db *DB) FeedingsByDate(ctx context.Context, date string) ([]domain.FeedingEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.FeedingEntry, 0)
	for _, e := range db.feedings {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

// FeedingByID returns a copy of the entry or nil.
func (db *DB) FeedingByID(ctx context.Context, id int64) (*domain.FeedingEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, e := range db.feedings {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

// UpdateFeeding stores the amount and notes of an existing entry.
func (db *DB) UpdateFeeding(ctx context.Context, e *domain.FeedingEntry) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.feedings {
		if db.feedings[i].ID == e.ID {
			db.feedings[i].Amount = e.Amount
			db.feedings[i].Notes = e.Notes
			return nil
		}
	}
	return nil
}

// DeleteFeeding deletes a feeding entry by ID.
func (db *DB) DeleteFeeding(ctx context.Context, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, e := range db.feedings {
		if e.ID == id {
			db.feedings = append(db.feedings[:i], db.feedings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- GoalRepository ---

// InsertGoal adds a daily goal.
func (db *DB) InsertGoal(ctx context.Context, g *domain.DailyGoal) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.goalIDCounter++
	g.ID = db.goalIDCounter
	db.goals = append(db.goals, *g)
	return g.ID, nil
}

// GoalByDate returns the goal for a date or nil.
func (db *DB) GoalByDate(ctx context.Context, date string) (*domain.DailyGoal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, g := range db.goals {
		if g.Date == date {
			return &g, nil
		}
	}
	return nil, nil
}

// UpdateGoal stores the goal value of an existing row.
func (db *DB) UpdateGoal(ctx context.Context, g *domain.DailyGoal) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.goals {
		if db.goals[i].ID == g.ID {
			db.goals[i].Goal = g.Goal
		}
	}
	return nil
}

// --- MeasurementRepository ---

// InsertMeasurement adds a measurement.
func (db *DB) InsertMeasurement(ctx context.Context, m *domain.Measurement) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.measurementIDCounter++
	m.ID = db.measurementIDCounter
	m.CreatedAt = db.now().UTC()
	db.measurements = append(db.measurements, *m)
	return m.ID, nil
}

// MeasurementByDate returns the first measurement for a date or nil.
func (db *DB) MeasurementByDate(ctx context.Context, date string) (*domain.Measurement, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, m := range db.measurements {
		if m.Date == date {
			return &m, nil
		}
	}
	return nil, nil
}

// UpdateMeasurement overwrites weight and height of an existing row.
func (db *DB) UpdateMeasurement(ctx context.Context, m *domain.Measurement) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.measurements {
		if db.measurements[i].ID == m.ID {
			db.measurements[i].Weight = m.Weight
			db.measurements[i].Height = m.Height
		}
	}
	return nil
}

// MeasurementCount returns how many measurement rows exist for date.
func (db *DB) MeasurementCount(date string) int {
	db.mu.Lock()
	defer db.mu.Unlock()

	n := 0
	for _, m := range db.measurements {
		if m.Date == date {
			n++
		}
	}
	return n
}

// --- DiaperRepository ---

// InsertDiaperLog adds a pee or poop event. Each kind has its own id sequence.
func (db *DB) InsertDiaperLog(ctx context.Context, l *domain.DiaperLog) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.diaperIDCounter[l.Kind]++
	l.ID = db.diaperIDCounter[l.Kind]
	l.CreatedAt = db.now().UTC()
	db.diapers[l.Kind] = append(db.diapers[l.Kind], *l)
	return l.ID, nil
}

// DiaperLogsByDate lists the events of one kind for a date.
func (db *DB) DiaperLogsByDate(ctx context.Context, kind domain.DiaperKind, date string) ([]domain.DiaperLog, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.DiaperLog, 0)
	for _, l := range db.diapers[kind] {
		if l.Date == date {
			out = append(out, l)
		}
	}
	return out, nil
}

// DeleteDiaperLog deletes an event by kind and ID.
func (db *DB) DeleteDiaperLog(ctx context.Context, kind domain.DiaperKind, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	logs := db.diapers[kind]
	for i, l := range logs {
		if l.ID == id {
			db.diapers[kind] = append(logs[:i], logs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
