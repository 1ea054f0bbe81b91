package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"babytracker/internal/domain"
)

// InsertGoal inserts a daily goal. The date column is unique.
func (d *DB) InsertGoal(ctx context.Context, g *domain.DailyGoal) (int64, error) {
	res, err := d.sql.ExecContext(ctx, "INSERT INTO daily_goals(date, goal) VALUES(?, ?);", g.Date, g.Goal)
	if err != nil {
		return 0, domain.NewStorageError("insert goal", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.NewStorageError("insert goal", err)
	}
	g.ID = id
	return id, nil
}

// GoalByDate returns the goal for date, or nil if none is set.
func (d *DB) GoalByDate(ctx context.Context, date string) (*domain.DailyGoal, error) {
	var g domain.DailyGoal
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, date, goal FROM daily_goals WHERE date = ?;", date,
	).Scan(&g.ID, &g.Date, &g.Goal)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStorageError("get goal", err)
	}
	return &g, nil
}

// UpdateGoal persists the goal value of g.
func (d *DB) UpdateGoal(ctx context.Context, g *domain.DailyGoal) error {
	_, err := d.sql.ExecContext(ctx, "UPDATE daily_goals SET goal = ? WHERE id = ?;", g.Goal, g.ID)
	return domain.NewStorageError("update goal", err)
}
