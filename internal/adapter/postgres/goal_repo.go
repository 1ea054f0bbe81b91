package postgres

import (
	"context"
	"database/sql"
	"errors"

	"babytracker/internal/domain"
)

// InsertGoal inserts a daily goal.
func (d *DB) InsertGoal(ctx context.Context, g *domain.DailyGoal) (int64, error) {
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO daily_goals(date, goal) VALUES($1, $2) RETURNING id;", g.Date, g.Goal,
	).Scan(&g.ID)
	if err != nil {
		return 0, domain.NewStorageError("insert goal", err)
	}
	return g.ID, nil
}

// GoalByDate retrieves the goal for a date.
func (d *DB) GoalByDate(ctx context.Context, date string) (*domain.DailyGoal, error) {
	var g domain.DailyGoal
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, date, goal FROM daily_goals WHERE date=$1;", date,
	).Scan(&g.ID, &g.Date, &g.Goal)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStorageError("get goal", err)
	}
	return &g, nil
}

// UpdateGoal stores the goal value.
func (d *DB) UpdateGoal(ctx context.Context, g *domain.DailyGoal) error {
	_, err := d.sql.ExecContext(ctx, "UPDATE daily_goals SET goal=$1 WHERE id=$2;", g.Goal, g.ID)
	return domain.NewStorageError("update goal", err)
}
