package domain

import "context"

// DefaultDailyGoal is the daily feeding target in ml used when no goal has
// been set for a date.
const DefaultDailyGoal = 800

// DailyGoal is the feeding volume target for one date. There is at most one
// goal per date.
type DailyGoal struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
	Goal int    `json:"goal"`
}

// GoalRepository is the port for daily goal persistence.
type GoalRepository interface {
	InsertGoal(ctx context.Context, g *DailyGoal) (int64, error)
	GoalByDate(ctx context.Context, date string) (*DailyGoal, error)
	UpdateGoal(ctx context.Context, g *DailyGoal) error
}
