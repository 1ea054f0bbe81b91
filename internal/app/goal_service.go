package app

import (
	"context"

	"babytracker/internal/domain"
)

// GoalService manages the daily feeding goal, one per date.
type GoalService struct {
	repo  domain.GoalRepository
	locks KeyedMutex
}

// NewGoalService creates a GoalService backed by the given repository.
func NewGoalService(repo domain.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

// Set stores goal for date, updating the existing row when there is one.
// Concurrent calls for the same date are serialised.
func (s *GoalService) Set(ctx context.Context, date string, goal int) (*domain.DailyGoal, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	unlock := s.locks.Lock(date)
	defer unlock()

	g, err := s.repo.GoalByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if g != nil {
		g.Goal = goal
		if err := s.repo.UpdateGoal(ctx, g); err != nil {
			return nil, err
		}
		return g, nil
	}
	g = &domain.DailyGoal{Date: date, Goal: goal}
	if _, err := s.repo.InsertGoal(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Get returns the goal for date, or DefaultDailyGoal if none was set.
func (s *GoalService) Get(ctx context.Context, date string) (int, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return 0, err
	}
	g, err := s.repo.GoalByDate(ctx, date)
	if err != nil {
		return 0, err
	}
	if g == nil {
		return domain.DefaultDailyGoal, nil
	}
	return g.Goal, nil
}
