package app

import (
	"context"

	"babytracker/internal/domain"
)

// DiaperService logs pee and poop events.
type DiaperService struct {
	repo domain.DiaperRepository
}

// NewDiaperService creates a DiaperService backed by the given repository.
func NewDiaperService(repo domain.DiaperRepository) *DiaperService {
	return &DiaperService{repo: repo}
}

// Log appends an event of the given kind for date. The returned log carries
// the creation time so callers can echo it.
func (s *DiaperService) Log(ctx context.Context, kind domain.DiaperKind, date string) (*domain.DiaperLog, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	l := &domain.DiaperLog{Kind: kind, Date: date}
	if _, err := s.repo.InsertDiaperLog(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// List returns the events of the given kind recorded for date.
func (s *DiaperService) List(ctx context.Context, kind domain.DiaperKind, date string) ([]domain.DiaperLog, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return s.repo.DiaperLogsByDate(ctx, kind, date)
}

// Delete removes the event with the given id.
func (s *DiaperService) Delete(ctx context.Context, kind domain.DiaperKind, id int64) error {
	deleted, err := s.repo.DeleteDiaperLog(ctx, kind, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}
