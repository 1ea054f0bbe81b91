package app

import (
	"context"
	"math"

	"babytracker/internal/domain"
)

// FeedingService encapsulates milk feeding use cases. Every successful
// mutation is announced through the notifier.
type FeedingService struct {
	repo   domain.FeedingRepository
	notify Notifier
}

// NewFeedingService creates a FeedingService. A nil notifier disables
// broadcasts.
func NewFeedingService(repo domain.FeedingRepository, n Notifier) *FeedingService {
	if n == nil {
		n = nopNotifier{}
	}
	return &FeedingService{repo: repo, notify: n}
}

func validAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount >= 0
}

// Record appends a feeding entry for date and returns it with the id and
// creation time assigned by the store.
func (s *FeedingService) Record(ctx context.Context, date string, amount float64, notes string) (*domain.FeedingEntry, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if !validAmount(amount) {
		return nil, domain.ErrInvalidAmount
	}
	e := &domain.FeedingEntry{Date: date, Amount: amount, Notes: notes}
	if _, err := s.repo.InsertFeeding(ctx, e); err != nil {
		return nil, err
	}
	s.notify.Broadcast(ctx, feedingAddedMessage(date, amount))
	return e, nil
}

// ListByDate returns every feeding recorded for date, in no particular order.
func (s *FeedingService) ListByDate(ctx context.Context, date string) ([]domain.FeedingEntry, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return s.repo.FeedingsByDate(ctx, date)
}

// Update replaces the amount and notes of an existing entry. Date, id and
// creation time never change.
func (s *FeedingService) Update(ctx context.Context, id int64, amount float64, notes string) error {
	if !validAmount(amount) {
		return domain.ErrInvalidAmount
	}
	e, err := s.repo.FeedingByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	e.Amount = amount
	e.Notes = notes
	if err := s.repo.UpdateFeeding(ctx, e); err != nil {
		return err
	}
	s.notify.Broadcast(ctx, feedingUpdatedMessage(id, amount))
	return nil
}

// Delete removes the entry with the given id.
func (s *FeedingService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteFeeding(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	s.notify.Broadcast(ctx, feedingDeletedMessage(id))
	return nil
}
