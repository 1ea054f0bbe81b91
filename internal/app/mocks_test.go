package app_test

import (
	"context"
	"sync"

	"babytracker/internal/domain"
)

type mockFeedingRepo struct {
	insertFn func(ctx context.Context, e *domain.FeedingEntry) (int64, error)
	listFn   func(ctx context.Context, date string) ([]domain.FeedingEntry, error)
	getFn    func(ctx context.Context, id int64) (*domain.FeedingEntry, error)
	updateFn func(ctx context.Context, e *domain.FeedingEntry) error
	deleteFn func(ctx context.Context, id int64) (bool, error)
}

func (m *mockFeedingRepo) InsertFeeding(ctx context.Context, e *domain.FeedingEntry) (int64, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, e)
	}
	e.ID = 1
	return 1, nil
}

func (m *mockFeedingRepo) FeedingsByDate(ctx context.Context, date string) ([]domain.FeedingEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, date)
	}
	return nil, nil
}

func (m *mockFeedingRepo) FeedingByID(ctx context.Context, id int64) (*domain.FeedingEntry, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockFeedingRepo) UpdateFeeding(ctx context.Context, e *domain.FeedingEntry) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, e)
	}
	return nil
}

func (m *mockFeedingRepo) DeleteFeeding(ctx context.Context, id int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return false, nil
}

type mockDiaperRepo struct {
	insertFn func(ctx context.Context, l *domain.DiaperLog) (int64, error)
	listFn   func(ctx context.Context, kind domain.DiaperKind, date string) ([]domain.DiaperLog, error)
	deleteFn func(ctx context.Context, kind domain.DiaperKind, id int64) (bool, error)
}

func (m *mockDiaperRepo) InsertDiaperLog(ctx context.Context, l *domain.DiaperLog) (int64, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, l)
	}
	return 1, nil
}

func (m *mockDiaperRepo) DiaperLogsByDate(ctx context.Context, kind domain.DiaperKind, date string) ([]domain.DiaperLog, error) {
	if m.listFn != nil {
		return m.listFn(ctx, kind, date)
	}
	return nil, nil
}

func (m *mockDiaperRepo) DeleteDiaperLog(ctx context.Context, kind domain.DiaperKind, id int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, kind, id)
	}
	return false, nil
}

// recordingNotifier collects broadcast messages.
type recordingNotifier struct {
	mu   sync.Mutex
	msgs []string
}

func (n *recordingNotifier) Broadcast(_ context.Context, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func (n *recordingNotifier) messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.msgs...)
}
