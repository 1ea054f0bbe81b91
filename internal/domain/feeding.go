package domain

import (
	"context"
	"time"
)

// FeedingEntry is a single milk feeding. Amount is a volume in ml.
type FeedingEntry struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Amount    float64   `json:"amount"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedingRepository is the port for feeding persistence. Entries are an
// append-only log per date.
type FeedingRepository interface {
	InsertFeeding(ctx context.Context, e *FeedingEntry) (int64, error)
	FeedingsByDate(ctx context.Context, date string) ([]FeedingEntry, error)
	FeedingByID(ctx context.Context, id int64) (*FeedingEntry, error)
	UpdateFeeding(ctx context.Context, e *FeedingEntry) error
	DeleteFeeding(ctx context.Context, id int64) (bool, error)
}
