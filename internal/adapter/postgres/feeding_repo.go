package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"babytracker/internal/domain"
)

// InsertFeeding inserts a new feeding entry.
func (d *DB) InsertFeeding(ctx context.Context, e *domain.FeedingEntry) (int64, error) {
	createdAt := time.Now().UTC()
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO feeding_entries(date, amount, notes, created_at) VALUES($1, $2, $3, $4) RETURNING id;",
		e.Date, e.Amount, e.Notes, createdAt,
	).Scan(&e.ID)
	if err != nil {
		return 0, domain.NewStorageError("insert feeding", err)
	}
	e.CreatedAt = createdAt
	return e.ID, nil
}

// FeedingsByDate returns the feeding entries for a date.
func (d *DB) FeedingsByDate(ctx context.Context, date string) ([]domain.FeedingEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, date, amount, notes, created_at FROM feeding_entries WHERE date=$1;", date)
	if err != nil {
		return nil, domain.NewStorageError("list feedings", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.FeedingEntry, 0)
	for rows.Next() {
		var e domain.FeedingEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Amount, &e.Notes, &e.CreatedAt); err != nil {
			return nil, domain.NewStorageError("list feedings", err)
		}
		out = append(out, e)
	}
	return out, domain.NewStorageError("list feedings", rows.Err())
}

// FeedingByID retrieves a feeding entry by ID.
func (d *DB) FeedingByID(ctx context.Context, id int64) (*domain.FeedingEntry, error) {
	var e domain.FeedingEntry
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, date, amount, notes, created_at FROM feeding_entries WHERE id=$1;", id,
	).Scan(&e.ID, &e.Date, &e.Amount, &e.Notes, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStorageError("get feeding", err)
	}
	return &e, nil
}

// UpdateFeeding stores amount and notes.
func (d *DB) UpdateFeeding(ctx context.Context, e *domain.FeedingEntry) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE feeding_entries SET amount=$1, notes=$2 WHERE id=$3;", e.Amount, e.Notes, e.ID)
	return domain.NewStorageError("update feeding", err)
}

// DeleteFeeding removes a feeding entry by ID.
func (d *DB) DeleteFeeding(ctx context.Context, id int64) (bool, error) {
	return d.deleteByID(ctx, "feeding_entries", id)
}
