package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"babytracker/internal/domain"
)

// InsertFeeding inserts a feeding entry, assigning its id and creation time.
func (d *DB) InsertFeeding(ctx context.Context, e *domain.FeedingEntry) (int64, error) {
	createdAt := d.now().UTC()
	res, err := d.sql.ExecContext(ctx,
		"INSERT INTO feeding_entries(date, amount, notes, created_at) VALUES(?, ?, ?, ?);",
		e.Date, e.Amount, e.Notes, formatTime(createdAt),
	)
	if err != nil {
		return 0, domain.NewStorageError("insert feeding", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.NewStorageError("insert feeding", err)
	}
	e.ID = id
	e.CreatedAt = createdAt
	return id, nil
}

// FeedingsByDate returns the feeding entries recorded for date.
func (d *DB) FeedingsByDate(ctx context.Context, date string) ([]domain.FeedingEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, date, amount, notes, created_at FROM feeding_entries WHERE date = ?;", date)
	if err != nil {
		return nil, domain.NewStorageError("list feedings", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.FeedingEntry, 0)
	for rows.Next() {
		e, err := scanFeeding(rows)
		if err != nil {
			return nil, domain.NewStorageError("list feedings", err)
		}
		out = append(out, *e)
	}
	return out, domain.NewStorageError("list feedings", rows.Err())
}

// FeedingByID returns the entry with id, or nil if there is none.
func (d *DB) FeedingByID(ctx context.Context, id int64) (*domain.FeedingEntry, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT id, date, amount, notes, created_at FROM feeding_entries WHERE id = ?;", id)
	e, err := scanFeeding(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStorageError("get feeding", err)
	}
	return e, nil
}

// UpdateFeeding persists the amount and notes of e.
func (d *DB) UpdateFeeding(ctx context.Context, e *domain.FeedingEntry) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE feeding_entries SET amount = ?, notes = ? WHERE id = ?;", e.Amount, e.Notes, e.ID)
	return domain.NewStorageError("update feeding", err)
}

// DeleteFeeding removes the entry with id and reports whether it existed.
func (d *DB) DeleteFeeding(ctx context.Context, id int64) (bool, error) {
	return d.deleteByID(ctx, "feeding_entries", id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFeeding(s scanner) (*domain.FeedingEntry, error) {
	var (
		e         domain.FeedingEntry
		createdAt string
	)
	if err := s.Scan(&e.ID, &e.Date, &e.Amount, &e.Notes, &createdAt); err != nil {
		return nil, err
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	e.CreatedAt = t
	return &e, nil
}

// deleteByID deletes one row from a table named by the caller, never by input.
func (d *DB) deleteByID(ctx context.Context, table string, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?;", id)
	if err != nil {
		return false, domain.NewStorageError("delete from "+table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.NewStorageError("delete from "+table, err)
	}
	return n > 0, nil
}
