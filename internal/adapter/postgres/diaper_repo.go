package postgres

import (
	"context"
	"fmt"
	"time"

	"babytracker/internal/domain"
)

func diaperTable(kind domain.DiaperKind) (string, error) {
	switch kind {
	case domain.Pee:
		return "pee_logs", nil
	case domain.Poop:
		return "poop_logs", nil
	}
	return "", fmt.Errorf("unknown diaper kind %q", kind)
}

// InsertDiaperLog inserts a pee or poop event.
func (d *DB) InsertDiaperLog(ctx context.Context, l *domain.DiaperLog) (int64, error) {
	table, err := diaperTable(l.Kind)
	if err != nil {
		return 0, err
	}
	createdAt := time.Now().UTC()
	err = d.sql.QueryRowContext(ctx,
		"INSERT INTO "+table+"(date, created_at) VALUES($1, $2) RETURNING id;", l.Date, createdAt,
	).Scan(&l.ID)
	if err != nil {
		return 0, domain.NewStorageError("insert "+table, err)
	}
	l.CreatedAt = createdAt
	return l.ID, nil
}

// DiaperLogsByDate returns the events of one kind for a date.
func (d *DB) DiaperLogsByDate(ctx context.Context, kind domain.DiaperKind, date string) ([]domain.DiaperLog, error) {
	table, err := diaperTable(kind)
	if err != nil {
		return nil, err
	}
	rows, err := d.sql.QueryContext(ctx, "SELECT id, created_at FROM "+table+" WHERE date=$1;", date)
	if err != nil {
		return nil, domain.NewStorageError("list "+table, err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.DiaperLog, 0)
	for rows.Next() {
		l := domain.DiaperLog{Kind: kind, Date: date}
		if err := rows.Scan(&l.ID, &l.CreatedAt); err != nil {
			return nil, domain.NewStorageError("list "+table, err)
		}
		out = append(out, l)
	}
	return out, domain.NewStorageError("list "+table, rows.Err())
}

// DeleteDiaperLog removes an event by kind and ID.
func (d *DB) DeleteDiaperLog(ctx context.Context, kind domain.DiaperKind, id int64) (bool, error) {
	table, err := diaperTable(kind)
	if err != nil {
		return false, err
	}
	return d.deleteByID(ctx, table, id)
}
