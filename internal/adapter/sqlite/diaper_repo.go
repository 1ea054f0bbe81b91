package sqlite

import (
	"context"
	"fmt"

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

// InsertDiaperLog inserts a pee or poop event, assigning its id and creation time.
func (d *DB) InsertDiaperLog(ctx context.Context, l *domain.DiaperLog) (int64, error) {
	table, err := diaperTable(l.Kind)
	if err != nil {
		return 0, err
	}
	createdAt := d.now().UTC()
	res, err := d.sql.ExecContext(ctx,
		"INSERT INTO "+table+"(date, created_at) VALUES(?, ?);", l.Date, formatTime(createdAt))
	if err != nil {
		return 0, domain.NewStorageError("insert "+table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.NewStorageError("insert "+table, err)
	}
	l.ID = id
	l.CreatedAt = createdAt
	return id, nil
}

// DiaperLogsByDate returns the events of kind recorded for date.
func (d *DB) DiaperLogsByDate(ctx context.Context, kind domain.DiaperKind, date string) ([]domain.DiaperLog, error) {
	table, err := diaperTable(kind)
	if err != nil {
		return nil, err
	}
	rows, err := d.sql.QueryContext(ctx, "SELECT id, created_at FROM "+table+" WHERE date = ?;", date)
	if err != nil {
		return nil, domain.NewStorageError("list "+table, err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.DiaperLog, 0)
	for rows.Next() {
		var createdAt string
		l := domain.DiaperLog{Kind: kind, Date: date}
		if err := rows.Scan(&l.ID, &createdAt); err != nil {
			return nil, domain.NewStorageError("list "+table, err)
		}
		if l.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, domain.NewStorageError("list "+table, err)
		}
		out = append(out, l)
	}
	return out, domain.NewStorageError("list "+table, rows.Err())
}

// DeleteDiaperLog removes the event of kind with id.
func (d *DB) DeleteDiaperLog(ctx context.Context, kind domain.DiaperKind, id int64) (bool, error) {
	table, err := diaperTable(kind)
	if err != nil {
		return false, err
	}
	return d.deleteByID(ctx, table, id)
}
