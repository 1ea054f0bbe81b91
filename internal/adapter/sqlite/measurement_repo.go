package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"babytracker/internal/domain"
)

// InsertMeasurement inserts a measurement, assigning its id and creation time.
func (d *DB) InsertMeasurement(ctx context.Context, m *domain.Measurement) (int64, error) {
	createdAt := d.now().UTC()
	res, err := d.sql.ExecContext(ctx,
		"INSERT INTO measurements(date, weight, height, created_at) VALUES(?, ?, ?, ?);",
		m.Date, m.Weight, m.Height, formatTime(createdAt),
	)
	if err != nil {
		return 0, domain.NewStorageError("insert measurement", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.NewStorageError("insert measurement", err)
	}
	m.ID = id
	m.CreatedAt = createdAt
	return id, nil
}

// MeasurementByDate returns the oldest measurement for date, or nil.
func (d *DB) MeasurementByDate(ctx context.Context, date string) (*domain.Measurement, error) {
	var (
		m         domain.Measurement
		createdAt string
	)
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, date, weight, height, created_at FROM measurements WHERE date = ? ORDER BY id LIMIT 1;", date,
	).Scan(&m.ID, &m.Date, &m.Weight, &m.Height, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStorageError("get measurement", err)
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, domain.NewStorageError("get measurement", err)
	}
	return &m, nil
}

// UpdateMeasurement overwrites weight and height of m.
func (d *DB) UpdateMeasurement(ctx context.Context, m *domain.Measurement) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE measurements SET weight = ?, height = ? WHERE id = ?;", m.Weight, m.Height, m.ID)
	return domain.NewStorageError("update measurement", err)
}
