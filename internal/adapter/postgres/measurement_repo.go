package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"babytracker/internal/domain"
)

// InsertMeasurement inserts a measurement.
func (d *DB) InsertMeasurement(ctx context.Context, m *domain.Measurement) (int64, error) {
	createdAt := time.Now().UTC()
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO measurements(date, weight, height, created_at) VALUES($1, $2, $3, $4) RETURNING id;",
		m.Date, m.Weight, m.Height, createdAt,
	).Scan(&m.ID)
	if err != nil {
		return 0, domain.NewStorageError("insert measurement", err)
	}
	m.CreatedAt = createdAt
	return m.ID, nil
}

// MeasurementByDate retrieves the oldest measurement for a date.
func (d *DB) MeasurementByDate(ctx context.Context, date string) (*domain.Measurement, error) {
	var m domain.Measurement
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, date, weight, height, created_at FROM measurements WHERE date=$1 ORDER BY id LIMIT 1;", date,
	).Scan(&m.ID, &m.Date, &m.Weight, &m.Height, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStorageError("get measurement", err)
	}
	return &m, nil
}

// UpdateMeasurement overwrites weight and height.
func (d *DB) UpdateMeasurement(ctx context.Context, m *domain.Measurement) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE measurements SET weight=$1, height=$2 WHERE id=$3;", m.Weight, m.Height, m.ID)
	return domain.NewStorageError("update measurement", err)
}
