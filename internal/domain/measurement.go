package domain

import (
	"context"
	"time"
)

// Measurement is a growth snapshot: weight in kg, height in cm. The service
// layer keeps at most one measurement per date; storage does not enforce it.
type Measurement struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Weight    float64   `json:"weight"`
	Height    float64   `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

// MeasurementRepository is the port for measurement persistence.
type MeasurementRepository interface {
	InsertMeasurement(ctx context.Context, m *Measurement) (int64, error)
	MeasurementByDate(ctx context.Context, date string) (*Measurement, error)
	UpdateMeasurement(ctx context.Context, m *Measurement) error
}
