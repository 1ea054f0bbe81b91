package app

import (
	"context"

	"babytracker/internal/domain"
)

// MeasurementService records growth measurements, keeping one per date.
type MeasurementService struct {
	repo  domain.MeasurementRepository
	locks KeyedMutex
}

// NewMeasurementService creates a MeasurementService backed by the given
// repository.
func NewMeasurementService(repo domain.MeasurementRepository) *MeasurementService {
	return &MeasurementService{repo: repo}
}

// Record stores weight and height for date. An existing measurement for the
// date is overwritten in full; created reports whether a new row was added.
func (s *MeasurementService) Record(ctx context.Context, date string, weight, height float64) (m *domain.Measurement, created bool, err error) {
	date, err = domain.ParseDate(date)
	if err != nil {
		return nil, false, err
	}
	unlock := s.locks.Lock(date)
	defer unlock()

	m, err = s.repo.MeasurementByDate(ctx, date)
	if err != nil {
		return nil, false, err
	}
	if m != nil {
		m.Weight = weight
		m.Height = height
		if err := s.repo.UpdateMeasurement(ctx, m); err != nil {
			return nil, false, err
		}
		return m, false, nil
	}
	m = &domain.Measurement{Date: date, Weight: weight, Height: height}
	if _, err := s.repo.InsertMeasurement(ctx, m); err != nil {
		return nil, false, err
	}
	return m, true, nil
}

// Get returns the measurement for date or ErrNotFound.
func (s *MeasurementService) Get(ctx context.Context, date string) (*domain.Measurement, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	m, err := s.repo.MeasurementByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}
