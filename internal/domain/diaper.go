package domain

import (
	"context"
	"fmt"
	"time"
)

// DiaperKind distinguishes the two diaper event logs.
type DiaperKind string

const (
	Pee  DiaperKind = "pee"
	Poop DiaperKind = "poop"
)

// ParseDiaperKind returns the kind named by s.
func ParseDiaperKind(s string) (DiaperKind, error) {
	switch k := DiaperKind(s); k {
	case Pee, Poop:
		return k, nil
	}
	return "", fmt.Errorf("unknown diaper kind %q", s)
}

// Label is the capitalised kind used in user-facing messages.
func (k DiaperKind) Label() string {
	if k == Poop {
		return "Poop"
	}
	return "Pee"
}

// DiaperLog is a timestamped pee or poop event with no payload beyond its date.
type DiaperLog struct {
	ID        int64      `json:"id"`
	Kind      DiaperKind `json:"-"`
	Date      string     `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}

// DiaperRepository is the port for pee and poop log persistence.
type DiaperRepository interface {
	InsertDiaperLog(ctx context.Context, l *DiaperLog) (int64, error)
	DiaperLogsByDate(ctx context.Context, kind DiaperKind, date string) ([]DiaperLog, error)
	DeleteDiaperLog(ctx context.Context, kind DiaperKind, id int64) (bool, error)
}
