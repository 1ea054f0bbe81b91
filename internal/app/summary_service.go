package app

import (
	"context"
	"math"

	"babytracker/internal/domain"
)

// DaySummary is the per-date overview shown next to the feeding log.
type DaySummary struct {
	Date    string  `json:"date"`
	Total   float64 `json:"total"`
	Goal    int     `json:"goal"`
	Percent float64 `json:"percent"`
	Entries int     `json:"entries"`
	Pee     int     `json:"pee"`
	Poop    int     `json:"poop"`
}

// SummaryService computes per-date summaries from the record stores.
type SummaryService struct {
	feedings domain.FeedingRepository
	diapers  domain.DiaperRepository
	goals    *GoalService
}

// NewSummaryService creates a SummaryService.
func NewSummaryService(f domain.FeedingRepository, d domain.DiaperRepository, g *GoalService) *SummaryService {
	return &SummaryService{feedings: f, diapers: d, goals: g}
}

// Day returns the feeding total, goal progress and diaper counts for date.
func (s *SummaryService) Day(ctx context.Context, date string) (*DaySummary, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	goal, err := s.goals.Get(ctx, date)
	if err != nil {
		return nil, err
	}
	entries, err := s.feedings.FeedingsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	pee, err := s.diapers.DiaperLogsByDate(ctx, domain.Pee, date)
	if err != nil {
		return nil, err
	}
	poop, err := s.diapers.DiaperLogsByDate(ctx, domain.Poop, date)
	if err != nil {
		return nil, err
	}

	sum := &DaySummary{Date: date, Goal: goal, Entries: len(entries), Pee: len(pee), Poop: len(poop)}
	for _, e := range entries {
		sum.Total += e.Amount
	}
	if goal > 0 {
		sum.Percent = math.Round(sum.Total/float64(goal)*10000) / 100
	}
	return sum, nil
}
