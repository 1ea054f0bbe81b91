package app_test

import (
	"context"
	"testing"

	"babytracker/internal/adapter/memory"
	"babytracker/internal/app"
	"babytracker/internal/domain"
)

func TestSummaryDay(t *testing.T) {
	db := memory.New()
	ctx := context.Background()
	feedings := app.NewFeedingService(db, nil)
	goals := app.NewGoalService(db)
	diapers := app.NewDiaperService(db)
	svc := app.NewSummaryService(db, db, goals)

	for _, amt := range []float64{120, 90.5, 100} {
		if _, err := feedings.Record(ctx, "2024-05-01", amt, ""); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := feedings.Record(ctx, "2024-05-02", 500, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := diapers.Log(ctx, domain.Pee, "2024-05-01"); err != nil {
		t.Fatal(err)
	}
	if _, err := goals.Set(ctx, "2024-05-01", 620); err != nil {
		t.Fatal(err)
	}

	got, err := svc.Day(ctx, "2024-05-01")
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	want := app.DaySummary{Date: "2024-05-01", Total: 310.5, Goal: 620, Percent: 50.08, Entries: 3, Pee: 1, Poop: 0}
	if *got != want {
		t.Fatalf("Day = %+v; want %+v", *got, want)
	}
}

func TestSummaryDay_DefaultGoal(t *testing.T) {
	db := memory.New()
	svc := app.NewSummaryService(db, db, app.NewGoalService(db))
	got, err := svc.Day(context.Background(), "2024-05-03")
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if got.Goal != 800 || got.Total != 0 || got.Percent != 0 {
		t.Fatalf("unexpected summary %+v", got)
	}
}
