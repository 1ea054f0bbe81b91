package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"babytracker/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "baby.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestFeedingRoundTrip(t *testing.T) {
	db := openTestDB(t)
	fixed := time.Date(2024, 5, 1, 7, 15, 30, 123456789, time.UTC)
	db.now = func() time.Time { return fixed }
	ctx := context.Background()

	e := &domain.FeedingEntry{Date: "2024-05-01", Amount: 120.5, Notes: "night feed"}
	id, err := db.InsertFeeding(ctx, e)
	if err != nil {
		t.Fatalf("InsertFeeding: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	got, err := db.FeedingByID(ctx, id)
	if err != nil {
		t.Fatalf("FeedingByID: %v", err)
	}
	want := domain.FeedingEntry{ID: id, Date: "2024-05-01", Amount: 120.5, Notes: "night feed", CreatedAt: fixed}
	if got == nil || !got.CreatedAt.Equal(want.CreatedAt) || got.ID != want.ID || got.Date != want.Date ||
		got.Amount != want.Amount || got.Notes != want.Notes {
		t.Fatalf("FeedingByID = %+v; want %+v", got, want)
	}

	missing, err := db.FeedingByID(ctx, id+1)
	if err != nil || missing != nil {
		t.Fatalf("expected absent entry, got %+v, %v", missing, err)
	}
}

func TestFeedingAppendOnlyAndDelete(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	const n = 4
	for i := 0; i < n; i++ {
		if _, err := db.InsertFeeding(ctx, &domain.FeedingEntry{Date: "2024-05-01", Amount: float64(60 + i)}); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := db.FeedingsByDate(ctx, "2024-05-01")
	if err != nil {
		t.Fatalf("FeedingsByDate: %v", err)
	}
	if len(entries) != n {
		t.Fatalf("expected %d entries, got %d", n, len(entries))
	}
	seen := map[int64]bool{}
	for _, e := range entries {
		seen[e.ID] = true
	}
	if len(seen) != n {
		t.Fatalf("expected distinct ids, got %v", seen)
	}

	ok, err := db.DeleteFeeding(ctx, entries[0].ID)
	if err != nil || !ok {
		t.Fatalf("DeleteFeeding = %v, %v", ok, err)
	}
	ok, err = db.DeleteFeeding(ctx, entries[0].ID)
	if err != nil || ok {
		t.Fatalf("second DeleteFeeding = %v, %v", ok, err)
	}
	entries, _ = db.FeedingsByDate(ctx, "2024-05-01")
	if len(entries) != n-1 {
		t.Fatalf("expected %d entries after delete, got %d", n-1, len(entries))
	}
}

func TestFeedingUpdateKeepsCreatedAt(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	e := &domain.FeedingEntry{Date: "2024-05-01", Amount: 100}
	if _, err := db.InsertFeeding(ctx, e); err != nil {
		t.Fatal(err)
	}
	e.Amount = 130
	e.Notes = "top-up"
	if err := db.UpdateFeeding(ctx, e); err != nil {
		t.Fatalf("UpdateFeeding: %v", err)
	}
	got, _ := db.FeedingByID(ctx, e.ID)
	if got.Amount != 130 || got.Notes != "top-up" || !got.CreatedAt.Equal(e.CreatedAt) {
		t.Fatalf("unexpected entry %+v", got)
	}
}

func TestGoalUniquePerDate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, err := db.InsertGoal(ctx, &domain.DailyGoal{Date: "2024-05-01", Goal: 800}); err != nil {
		t.Fatal(err)
	}
	if _, err := db.InsertGoal(ctx, &domain.DailyGoal{Date: "2024-05-01", Goal: 900}); err == nil {
		t.Fatal("expected unique constraint violation")
	} else if !isStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}

	g, err := db.GoalByDate(ctx, "2024-05-01")
	if err != nil || g == nil || g.Goal != 800 {
		t.Fatalf("GoalByDate = %+v, %v", g, err)
	}
	g.Goal = 950
	if err := db.UpdateGoal(ctx, g); err != nil {
		t.Fatal(err)
	}
	g, _ = db.GoalByDate(ctx, "2024-05-01")
	if g.Goal != 950 {
		t.Fatalf("expected 950, got %d", g.Goal)
	}
	if g, _ := db.GoalByDate(ctx, "2024-05-02"); g != nil {
		t.Fatal("expected no goal for other date")
	}
}

func TestMeasurementRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	m := &domain.Measurement{Date: "2024-05-01", Weight: 3.45, Height: 50.2}
	if _, err := db.InsertMeasurement(ctx, m); err != nil {
		t.Fatal(err)
	}
	m.Weight, m.Height = 3.6, 51
	if err := db.UpdateMeasurement(ctx, m); err != nil {
		t.Fatal(err)
	}
	got, err := db.MeasurementByDate(ctx, "2024-05-01")
	if err != nil || got == nil {
		t.Fatalf("MeasurementByDate = %+v, %v", got, err)
	}
	if got.ID != m.ID || got.Weight != 3.6 || got.Height != 51 || !got.CreatedAt.Equal(m.CreatedAt) {
		t.Fatalf("unexpected measurement %+v", got)
	}
}

func TestDiaperLogs(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := db.InsertDiaperLog(ctx, &domain.DiaperLog{Kind: domain.Pee, Date: "2024-05-01"}); err != nil {
			t.Fatal(err)
		}
	}
	poop := &domain.DiaperLog{Kind: domain.Poop, Date: "2024-05-01"}
	if _, err := db.InsertDiaperLog(ctx, poop); err != nil {
		t.Fatal(err)
	}

	pee, err := db.DiaperLogsByDate(ctx, domain.Pee, "2024-05-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(pee) != 2 || pee[0].ID == pee[1].ID || pee[0].CreatedAt.IsZero() {
		t.Fatalf("unexpected pee logs %+v", pee)
	}

	ok, err := db.DeleteDiaperLog(ctx, domain.Poop, poop.ID)
	if err != nil || !ok {
		t.Fatalf("DeleteDiaperLog = %v, %v", ok, err)
	}
	left, _ := db.DiaperLogsByDate(ctx, domain.Poop, "2024-05-01")
	if len(left) != 0 {
		t.Fatalf("expected no poop logs, got %d", len(left))
	}

	if _, err := db.InsertDiaperLog(ctx, &domain.DiaperLog{Kind: "milk", Date: "2024-05-01"}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baby.db")
	db, err := Open(path)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	if _, err := db.InsertFeeding(context.Background(), &domain.FeedingEntry{Date: "2024-05-01", Amount: 90}); err != nil {
		t.Fatal(err)
	}
	_ = db.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close() //nolint:errcheck
	entries, err := reopened.FeedingsByDate(context.Background(), "2024-05-01")
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected 1 persisted entry, got %d (%v)", len(entries), err)
	}
}

func TestClosedDBReportsStorageError(t *testing.T) {
	db := openTestDB(t)
	_ = db.Close()
	_, err := db.FeedingsByDate(context.Background(), "2024-05-01")
	if !isStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
