// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"babytracker/internal/domain"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Ensure interfaces are met.
var _ domain.FeedingRepository = (*DB)(nil)
var _ domain.GoalRepository = (*DB)(nil)
var _ domain.MeasurementRepository = (*DB)(nil)
var _ domain.DiaperRepository = (*DB)(nil)

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS feeding_entries (id BIGSERIAL PRIMARY KEY, date TEXT NOT NULL, amount DOUBLE PRECISION NOT NULL, notes TEXT NOT NULL DEFAULT '', created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_feeding_entries_date ON feeding_entries(date);",
		"CREATE TABLE IF NOT EXISTS daily_goals (id BIGSERIAL PRIMARY KEY, date TEXT NOT NULL UNIQUE, goal INTEGER NOT NULL);",
		"CREATE TABLE IF NOT EXISTS measurements (id BIGSERIAL PRIMARY KEY, date TEXT NOT NULL, weight DOUBLE PRECISION NOT NULL, height DOUBLE PRECISION NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_measurements_date ON measurements(date);",
		"CREATE TABLE IF NOT EXISTS pee_logs (id BIGSERIAL PRIMARY KEY, date TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_pee_logs_date ON pee_logs(date);",
		"CREATE TABLE IF NOT EXISTS poop_logs (id BIGSERIAL PRIMARY KEY, date TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_poop_logs_date ON poop_logs(date);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// deleteByID deletes one row from a table named by the caller, never by input.
func (d *DB) deleteByID(ctx context.Context, table string, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM "+table+" WHERE id=$1;", id)
	if err != nil {
		return false, domain.NewStorageError("delete from "+table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.NewStorageError("delete from "+table, err)
	}
	return n > 0, nil
}
