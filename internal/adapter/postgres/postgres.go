// Package postgres implements plan-history persistence on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements the plan repository port.
type DB struct {
	sql *sql.DB
}

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
		`CREATE TABLE IF NOT EXISTS plans (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			language TEXT NOT NULL CHECK(language IN ('English','Spanish')),
			rmr DOUBLE PRECISION NOT NULL,
			tdee DOUBLE PRECISION NOT NULL,
			target_kcal DOUBLE PRECISION NOT NULL,
			protein_g DOUBLE PRECISION NOT NULL,
			fat_g DOUBLE PRECISION NOT NULL,
			carbs_g DOUBLE PRECISION NOT NULL,
			protein_pct DOUBLE PRECISION NOT NULL,
			fat_pct DOUBLE PRECISION NOT NULL,
			carbs_pct DOUBLE PRECISION NOT NULL,
			plan_text TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_plans_created_at ON plans(created_at);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
