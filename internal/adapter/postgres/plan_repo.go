package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mealplanner/internal/domain"
)

const planColumns = `id, title, language, rmr, tdee, target_kcal,
	protein_g, fat_g, carbs_g, protein_pct, fat_pct, carbs_pct,
	plan_text, created_at`

// SavePlan inserts a generated plan record.
func (d *DB) SavePlan(ctx context.Context, rec domain.PlanRecord) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO plans(`+planColumns+`)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
		rec.ID, rec.Title, string(rec.Language),
		rec.Macros.RMR, rec.Macros.TDEE, rec.Macros.TargetKcal,
		rec.Macros.ProteinG, rec.Macros.FatG, rec.Macros.CarbsG,
		rec.Macros.ProteinPct, rec.Macros.FatPct, rec.Macros.CarbsPct,
		rec.PlanText, rec.CreatedAt.UTC(),
	)
	return err
}

// GetPlan returns the plan with the given id, or nil when absent.
func (d *DB) GetPlan(ctx context.Context, id string) (*domain.PlanRecord, error) {
	row := d.sql.QueryRowContext(ctx,
		`SELECT `+planColumns+` FROM plans WHERE id=$1;`, id)

	rec, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

// ListRecentPlans returns the most recently generated plans up to limit.
func (d *DB) ListRecentPlans(ctx context.Context, limit int) ([]domain.PlanRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT `+planColumns+` FROM plans ORDER BY created_at DESC LIMIT $1;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.PlanRecord, 0, limit)
	for rows.Next() {
		rec, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*domain.PlanRecord, error) {
	var rec domain.PlanRecord
	var lang string
	var createdAt time.Time
	if err := row.Scan(
		&rec.ID, &rec.Title, &lang,
		&rec.Macros.RMR, &rec.Macros.TDEE, &rec.Macros.TargetKcal,
		&rec.Macros.ProteinG, &rec.Macros.FatG, &rec.Macros.CarbsG,
		&rec.Macros.ProteinPct, &rec.Macros.FatPct, &rec.Macros.CarbsPct,
		&rec.PlanText, &createdAt,
	); err != nil {
		return nil, err
	}
	rec.Language = domain.Language(lang)
	rec.CreatedAt = createdAt.UTC()
	return &rec, nil
}
