package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"perkpal-backend/internal/domains/settings/model"
	"perkpal-backend/pkg/database"
)

type postgresSettingsRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresSettingsRepository(pool *pgxpool.Pool) SettingsRepository {
	return &postgresSettingsRepository{pool: pool}
}

func (r *postgresSettingsRepository) ListAll(ctx context.Context) ([]model.SettingRow, error) {
	rows, err := r.pool.Query(ctx, `SELECT key, value, updated_at FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	settings := []model.SettingRow{}
	for rows.Next() {
		s := model.SettingRow{}
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return settings, nil
}

func (r *postgresSettingsRepository) UpsertAll(ctx context.Context, settings []model.SettingRow) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO settings (key, value, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
		`
		now := time.Now()
		for _, s := range settings {
			if _, err := tx.Exec(ctx, query, s.Key, s.Value, now); err != nil {
				return fmt.Errorf("failed to upsert setting %q: %w", s.Key, err)
			}
		}
		return nil
	})
}
