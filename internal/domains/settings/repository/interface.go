package repository

import (
	"context"

	"perkpal-backend/internal/domains/settings/model"
)

type SettingsRepository interface {
	ListAll(ctx context.Context) ([]model.SettingRow, error)
	// UpsertAll writes the given rows in one transaction.
	UpsertAll(ctx context.Context, rows []model.SettingRow) error
}
