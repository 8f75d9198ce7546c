package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"perkpal-backend/internal/domains/media/model"
)

type postgresMediaRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresMediaRepository(pool *pgxpool.Pool) MediaRepository {
	return &postgresMediaRepository{pool: pool}
}

func (r *postgresMediaRepository) Create(ctx context.Context, m *model.Media) error {
	query := `
		INSERT INTO media (id, file_name, object_key, url, content_type, size_bytes, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		m.ID, m.FileName, m.ObjectKey, m.URL, m.ContentType, m.SizeBytes, m.UploadedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create media record: %w", err)
	}
	return nil
}

func (r *postgresMediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	query := `
		SELECT id, file_name, object_key, url, content_type, size_bytes, uploaded_by, created_at
		FROM media
		WHERE id = $1
	`

	m := &model.Media{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.FileName, &m.ObjectKey, &m.URL, &m.ContentType, &m.SizeBytes, &m.UploadedBy, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to get media: %w", err)
	}
	return m, nil
}

func (r *postgresMediaRepository) List(ctx context.Context, filter model.MediaFilter) ([]model.Media, int, error) {
	where := `WHERE 1=1`
	args := []interface{}{}
	argN := 1

	if filter.Search != nil && *filter.Search != "" {
		where += fmt.Sprintf(` AND file_name ILIKE $%d`, argN)
		args = append(args, "%"+*filter.Search+"%")
		argN++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM media ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count media: %w", err)
	}

	query := `
		SELECT id, file_name, object_key, url, content_type, size_bytes, uploaded_by, created_at
		FROM media ` + where +
		` ORDER BY created_at DESC` +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, argN, argN+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list media: %w", err)
	}
	defer rows.Close()

	items := []model.Media{}
	for rows.Next() {
		m := model.Media{}
		err := rows.Scan(
			&m.ID, &m.FileName, &m.ObjectKey, &m.URL, &m.ContentType, &m.SizeBytes, &m.UploadedBy, &m.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan media: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read media: %w", err)
	}

	return items, total, nil
}

func (r *postgresMediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrMediaNotFound
	}
	return nil
}
