package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"perkpal-backend/internal/domains/page/model"
	"perkpal-backend/internal/shared/ordering"
	"perkpal-backend/pkg/database"
)

type postgresPageRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPageRepository(pool *pgxpool.Pool) PageRepository {
	return &postgresPageRepository{pool: pool}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// =====================================================
// PAGES
// =====================================================

func (r *postgresPageRepository) Create(ctx context.Context, p *model.Page) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO pages (id, slug, title, meta_title, meta_description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		if _, err := tx.Exec(ctx, query,
			p.ID, p.Slug, p.Title, p.MetaTitle, p.MetaDescription, p.CreatedAt, p.UpdatedAt,
		); err != nil {
			if isUniqueViolation(err) {
				return model.ErrSlugTaken
			}
			return fmt.Errorf("failed to create page: %w", err)
		}
		return insertFields(ctx, tx, p.ID, p.Fields)
	})
}

func (r *postgresPageRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Page, error) {
	return r.getPage(ctx, `WHERE id = $1`, id)
}

func (r *postgresPageRepository) GetBySlug(ctx context.Context, slug string) (*model.Page, error) {
	return r.getPage(ctx, `WHERE slug = $1`, slug)
}

func (r *postgresPageRepository) getPage(ctx context.Context, where string, arg interface{}) (*model.Page, error) {
	query := `
		SELECT id, slug, title, meta_title, meta_description, created_at, updated_at
		FROM pages ` + where

	p := &model.Page{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Slug, &p.Title, &p.MetaTitle, &p.MetaDescription, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPageNotFound
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}

	fields, err := r.listFields(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Fields = fields
	return p, nil
}

func (r *postgresPageRepository) listFields(ctx context.Context, pageID uuid.UUID) ([]model.ContentField, error) {
	query := `
		SELECT id, page_id, key, label, type, value, display_order
		FROM page_fields
		WHERE page_id = $1
		ORDER BY display_order ASC
	`

	rows, err := r.pool.Query(ctx, query, pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list page fields: %w", err)
	}
	defer rows.Close()

	fields := []model.ContentField{}
	for rows.Next() {
		f := model.ContentField{}
		if err := rows.Scan(&f.ID, &f.PageID, &f.Key, &f.Label, &f.Type, &f.Value, &f.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan page field: %w", err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read page fields: %w", err)
	}
	return fields, nil
}

func (r *postgresPageRepository) List(ctx context.Context) ([]model.Page, error) {
	query := `
		SELECT id, slug, title, meta_title, meta_description, created_at, updated_at
		FROM pages
		ORDER BY title ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	pages := []model.Page{}
	for rows.Next() {
		p := model.Page{}
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.MetaTitle, &p.MetaDescription, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pages: %w", err)
	}
	return pages, nil
}

func (r *postgresPageRepository) Update(ctx context.Context, p *model.Page) error {
	query := `
		UPDATE pages
		SET title = $2, meta_title = $3, meta_description = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, p.ID, p.Title, p.MetaTitle, p.MetaDescription, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update page: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPageNotFound
	}
	return nil
}

func (r *postgresPageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM page_fields WHERE page_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete page fields: %w", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM pages WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete page: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrPageNotFound
		}
		return nil
	})
}

// ReplaceFields swaps a page's fields for the given set in one transaction so
// readers never observe a half-updated page.
func (r *postgresPageRepository) ReplaceFields(ctx context.Context, pageID uuid.UUID, fields []model.ContentField) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM page_fields WHERE page_id = $1`, pageID); err != nil {
			return fmt.Errorf("failed to clear page fields: %w", err)
		}
		return insertFields(ctx, tx, pageID, fields)
	})
}

func insertFields(ctx context.Context, tx pgx.Tx, pageID uuid.UUID, fields []model.ContentField) error {
	query := `
		INSERT INTO page_fields (id, page_id, key, label, type, value, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, f := range fields {
		if _, err := tx.Exec(ctx, query, f.ID, pageID, f.Key, f.Label, f.Type, f.Value, f.DisplayOrder); err != nil {
			return fmt.Errorf("failed to insert page field: %w", err)
		}
	}
	return nil
}

func (r *postgresPageRepository) ListSlugs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT slug FROM pages ORDER BY slug ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list page slugs: %w", err)
	}
	defer rows.Close()

	slugs := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan page slug: %w", err)
		}
		slugs = append(slugs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read page slugs: %w", err)
	}
	return slugs, nil
}

// =====================================================
// HOMEPAGE SECTIONS
// =====================================================

const sectionColumns = `id, slot, type, title, subtitle, config, is_visible, display_order, created_at, updated_at`

func scanSection(row pgx.Row) (*model.HomepageSection, error) {
	s := &model.HomepageSection{}
	err := row.Scan(
		&s.ID, &s.Slot, &s.Type, &s.Title, &s.Subtitle, &s.Config,
		&s.IsVisible, &s.DisplayOrder, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresPageRepository) CreateSection(ctx context.Context, s *model.HomepageSection) error {
	// New sections append to the end of their slot.
	query := `
		INSERT INTO homepage_sections (id, slot, type, title, subtitle, config, is_visible, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
			(SELECT COALESCE(MAX(display_order), 0) + 1 FROM homepage_sections WHERE slot = $2),
			$8, $9)
		RETURNING display_order
	`

	err := r.pool.QueryRow(ctx, query,
		s.ID, s.Slot, s.Type, s.Title, s.Subtitle, s.Config, s.IsVisible, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.DisplayOrder)
	if err != nil {
		return fmt.Errorf("failed to create homepage section: %w", err)
	}
	return nil
}

func (r *postgresPageRepository) GetSection(ctx context.Context, id uuid.UUID) (*model.HomepageSection, error) {
	query := `SELECT ` + sectionColumns + ` FROM homepage_sections WHERE id = $1`

	s, err := scanSection(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to get homepage section: %w", err)
	}
	return s, nil
}

func (r *postgresPageRepository) ListSections(ctx context.Context, slot string, visibleOnly bool) ([]model.HomepageSection, error) {
	query := `SELECT ` + sectionColumns + ` FROM homepage_sections WHERE slot = $1`
	if visibleOnly {
		query += ` AND is_visible = TRUE`
	}
	query += ` ORDER BY display_order ASC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to list homepage sections: %w", err)
	}
	defer rows.Close()

	sections := []model.HomepageSection{}
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan homepage section: %w", err)
		}
		sections = append(sections, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read homepage sections: %w", err)
	}
	return sections, nil
}

func (r *postgresPageRepository) UpdateSection(ctx context.Context, s *model.HomepageSection) error {
	query := `
		UPDATE homepage_sections
		SET type = $2, title = $3, subtitle = $4, config = $5, is_visible = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		s.ID, s.Type, s.Title, s.Subtitle, s.Config, s.IsVisible, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update homepage section: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSectionNotFound
	}
	return nil
}

func (r *postgresPageRepository) DeleteSection(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM homepage_sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete homepage section: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSectionNotFound
	}
	return nil
}

// =====================================================
// ORDERING SCOPE
// =====================================================

type sectionOrderStore struct {
	slot string
}

func (s sectionOrderStore) UpdateDisplayOrder(ctx context.Context, tx pgx.Tx, id uuid.UUID, displayOrder int, updatedAt time.Time) (int64, error) {
	// Constrained on the slot so a batch can only move rows of this scope.
	tag, err := tx.Exec(ctx,
		`UPDATE homepage_sections SET display_order = $2, updated_at = $3 WHERE id = $1 AND slot = $4`,
		id, displayOrder, updatedAt, s.slot,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *postgresPageRepository) SectionOrder(slot string) ordering.Store {
	return sectionOrderStore{slot: slot}
}
