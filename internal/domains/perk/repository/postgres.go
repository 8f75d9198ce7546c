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

	"perkpal-backend/internal/domains/perk/model"
	"perkpal-backend/internal/shared/ordering"
)

type postgresPerkRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPerkRepository(pool *pgxpool.Pool) PerkRepository {
	return &postgresPerkRepository{pool: pool}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

const perkColumns = `
	p.id, p.title, p.slug, p.vendor, p.description, p.redemption_url, p.image_url,
	p.discount_type, p.discount_value, p.category_id, p.subcategory_id,
	p.featured, p.status, p.display_order, p.created_at, p.updated_at,
	c.name
`

func scanPerk(row pgx.Row) (*model.Perk, error) {
	p := &model.Perk{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Vendor, &p.Description, &p.RedemptionURL, &p.ImageURL,
		&p.DiscountType, &p.DiscountValue, &p.CategoryID, &p.SubcategoryID,
		&p.Featured, &p.Status, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt,
		&p.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresPerkRepository) Create(ctx context.Context, p *model.Perk) error {
	query := `
		INSERT INTO perks (
			id, title, slug, vendor, description, redemption_url, image_url,
			discount_type, discount_value, category_id, subcategory_id,
			featured, status, display_order, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			(SELECT COALESCE(MAX(display_order), 0) + 1 FROM perks),
			$14, $15
		)
		RETURNING display_order
	`

	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Title, p.Slug, p.Vendor, p.Description, p.RedemptionURL, p.ImageURL,
		p.DiscountType, p.DiscountValue, p.CategoryID, p.SubcategoryID,
		p.Featured, p.Status, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.DisplayOrder)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create perk: %w", err)
	}
	return nil
}

func (r *postgresPerkRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Perk, error) {
	query := `
		SELECT ` + perkColumns + `
		FROM perks p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`

	p, err := scanPerk(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPerkNotFound
		}
		return nil, fmt.Errorf("failed to get perk: %w", err)
	}
	return p, nil
}

func (r *postgresPerkRepository) GetBySlug(ctx context.Context, slug string) (*model.Perk, error) {
	query := `
		SELECT ` + perkColumns + `
		FROM perks p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.slug = $1
	`

	p, err := scanPerk(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPerkNotFound
		}
		return nil, fmt.Errorf("failed to get perk by slug: %w", err)
	}
	return p, nil
}

func (r *postgresPerkRepository) List(ctx context.Context, filter model.PerkFilter) ([]model.Perk, int, error) {
	where := `WHERE 1=1`
	args := []interface{}{}
	argN := 1

	if filter.Search != nil && *filter.Search != "" {
		where += fmt.Sprintf(` AND p.title ILIKE $%d`, argN)
		args = append(args, "%"+*filter.Search+"%")
		argN++
	}
	if filter.CategoryID != nil {
		where += fmt.Sprintf(` AND p.category_id = $%d`, argN)
		args = append(args, *filter.CategoryID)
		argN++
	}
	if filter.SubcategoryID != nil {
		where += fmt.Sprintf(` AND p.subcategory_id = $%d`, argN)
		args = append(args, *filter.SubcategoryID)
		argN++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(` AND p.status = $%d`, argN)
		args = append(args, *filter.Status)
		argN++
	}
	if filter.Featured != nil {
		where += fmt.Sprintf(` AND p.featured = $%d`, argN)
		args = append(args, *filter.Featured)
		argN++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM perks p ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count perks: %w", err)
	}

	query := `
		SELECT ` + perkColumns + `
		FROM perks p
		LEFT JOIN categories c ON c.id = p.category_id ` + where +
		` ORDER BY p.display_order ASC, p.created_at DESC` +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, argN, argN+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list perks: %w", err)
	}
	defer rows.Close()

	perks := []model.Perk{}
	for rows.Next() {
		p, err := scanPerk(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan perk: %w", err)
		}
		perks = append(perks, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read perks: %w", err)
	}

	return perks, total, nil
}

func (r *postgresPerkRepository) ListSlugs(ctx context.Context, status string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT slug FROM perks WHERE status = $1 ORDER BY display_order ASC`, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list perk slugs: %w", err)
	}
	defer rows.Close()

	slugs := []string{}
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("failed to scan perk slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

func (r *postgresPerkRepository) Update(ctx context.Context, p *model.Perk) error {
	query := `
		UPDATE perks
		SET title = $2, slug = $3, vendor = $4, description = $5, redemption_url = $6,
			image_url = $7, discount_type = $8, discount_value = $9,
			category_id = $10, subcategory_id = $11, featured = $12, status = $13,
			updated_at = $14
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Vendor, p.Description, p.RedemptionURL,
		p.ImageURL, p.DiscountType, p.DiscountValue,
		p.CategoryID, p.SubcategoryID, p.Featured, p.Status,
		p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to update perk: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPerkNotFound
	}
	return nil
}

func (r *postgresPerkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM perks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete perk: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPerkNotFound
	}
	return nil
}

type perkOrderStore struct{}

func (perkOrderStore) UpdateDisplayOrder(ctx context.Context, tx pgx.Tx, id uuid.UUID, displayOrder int, updatedAt time.Time) (int64, error) {
	tag, err := tx.Exec(ctx,
		`UPDATE perks SET display_order = $2, updated_at = $3 WHERE id = $1`,
		id, displayOrder, updatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *postgresPerkRepository) Order() ordering.Store {
	return perkOrderStore{}
}
