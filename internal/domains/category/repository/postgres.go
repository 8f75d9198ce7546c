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

	"perkpal-backend/internal/domains/category/model"
	"perkpal-backend/internal/shared/ordering"
)

type postgresCategoryRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &postgresCategoryRepository{pool: pool}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// =====================================================
// CATEGORIES
// =====================================================

func (r *postgresCategoryRepository) CreateCategory(ctx context.Context, c *model.Category) error {
	// New rows append to the end of the global list.
	query := `
		INSERT INTO categories (id, name, slug, description, icon_url, display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT COALESCE(MAX(display_order), 0) + 1 FROM categories),
			$6, $7, $8)
		RETURNING display_order
	`

	err := r.pool.QueryRow(ctx, query,
		c.ID, c.Name, c.Slug, c.Description, c.IconURL,
		c.IsActive, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.DisplayOrder)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

const categoryColumns = `
	c.id, c.name, c.slug, c.description, c.icon_url, c.display_order,
	c.is_active, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM subcategories s WHERE s.category_id = c.id)::int,
	(SELECT COUNT(*) FROM perks p WHERE p.category_id = c.id)
`

func scanCategory(row pgx.Row) (*model.Category, error) {
	c := &model.Category{}
	var subCount int
	var perkCount int64

	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.IconURL, &c.DisplayOrder,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		&subCount, &perkCount,
	)
	if err != nil {
		return nil, err
	}

	c.SubcategoryCount = &subCount
	c.PerkCount = &perkCount
	return c, nil
}

func (r *postgresCategoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories c WHERE c.id = $1`

	c, err := scanCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

func (r *postgresCategoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories c WHERE c.slug = $1`

	c, err := scanCategory(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}
	return c, nil
}

func (r *postgresCategoryRepository) ListCategories(ctx context.Context, filter model.CategoryFilter) ([]model.Category, int, error) {
	where := `WHERE 1=1`
	args := []interface{}{}
	argN := 1

	if filter.Search != nil && *filter.Search != "" {
		where += fmt.Sprintf(` AND c.name ILIKE $%d`, argN)
		args = append(args, "%"+*filter.Search+"%")
		argN++
	}
	if filter.IsActive != nil {
		where += fmt.Sprintf(` AND c.is_active = $%d`, argN)
		args = append(args, *filter.IsActive)
		argN++
	}

	// Total over the unpaginated, filtered set.
	var total int
	countQuery := `SELECT COUNT(*) FROM categories c ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	query := `SELECT ` + categoryColumns + ` FROM categories c ` + where +
		` ORDER BY c.display_order ASC, c.created_at DESC` +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, argN, argN+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read categories: %w", err)
	}

	return categories, total, nil
}

func (r *postgresCategoryRepository) UpdateCategory(ctx context.Context, c *model.Category) error {
	query := `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, icon_url = $5, is_active = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.Slug, c.Description, c.IconURL, c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCategoryNotFound
	}
	return nil
}

func (r *postgresCategoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	var subCount, perkCount int
	check := `
		SELECT
			(SELECT COUNT(*) FROM subcategories WHERE category_id = $1)::int,
			(SELECT COUNT(*) FROM perks WHERE category_id = $1)::int
	`
	if err := r.pool.QueryRow(ctx, check, id).Scan(&subCount, &perkCount); err != nil {
		return fmt.Errorf("failed to check category usage: %w", err)
	}
	if subCount > 0 || perkCount > 0 {
		return model.ErrCategoryNotEmpty
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCategoryNotFound
	}
	return nil
}

func (r *postgresCategoryRepository) ListCategorySlugs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT slug FROM categories WHERE is_active = TRUE ORDER BY display_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list category slugs: %w", err)
	}
	defer rows.Close()

	slugs := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan category slug: %w", err)
		}
		slugs = append(slugs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category slugs: %w", err)
	}
	return slugs, nil
}

// =====================================================
// SUBCATEGORIES
// =====================================================

func (r *postgresCategoryRepository) CreateSubcategory(ctx context.Context, s *model.Subcategory) error {
	// Append to the end of the parent's list; ordering is per category.
	query := `
		INSERT INTO subcategories (id, category_id, name, slug, display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4,
			(SELECT COALESCE(MAX(display_order), 0) + 1 FROM subcategories WHERE category_id = $2),
			$5, $6, $7)
		RETURNING display_order
	`

	err := r.pool.QueryRow(ctx, query,
		s.ID, s.CategoryID, s.Name, s.Slug, s.IsActive, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.DisplayOrder)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create subcategory: %w", err)
	}
	return nil
}

func (r *postgresCategoryRepository) GetSubcategoryByID(ctx context.Context, id uuid.UUID) (*model.Subcategory, error) {
	query := `
		SELECT id, category_id, name, slug, display_order, is_active, created_at, updated_at
		FROM subcategories
		WHERE id = $1
	`

	s := &model.Subcategory{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CategoryID, &s.Name, &s.Slug, &s.DisplayOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSubcategoryNotFound
		}
		return nil, fmt.Errorf("failed to get subcategory: %w", err)
	}
	return s, nil
}

func (r *postgresCategoryRepository) ListSubcategories(ctx context.Context, filter model.SubcategoryFilter) ([]model.Subcategory, int, error) {
	where := `WHERE 1=1`
	args := []interface{}{}
	argN := 1

	if filter.CategoryID != nil {
		where += fmt.Sprintf(` AND category_id = $%d`, argN)
		args = append(args, *filter.CategoryID)
		argN++
	}
	if filter.Search != nil && *filter.Search != "" {
		where += fmt.Sprintf(` AND name ILIKE $%d`, argN)
		args = append(args, "%"+*filter.Search+"%")
		argN++
	}
	if filter.IsActive != nil {
		where += fmt.Sprintf(` AND is_active = $%d`, argN)
		args = append(args, *filter.IsActive)
		argN++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM subcategories ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count subcategories: %w", err)
	}

	query := `
		SELECT id, category_id, name, slug, display_order, is_active, created_at, updated_at
		FROM subcategories ` + where +
		` ORDER BY display_order ASC, created_at DESC` +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, argN, argN+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subcategories: %w", err)
	}
	defer rows.Close()

	subcategories := []model.Subcategory{}
	for rows.Next() {
		s := model.Subcategory{}
		err := rows.Scan(
			&s.ID, &s.CategoryID, &s.Name, &s.Slug, &s.DisplayOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan subcategory: %w", err)
		}
		subcategories = append(subcategories, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read subcategories: %w", err)
	}

	return subcategories, total, nil
}

func (r *postgresCategoryRepository) UpdateSubcategory(ctx context.Context, s *model.Subcategory) error {
	query := `
		UPDATE subcategories
		SET name = $2, slug = $3, is_active = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, s.ID, s.Name, s.Slug, s.IsActive, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to update subcategory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSubcategoryNotFound
	}
	return nil
}

func (r *postgresCategoryRepository) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subcategory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSubcategoryNotFound
	}
	return nil
}

// =====================================================
// ORDERING SCOPES
// =====================================================

type categoryOrderStore struct{}

func (categoryOrderStore) UpdateDisplayOrder(ctx context.Context, tx pgx.Tx, id uuid.UUID, displayOrder int, updatedAt time.Time) (int64, error) {
	tag, err := tx.Exec(ctx,
		`UPDATE categories SET display_order = $2, updated_at = $3 WHERE id = $1`,
		id, displayOrder, updatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type subcategoryOrderStore struct {
	categoryID uuid.UUID
}

func (s subcategoryOrderStore) UpdateDisplayOrder(ctx context.Context, tx pgx.Tx, id uuid.UUID, displayOrder int, updatedAt time.Time) (int64, error) {
	// Constrained on the parent so a batch can only move rows of this scope.
	tag, err := tx.Exec(ctx,
		`UPDATE subcategories SET display_order = $2, updated_at = $3 WHERE id = $1 AND category_id = $4`,
		id, displayOrder, updatedAt, s.categoryID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *postgresCategoryRepository) CategoryOrder() ordering.Store {
	return categoryOrderStore{}
}

func (r *postgresCategoryRepository) SubcategoryOrder(categoryID uuid.UUID) ordering.Store {
	return subcategoryOrderStore{categoryID: categoryID}
}
