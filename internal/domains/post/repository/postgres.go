package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"perkpal-backend/internal/domains/post/model"
)

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

const postColumns = `
	p.id, p.title, p.slug, p.excerpt, p.body, p.cover_image_url, p.status,
	p.author_id, p.published_at, p.created_at, p.updated_at, u.name
`

func scanPost(row pgx.Row) (*model.Post, error) {
	p := &model.Post{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Body, &p.CoverImageURL, &p.Status,
		&p.AuthorID, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt, &p.AuthorName,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresPostRepository) Create(ctx context.Context, p *model.Post) error {
	query := `
		INSERT INTO posts (id, title, slug, excerpt, body, cover_image_url, status, author_id, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Body, p.CoverImageURL, p.Status,
		p.AuthorID, p.PublishedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postgresPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p LEFT JOIN users u ON u.id = p.author_id WHERE p.id = $1`

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return p, nil
}

func (r *postgresPostRepository) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p LEFT JOIN users u ON u.id = p.author_id WHERE p.slug = $1`

	p, err := scanPost(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}
	return p, nil
}

func (r *postgresPostRepository) List(ctx context.Context, filter model.PostFilter) ([]model.Post, int, error) {
	where := `WHERE 1=1`
	args := []interface{}{}
	argN := 1

	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(` AND p.status = $%d`, argN)
		args = append(args, *filter.Status)
		argN++
	}
	if filter.Search != nil && *filter.Search != "" {
		where += fmt.Sprintf(` AND (p.title ILIKE $%d OR p.excerpt ILIKE $%d)`, argN, argN)
		args = append(args, "%"+*filter.Search+"%")
		argN++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM posts p ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	// Published posts sort by publish date; drafts fall back to creation date.
	query := `SELECT ` + postColumns + ` FROM posts p LEFT JOIN users u ON u.id = p.author_id ` + where +
		` ORDER BY p.published_at DESC NULLS LAST, p.created_at DESC` +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, argN, argN+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read posts: %w", err)
	}

	return posts, total, nil
}

func (r *postgresPostRepository) Update(ctx context.Context, p *model.Post) error {
	query := `
		UPDATE posts
		SET title = $2, slug = $3, excerpt = $4, body = $5, cover_image_url = $6,
			status = $7, published_at = $8, updated_at = $9
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Body, p.CoverImageURL,
		p.Status, p.PublishedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func (r *postgresPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func (r *postgresPostRepository) ListSlugs(ctx context.Context, status string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT slug FROM posts WHERE status = $1 ORDER BY published_at DESC NULLS LAST`, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list post slugs: %w", err)
	}
	defer rows.Close()

	slugs := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan post slug: %w", err)
		}
		slugs = append(slugs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read post slugs: %w", err)
	}
	return slugs, nil
}
