package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"perkpal-backend/internal/domains/lead/model"
)

type postgresLeadRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresLeadRepository(pool *pgxpool.Pool) LeadRepository {
	return &postgresLeadRepository{pool: pool}
}

const leadColumns = `
	l.id, l.perk_id, l.ip, l.data, l.created_at, p.title, p.vendor
`

func scanLead(row pgx.Row) (*model.Lead, error) {
	l := &model.Lead{}
	err := row.Scan(&l.ID, &l.PerkID, &l.IP, &l.Data, &l.CreatedAt, &l.PerkTitle, &l.PerkVendor)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *postgresLeadRepository) Create(ctx context.Context, l *model.Lead) error {
	query := `
		INSERT INTO leads (id, perk_id, ip, data, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, l.ID, l.PerkID, l.IP, l.Data, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

func (r *postgresLeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		LEFT JOIN perks p ON p.id = l.perk_id
		WHERE l.id = $1
	`

	l, err := scanLead(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return l, nil
}

func buildLeadWhere(filter model.LeadFilter) (string, []interface{}, int) {
	where := `WHERE 1=1`
	args := []interface{}{}
	argN := 1

	if filter.PerkID != nil {
		where += fmt.Sprintf(` AND l.perk_id = $%d`, argN)
		args = append(args, *filter.PerkID)
		argN++
	}
	if filter.From != nil {
		where += fmt.Sprintf(` AND l.created_at >= $%d`, argN)
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		where += fmt.Sprintf(` AND l.created_at < $%d`, argN)
		args = append(args, *filter.To)
		argN++
	}

	return where, args, argN
}

func (r *postgresLeadRepository) List(ctx context.Context, filter model.LeadFilter) ([]model.Lead, int, error) {
	where, args, argN := buildLeadWhere(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM leads l ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		LEFT JOIN perks p ON p.id = l.perk_id ` + where +
		` ORDER BY l.created_at DESC` +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, argN, argN+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := []model.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read leads: %w", err)
	}

	return leads, total, nil
}

func (r *postgresLeadRepository) ListAllForExport(ctx context.Context, filter model.LeadFilter) ([]model.Lead, error) {
	where, args, _ := buildLeadWhere(filter)

	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		LEFT JOIN perks p ON p.id = l.perk_id ` + where +
		` ORDER BY l.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads for export: %w", err)
	}
	defer rows.Close()

	leads := []model.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, *l)
	}
	return leads, rows.Err()
}

func (r *postgresLeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrLeadNotFound
	}
	return nil
}
