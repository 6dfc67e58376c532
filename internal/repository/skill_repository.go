package repository

import (
	"context"
	"database/sql"
	"errors"

	"portfolio-api/internal/database"
	"portfolio-api/internal/domain/portfolio"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SkillRepository interface {
	List(ctx context.Context) ([]portfolio.SkillCategory, error)
	Create(ctx context.Context, s portfolio.SkillCategory) (portfolio.SkillCategory, error)
	Update(ctx context.Context, s portfolio.SkillCategory) (portfolio.SkillCategory, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.SkillCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const skillColumns = `id, category, items, created_at, updated_at`

func scanSkillCategory(row database.Row) (portfolio.SkillCategory, error) {
	var s portfolio.SkillCategory
	var items []byte
	err := row.Scan(&s.ID, &s.Category, &items, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return portfolio.SkillCategory{}, ErrNotFound
		}
		return portfolio.SkillCategory{}, err
	}
	if s.Items, err = unmarshalList[portfolio.SkillItem](items); err != nil {
		return portfolio.SkillCategory{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) List(ctx context.Context) ([]portfolio.SkillCategory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+skillColumns+` FROM skill_categories ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.SkillCategory, 0)
	for rows.Next() {
		s, err := scanSkillCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresSkillRepository) GetByID(ctx context.Context, id uuid.UUID) (portfolio.SkillCategory, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+skillColumns+` FROM skill_categories WHERE id = $1`, id)
	return scanSkillCategory(row)
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s portfolio.SkillCategory) (portfolio.SkillCategory, error) {
	items, err := marshalList(s.Items)
	if err != nil {
		return portfolio.SkillCategory{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO skill_categories (category, items)
		 VALUES ($1, $2)
		 RETURNING `+skillColumns,
		s.Category, items,
	)
	return scanSkillCategory(row)
}

func (r *PostgresSkillRepository) Update(ctx context.Context, s portfolio.SkillCategory) (portfolio.SkillCategory, error) {
	items, err := marshalList(s.Items)
	if err != nil {
		return portfolio.SkillCategory{}, err
	}

	row := r.db.QueryRow(ctx,
		`UPDATE skill_categories
		 SET category = $2, items = $3, updated_at = now()
		 WHERE id = $1
		 RETURNING `+skillColumns,
		s.ID, s.Category, items,
	)
	return scanSkillCategory(row)
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM skill_categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ SkillRepository = (*PostgresSkillRepository)(nil)
