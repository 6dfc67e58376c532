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

type TestimonialRepository interface {
	List(ctx context.Context) ([]portfolio.Testimonial, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.Testimonial, error)
	Create(ctx context.Context, t portfolio.Testimonial) (portfolio.Testimonial, error)
	Update(ctx context.Context, t portfolio.Testimonial) (portfolio.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresTestimonialRepository struct {
	db database.DB
}

func NewPostgresTestimonialRepository(db database.DB) *PostgresTestimonialRepository {
	return &PostgresTestimonialRepository{db: db}
}

const testimonialColumns = `id, name, role, company, content, avatar, created_at, updated_at`

func scanTestimonial(row database.Row) (portfolio.Testimonial, error) {
	var t portfolio.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Role, &t.Company, &t.Content, &t.Avatar, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return portfolio.Testimonial{}, ErrNotFound
		}
		return portfolio.Testimonial{}, err
	}
	return t, nil
}

func (r *PostgresTestimonialRepository) List(ctx context.Context) ([]portfolio.Testimonial, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.Testimonial, 0)
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresTestimonialRepository) GetByID(ctx context.Context, id uuid.UUID) (portfolio.Testimonial, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id)
	return scanTestimonial(row)
}

func (r *PostgresTestimonialRepository) Create(ctx context.Context, t portfolio.Testimonial) (portfolio.Testimonial, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO testimonials (name, role, company, content, avatar)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+testimonialColumns,
		t.Name, t.Role, t.Company, t.Content, t.Avatar,
	)
	return scanTestimonial(row)
}

func (r *PostgresTestimonialRepository) Update(ctx context.Context, t portfolio.Testimonial) (portfolio.Testimonial, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE testimonials
		 SET name = $2, role = $3, company = $4, content = $5, avatar = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING `+testimonialColumns,
		t.ID, t.Name, t.Role, t.Company, t.Content, t.Avatar,
	)
	return scanTestimonial(row)
}

func (r *PostgresTestimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ TestimonialRepository = (*PostgresTestimonialRepository)(nil)
