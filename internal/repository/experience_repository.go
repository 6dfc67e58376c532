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

type ExperienceRepository interface {
	List(ctx context.Context) ([]portfolio.Experience, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.Experience, error)
	Create(ctx context.Context, e portfolio.Experience) (portfolio.Experience, error)
	Update(ctx context.Context, e portfolio.Experience) (portfolio.Experience, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresExperienceRepository struct {
	db database.DB
}

func NewPostgresExperienceRepository(db database.DB) *PostgresExperienceRepository {
	return &PostgresExperienceRepository{db: db}
}

const experienceColumns = `id, title, company, period, description, responsibilities, created_at, updated_at`

func scanExperience(row database.Row) (portfolio.Experience, error) {
	var e portfolio.Experience
	var responsibilities []byte
	err := row.Scan(&e.ID, &e.Title, &e.Company, &e.Period, &e.Description, &responsibilities, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return portfolio.Experience{}, ErrNotFound
		}
		return portfolio.Experience{}, err
	}
	if e.Responsibilities, err = unmarshalList[string](responsibilities); err != nil {
		return portfolio.Experience{}, err
	}
	return e, nil
}

func (r *PostgresExperienceRepository) List(ctx context.Context) ([]portfolio.Experience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+experienceColumns+` FROM experience ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.Experience, 0)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresExperienceRepository) GetByID(ctx context.Context, id uuid.UUID) (portfolio.Experience, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+experienceColumns+` FROM experience WHERE id = $1`, id)
	return scanExperience(row)
}

func (r *PostgresExperienceRepository) Create(ctx context.Context, e portfolio.Experience) (portfolio.Experience, error) {
	responsibilities, err := marshalList(e.Responsibilities)
	if err != nil {
		return portfolio.Experience{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO experience (title, company, period, description, responsibilities)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+experienceColumns,
		e.Title, e.Company, e.Period, e.Description, responsibilities,
	)
	return scanExperience(row)
}

func (r *PostgresExperienceRepository) Update(ctx context.Context, e portfolio.Experience) (portfolio.Experience, error) {
	responsibilities, err := marshalList(e.Responsibilities)
	if err != nil {
		return portfolio.Experience{}, err
	}

	row := r.db.QueryRow(ctx,
		`UPDATE experience
		 SET title = $2, company = $3, period = $4, description = $5, responsibilities = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING `+experienceColumns,
		e.ID, e.Title, e.Company, e.Period, e.Description, responsibilities,
	)
	return scanExperience(row)
}

func (r *PostgresExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM experience WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ExperienceRepository = (*PostgresExperienceRepository)(nil)
