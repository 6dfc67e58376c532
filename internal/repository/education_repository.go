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

type EducationRepository interface {
	List(ctx context.Context) ([]portfolio.Education, error)
	Create(ctx context.Context, e portfolio.Education) (portfolio.Education, error)
	Update(ctx context.Context, e portfolio.Education) (portfolio.Education, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.Education, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresEducationRepository struct {
	db database.DB
}

func NewPostgresEducationRepository(db database.DB) *PostgresEducationRepository {
	return &PostgresEducationRepository{db: db}
}

const educationColumns = `id, degree, school, period, description, skills, created_at, updated_at`

func scanEducation(row database.Row) (portfolio.Education, error) {
	var e portfolio.Education
	var skills []byte
	err := row.Scan(&e.ID, &e.Degree, &e.School, &e.Period, &e.Description, &skills, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return portfolio.Education{}, ErrNotFound
		}
		return portfolio.Education{}, err
	}
	if e.Skills, err = unmarshalList[string](skills); err != nil {
		return portfolio.Education{}, err
	}
	return e, nil
}

func (r *PostgresEducationRepository) List(ctx context.Context) ([]portfolio.Education, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+educationColumns+` FROM education ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.Education, 0)
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresEducationRepository) GetByID(ctx context.Context, id uuid.UUID) (portfolio.Education, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+educationColumns+` FROM education WHERE id = $1`, id)
	return scanEducation(row)
}

func (r *PostgresEducationRepository) Create(ctx context.Context, e portfolio.Education) (portfolio.Education, error) {
	skills, err := marshalList(e.Skills)
	if err != nil {
		return portfolio.Education{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO education (degree, school, period, description, skills)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+educationColumns,
		e.Degree, e.School, e.Period, e.Description, skills,
	)
	return scanEducation(row)
}

func (r *PostgresEducationRepository) Update(ctx context.Context, e portfolio.Education) (portfolio.Education, error) {
	skills, err := marshalList(e.Skills)
	if err != nil {
		return portfolio.Education{}, err
	}

	row := r.db.QueryRow(ctx,
		`UPDATE education
		 SET degree = $2, school = $3, period = $4, description = $5, skills = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING `+educationColumns,
		e.ID, e.Degree, e.School, e.Period, e.Description, skills,
	)
	return scanEducation(row)
}

func (r *PostgresEducationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ EducationRepository = (*PostgresEducationRepository)(nil)
