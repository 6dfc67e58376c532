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

type ProjectRepository interface {
	List(ctx context.Context) ([]portfolio.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.Project, error)
	Create(ctx context.Context, p portfolio.Project) (portfolio.Project, error)
	Update(ctx context.Context, p portfolio.Project) (portfolio.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, title, description, technologies, image, category, date, highlights, github_url, demo_url, created_at, updated_at`

func scanProject(row database.Row) (portfolio.Project, error) {
	var p portfolio.Project
	var technologies, highlights []byte
	err := row.Scan(&p.ID, &p.Title, &p.Description, &technologies, &p.Image,
		&p.Category, &p.Date, &highlights, &p.GithubURL, &p.DemoURL,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return portfolio.Project{}, ErrNotFound
		}
		return portfolio.Project{}, err
	}
	if p.Technologies, err = unmarshalList[string](technologies); err != nil {
		return portfolio.Project{}, err
	}
	if p.Highlights, err = unmarshalList[string](highlights); err != nil {
		return portfolio.Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) List(ctx context.Context) ([]portfolio.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (portfolio.Project, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	return scanProject(row)
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p portfolio.Project) (portfolio.Project, error) {
	technologies, err := marshalList(p.Technologies)
	if err != nil {
		return portfolio.Project{}, err
	}
	highlights, err := marshalList(p.Highlights)
	if err != nil {
		return portfolio.Project{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO projects (title, description, technologies, image, category, date, highlights, github_url, demo_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+projectColumns,
		p.Title, p.Description, technologies, p.Image, p.Category, p.Date, highlights, p.GithubURL, p.DemoURL,
	)
	return scanProject(row)
}

func (r *PostgresProjectRepository) Update(ctx context.Context, p portfolio.Project) (portfolio.Project, error) {
	technologies, err := marshalList(p.Technologies)
	if err != nil {
		return portfolio.Project{}, err
	}
	highlights, err := marshalList(p.Highlights)
	if err != nil {
		return portfolio.Project{}, err
	}

	row := r.db.QueryRow(ctx,
		`UPDATE projects
		 SET title = $2, description = $3, technologies = $4, image = $5, category = $6,
		     date = $7, highlights = $8, github_url = $9, demo_url = $10, updated_at = now()
		 WHERE id = $1
		 RETURNING `+projectColumns,
		p.ID, p.Title, p.Description, technologies, p.Image, p.Category, p.Date, highlights, p.GithubURL, p.DemoURL,
	)
	return scanProject(row)
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ProjectRepository = (*PostgresProjectRepository)(nil)
