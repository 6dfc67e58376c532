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

type ProcedureRepository interface {
	List(ctx context.Context) ([]portfolio.Procedure, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.Procedure, error)
	Create(ctx context.Context, p portfolio.Procedure) (portfolio.Procedure, error)
	Update(ctx context.Context, p portfolio.Procedure) (portfolio.Procedure, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresProcedureRepository struct {
	db database.DB
}

func NewPostgresProcedureRepository(db database.DB) *PostgresProcedureRepository {
	return &PostgresProcedureRepository{db: db}
}

const procedureColumns = `id, title, description, content, category, tags, created_at, updated_at`

func scanProcedure(row database.Row) (portfolio.Procedure, error) {
	var p portfolio.Procedure
	var tags []byte
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Content, &p.Category, &tags, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return portfolio.Procedure{}, ErrNotFound
		}
		return portfolio.Procedure{}, err
	}
	if p.Tags, err = unmarshalList[string](tags); err != nil {
		return portfolio.Procedure{}, err
	}
	return p, nil
}

func (r *PostgresProcedureRepository) List(ctx context.Context) ([]portfolio.Procedure, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+procedureColumns+` FROM procedures ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.Procedure, 0)
	for rows.Next() {
		p, err := scanProcedure(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresProcedureRepository) GetByID(ctx context.Context, id uuid.UUID) (portfolio.Procedure, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+procedureColumns+` FROM procedures WHERE id = $1`, id)
	return scanProcedure(row)
}

func (r *PostgresProcedureRepository) Create(ctx context.Context, p portfolio.Procedure) (portfolio.Procedure, error) {
	tags, err := marshalList(p.Tags)
	if err != nil {
		return portfolio.Procedure{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO procedures (title, description, content, category, tags)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+procedureColumns,
		p.Title, p.Description, p.Content, p.Category, tags,
	)
	return scanProcedure(row)
}

func (r *PostgresProcedureRepository) Update(ctx context.Context, p portfolio.Procedure) (portfolio.Procedure, error) {
	tags, err := marshalList(p.Tags)
	if err != nil {
		return portfolio.Procedure{}, err
	}

	row := r.db.QueryRow(ctx,
		`UPDATE procedures
		 SET title = $2, description = $3, content = $4, category = $5, tags = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING `+procedureColumns,
		p.ID, p.Title, p.Description, p.Content, p.Category, tags,
	)
	return scanProcedure(row)
}

func (r *PostgresProcedureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM procedures WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ProcedureRepository = (*PostgresProcedureRepository)(nil)
