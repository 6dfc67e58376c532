package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"portfolio-api/internal/database"
	"portfolio-api/internal/domain/portfolio"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VeilleRepository interface {
	List(ctx context.Context) ([]portfolio.VeilleContent, error)
	ListByType(ctx context.Context, veilleType string) ([]portfolio.VeilleContent, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.VeilleContent, error)
	Create(ctx context.Context, v portfolio.VeilleContent) (portfolio.VeilleContent, error)
	Update(ctx context.Context, v portfolio.VeilleContent) (portfolio.VeilleContent, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByTypeAndTitle(ctx context.Context, veilleType, title string) (bool, error)
}

type PostgresVeilleRepository struct {
	db database.DB
}

func NewPostgresVeilleRepository(db database.DB) *PostgresVeilleRepository {
	return &PostgresVeilleRepository{db: db}
}

const veilleColumns = `id, type, title, content, created_at, updated_at`

func scanVeille(row database.Row) (portfolio.VeilleContent, error) {
	var v portfolio.VeilleContent
	err := row.Scan(&v.ID, &v.Type, &v.Title, &v.Content, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return portfolio.VeilleContent{}, ErrNotFound
		}
		return portfolio.VeilleContent{}, err
	}
	return v, nil
}

func (r *PostgresVeilleRepository) List(ctx context.Context) ([]portfolio.VeilleContent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+veilleColumns+` FROM veille_content ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVeille(rows)
}

func (r *PostgresVeilleRepository) ListByType(ctx context.Context, veilleType string) ([]portfolio.VeilleContent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+veilleColumns+` FROM veille_content WHERE type = $1 ORDER BY created_at DESC`,
		strings.TrimSpace(veilleType))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVeille(rows)
}

func collectVeille(rows database.Rows) ([]portfolio.VeilleContent, error) {
	out := make([]portfolio.VeilleContent, 0)
	for rows.Next() {
		v, err := scanVeille(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *PostgresVeilleRepository) GetByID(ctx context.Context, id uuid.UUID) (portfolio.VeilleContent, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+veilleColumns+` FROM veille_content WHERE id = $1`, id)
	return scanVeille(row)
}

func (r *PostgresVeilleRepository) Create(ctx context.Context, v portfolio.VeilleContent) (portfolio.VeilleContent, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO veille_content (type, title, content)
		 VALUES ($1, $2, $3)
		 RETURNING `+veilleColumns,
		v.Type, v.Title, v.Content,
	)
	return scanVeille(row)
}

func (r *PostgresVeilleRepository) Update(ctx context.Context, v portfolio.VeilleContent) (portfolio.VeilleContent, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE veille_content
		 SET type = $2, title = $3, content = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING `+veilleColumns,
		v.ID, v.Type, v.Title, v.Content,
	)
	return scanVeille(row)
}

func (r *PostgresVeilleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM veille_content WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ExistsByTypeAndTitle lets the watch fetcher skip articles it already stored.
func (r *PostgresVeilleRepository) ExistsByTypeAndTitle(ctx context.Context, veilleType, title string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM veille_content WHERE type = $1 AND title = $2)`,
		strings.TrimSpace(veilleType), strings.TrimSpace(title))
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

var _ VeilleRepository = (*PostgresVeilleRepository)(nil)
