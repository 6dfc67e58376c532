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

type CertificationRepository interface {
	List(ctx context.Context) ([]portfolio.Certification, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.Certification, error)
	Create(ctx context.Context, c portfolio.Certification) (portfolio.Certification, error)
	Update(ctx context.Context, c portfolio.Certification) (portfolio.Certification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresCertificationRepository struct {
	db database.DB
}

func NewPostgresCertificationRepository(db database.DB) *PostgresCertificationRepository {
	return &PostgresCertificationRepository{db: db}
}

const certificationColumns = `id, name, issuer, status, date, description, credential_url, created_at, updated_at`

func scanCertification(row database.Row) (portfolio.Certification, error) {
	var c portfolio.Certification
	err := row.Scan(&c.ID, &c.Name, &c.Issuer, &c.Status, &c.Date, &c.Description,
		&c.CredentialURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return portfolio.Certification{}, ErrNotFound
		}
		return portfolio.Certification{}, err
	}
	return c, nil
}

func (r *PostgresCertificationRepository) List(ctx context.Context) ([]portfolio.Certification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+certificationColumns+` FROM certifications ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.Certification, 0)
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresCertificationRepository) GetByID(ctx context.Context, id uuid.UUID) (portfolio.Certification, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+certificationColumns+` FROM certifications WHERE id = $1`, id)
	return scanCertification(row)
}

func (r *PostgresCertificationRepository) Create(ctx context.Context, c portfolio.Certification) (portfolio.Certification, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO certifications (name, issuer, status, date, description, credential_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+certificationColumns,
		c.Name, c.Issuer, c.Status, c.Date, c.Description, c.CredentialURL,
	)
	return scanCertification(row)
}

func (r *PostgresCertificationRepository) Update(ctx context.Context, c portfolio.Certification) (portfolio.Certification, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE certifications
		 SET name = $2, issuer = $3, status = $4, date = $5, description = $6, credential_url = $7, updated_at = now()
		 WHERE id = $1
		 RETURNING `+certificationColumns,
		c.ID, c.Name, c.Issuer, c.Status, c.Date, c.Description, c.CredentialURL,
	)
	return scanCertification(row)
}

func (r *PostgresCertificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ CertificationRepository = (*PostgresCertificationRepository)(nil)
