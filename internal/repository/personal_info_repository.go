package repository

import (
	"context"
	"database/sql"
	"errors"

	"portfolio-api/internal/database"
	"portfolio-api/internal/domain/portfolio"

	"github.com/jackc/pgx/v5"
)

type PersonalInfoRepository interface {
	Get(ctx context.Context) (portfolio.PersonalInfo, error)
	Update(ctx context.Context, info portfolio.PersonalInfo) (portfolio.PersonalInfo, error)
}

type PostgresPersonalInfoRepository struct {
	db database.DB
}

func NewPostgresPersonalInfoRepository(db database.DB) *PostgresPersonalInfoRepository {
	return &PostgresPersonalInfoRepository{db: db}
}

// Get returns the first (and only) personal_info row.
func (r *PostgresPersonalInfoRepository) Get(ctx context.Context) (portfolio.PersonalInfo, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, title, subtitle, description, email, phone, location, avatar, resume, social, created_at, updated_at
		 FROM personal_info
		 ORDER BY created_at ASC
		 LIMIT 1`)

	var out portfolio.PersonalInfo
	var social []byte
	err := row.Scan(&out.ID, &out.Name, &out.Title, &out.Subtitle, &out.Description,
		&out.Email, &out.Phone, &out.Location, &out.Avatar, &out.Resume, &social,
		&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return portfolio.PersonalInfo{}, ErrNotFound
		}
		return portfolio.PersonalInfo{}, err
	}

	if out.Social, err = unmarshalMap(social); err != nil {
		return portfolio.PersonalInfo{}, err
	}
	return out, nil
}

func (r *PostgresPersonalInfoRepository) Update(ctx context.Context, info portfolio.PersonalInfo) (portfolio.PersonalInfo, error) {
	social, err := marshalMap(info.Social)
	if err != nil {
		return portfolio.PersonalInfo{}, err
	}

	affected, err := r.db.Exec(ctx,
		`UPDATE personal_info
		 SET name = $2, title = $3, subtitle = $4, description = $5, email = $6,
		     phone = $7, location = $8, avatar = $9, resume = $10, social = $11,
		     updated_at = now()
		 WHERE id = $1`,
		info.ID, info.Name, info.Title, info.Subtitle, info.Description, info.Email,
		info.Phone, info.Location, info.Avatar, info.Resume, social,
	)
	if err != nil {
		return portfolio.PersonalInfo{}, err
	}
	if affected == 0 {
		return portfolio.PersonalInfo{}, ErrNotFound
	}
	return r.Get(ctx)
}

var _ PersonalInfoRepository = (*PostgresPersonalInfoRepository)(nil)
