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

type ContactMessageRepository interface {
	List(ctx context.Context) ([]portfolio.ContactMessage, error)
	Create(ctx context.Context, m portfolio.ContactMessage) (portfolio.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresContactMessageRepository struct {
	db database.DB
}

func NewPostgresContactMessageRepository(db database.DB) *PostgresContactMessageRepository {
	return &PostgresContactMessageRepository{db: db}
}

const contactMessageColumns = `id, name, email, message, read, created_at`

func scanContactMessage(row database.Row) (portfolio.ContactMessage, error) {
	var m portfolio.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Read, &m.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return portfolio.ContactMessage{}, ErrNotFound
		}
		return portfolio.ContactMessage{}, err
	}
	return m, nil
}

func (r *PostgresContactMessageRepository) List(ctx context.Context) ([]portfolio.ContactMessage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+contactMessageColumns+` FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.ContactMessage, 0)
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresContactMessageRepository) Create(ctx context.Context, m portfolio.ContactMessage) (portfolio.ContactMessage, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, message)
		 VALUES ($1, $2, $3)
		 RETURNING `+contactMessageColumns,
		m.Name, m.Email, m.Message,
	)
	return scanContactMessage(row)
}

func (r *PostgresContactMessageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE contact_messages SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresContactMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ContactMessageRepository = (*PostgresContactMessageRepository)(nil)
