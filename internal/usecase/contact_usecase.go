package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

type ContactMessageInput struct {
	Name    string
	Email   string
	Message string
}

type ContactUsecase interface {
	List(ctx context.Context) ([]portfolio.ContactMessage, error)
	Submit(ctx context.Context, in ContactMessageInput) (portfolio.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Contact struct {
	repo repository.ContactMessageRepository
}

func NewContactUsecase(repo repository.ContactMessageRepository) *Contact {
	return &Contact{repo: repo}
}

func (u *Contact) List(ctx context.Context) ([]portfolio.ContactMessage, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Contact) Submit(ctx context.Context, in ContactMessageInput) (portfolio.ContactMessage, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)

	if name == "" || email == "" || message == "" {
		return portfolio.ContactMessage{}, ErrInvalidInput
	}
	if !strings.Contains(email, "@") {
		return portfolio.ContactMessage{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, portfolio.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	})
	if err != nil {
		return portfolio.ContactMessage{}, ErrInternal
	}
	return created, nil
}

func (u *Contact) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Contact) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}
