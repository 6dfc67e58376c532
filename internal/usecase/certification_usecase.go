package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

const resourceCertifications = "certifications"

type CertificationInput struct {
	Name          string
	Issuer        string
	Status        string
	Date          string
	Description   string
	CredentialURL *string
}

type CertificationUpdate struct {
	Name          *string
	Issuer        *string
	Status        *string
	Date          *string
	Description   *string
	CredentialURL *string
}

type CertificationUsecase interface {
	List(ctx context.Context) ([]portfolio.Certification, error)
	Create(ctx context.Context, in CertificationInput) (portfolio.Certification, error)
	Update(ctx context.Context, id uuid.UUID, upd CertificationUpdate) (portfolio.Certification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Certification struct {
	repo  repository.CertificationRepository
	cache ContentCache
}

func NewCertificationUsecase(repo repository.CertificationRepository, cache ContentCache) *Certification {
	return &Certification{repo: repo, cache: cache}
}

func (u *Certification) List(ctx context.Context) ([]portfolio.Certification, error) {
	cached := []portfolio.Certification{}
	if cacheList(ctx, u.cache, resourceCertifications, &cached) {
		return cached, nil
	}

	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	storeList(ctx, u.cache, resourceCertifications, items)
	return items, nil
}

func (u *Certification) Create(ctx context.Context, in CertificationInput) (portfolio.Certification, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Issuer) == "" {
		return portfolio.Certification{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, portfolio.Certification{
		Name:          strings.TrimSpace(in.Name),
		Issuer:        strings.TrimSpace(in.Issuer),
		Status:        strings.TrimSpace(in.Status),
		Date:          strings.TrimSpace(in.Date),
		Description:   in.Description,
		CredentialURL: in.CredentialURL,
	})
	if err != nil {
		return portfolio.Certification{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceCertifications)
	return created, nil
}

func (u *Certification) Update(ctx context.Context, id uuid.UUID, upd CertificationUpdate) (portfolio.Certification, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.Certification{}, ErrNotFound
		}
		return portfolio.Certification{}, ErrInternal
	}

	applyString(&current.Name, upd.Name)
	applyString(&current.Issuer, upd.Issuer)
	applyString(&current.Status, upd.Status)
	applyString(&current.Date, upd.Date)
	applyString(&current.Description, upd.Description)
	if upd.CredentialURL != nil {
		current.CredentialURL = upd.CredentialURL
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.Certification{}, ErrNotFound
		}
		return portfolio.Certification{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceCertifications)
	return updated, nil
}

func (u *Certification) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	invalidate(ctx, u.cache, resourceCertifications)
	return nil
}
