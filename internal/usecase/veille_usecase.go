package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

const resourceVeille = "veille"

// Veille types mirror the two watch pages of the site.
const (
	VeilleTypeTechnologique = "technologique"
	VeilleTypeJuridique     = "juridique"
)

type VeilleInput struct {
	Type    string
	Title   string
	Content string
}

type VeilleUpdate struct {
	Type    *string
	Title   *string
	Content *string
}

type VeilleUsecase interface {
	List(ctx context.Context) ([]portfolio.VeilleContent, error)
	ListByType(ctx context.Context, veilleType string) ([]portfolio.VeilleContent, error)
	Create(ctx context.Context, in VeilleInput) (portfolio.VeilleContent, error)
	Update(ctx context.Context, id uuid.UUID, upd VeilleUpdate) (portfolio.VeilleContent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Veille struct {
	repo  repository.VeilleRepository
	cache ContentCache
}

func NewVeilleUsecase(repo repository.VeilleRepository, cache ContentCache) *Veille {
	return &Veille{repo: repo, cache: cache}
}

func validVeilleType(t string) bool {
	return t == VeilleTypeTechnologique || t == VeilleTypeJuridique
}

func (u *Veille) List(ctx context.Context) ([]portfolio.VeilleContent, error) {
	cached := []portfolio.VeilleContent{}
	if cacheList(ctx, u.cache, resourceVeille, &cached) {
		return cached, nil
	}

	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	storeList(ctx, u.cache, resourceVeille, items)
	return items, nil
}

func (u *Veille) ListByType(ctx context.Context, veilleType string) ([]portfolio.VeilleContent, error) {
	veilleType = strings.TrimSpace(veilleType)
	if !validVeilleType(veilleType) {
		return nil, ErrInvalidInput
	}

	items, err := u.repo.ListByType(ctx, veilleType)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Veille) Create(ctx context.Context, in VeilleInput) (portfolio.VeilleContent, error) {
	veilleType := strings.TrimSpace(in.Type)
	title := strings.TrimSpace(in.Title)

	if title == "" || !validVeilleType(veilleType) {
		return portfolio.VeilleContent{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, portfolio.VeilleContent{
		Type:    veilleType,
		Title:   title,
		Content: in.Content,
	})
	if err != nil {
		return portfolio.VeilleContent{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceVeille)
	return created, nil
}

func (u *Veille) Update(ctx context.Context, id uuid.UUID, upd VeilleUpdate) (portfolio.VeilleContent, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.VeilleContent{}, ErrNotFound
		}
		return portfolio.VeilleContent{}, ErrInternal
	}

	if upd.Type != nil {
		t := strings.TrimSpace(*upd.Type)
		if !validVeilleType(t) {
			return portfolio.VeilleContent{}, ErrInvalidInput
		}
		current.Type = t
	}
	applyString(&current.Title, upd.Title)
	applyString(&current.Content, upd.Content)

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.VeilleContent{}, ErrNotFound
		}
		return portfolio.VeilleContent{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceVeille)
	return updated, nil
}

func (u *Veille) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	invalidate(ctx, u.cache, resourceVeille)
	return nil
}
