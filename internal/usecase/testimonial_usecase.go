package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

const resourceTestimonials = "testimonials"

type TestimonialInput struct {
	Name    string
	Role    string
	Company string
	Content string
	Avatar  string
}

type TestimonialUpdate struct {
	Name    *string
	Role    *string
	Company *string
	Content *string
	Avatar  *string
}

type TestimonialUsecase interface {
	List(ctx context.Context) ([]portfolio.Testimonial, error)
	Create(ctx context.Context, in TestimonialInput) (portfolio.Testimonial, error)
	Update(ctx context.Context, id uuid.UUID, upd TestimonialUpdate) (portfolio.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Testimonial struct {
	repo  repository.TestimonialRepository
	cache ContentCache
}

func NewTestimonialUsecase(repo repository.TestimonialRepository, cache ContentCache) *Testimonial {
	return &Testimonial{repo: repo, cache: cache}
}

func (u *Testimonial) List(ctx context.Context) ([]portfolio.Testimonial, error) {
	cached := []portfolio.Testimonial{}
	if cacheList(ctx, u.cache, resourceTestimonials, &cached) {
		return cached, nil
	}

	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	storeList(ctx, u.cache, resourceTestimonials, items)
	return items, nil
}

func (u *Testimonial) Create(ctx context.Context, in TestimonialInput) (portfolio.Testimonial, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Content) == "" {
		return portfolio.Testimonial{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, portfolio.Testimonial{
		Name:    strings.TrimSpace(in.Name),
		Role:    strings.TrimSpace(in.Role),
		Company: strings.TrimSpace(in.Company),
		Content: in.Content,
		Avatar:  in.Avatar,
	})
	if err != nil {
		return portfolio.Testimonial{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceTestimonials)
	return created, nil
}

func (u *Testimonial) Update(ctx context.Context, id uuid.UUID, upd TestimonialUpdate) (portfolio.Testimonial, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.Testimonial{}, ErrNotFound
		}
		return portfolio.Testimonial{}, ErrInternal
	}

	applyString(&current.Name, upd.Name)
	applyString(&current.Role, upd.Role)
	applyString(&current.Company, upd.Company)
	applyString(&current.Content, upd.Content)
	applyString(&current.Avatar, upd.Avatar)

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.Testimonial{}, ErrNotFound
		}
		return portfolio.Testimonial{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceTestimonials)
	return updated, nil
}

func (u *Testimonial) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	invalidate(ctx, u.cache, resourceTestimonials)
	return nil
}
