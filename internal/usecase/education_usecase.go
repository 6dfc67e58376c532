package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

const resourceEducation = "education"

type EducationInput struct {
	Degree      string
	School      string
	Period      string
	Description string
	Skills      []string
}

type EducationUpdate struct {
	Degree      *string
	School      *string
	Period      *string
	Description *string
	Skills      []string
}

type EducationUsecase interface {
	List(ctx context.Context) ([]portfolio.Education, error)
	Create(ctx context.Context, in EducationInput) (portfolio.Education, error)
	Update(ctx context.Context, id uuid.UUID, upd EducationUpdate) (portfolio.Education, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Education struct {
	repo  repository.EducationRepository
	cache ContentCache
}

func NewEducationUsecase(repo repository.EducationRepository, cache ContentCache) *Education {
	return &Education{repo: repo, cache: cache}
}

func (u *Education) List(ctx context.Context) ([]portfolio.Education, error) {
	cached := []portfolio.Education{}
	if cacheList(ctx, u.cache, resourceEducation, &cached) {
		return cached, nil
	}

	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	storeList(ctx, u.cache, resourceEducation, items)
	return items, nil
}

func (u *Education) Create(ctx context.Context, in EducationInput) (portfolio.Education, error) {
	if strings.TrimSpace(in.Degree) == "" || strings.TrimSpace(in.School) == "" {
		return portfolio.Education{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, portfolio.Education{
		Degree:      strings.TrimSpace(in.Degree),
		School:      strings.TrimSpace(in.School),
		Period:      strings.TrimSpace(in.Period),
		Description: in.Description,
		Skills:      nonNil(in.Skills),
	})
	if err != nil {
		return portfolio.Education{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceEducation)
	return created, nil
}

func (u *Education) Update(ctx context.Context, id uuid.UUID, upd EducationUpdate) (portfolio.Education, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.Education{}, ErrNotFound
		}
		return portfolio.Education{}, ErrInternal
	}

	applyString(&current.Degree, upd.Degree)
	applyString(&current.School, upd.School)
	applyString(&current.Period, upd.Period)
	applyString(&current.Description, upd.Description)
	if upd.Skills != nil {
		current.Skills = upd.Skills
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.Education{}, ErrNotFound
		}
		return portfolio.Education{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceEducation)
	return updated, nil
}

func (u *Education) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	invalidate(ctx, u.cache, resourceEducation)
	return nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
