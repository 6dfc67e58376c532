package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

const resourceExperience = "experience"

type ExperienceInput struct {
	Title            string
	Company          string
	Period           string
	Description      string
	Responsibilities []string
}

type ExperienceUpdate struct {
	Title            *string
	Company          *string
	Period           *string
	Description      *string
	Responsibilities []string
}

type ExperienceUsecase interface {
	List(ctx context.Context) ([]portfolio.Experience, error)
	Create(ctx context.Context, in ExperienceInput) (portfolio.Experience, error)
	Update(ctx context.Context, id uuid.UUID, upd ExperienceUpdate) (portfolio.Experience, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Experience struct {
	repo  repository.ExperienceRepository
	cache ContentCache
}

func NewExperienceUsecase(repo repository.ExperienceRepository, cache ContentCache) *Experience {
	return &Experience{repo: repo, cache: cache}
}

func (u *Experience) List(ctx context.Context) ([]portfolio.Experience, error) {
	cached := []portfolio.Experience{}
	if cacheList(ctx, u.cache, resourceExperience, &cached) {
		return cached, nil
	}

	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	storeList(ctx, u.cache, resourceExperience, items)
	return items, nil
}

func (u *Experience) Create(ctx context.Context, in ExperienceInput) (portfolio.Experience, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Company) == "" {
		return portfolio.Experience{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, portfolio.Experience{
		Title:            strings.TrimSpace(in.Title),
		Company:          strings.TrimSpace(in.Company),
		Period:           strings.TrimSpace(in.Period),
		Description:      in.Description,
		Responsibilities: nonNil(in.Responsibilities),
	})
	if err != nil {
		return portfolio.Experience{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceExperience)
	return created, nil
}

func (u *Experience) Update(ctx context.Context, id uuid.UUID, upd ExperienceUpdate) (portfolio.Experience, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.Experience{}, ErrNotFound
		}
		return portfolio.Experience{}, ErrInternal
	}

	applyString(&current.Title, upd.Title)
	applyString(&current.Company, upd.Company)
	applyString(&current.Period, upd.Period)
	applyString(&current.Description, upd.Description)
	if upd.Responsibilities != nil {
		current.Responsibilities = upd.Responsibilities
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.Experience{}, ErrNotFound
		}
		return portfolio.Experience{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceExperience)
	return updated, nil
}

func (u *Experience) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	invalidate(ctx, u.cache, resourceExperience)
	return nil
}
