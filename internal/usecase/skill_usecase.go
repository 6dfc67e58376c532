package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

const resourceSkills = "skills"

type SkillCategoryInput struct {
	Category string
	Items    []portfolio.SkillItem
}

type SkillCategoryUpdate struct {
	Category *string
	Items    []portfolio.SkillItem
}

type SkillUsecase interface {
	List(ctx context.Context) ([]portfolio.SkillCategory, error)
	Create(ctx context.Context, in SkillCategoryInput) (portfolio.SkillCategory, error)
	Update(ctx context.Context, id uuid.UUID, upd SkillCategoryUpdate) (portfolio.SkillCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Skill struct {
	repo  repository.SkillRepository
	cache ContentCache
}

func NewSkillUsecase(repo repository.SkillRepository, cache ContentCache) *Skill {
	return &Skill{repo: repo, cache: cache}
}

func (u *Skill) List(ctx context.Context) ([]portfolio.SkillCategory, error) {
	cached := []portfolio.SkillCategory{}
	if cacheList(ctx, u.cache, resourceSkills, &cached) {
		return cached, nil
	}

	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	storeList(ctx, u.cache, resourceSkills, items)
	return items, nil
}

func (u *Skill) Create(ctx context.Context, in SkillCategoryInput) (portfolio.SkillCategory, error) {
	if strings.TrimSpace(in.Category) == "" {
		return portfolio.SkillCategory{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, portfolio.SkillCategory{
		Category: strings.TrimSpace(in.Category),
		Items:    clampLevels(in.Items),
	})
	if err != nil {
		return portfolio.SkillCategory{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceSkills)
	return created, nil
}

func (u *Skill) Update(ctx context.Context, id uuid.UUID, upd SkillCategoryUpdate) (portfolio.SkillCategory, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.SkillCategory{}, ErrNotFound
		}
		return portfolio.SkillCategory{}, ErrInternal
	}

	applyString(&current.Category, upd.Category)
	if upd.Items != nil {
		current.Items = clampLevels(upd.Items)
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.SkillCategory{}, ErrNotFound
		}
		return portfolio.SkillCategory{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceSkills)
	return updated, nil
}

func (u *Skill) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	invalidate(ctx, u.cache, resourceSkills)
	return nil
}

// Level is a display percentage; values outside 0-100 are clamped rather
// than rejected.
func clampLevels(items []portfolio.SkillItem) []portfolio.SkillItem {
	out := make([]portfolio.SkillItem, 0, len(items))
	for _, it := range items {
		if it.Level < 0 {
			it.Level = 0
		}
		if it.Level > 100 {
			it.Level = 100
		}
		out = append(out, it)
	}
	return out
}
