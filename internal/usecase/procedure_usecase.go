package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

const resourceProcedures = "procedures"

type ProcedureInput struct {
	Title       string
	Description string
	Content     string
	Category    string
	Tags        []string
}

type ProcedureUpdate struct {
	Title       *string
	Description *string
	Content     *string
	Category    *string
	Tags        []string
}

type ProcedureUsecase interface {
	List(ctx context.Context) ([]portfolio.Procedure, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.Procedure, error)
	Create(ctx context.Context, in ProcedureInput) (portfolio.Procedure, error)
	Update(ctx context.Context, id uuid.UUID, upd ProcedureUpdate) (portfolio.Procedure, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Procedure struct {
	repo  repository.ProcedureRepository
	cache ContentCache
}

func NewProcedureUsecase(repo repository.ProcedureRepository, cache ContentCache) *Procedure {
	return &Procedure{repo: repo, cache: cache}
}

func (u *Procedure) List(ctx context.Context) ([]portfolio.Procedure, error) {
	cached := []portfolio.Procedure{}
	if cacheList(ctx, u.cache, resourceProcedures, &cached) {
		return cached, nil
	}

	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	storeList(ctx, u.cache, resourceProcedures, items)
	return items, nil
}

func (u *Procedure) GetByID(ctx context.Context, id uuid.UUID) (portfolio.Procedure, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.Procedure{}, ErrNotFound
		}
		return portfolio.Procedure{}, ErrInternal
	}
	return p, nil
}

// Create requires title, description, content and a category from the
// closed category set. Tags are normalized: trimmed, empties dropped,
// never nil.
func (u *Procedure) Create(ctx context.Context, in ProcedureInput) (portfolio.Procedure, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	content := strings.TrimSpace(in.Content)
	category := strings.TrimSpace(in.Category)

	if title == "" || description == "" || content == "" || category == "" {
		return portfolio.Procedure{}, ErrInvalidInput
	}
	if !portfolio.ValidProcedureCategory(category) {
		return portfolio.Procedure{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, portfolio.Procedure{
		Title:       title,
		Description: description,
		Content:     content,
		Category:    category,
		Tags:        NormalizeTags(in.Tags),
	})
	if err != nil {
		return portfolio.Procedure{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceProcedures)
	return created, nil
}

func (u *Procedure) Update(ctx context.Context, id uuid.UUID, upd ProcedureUpdate) (portfolio.Procedure, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.Procedure{}, ErrNotFound
		}
		return portfolio.Procedure{}, ErrInternal
	}

	applyString(&current.Title, upd.Title)
	applyString(&current.Description, upd.Description)
	applyString(&current.Content, upd.Content)
	if upd.Category != nil {
		category := strings.TrimSpace(*upd.Category)
		if !portfolio.ValidProcedureCategory(category) {
			return portfolio.Procedure{}, ErrInvalidInput
		}
		current.Category = category
	}
	if upd.Tags != nil {
		current.Tags = NormalizeTags(upd.Tags)
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.Procedure{}, ErrNotFound
		}
		return portfolio.Procedure{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceProcedures)
	return updated, nil
}

func (u *Procedure) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	invalidate(ctx, u.cache, resourceProcedures)
	return nil
}

func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
