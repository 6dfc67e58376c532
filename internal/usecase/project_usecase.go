package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

const resourceProjects = "projects"

type ProjectInput struct {
	Title        string
	Description  string
	Technologies []string
	Image        string
	Category     string
	Date         string
	Highlights   []string
	GithubURL    *string
	DemoURL      *string
}

type ProjectUpdate struct {
	Title        *string
	Description  *string
	Technologies []string
	Image        *string
	Category     *string
	Date         *string
	Highlights   []string
	GithubURL    *string
	DemoURL      *string
}

type ProjectUsecase interface {
	List(ctx context.Context) ([]portfolio.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.Project, error)
	Create(ctx context.Context, in ProjectInput) (portfolio.Project, error)
	Update(ctx context.Context, id uuid.UUID, upd ProjectUpdate) (portfolio.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Project struct {
	repo  repository.ProjectRepository
	cache ContentCache
}

func NewProjectUsecase(repo repository.ProjectRepository, cache ContentCache) *Project {
	return &Project{repo: repo, cache: cache}
}

func (u *Project) List(ctx context.Context) ([]portfolio.Project, error) {
	cached := []portfolio.Project{}
	if cacheList(ctx, u.cache, resourceProjects, &cached) {
		return cached, nil
	}

	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	storeList(ctx, u.cache, resourceProjects, items)
	return items, nil
}

func (u *Project) GetByID(ctx context.Context, id uuid.UUID) (portfolio.Project, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.Project{}, ErrNotFound
		}
		return portfolio.Project{}, ErrInternal
	}
	return p, nil
}

func (u *Project) Create(ctx context.Context, in ProjectInput) (portfolio.Project, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return portfolio.Project{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, portfolio.Project{
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Technologies: nonNil(in.Technologies),
		Image:        in.Image,
		Category:     strings.TrimSpace(in.Category),
		Date:         strings.TrimSpace(in.Date),
		Highlights:   nonNil(in.Highlights),
		GithubURL:    in.GithubURL,
		DemoURL:      in.DemoURL,
	})
	if err != nil {
		return portfolio.Project{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceProjects)
	return created, nil
}

func (u *Project) Update(ctx context.Context, id uuid.UUID, upd ProjectUpdate) (portfolio.Project, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.Project{}, ErrNotFound
		}
		return portfolio.Project{}, ErrInternal
	}

	applyString(&current.Title, upd.Title)
	applyString(&current.Description, upd.Description)
	applyString(&current.Image, upd.Image)
	applyString(&current.Category, upd.Category)
	applyString(&current.Date, upd.Date)
	if upd.Technologies != nil {
		current.Technologies = upd.Technologies
	}
	if upd.Highlights != nil {
		current.Highlights = upd.Highlights
	}
	if upd.GithubURL != nil {
		current.GithubURL = upd.GithubURL
	}
	if upd.DemoURL != nil {
		current.DemoURL = upd.DemoURL
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.Project{}, ErrNotFound
		}
		return portfolio.Project{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourceProjects)
	return updated, nil
}

func (u *Project) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	invalidate(ctx, u.cache, resourceProjects)
	return nil
}
