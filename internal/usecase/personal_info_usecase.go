package usecase

import (
	"context"
	"errors"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"
)

const resourcePersonalInfo = "personal-info"

// PersonalInfoUpdate carries only the fields the caller wants to change.
type PersonalInfoUpdate struct {
	Name        *string
	Title       *string
	Subtitle    *string
	Description *string
	Email       *string
	Phone       *string
	Location    *string
	Avatar      *string
	Resume      *string
	Social      map[string]string
}

type PersonalInfoUsecase interface {
	Get(ctx context.Context) (portfolio.PersonalInfo, error)
	Update(ctx context.Context, upd PersonalInfoUpdate) (portfolio.PersonalInfo, error)
}

type PersonalInfo struct {
	repo  repository.PersonalInfoRepository
	cache ContentCache
}

func NewPersonalInfoUsecase(repo repository.PersonalInfoRepository, cache ContentCache) *PersonalInfo {
	return &PersonalInfo{repo: repo, cache: cache}
}

func (u *PersonalInfo) Get(ctx context.Context) (portfolio.PersonalInfo, error) {
	var cached portfolio.PersonalInfo
	if cacheList(ctx, u.cache, resourcePersonalInfo, &cached) {
		return cached, nil
	}

	info, err := u.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.PersonalInfo{}, ErrNotFound
		}
		return portfolio.PersonalInfo{}, ErrInternal
	}

	storeList(ctx, u.cache, resourcePersonalInfo, info)
	return info, nil
}

func (u *PersonalInfo) Update(ctx context.Context, upd PersonalInfoUpdate) (portfolio.PersonalInfo, error) {
	current, err := u.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.PersonalInfo{}, ErrNotFound
		}
		return portfolio.PersonalInfo{}, ErrInternal
	}

	applyString(&current.Name, upd.Name)
	applyString(&current.Title, upd.Title)
	applyString(&current.Subtitle, upd.Subtitle)
	applyString(&current.Description, upd.Description)
	applyString(&current.Email, upd.Email)
	applyString(&current.Phone, upd.Phone)
	applyString(&current.Location, upd.Location)
	applyString(&current.Avatar, upd.Avatar)
	applyString(&current.Resume, upd.Resume)
	if upd.Social != nil {
		current.Social = upd.Social
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return portfolio.PersonalInfo{}, ErrInternal
	}

	invalidate(ctx, u.cache, resourcePersonalInfo)
	return updated, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
