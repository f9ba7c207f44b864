package usecase

import (
	"context"
	"errors"

	"hireflow/internal/repository"

	"github.com/google/uuid"
)

type AnalyticsUsecase interface {
	PlatformStatistics(ctx context.Context) (repository.PlatformStatistics, error)
	PlatformActivity(ctx context.Context, days int) (repository.PlatformActivity, error)
	HiringFunnel(ctx context.Context, recruiterUserID uuid.UUID) (repository.HiringFunnel, error)
}

type Analytics struct {
	analytics  repository.AnalyticsRepository
	recruiters repository.RecruiterRepository
}

func NewAnalyticsUsecase(analytics repository.AnalyticsRepository, recruiters repository.RecruiterRepository) *Analytics {
	return &Analytics{analytics: analytics, recruiters: recruiters}
}

func (u *Analytics) PlatformStatistics(ctx context.Context) (repository.PlatformStatistics, error) {
	st, err := u.analytics.PlatformStatistics(ctx)
	if err != nil {
		return repository.PlatformStatistics{}, ErrInternal
	}
	return st, nil
}

func (u *Analytics) PlatformActivity(ctx context.Context, days int) (repository.PlatformActivity, error) {
	out, err := u.analytics.PlatformActivity(ctx, days)
	if err != nil {
		return repository.PlatformActivity{}, ErrInternal
	}
	return out, nil
}

func (u *Analytics) HiringFunnel(ctx context.Context, recruiterUserID uuid.UUID) (repository.HiringFunnel, error) {
	profile, err := u.recruiters.FindProfileByUserID(ctx, recruiterUserID)
	if err != nil {
		if errors.Is(err, repository.ErrRecruiterProfileNotFound) {
			return repository.HiringFunnel{}, ErrProfileNotFound
		}
		return repository.HiringFunnel{}, ErrInternal
	}

	funnel, err := u.analytics.HiringFunnel(ctx, profile.ID)
	if err != nil {
		return repository.HiringFunnel{}, ErrInternal
	}
	return funnel, nil
}
