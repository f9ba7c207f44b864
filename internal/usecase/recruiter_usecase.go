package usecase

import (
	"context"
	"errors"
	"strings"

	"hireflow/internal/repository"

	"github.com/google/uuid"
)

type RecruiterProfileInput struct {
	CompanyName        string
	CompanyWebsite     string
	CompanyDescription string
	CompanyLogoURL     string
	Location           string
	Industry           string
}

type RecruiterUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (repository.RecruiterProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in RecruiterProfileInput) (repository.RecruiterProfile, error)
	Statistics(ctx context.Context, userID uuid.UUID) (repository.RecruiterStatistics, error)
}

type Recruiter struct {
	recruiters repository.RecruiterRepository
}

func NewRecruiterUsecase(recruiters repository.RecruiterRepository) *Recruiter {
	return &Recruiter{recruiters: recruiters}
}

func (u *Recruiter) GetProfile(ctx context.Context, userID uuid.UUID) (repository.RecruiterProfile, error) {
	profile, err := u.recruiters.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRecruiterProfileNotFound) {
			return repository.RecruiterProfile{}, ErrProfileNotFound
		}
		return repository.RecruiterProfile{}, ErrInternal
	}
	return profile, nil
}

func (u *Recruiter) UpdateProfile(ctx context.Context, userID uuid.UUID, in RecruiterProfileInput) (repository.RecruiterProfile, error) {
	profile, err := u.recruiters.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRecruiterProfileNotFound) {
			return repository.RecruiterProfile{}, ErrProfileNotFound
		}
		return repository.RecruiterProfile{}, ErrInternal
	}

	if v := strings.TrimSpace(in.CompanyName); v != "" {
		profile.CompanyName = v
	}
	profile.CompanyWebsite = strings.TrimSpace(in.CompanyWebsite)
	profile.CompanyDescription = strings.TrimSpace(in.CompanyDescription)
	profile.CompanyLogoURL = strings.TrimSpace(in.CompanyLogoURL)
	profile.Location = strings.TrimSpace(in.Location)
	profile.Industry = strings.TrimSpace(in.Industry)

	if err := u.recruiters.UpdateProfile(ctx, profile); err != nil {
		return repository.RecruiterProfile{}, ErrInternal
	}
	return profile, nil
}

func (u *Recruiter) Statistics(ctx context.Context, userID uuid.UUID) (repository.RecruiterStatistics, error) {
	profile, err := u.recruiters.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRecruiterProfileNotFound) {
			return repository.RecruiterStatistics{}, ErrProfileNotFound
		}
		return repository.RecruiterStatistics{}, ErrInternal
	}

	st, err := u.recruiters.Statistics(ctx, profile.ID)
	if err != nil {
		return repository.RecruiterStatistics{}, ErrInternal
	}
	return st, nil
}
