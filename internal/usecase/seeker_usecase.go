package usecase

import (
	"context"
	"errors"
	"strings"

	"hireflow/internal/repository"

	"github.com/google/uuid"
)

const defaultProficiency = "intermediate"

type SeekerProfileInput struct {
	FullName string
	Phone    string
	Location string
	Bio      string
}

type SeekerSkillInput struct {
	SkillID          uuid.UUID
	ProficiencyLevel string
}

type SeekerUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (repository.SeekerProfile, []repository.SeekerSkill, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in SeekerProfileInput) (repository.SeekerProfile, error)
	SetSkills(ctx context.Context, userID uuid.UUID, skills []SeekerSkillInput) ([]repository.SeekerSkill, error)
	RemoveSkill(ctx context.Context, userID, skillID uuid.UUID) error
	Statistics(ctx context.Context, userID uuid.UUID) (repository.SeekerStatistics, error)
}

type Seeker struct {
	seekers   repository.SeekerRepository
	analytics repository.AnalyticsRepository
}

func NewSeekerUsecase(seekers repository.SeekerRepository, analytics repository.AnalyticsRepository) *Seeker {
	return &Seeker{seekers: seekers, analytics: analytics}
}

func (u *Seeker) GetProfile(ctx context.Context, userID uuid.UUID) (repository.SeekerProfile, []repository.SeekerSkill, error) {
	profile, err := u.seekers.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSeekerProfileNotFound) {
			return repository.SeekerProfile{}, nil, ErrProfileNotFound
		}
		return repository.SeekerProfile{}, nil, ErrInternal
	}

	skills, err := u.seekers.ListSkills(ctx, profile.ID)
	if err != nil {
		return repository.SeekerProfile{}, nil, ErrInternal
	}
	return profile, skills, nil
}

func (u *Seeker) UpdateProfile(ctx context.Context, userID uuid.UUID, in SeekerProfileInput) (repository.SeekerProfile, error) {
	profile, err := u.seekers.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSeekerProfileNotFound) {
			return repository.SeekerProfile{}, ErrProfileNotFound
		}
		return repository.SeekerProfile{}, ErrInternal
	}

	if v := strings.TrimSpace(in.FullName); v != "" {
		profile.FullName = v
	}
	profile.Phone = strings.TrimSpace(in.Phone)
	profile.Location = strings.TrimSpace(in.Location)
	profile.Bio = strings.TrimSpace(in.Bio)

	if err := u.seekers.UpdateProfile(ctx, profile); err != nil {
		return repository.SeekerProfile{}, ErrInternal
	}
	return profile, nil
}

// SetSkills upserts the given skills onto the profile. Entries already on the
// profile only get their proficiency refreshed, so resubmitting the same list
// is a no-op.
func (u *Seeker) SetSkills(ctx context.Context, userID uuid.UUID, skills []SeekerSkillInput) ([]repository.SeekerSkill, error) {
	if len(skills) == 0 {
		return nil, ErrInvalidInput
	}

	profile, err := u.seekers.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSeekerProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}

	for _, s := range skills {
		if s.SkillID == uuid.Nil {
			return nil, ErrInvalidInput
		}
		proficiency := strings.ToLower(strings.TrimSpace(s.ProficiencyLevel))
		if proficiency == "" {
			proficiency = defaultProficiency
		}
		if err := u.seekers.UpsertSkill(ctx, profile.ID, s.SkillID, proficiency); err != nil {
			if errors.Is(err, repository.ErrSkillNotFound) {
				return nil, ErrSkillNotFound
			}
			return nil, ErrInternal
		}
	}

	out, err := u.seekers.ListSkills(ctx, profile.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Seeker) RemoveSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	profile, err := u.seekers.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSeekerProfileNotFound) {
			return ErrProfileNotFound
		}
		return ErrInternal
	}
	if err := u.seekers.DeleteSkill(ctx, profile.ID, skillID); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Seeker) Statistics(ctx context.Context, userID uuid.UUID) (repository.SeekerStatistics, error) {
	profile, err := u.seekers.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSeekerProfileNotFound) {
			return repository.SeekerStatistics{}, ErrProfileNotFound
		}
		return repository.SeekerStatistics{}, ErrInternal
	}

	st, err := u.analytics.SeekerStatistics(ctx, profile.ID)
	if err != nil {
		return repository.SeekerStatistics{}, ErrInternal
	}
	return st, nil
}
