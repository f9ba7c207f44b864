package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hireflow/internal/domain/matching"
	"hireflow/internal/repository"

	"github.com/google/uuid"
)

type ApplyInput struct {
	JobID       uuid.UUID
	CoverLetter string
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, seekerUserID uuid.UUID, in ApplyInput) (repository.Application, error)
	GetApplication(ctx context.Context, callerUserID, applicationID uuid.UUID) (repository.Application, error)
	ListMyApplications(ctx context.Context, seekerUserID uuid.UUID) ([]repository.SeekerApplication, error)
	ListApplicants(ctx context.Context, recruiterUserID, jobID uuid.UUID) ([]repository.ApplicantCard, error)
	UpdateStatus(ctx context.Context, recruiterUserID, applicationID uuid.UUID, status string) (repository.Application, error)
	SaveJob(ctx context.Context, seekerUserID, jobID uuid.UUID) error
	UnsaveJob(ctx context.Context, seekerUserID, jobID uuid.UUID) error
	ListSavedJobs(ctx context.Context, seekerUserID uuid.UUID) ([]repository.Job, error)
}

type Application struct {
	apps       repository.ApplicationRepository
	jobs       repository.JobRepository
	seekers    repository.SeekerRepository
	recruiters repository.RecruiterRepository
	notifier   Notifier
}

func NewApplicationUsecase(
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	seekers repository.SeekerRepository,
	recruiters repository.RecruiterRepository,
	notifier Notifier,
) *Application {
	return &Application{apps: apps, jobs: jobs, seekers: seekers, recruiters: recruiters, notifier: notifier}
}

// Apply gates the submission on the job being open and on the seeker holding
// every mandatory skill, then lets the unique constraint reject duplicates.
func (u *Application) Apply(ctx context.Context, seekerUserID uuid.UUID, in ApplyInput) (repository.Application, error) {
	profile, err := u.seekers.FindProfileByUserID(ctx, seekerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrSeekerProfileNotFound) {
			return repository.Application{}, ErrProfileNotFound
		}
		return repository.Application{}, ErrInternal
	}

	// A closed or moderated job is indistinguishable from a missing one.
	job, err := u.jobs.FindActiveByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return repository.Application{}, ErrJobNotFound
		}
		return repository.Application{}, ErrInternal
	}

	reqs, err := u.jobs.RequiredSkillsByJobID(ctx, job.ID)
	if err != nil {
		return repository.Application{}, ErrInternal
	}
	seekerSkills, err := u.seekers.ListSkills(ctx, profile.ID)
	if err != nil {
		return repository.Application{}, ErrInternal
	}

	missing := matching.MissingMandatory(skillIDs(seekerSkills), toMatchingSkills(reqs))
	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, m := range missing {
			names = append(names, m.SkillName)
		}
		return repository.Application{}, &UnmetRequirementError{Missing: names}
	}

	created, err := u.apps.Create(ctx, repository.Application{
		ID:          uuid.New(),
		JobID:       job.ID,
		JobSeekerID: profile.ID,
		CoverLetter: strings.TrimSpace(in.CoverLetter),
		Status:      repository.ApplicationStatusPending,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return repository.Application{}, ErrDuplicateApplication
		}
		return repository.Application{}, ErrInternal
	}

	if recruiter, err := u.recruiters.FindProfileByID(ctx, job.RecruiterID); err == nil {
		u.notifier.Dispatch(ctx, recruiter.UserID,
			repository.NotificationTypeApplicationReceived,
			"New application",
			fmt.Sprintf("%s applied to %s", profile.FullName, job.Title),
			"/jobs/"+job.ID.String()+"/applications",
		)
	}

	return created, nil
}

// GetApplication returns the application to either participant: the seeker
// who submitted it or the recruiter who owns its job.
func (u *Application) GetApplication(ctx context.Context, callerUserID, applicationID uuid.UUID) (repository.Application, error) {
	app, err := u.apps.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return repository.Application{}, ErrApplicationNotFound
		}
		return repository.Application{}, ErrInternal
	}

	if seeker, err := u.seekers.FindProfileByUserID(ctx, callerUserID); err == nil && seeker.ID == app.JobSeekerID {
		return app, nil
	}
	if recruiter, err := u.recruiters.FindProfileByUserID(ctx, callerUserID); err == nil {
		if owner, err := u.apps.JobRecruiterID(ctx, applicationID); err == nil && owner == recruiter.ID {
			return app, nil
		}
	}
	return repository.Application{}, ErrForbidden
}

func (u *Application) ListMyApplications(ctx context.Context, seekerUserID uuid.UUID) ([]repository.SeekerApplication, error) {
	profile, err := u.seekers.FindProfileByUserID(ctx, seekerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrSeekerProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}

	out, err := u.apps.ListBySeeker(ctx, profile.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Application) ListApplicants(ctx context.Context, recruiterUserID, jobID uuid.UUID) ([]repository.ApplicantCard, error) {
	profile, err := u.recruiters.FindProfileByUserID(ctx, recruiterUserID)
	if err != nil {
		if errors.Is(err, repository.ErrRecruiterProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}

	if _, err := u.jobs.FindOwned(ctx, jobID, profile.ID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}

	out, err := u.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Application) UpdateStatus(ctx context.Context, recruiterUserID, applicationID uuid.UUID, status string) (repository.Application, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !repository.ValidApplicationStatus(status) {
		return repository.Application{}, ErrInvalidInput
	}

	profile, err := u.recruiters.FindProfileByUserID(ctx, recruiterUserID)
	if err != nil {
		if errors.Is(err, repository.ErrRecruiterProfileNotFound) {
			return repository.Application{}, ErrProfileNotFound
		}
		return repository.Application{}, ErrInternal
	}

	owner, err := u.apps.JobRecruiterID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return repository.Application{}, ErrApplicationNotFound
		}
		return repository.Application{}, ErrInternal
	}
	if owner != profile.ID {
		return repository.Application{}, ErrForbidden
	}

	updated, err := u.apps.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return repository.Application{}, ErrApplicationNotFound
		}
		return repository.Application{}, ErrInternal
	}

	job, jobErr := u.jobs.FindByID(ctx, updated.JobID)
	seeker, seekerErr := u.seekers.FindProfileByID(ctx, updated.JobSeekerID)
	if jobErr == nil && seekerErr == nil {
		u.notifier.Dispatch(ctx, seeker.UserID,
			repository.NotificationTypeApplicationStatus,
			"Application update",
			fmt.Sprintf("Your application for %s is now %s", job.Title, updated.Status),
			"/applications",
		)
	}

	return updated, nil
}

func (u *Application) SaveJob(ctx context.Context, seekerUserID, jobID uuid.UUID) error {
	profile, err := u.seekers.FindProfileByUserID(ctx, seekerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrSeekerProfileNotFound) {
			return ErrProfileNotFound
		}
		return ErrInternal
	}

	if err := u.apps.SaveJob(ctx, profile.ID, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Application) UnsaveJob(ctx context.Context, seekerUserID, jobID uuid.UUID) error {
	profile, err := u.seekers.FindProfileByUserID(ctx, seekerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrSeekerProfileNotFound) {
			return ErrProfileNotFound
		}
		return ErrInternal
	}
	if err := u.apps.UnsaveJob(ctx, profile.ID, jobID); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Application) ListSavedJobs(ctx context.Context, seekerUserID uuid.UUID) ([]repository.Job, error) {
	profile, err := u.seekers.FindProfileByUserID(ctx, seekerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrSeekerProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}

	out, err := u.apps.ListSavedJobs(ctx, profile.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func skillIDs(skills []repository.SeekerSkill) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.SkillID)
	}
	return out
}

func toMatchingSkills(reqs []repository.JobRequiredSkill) []matching.RequiredSkill {
	out := make([]matching.RequiredSkill, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, matching.RequiredSkill{
			SkillID:     r.SkillID,
			SkillName:   r.SkillName,
			IsMandatory: r.IsMandatory,
		})
	}
	return out
}
