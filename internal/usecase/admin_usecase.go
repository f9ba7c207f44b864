package usecase

import (
	"context"
	"errors"
	"strings"

	"hireflow/internal/domain/user"
	"hireflow/internal/repository"

	"github.com/google/uuid"
)

type AdminUsecase interface {
	ListUsers(ctx context.Context, role, status string) ([]user.User, error)
	UpdateUserStatus(ctx context.Context, targetID uuid.UUID, status string) (user.User, error)
	DeleteUser(ctx context.Context, targetID uuid.UUID) error
	ListJobs(ctx context.Context, status string) ([]repository.JobWithApplicationCount, error)
	ModerateJob(ctx context.Context, jobID uuid.UUID, status string) error
	ListRecentApplications(ctx context.Context, limit int) ([]repository.SeekerApplication, error)
}

type Admin struct {
	users      repository.UserRepository
	jobs       repository.JobRepository
	apps       repository.ApplicationRepository
	recruiters repository.RecruiterRepository
	notifier   Notifier
}

func NewAdminUsecase(
	users repository.UserRepository,
	jobs repository.JobRepository,
	apps repository.ApplicationRepository,
	recruiters repository.RecruiterRepository,
	notifier Notifier,
) *Admin {
	return &Admin{users: users, jobs: jobs, apps: apps, recruiters: recruiters, notifier: notifier}
}

func (u *Admin) ListUsers(ctx context.Context, role, status string) ([]user.User, error) {
	if role != "" && !user.ValidRole(role) {
		return nil, ErrInvalidInput
	}
	if status != "" && !user.ValidStatus(status) {
		return nil, ErrInvalidInput
	}

	out, err := u.users.List(ctx, role, status)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Admin) UpdateUserStatus(ctx context.Context, targetID uuid.UUID, status string) (user.User, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !user.ValidStatus(status) {
		return user.User{}, ErrInvalidInput
	}

	target, err := u.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	if target.Role == user.RoleAdmin {
		return user.User{}, ErrForbidden
	}

	if err := u.users.UpdateStatus(ctx, targetID, status); err != nil {
		return user.User{}, ErrInternal
	}
	target.Status = status

	u.notifier.Dispatch(ctx, target.ID,
		repository.NotificationTypeAccountStatus,
		"Account status changed",
		"Your account status is now "+status,
		"",
	)

	return target, nil
}

func (u *Admin) DeleteUser(ctx context.Context, targetID uuid.UUID) error {
	target, err := u.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return ErrInternal
	}
	if target.Role == user.RoleAdmin {
		return ErrForbidden
	}

	if err := u.users.Delete(ctx, targetID); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Admin) ListJobs(ctx context.Context, status string) ([]repository.JobWithApplicationCount, error) {
	if status != "" && !repository.ValidJobStatus(status) {
		return nil, ErrInvalidInput
	}

	out, err := u.jobs.ListAll(ctx, status)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Admin) ModerateJob(ctx context.Context, jobID uuid.UUID, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if !repository.ValidJobStatus(status) {
		return ErrInvalidInput
	}

	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}

	if err := u.jobs.UpdateStatus(ctx, jobID, status); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}

	if recruiter, err := u.recruiters.FindProfileByID(ctx, job.RecruiterID); err == nil {
		u.notifier.Dispatch(ctx, recruiter.UserID,
			repository.NotificationTypeJobModeration,
			"Job listing updated",
			"Your listing \""+job.Title+"\" is now "+status,
			"/jobs/"+job.ID.String(),
		)
	}
	return nil
}

func (u *Admin) ListRecentApplications(ctx context.Context, limit int) ([]repository.SeekerApplication, error) {
	out, err := u.apps.ListRecent(ctx, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
