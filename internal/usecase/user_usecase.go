package usecase

import (
	"context"
	"errors"

	"hireflow/internal/domain/user"
	"hireflow/internal/repository"

	"github.com/google/uuid"
)

// Account is a user together with whichever role profile it carries.
type Account struct {
	User             user.User
	SeekerProfile    *repository.SeekerProfile
	RecruiterProfile *repository.RecruiterProfile
}

type UserUsecase interface {
	GetAccount(ctx context.Context, userID uuid.UUID) (Account, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type User struct {
	users      repository.UserRepository
	seekers    repository.SeekerRepository
	recruiters repository.RecruiterRepository
}

func NewUserUsecase(users repository.UserRepository, seekers repository.SeekerRepository, recruiters repository.RecruiterRepository) *User {
	return &User{users: users, seekers: seekers, recruiters: recruiters}
}

func (u *User) GetAccount(ctx context.Context, userID uuid.UUID) (Account, error) {
	usr, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Account{}, ErrUserNotFound
		}
		return Account{}, ErrInternal
	}

	acc := Account{User: usr}
	switch usr.Role {
	case user.RoleJobSeeker:
		p, err := u.seekers.FindProfileByUserID(ctx, userID)
		if err != nil {
			return Account{}, ErrInternal
		}
		acc.SeekerProfile = &p
	case user.RoleRecruiter:
		p, err := u.recruiters.FindProfileByUserID(ctx, userID)
		if err != nil {
			return Account{}, ErrInternal
		}
		acc.RecruiterProfile = &p
	}
	return acc, nil
}

func (u *User) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := u.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return ErrInternal
	}
	return nil
}
