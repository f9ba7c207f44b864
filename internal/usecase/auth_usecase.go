package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"hireflow/internal/domain/user"
	"hireflow/internal/pkg/jwt"
	"hireflow/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type RegisterInput struct {
	Email    string
	Password string
	Role     string
	FullName string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error)
	Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
	ForgotPassword(ctx context.Context, email string) error
}

type Auth struct {
	users   repository.UserRepository
	seekers repository.SeekerRepository
	jwt     jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, seekers repository.SeekerRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, seekers: seekers, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}
	if len(in.Password) < minPasswordLength {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}
	// Admin accounts are provisioned out of band, never via registration.
	if in.Role != user.RoleJobSeeker && in.Role != user.RoleRecruiter {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}

	created, err := u.users.CreateWithProfile(ctx, user.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Status:       user.StatusApproved,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return user.User{}, TokenPair{}, ErrEmailTaken
		}
		return user.User{}, TokenPair{}, ErrInternal
	}

	if in.Role == user.RoleJobSeeker && strings.TrimSpace(in.FullName) != "" {
		if profile, err := u.seekers.FindProfileByUserID(ctx, created.ID); err == nil {
			profile.FullName = strings.TrimSpace(in.FullName)
			_ = u.seekers.UpdateProfile(ctx, profile)
		}
	}

	pair, err := u.tokens(created)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return created, pair, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || in.Password == "" {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	usr, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return user.User{}, TokenPair{}, ErrInvalidCredentials
		}
		return user.User{}, TokenPair{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	if usr.Status == user.StatusSuspended || usr.Status == user.StatusBanned {
		return user.User{}, TokenPair{}, ErrAccountDisabled
	}

	pair, err := u.tokens(usr)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return usr, pair, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	usr, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, ErrInternal
	}
	if usr.Status == user.StatusSuspended || usr.Status == user.StatusBanned {
		return TokenPair{}, ErrAccountDisabled
	}

	return u.tokens(usr)
}

func (u *Auth) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if len(next) < minPasswordLength {
		return ErrInvalidInput
	}

	usr, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return ErrInternal
	}
	if err := u.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return ErrInternal
	}
	return nil
}

// ForgotPassword acknowledges the request without revealing whether the
// email is registered. Reset delivery happens out of band.
func (u *Auth) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidInput
	}
	if _, err := u.users.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		return ErrInternal
	}
	return nil
}

func (u *Auth) tokens(usr user.User) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(jwt.Identity{
		UserID: usr.ID,
		Email:  usr.Email,
		Role:   usr.Role,
		Status: usr.Status,
	})
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
