package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal error")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is suspended or banned")

	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrSkillNotFound        = errors.New("skill not found")
	ErrJobNotFound          = errors.New("job not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrDuplicateApplication = errors.New("you have already applied to this job")
)

// UnmetRequirementError rejects an application that lacks one or more of the
// job's mandatory skills. Missing holds the skill names the seeker must add.
type UnmetRequirementError struct {
	Missing []string
}

func (e *UnmetRequirementError) Error() string {
	return fmt.Sprintf("missing mandatory skills: %s", strings.Join(e.Missing, ", "))
}
