package handler

import (
	"errors"

	"hireflow/internal/delivery/http/middleware"
	"hireflow/internal/pkg/response"
	"hireflow/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func userIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func parseUUIDParam(c fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps usecase errors onto the response envelope. Anything not
// recognized is masked as a 500.
func respondError(c fiber.Ctx, err error) error {
	var unmet *usecase.UnmetRequirementError
	if errors.As(err, &unmet) {
		return response.Error(c, fiber.StatusUnprocessableEntity,
			"You are missing mandatory skills required for this job",
			fiber.Map{"missing_skills": unmet.Missing})
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return response.Error(c, fiber.StatusUnauthorized, "Invalid email or password", nil)
	case errors.Is(err, usecase.ErrUnauthorized),
		errors.Is(err, usecase.ErrInvalidRefreshToken):
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return response.Error(c, fiber.StatusUnauthorized, "Refresh token expired", nil)
	case errors.Is(err, usecase.ErrAccountDisabled):
		return response.Error(c, fiber.StatusForbidden, "Account suspended or banned", nil)
	case errors.Is(err, usecase.ErrForbidden):
		return response.Error(c, fiber.StatusForbidden, response.MessageForbidden, nil)
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrProfileNotFound),
		errors.Is(err, usecase.ErrSkillNotFound),
		errors.Is(err, usecase.ErrJobNotFound),
		errors.Is(err, usecase.ErrApplicationNotFound),
		errors.Is(err, usecase.ErrMessageNotFound),
		errors.Is(err, usecase.ErrNotificationNotFound):
		return response.Error(c, fiber.StatusNotFound, err.Error(), nil)
	case errors.Is(err, usecase.ErrEmailTaken):
		return response.Error(c, fiber.StatusConflict, "Email already registered", nil)
	case errors.Is(err, usecase.ErrDuplicateApplication):
		return response.Error(c, fiber.StatusConflict, "You have already applied to this job", nil)
	}

	return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
}
