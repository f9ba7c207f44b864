package handler

import (
	"hireflow/internal/delivery/http/dto"
	"hireflow/internal/delivery/http/middleware"
	"hireflow/internal/pkg/response"
	"hireflow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc   usecase.UserUsecase
	auth *middleware.AuthMiddleware
}

func NewUserHandler(uc usecase.UserUsecase, auth *middleware.AuthMiddleware) *UserHandler {
	return &UserHandler{uc: uc, auth: auth}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/users", h.auth.Middleware())
	grp.Get("/me", h.Me)
	grp.Delete("/me", h.DeleteMe)
}

func (h *UserHandler) Me(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	acc, err := h.uc.GetAccount(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromAccount(acc))
}

func (h *UserHandler) DeleteMe(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	if err := h.uc.DeleteAccount(c.Context(), userID); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Account deleted", nil)
}
