package handler

import (
	"hireflow/internal/delivery/http/dto"
	"hireflow/internal/delivery/http/middleware"
	"hireflow/internal/pkg/response"
	"hireflow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type NotificationHandler struct {
	uc   usecase.NotificationUsecase
	auth *middleware.AuthMiddleware
}

func NewNotificationHandler(uc usecase.NotificationUsecase, auth *middleware.AuthMiddleware) *NotificationHandler {
	return &NotificationHandler{uc: uc, auth: auth}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/notifications", h.auth.Middleware())
	grp.Get("/", h.List)
	grp.Get("/unread-count", h.UnreadCount)
	grp.Patch("/read-all", h.MarkAllRead)
	grp.Patch("/:notificationID/read", h.MarkRead)
	grp.Delete("/:notificationID", h.Delete)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	unreadOnly := fiber.Query[bool](c, "unread")
	limit := fiber.Query[int](c, "limit")

	items, err := h.uc.ListNotifications(c.Context(), userID, unreadOnly, limit)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromNotifications(items))
}

func (h *NotificationHandler) UnreadCount(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	count, err := h.uc.UnreadCount(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"unread_count": count})
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}
	notificationID, ok := parseUUIDParam(c, "notificationID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.MarkRead(c.Context(), notificationID, userID); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Notification marked read", nil)
}

func (h *NotificationHandler) Delete(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}
	notificationID, ok := parseUUIDParam(c, "notificationID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.Delete(c.Context(), notificationID, userID); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Notification deleted", nil)
}

func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	if err := h.uc.MarkAllRead(c.Context(), userID); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "All notifications marked read", nil)
}
