package handler

import (
	"hireflow/internal/delivery/http/dto"
	"hireflow/internal/delivery/http/middleware"
	"hireflow/internal/pkg/response"
	"hireflow/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MessageHandler struct {
	uc   usecase.MessageUsecase
	auth *middleware.AuthMiddleware
}

type sendMessageRequest struct {
	ReceiverID    uuid.UUID  `json:"receiver_id"`
	Subject       string     `json:"subject"`
	Body          string     `json:"body"`
	ApplicationID *uuid.UUID `json:"application_id"`
}

func NewMessageHandler(uc usecase.MessageUsecase, auth *middleware.AuthMiddleware) *MessageHandler {
	return &MessageHandler{uc: uc, auth: auth}
}

func (h *MessageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/messages", h.auth.Middleware(), h.auth.RequireActiveAccount())
	grp.Post("/", h.Send)
	grp.Get("/", h.Conversations)
	grp.Get("/unread-count", h.UnreadCount)
	grp.Patch("/:messageID/read", h.MarkRead)
	grp.Get("/:counterpartID", h.Conversation)
}

func (h *MessageHandler) Send(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	var req sendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.Send(c.Context(), userID, usecase.SendMessageInput{
		ReceiverID:    req.ReceiverID,
		Subject:       req.Subject,
		Body:          req.Body,
		ApplicationID: req.ApplicationID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusCreated, "Message sent", dto.FromMessage(created))
}

func (h *MessageHandler) Conversations(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	convs, err := h.uc.ListConversations(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromConversations(convs))
}

func (h *MessageHandler) Conversation(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}
	counterpartID, ok := parseUUIDParam(c, "counterpartID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	msgs, err := h.uc.GetConversation(c.Context(), userID, counterpartID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMessages(msgs))
}

func (h *MessageHandler) MarkRead(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}
	messageID, ok := parseUUIDParam(c, "messageID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.MarkRead(c.Context(), userID, messageID); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Message marked read", nil)
}

func (h *MessageHandler) UnreadCount(c fiber.Ctx) error {
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
