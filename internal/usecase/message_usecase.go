package usecase

import (
	"context"
	"errors"
	"strings"

	"hireflow/internal/repository"

	"github.com/google/uuid"
)

type SendMessageInput struct {
	ReceiverID    uuid.UUID
	Subject       string
	Body          string
	ApplicationID *uuid.UUID
}

type MessageUsecase interface {
	Send(ctx context.Context, senderID uuid.UUID, in SendMessageInput) (repository.Message, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]repository.ConversationSummary, error)
	GetConversation(ctx context.Context, userID, counterpartID uuid.UUID) ([]repository.Message, error)
	MarkRead(ctx context.Context, userID, messageID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
}

type Message struct {
	messages  repository.MessageRepository
	users     repository.UserRepository
	notifier  Notifier
	publisher RealtimePublisher
}

func NewMessageUsecase(messages repository.MessageRepository, users repository.UserRepository, notifier Notifier, publisher RealtimePublisher) *Message {
	return &Message{messages: messages, users: users, notifier: notifier, publisher: publisher}
}

func (u *Message) Send(ctx context.Context, senderID uuid.UUID, in SendMessageInput) (repository.Message, error) {
	in.Body = strings.TrimSpace(in.Body)
	if in.Body == "" || in.ReceiverID == uuid.Nil || in.ReceiverID == senderID {
		return repository.Message{}, ErrInvalidInput
	}

	receiver, err := u.users.FindByID(ctx, in.ReceiverID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.Message{}, ErrUserNotFound
		}
		return repository.Message{}, ErrInternal
	}

	sender, err := u.users.FindByID(ctx, senderID)
	if err != nil {
		return repository.Message{}, ErrInternal
	}

	created, err := u.messages.Create(ctx, repository.Message{
		ID:            uuid.New(),
		SenderID:      sender.ID,
		ReceiverID:    receiver.ID,
		Subject:       strings.TrimSpace(in.Subject),
		Body:          in.Body,
		ApplicationID: in.ApplicationID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.Message{}, ErrUserNotFound
		}
		return repository.Message{}, ErrInternal
	}

	if u.publisher != nil {
		u.publisher.Publish(receiver.ID, "message", map[string]any{
			"id":        created.ID,
			"sender_id": created.SenderID,
			"subject":   created.Subject,
			"body":      created.Body,
			"sent_at":   created.SentAt,
		})
	}
	u.notifier.Dispatch(ctx, receiver.ID,
		repository.NotificationTypeNewMessage,
		"New message",
		"You have a new message from "+sender.Email,
		"/messages/"+sender.ID.String(),
	)

	return created, nil
}

func (u *Message) ListConversations(ctx context.Context, userID uuid.UUID) ([]repository.ConversationSummary, error) {
	out, err := u.messages.ListConversations(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// GetConversation returns the full thread with the counterpart and marks the
// incoming half of it read.
func (u *Message) GetConversation(ctx context.Context, userID, counterpartID uuid.UUID) ([]repository.Message, error) {
	out, err := u.messages.ListConversation(ctx, userID, counterpartID)
	if err != nil {
		return nil, ErrInternal
	}
	if err := u.messages.MarkConversationRead(ctx, userID, counterpartID); err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// MarkRead marks a single received message read. Only the receiver can do
// this, so a sender's id quietly maps to not found.
func (u *Message) MarkRead(ctx context.Context, userID, messageID uuid.UUID) error {
	if err := u.messages.MarkRead(ctx, messageID, userID); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return ErrMessageNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Message) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := u.messages.UnreadCount(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}
	return count, nil
}
