package usecase

import (
	"context"
	"errors"
	"log"

	"hireflow/internal/repository"

	"github.com/google/uuid"
)

// RealtimePublisher pushes an event to every live connection a user holds.
// Publishing to an offline user is a no-op.
type RealtimePublisher interface {
	Publish(userID uuid.UUID, event string, payload any)
}

// Notifier is the fan-out side of notifications, consumed by the usecases
// that raise them.
type Notifier interface {
	Dispatch(ctx context.Context, userID uuid.UUID, notifType, title, message, link string)
}

type NotificationUsecase interface {
	Notifier
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]repository.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
}

type Notification struct {
	repo      repository.NotificationRepository
	publisher RealtimePublisher
	logger    *log.Logger
}

func NewNotificationUsecase(repo repository.NotificationRepository, publisher RealtimePublisher, logger *log.Logger) *Notification {
	return &Notification{repo: repo, publisher: publisher, logger: logger}
}

// Dispatch persists the notification and pushes it to the user's live
// connections. It is strictly best-effort: a failure here never fails the
// operation that raised the notification.
func (u *Notification) Dispatch(ctx context.Context, userID uuid.UUID, notifType, title, message, link string) {
	created, err := u.repo.Create(ctx, repository.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
		Link:    link,
	})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Notification] dispatch failed user=%s type=%s: %v", userID, notifType, err)
		}
		return
	}

	if u.publisher != nil {
		u.publisher.Publish(userID, "notification", map[string]any{
			"id":         created.ID,
			"type":       created.Type,
			"title":      created.Title,
			"message":    created.Message,
			"link":       created.Link,
			"created_at": created.CreatedAt,
		})
	}
}

func (u *Notification) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]repository.Notification, error) {
	out, err := u.repo.ListByUser(ctx, userID, unreadOnly, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Notification) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	if err := u.repo.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Notification) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := u.repo.MarkAllRead(ctx, userID); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Notification) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := u.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Notification) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := u.repo.UnreadCount(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}
	return count, nil
}
