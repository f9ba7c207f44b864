package repository

import (
	"context"
	"errors"
	"time"

	"hireflow/internal/database"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

const (
	NotificationTypeApplicationReceived = "application_received"
	NotificationTypeApplicationStatus   = "application_status"
	NotificationTypeNewMessage          = "new_message"
	NotificationTypeAccountStatus       = "account_status"
	NotificationTypeJobModeration       = "job_moderation"
)

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      string
	Title     string
	Message   string
	Link      string
	IsRead    bool
	CreatedAt time.Time
}

type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
}

type PostgresNotificationRepository struct {
	db database.DB
}

func NewPostgresNotificationRepository(db database.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

const notificationColumns = `id, user_id, type, title, message, link, is_read, created_at`

func (r *PostgresNotificationRepository) Create(ctx context.Context, n Notification) (Notification, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO notifications (id, user_id, type, title, message, link)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+notificationColumns,
		n.ID, n.UserID, n.Type, n.Title, n.Message, n.Link,
	)

	var created Notification
	err := row.Scan(&created.ID, &created.UserID, &created.Type, &created.Title,
		&created.Message, &created.Link, &created.IsRead, &created.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return Notification{}, ErrUserNotFound
		}
		return Notification{}, err
	}
	return created, nil
}

func (r *PostgresNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1`
	if unreadOnly {
		query += ` AND NOT is_read`
	}
	query += ` ORDER BY created_at DESC LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Notification, 0)
	for rows.Next() {
		var n Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.Link, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *PostgresNotificationRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM notifications WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *PostgresNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read`,
		userID,
	)
	return err
}

func (r *PostgresNotificationRepository) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read`, userID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
