package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hireflow/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrMessageNotFound = errors.New("message not found")

type Message struct {
	ID            uuid.UUID
	SenderID      uuid.UUID
	ReceiverID    uuid.UUID
	Subject       string
	Body          string
	ApplicationID *uuid.UUID
	IsRead        bool
	SentAt        time.Time
}

// ConversationSummary is the latest message exchanged with a counterpart plus
// that counterpart's unread count, one row per counterpart.
type ConversationSummary struct {
	CounterpartID    uuid.UUID
	CounterpartEmail string
	LastMessage      Message
	UnreadCount      int
}

type MessageRepository interface {
	Create(ctx context.Context, m Message) (Message, error)
	ListConversation(ctx context.Context, userID, counterpartID uuid.UUID) ([]Message, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]ConversationSummary, error)
	MarkConversationRead(ctx context.Context, userID, counterpartID uuid.UUID) error
	MarkRead(ctx context.Context, id, receiverID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
}

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

const messageColumns = `id, sender_id, receiver_id, subject, body, application_id, is_read, sent_at`

func (r *PostgresMessageRepository) Create(ctx context.Context, m Message) (Message, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO messages (id, sender_id, receiver_id, subject, body, application_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+messageColumns,
		m.ID, m.SenderID, m.ReceiverID, m.Subject, m.Body, m.ApplicationID,
	)
	created, err := scanMessage(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return Message{}, ErrUserNotFound
		}
		return Message{}, err
	}
	return created, nil
}

func (r *PostgresMessageRepository) ListConversation(ctx context.Context, userID, counterpartID uuid.UUID) ([]Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+messageColumns+`
		 FROM messages
		 WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		 ORDER BY sent_at ASC`,
		userID, counterpartID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Message, 0)
	for rows.Next() {
		var m Message
		err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Subject, &m.Body, &m.ApplicationID, &m.IsRead, &m.SentAt)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMessageRepository) ListConversations(ctx context.Context, userID uuid.UUID) ([]ConversationSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT ON (counterpart_id)
		        counterpart_id, u.email,
		        m.id, m.sender_id, m.receiver_id, m.subject, m.body, m.application_id, m.is_read, m.sent_at,
		        (SELECT COUNT(*) FROM messages um
		         WHERE um.receiver_id = $1 AND um.sender_id = counterpart_id AND NOT um.is_read)
		 FROM (
		        SELECT *, CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END AS counterpart_id
		        FROM messages
		        WHERE sender_id = $1 OR receiver_id = $1
		 ) m
		 JOIN users u ON u.id = m.counterpart_id
		 ORDER BY counterpart_id, m.sent_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ConversationSummary, 0)
	for rows.Next() {
		var cs ConversationSummary
		var m Message
		err := rows.Scan(&cs.CounterpartID, &cs.CounterpartEmail,
			&m.ID, &m.SenderID, &m.ReceiverID, &m.Subject, &m.Body, &m.ApplicationID, &m.IsRead, &m.SentAt,
			&cs.UnreadCount)
		if err != nil {
			return nil, err
		}
		cs.LastMessage = m
		out = append(out, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMessageRepository) MarkConversationRead(ctx context.Context, userID, counterpartID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE messages SET is_read = TRUE
		 WHERE receiver_id = $1 AND sender_id = $2 AND NOT is_read`,
		userID, counterpartID,
	)
	return err
}

func (r *PostgresMessageRepository) MarkRead(ctx context.Context, id, receiverID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE messages SET is_read = TRUE WHERE id = $1 AND receiver_id = $2`,
		id, receiverID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *PostgresMessageRepository) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages WHERE receiver_id = $1 AND NOT is_read`, userID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanMessage(row database.Row) (Message, error) {
	var m Message
	err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Subject, &m.Body, &m.ApplicationID, &m.IsRead, &m.SentAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Message{}, ErrMessageNotFound
		}
		return Message{}, err
	}
	return m, nil
}
