package dto

import (
	"time"

	"hireflow/internal/repository"

	"github.com/google/uuid"
)

type MessageResponse struct {
	ID            uuid.UUID  `json:"id"`
	SenderID      uuid.UUID  `json:"sender_id"`
	ReceiverID    uuid.UUID  `json:"receiver_id"`
	Subject       string     `json:"subject,omitempty"`
	Body          string     `json:"body"`
	ApplicationID *uuid.UUID `json:"application_id,omitempty"`
	IsRead        bool       `json:"is_read"`
	SentAt        time.Time  `json:"sent_at"`
}

type ConversationResponse struct {
	CounterpartID    uuid.UUID       `json:"counterpart_id"`
	CounterpartEmail string          `json:"counterpart_email"`
	LastMessage      MessageResponse `json:"last_message"`
	UnreadCount      int             `json:"unread_count"`
}

func FromMessage(m repository.Message) MessageResponse {
	return MessageResponse{
		ID:            m.ID,
		SenderID:      m.SenderID,
		ReceiverID:    m.ReceiverID,
		Subject:       m.Subject,
		Body:          m.Body,
		ApplicationID: m.ApplicationID,
		IsRead:        m.IsRead,
		SentAt:        m.SentAt,
	}
}

func FromMessages(msgs []repository.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, FromMessage(m))
	}
	return out
}

func FromConversations(convs []repository.ConversationSummary) []ConversationResponse {
	out := make([]ConversationResponse, 0, len(convs))
	for _, cv := range convs {
		out = append(out, ConversationResponse{
			CounterpartID:    cv.CounterpartID,
			CounterpartEmail: cv.CounterpartEmail,
			LastMessage:      FromMessage(cv.LastMessage),
			UnreadCount:      cv.UnreadCount,
		})
	}
	return out
}
