package dto

import (
	"time"

	"github.com/google/uuid"
)

// SendMessageRequest is the employer's direct-message payload. SenderID is
// set from the authenticated caller.
type SendMessageRequest struct {
	RecipientID uuid.UUID `json:"recipient" validate:"required"`
	Subject     string    `json:"subject" validate:"required,max=200"`
	Body        string    `json:"body" validate:"required"`
	SenderID    uuid.UUID `json:"-"`
}

type MarkMessageReadRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

type DeleteMessageRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

type MessageResponse struct {
	ID                uuid.UUID `json:"id"`
	SenderID          uuid.UUID `json:"sender_id"`
	RecipientID       uuid.UUID `json:"recipient_id"`
	SenderName        string    `json:"sender_name,omitempty"`
	SenderCompanyName string    `json:"sender_company_name,omitempty"`
	Subject           string    `json:"subject"`
	Body              string    `json:"body"`
	IsRead            bool      `json:"is_read"`
	CreatedAt         time.Time `json:"created_at"`
}
