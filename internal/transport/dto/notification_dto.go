package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mdramjankhan/HireMe/internal/models"
)

// CreateNotificationRequest is server-side only; no route accepts it.
type CreateNotificationRequest struct {
	UserID      uuid.UUID
	Message     string
	Type        models.NotificationType
	RelatedKind models.RelatedKind
	RelatedID   uuid.UUID
}

type MarkNotificationReadRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

type DeleteNotificationRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

// RelatedJobRef is the lightweight projection of a job referenced by a
// notification.
type RelatedJobRef struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Company  string    `json:"company"`
	Location string    `json:"location"`
}

// RelatedApplicationRef is the lightweight projection of an application
// referenced by a notification, with its job summary when that job still
// exists.
type RelatedApplicationRef struct {
	ID     uuid.UUID                `json:"id"`
	Status models.ApplicationStatus `json:"status"`
	Job    *RelatedJobRef           `json:"job,omitempty"`
}

// NotificationResponse carries the resolved related entity when it still
// exists. If the referenced job or application is gone, Related is nil and
// RelatedID is returned as-is rather than failing the listing.
type NotificationResponse struct {
	ID          uuid.UUID               `json:"id"`
	UserID      uuid.UUID               `json:"user_id"`
	Message     string                  `json:"message"`
	Type        models.NotificationType `json:"type"`
	RelatedKind models.RelatedKind      `json:"related_kind"`
	RelatedID   uuid.UUID               `json:"related_id"`
	Related     interface{}             `json:"related,omitempty"`
	IsRead      bool                    `json:"is_read"`
	CreatedAt   time.Time               `json:"created_at"`
}
