package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/storage"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

// NotificationRepo implements storage.NotificationRepository using
// PostgreSQL. MarkRead and Delete filter by owner in the WHERE clause, so a
// caller touching someone else's notification gets ErrNotFound rather than
// learning the row exists.
type NotificationRepo struct {
	db Querier
}

// NewNotificationRepo creates a new NotificationRepo.
func NewNotificationRepo(db *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// WithTx creates a new NotificationRepo bound to the transaction.
func (r *NotificationRepo) WithTx(tx pgx.Tx) storage.NotificationRepository {
	return &NotificationRepo{db: tx}
}

// Compile-time check to ensure NotificationRepo implements NotificationRepository
var _ storage.NotificationRepository = (*NotificationRepo)(nil)

const notificationColumns = "id, user_id, message, type, related_kind, related_id, is_read, created_at"

func scanNotification(row pgx.Row) (*models.Notification, error) {
	var n models.Notification
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Message,
		&n.Type,
		&n.RelatedKind,
		&n.RelatedID,
		&n.IsRead,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create appends a notification to the log.
func (r *NotificationRepo) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	query := fmt.Sprintf(`
		INSERT INTO notifications (id, user_id, message, type, related_kind, related_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW())
		RETURNING %s
	`, notificationColumns)

	notif, err := scanNotification(r.db.QueryRow(ctx, query,
		uuid.New(),
		req.UserID,
		req.Message,
		req.Type,
		req.RelatedKind,
		req.RelatedID,
	))
	if err != nil {
		log.Printf("Error creating notification for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return notif, nil
}

// ListByUser retrieves all of a user's notifications, newest first.
func (r *NotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	query := fmt.Sprintf("SELECT %s FROM notifications WHERE user_id = $1 ORDER BY created_at DESC", notificationColumns)
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		log.Printf("Error querying notifications for user %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifs := make([]models.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifs = append(notifs, *n)
	}
	return notifs, rows.Err()
}

// MarkRead sets is_read on the recipient's own notification.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID uuid.UUID) (*models.Notification, error) {
	query := fmt.Sprintf("UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2 RETURNING %s", notificationColumns)
	notif, err := scanNotification(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Notification not found for user %s with ID: %s\n", userID, id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error marking notification %s as read: %v\n", id, err)
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return notif, nil
}

// Delete removes the recipient's own notification.
func (r *NotificationRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM notifications WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		log.Printf("Error deleting notification %s: %v\n", id, err)
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("Notification not found for user %s with ID: %s\n", userID, id)
		return storage.ErrNotFound
	}
	return nil
}

// DeleteByUser removes every notification addressed to the user. Used by
// the user-delete cascade.
func (r *NotificationRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM notifications WHERE user_id = $1", userID)
	if err != nil {
		log.Printf("Error deleting notifications for user %s: %v\n", userID, err)
		return 0, fmt.Errorf("failed to delete notifications by user: %w", err)
	}
	return tag.RowsAffected(), nil
}
