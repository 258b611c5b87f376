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

// MessageRepo implements storage.MessageRepository using PostgreSQL.
type MessageRepo struct {
	db Querier
}

// NewMessageRepo creates a new MessageRepo.
func NewMessageRepo(db *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{db: db}
}

// WithTx creates a new MessageRepo bound to the transaction.
func (r *MessageRepo) WithTx(tx pgx.Tx) storage.MessageRepository {
	return &MessageRepo{db: tx}
}

// Compile-time check to ensure MessageRepo implements MessageRepository
var _ storage.MessageRepository = (*MessageRepo)(nil)

const messageColumns = "id, sender_id, recipient_id, subject, body, is_read, created_at"

func scanMessage(row pgx.Row) (*models.Message, error) {
	var m models.Message
	err := row.Scan(
		&m.ID,
		&m.SenderID,
		&m.RecipientID,
		&m.Subject,
		&m.Body,
		&m.IsRead,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create saves a new direct message.
func (r *MessageRepo) Create(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error) {
	query := fmt.Sprintf(`
		INSERT INTO messages (id, sender_id, recipient_id, subject, body, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW())
		RETURNING %s
	`, messageColumns)

	msg, err := scanMessage(r.db.QueryRow(ctx, query,
		uuid.New(),
		req.SenderID,
		req.RecipientID,
		req.Subject,
		req.Body,
	))
	if err != nil {
		if isPgErrCode(err, pgForeignKeyViolation) {
			log.Printf("Error sending message: unknown recipient %s\n", req.RecipientID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error creating message from %s to %s: %v\n", req.SenderID, req.RecipientID, err)
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	log.Printf("Message created successfully with ID: %s", msg.ID)
	return msg, nil
}

// ListByRecipient retrieves the recipient's inbox joined with the sender's
// display fields, newest first.
func (r *MessageRepo) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]models.MessageWithSender, error) {
	query := `
		SELECT m.id, m.sender_id, m.recipient_id, m.subject, m.body, m.is_read, m.created_at,
		       u.name, COALESCE(u.profile->>'company_name', '')
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.recipient_id = $1
		ORDER BY m.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, recipientID)
	if err != nil {
		log.Printf("Error querying messages for recipient %s: %v\n", recipientID, err)
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	msgs := make([]models.MessageWithSender, 0)
	for rows.Next() {
		var m models.MessageWithSender
		err := rows.Scan(
			&m.ID, &m.SenderID, &m.RecipientID, &m.Subject, &m.Body, &m.IsRead, &m.CreatedAt,
			&m.SenderName, &m.SenderCompanyName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// MarkRead sets is_read on the recipient's own message.
func (r *MessageRepo) MarkRead(ctx context.Context, id, recipientID uuid.UUID) (*models.Message, error) {
	query := fmt.Sprintf("UPDATE messages SET is_read = TRUE WHERE id = $1 AND recipient_id = $2 RETURNING %s", messageColumns)
	msg, err := scanMessage(r.db.QueryRow(ctx, query, id, recipientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Message not found for recipient %s with ID: %s\n", recipientID, id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error marking message %s as read: %v\n", id, err)
		return nil, fmt.Errorf("failed to mark message read: %w", err)
	}
	return msg, nil
}

// Delete removes the recipient's own message.
func (r *MessageRepo) Delete(ctx context.Context, id, recipientID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM messages WHERE id = $1 AND recipient_id = $2", id, recipientID)
	if err != nil {
		log.Printf("Error deleting message %s: %v\n", id, err)
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("Message not found for recipient %s with ID: %s\n", recipientID, id)
		return storage.ErrNotFound
	}
	return nil
}

// DeleteByUser removes every message the user sent or received. Used by the
// user-delete cascade.
func (r *MessageRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM messages WHERE sender_id = $1 OR recipient_id = $1", userID)
	if err != nil {
		log.Printf("Error deleting messages for user %s: %v\n", userID, err)
		return 0, fmt.Errorf("failed to delete messages by user: %w", err)
	}
	return tag.RowsAffected(), nil
}
