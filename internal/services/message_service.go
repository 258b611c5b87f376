package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/storage"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

type messageService struct {
	msgRepo  storage.MessageRepository
	userRepo storage.UserRepository
}

// NewMessageService creates a new instance of MessageService.
func NewMessageService(msgRepo storage.MessageRepository, userRepo storage.UserRepository) MessageService {
	return &messageService{
		msgRepo:  msgRepo,
		userRepo: userRepo,
	}
}

// Send delivers a direct message. Sending is restricted to employer
// accounts at the route level; the recipient must exist and be distinct
// from the sender.
func (s *messageService) Send(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error) {
	if req.RecipientID == req.SenderID {
		return nil, fmt.Errorf("%w: cannot send a message to yourself", ErrValidation)
	}

	idReq := dto.GetUserByIDRequest{ID: req.RecipientID}
	if _, err := s.userRepo.GetByID(ctx, &idReq); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching recipient %s", req.RecipientID))
	}

	message, err := s.msgRepo.Create(ctx, req)
	if err != nil {
		log.Printf("Send: error creating message from %s to %s: %v", req.SenderID, req.RecipientID, err)
		return nil, mapRepoError(err, "creating message")
	}

	log.Printf("Message %s sent from %s to %s", message.ID, req.SenderID, req.RecipientID)
	return message, nil
}

// ListMine retrieves the caller's inbox, newest first, with sender names
// and company names joined in.
func (s *messageService) ListMine(ctx context.Context, recipientID uuid.UUID) ([]models.MessageWithSender, error) {
	messages, err := s.msgRepo.ListByRecipient(ctx, recipientID)
	if err != nil {
		log.Printf("ListMine: error listing messages for user %s: %v", recipientID, err)
		return nil, mapRepoError(err, fmt.Sprintf("listing messages for user %s", recipientID))
	}
	return messages, nil
}

// MarkRead flags a received message as read. Only the recipient may do so.
func (s *messageService) MarkRead(ctx context.Context, req *dto.MarkMessageReadRequest) (*models.Message, error) {
	message, err := s.msgRepo.MarkRead(ctx, req.ID, req.UserID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("marking message %s as read", req.ID))
	}
	return message, nil
}

// Delete removes a received message. Only the recipient may do so.
func (s *messageService) Delete(ctx context.Context, req *dto.DeleteMessageRequest) error {
	if err := s.msgRepo.Delete(ctx, req.ID, req.UserID); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting message %s", req.ID))
	}
	return nil
}
