package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/services"
	"github.com/mdramjankhan/HireMe/internal/storage"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

func setupMessageServiceTest() (context.Context, services.MessageService, *MockMessageRepository, *MockUserRepository) {
	mockMsgRepo := new(MockMessageRepository)
	mockUserRepo := new(MockUserRepository)
	svc := services.NewMessageService(mockMsgRepo, mockUserRepo)
	return context.Background(), svc, mockMsgRepo, mockUserRepo
}

func TestMessageService_Send_Success(t *testing.T) {
	ctx, svc, mockMsgRepo, mockUserRepo := setupMessageServiceTest()

	senderID := uuid.New()
	recipientID := uuid.New()
	req := &dto.SendMessageRequest{
		RecipientID: recipientID,
		Subject:     "Interview invitation",
		Body:        "We would like to talk to you.",
		SenderID:    senderID,
	}
	recipient := &models.User{ID: recipientID, Role: models.UserRoleJobseeker}
	expected := &models.Message{ID: uuid.New(), SenderID: senderID, RecipientID: recipientID, Subject: req.Subject}

	mockUserRepo.On("GetByID", ctx, &dto.GetUserByIDRequest{ID: recipientID}).Return(recipient, nil)
	mockMsgRepo.On("Create", ctx, req).Return(expected, nil)

	message, err := svc.Send(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expected, message)
}

func TestMessageService_Send_RecipientNotFound(t *testing.T) {
	ctx, svc, mockMsgRepo, mockUserRepo := setupMessageServiceTest()

	req := &dto.SendMessageRequest{RecipientID: uuid.New(), Subject: "Hi", Body: "Hello", SenderID: uuid.New()}
	mockUserRepo.On("GetByID", ctx, mock.Anything).Return(nil, storage.ErrNotFound)

	_, err := svc.Send(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
	mockMsgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMessageService_Send_SelfMessage(t *testing.T) {
	ctx, svc, mockMsgRepo, _ := setupMessageServiceTest()

	id := uuid.New()
	req := &dto.SendMessageRequest{RecipientID: id, Subject: "Hi", Body: "Hello", SenderID: id}

	_, err := svc.Send(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))
	mockMsgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMessageService_ListMine_Success(t *testing.T) {
	ctx, svc, mockMsgRepo, _ := setupMessageServiceTest()

	recipientID := uuid.New()
	messages := []models.MessageWithSender{{
		Message:           models.Message{ID: uuid.New(), RecipientID: recipientID},
		SenderName:        "Acme HR",
		SenderCompanyName: "Acme",
	}}

	mockMsgRepo.On("ListByRecipient", ctx, recipientID).Return(messages, nil)

	result, err := svc.ListMine(ctx, recipientID)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Acme", result[0].SenderCompanyName)
}

// Only the recipient may mark or delete; anyone else sees not found.
func TestMessageService_MarkRead_NotRecipient(t *testing.T) {
	ctx, svc, mockMsgRepo, _ := setupMessageServiceTest()

	messageID := uuid.New()
	callerID := uuid.New()
	mockMsgRepo.On("MarkRead", ctx, messageID, callerID).Return(nil, storage.ErrNotFound)

	_, err := svc.MarkRead(ctx, &dto.MarkMessageReadRequest{ID: messageID, UserID: callerID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestMessageService_Delete_Success(t *testing.T) {
	ctx, svc, mockMsgRepo, _ := setupMessageServiceTest()

	messageID := uuid.New()
	userID := uuid.New()
	mockMsgRepo.On("Delete", ctx, messageID, userID).Return(nil)

	err := svc.Delete(ctx, &dto.DeleteMessageRequest{ID: messageID, UserID: userID})

	require.NoError(t, err)
}
