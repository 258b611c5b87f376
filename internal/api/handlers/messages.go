// internal/api/handlers/messages.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mdramjankhan/HireMe/internal/api/middleware"
	"github.com/mdramjankhan/HireMe/internal/services"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

// MessageHandler holds dependencies for mailbox operations.
type MessageHandler struct {
	service   services.MessageService
	validator *validator.Validate
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service services.MessageService, validate *validator.Validate) *MessageHandler {
	return &MessageHandler{
		service:   service,
		validator: validate,
	}
}

// SendMessage godoc
// @Summary      Send a direct message
// @Description  Employer only. Delivers a message to another user's inbox.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        message body  dto.SendMessageRequest true "Message details"
// @Success      201 {object}  dto.MessageResponse "Message sent"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Recipient Not Found"
// @Router       /messages [post]
// @Security     BearerAuth
func (h *MessageHandler) SendMessage(c *gin.Context) {
	senderID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.SenderID = senderID

	message, err := h.service.Send(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error sending message: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapMessageModelToResponse(message))
}

// ListMessages godoc
// @Summary      List the caller's inbox
// @Description  Newest first, with sender names joined in.
// @Tags         messages
// @Produce      json
// @Success      200 {array}   dto.MessageResponse "Messages"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Router       /messages [get]
// @Security     BearerAuth
func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	messages, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing messages for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		return
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, MapMessageWithSenderToResponse(&messages[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// MarkMessageRead godoc
// @Summary      Mark a message as read
// @Description  Restricted to the message's recipient.
// @Tags         messages
// @Produce      json
// @Param        id path      string true  "Message ID" Format(uuid)
// @Success      200 {object}  dto.MessageResponse "Updated message"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Message Not Found"
// @Router       /messages/{id}/read [patch]
// @Security     BearerAuth
func (h *MessageHandler) MarkMessageRead(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID format"})
		return
	}

	req := dto.MarkMessageReadRequest{ID: messageID, UserID: userID}
	message, err := h.service.MarkRead(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		} else {
			log.Printf("Error marking message %s as read: %v", messageID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		}
		return
	}

	c.JSON(http.StatusOK, MapMessageModelToResponse(message))
}

// DeleteMessage godoc
// @Summary      Delete a message
// @Description  Restricted to the message's recipient.
// @Tags         messages
// @Produce      json
// @Param        id path      string true  "Message ID" Format(uuid)
// @Success      204 "Message deleted"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Message Not Found"
// @Router       /messages/{id} [delete]
// @Security     BearerAuth
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID format"})
		return
	}

	req := dto.DeleteMessageRequest{ID: messageID, UserID: userID}
	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		} else {
			log.Printf("Error deleting message %s: %v", messageID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
