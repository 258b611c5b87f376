// internal/api/handlers/notifications.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mdramjankhan/HireMe/internal/api/middleware"
	"github.com/mdramjankhan/HireMe/internal/services"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

// NotificationHandler holds dependencies for notification log operations.
type NotificationHandler struct {
	service services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotifications godoc
// @Summary      List the caller's notifications
// @Description  Newest first, with the related job or application resolved when it still exists.
// @Tags         notifications
// @Produce      json
// @Success      200 {array}   dto.NotificationResponse "Notifications"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Router       /notifications [get]
// @Security     BearerAuth
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notifications, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing notifications for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead godoc
// @Summary      Mark a notification as read
// @Description  Restricted to the notification's owner.
// @Tags         notifications
// @Produce      json
// @Param        id path      string true  "Notification ID" Format(uuid)
// @Success      200 {object}  models.Notification "Updated notification"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Notification Not Found"
// @Router       /notifications/{id}/read [patch]
// @Security     BearerAuth
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID format"})
		return
	}

	req := dto.MarkNotificationReadRequest{ID: notificationID, UserID: userID}
	notification, err := h.service.MarkRead(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		} else {
			log.Printf("Error marking notification %s as read: %v", notificationID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		}
		return
	}

	c.JSON(http.StatusOK, notification)
}

// DeleteNotification godoc
// @Summary      Delete a notification
// @Description  Restricted to the notification's owner.
// @Tags         notifications
// @Produce      json
// @Param        id path      string true  "Notification ID" Format(uuid)
// @Success      204 "Notification deleted"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Notification Not Found"
// @Router       /notifications/{id} [delete]
// @Security     BearerAuth
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID format"})
		return
	}

	req := dto.DeleteNotificationRequest{ID: notificationID, UserID: userID}
	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		} else {
			log.Printf("Error deleting notification %s: %v", notificationID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
