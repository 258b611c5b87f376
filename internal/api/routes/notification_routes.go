// internal/api/routes/notification_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mdramjankhan/HireMe/internal/api/handlers"
)

// RegisterNotificationRoutes registers all routes related to the
// notification log. Every route is scoped to the authenticated owner.
func RegisterNotificationRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	notificationHandler handlers.NotificationHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	notifications := rg.Group("/notifications")
	notifications.Use(authMiddleware)
	{
		notifications.GET("", notificationHandler.ListNotifications)          // The caller's notifications
		notifications.PATCH("/:id/read", notificationHandler.MarkNotificationRead) // Mark as read
		notifications.DELETE("/:id", notificationHandler.DeleteNotification)  // Remove a notification
	}
}
