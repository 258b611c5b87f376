// internal/api/routes/message_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mdramjankhan/HireMe/internal/api/handlers"
	"github.com/mdramjankhan/HireMe/internal/api/middleware"
	"github.com/mdramjankhan/HireMe/internal/models"
)

// RegisterMessageRoutes registers all routes related to the mailbox.
// Sending is restricted to employers; reading and mutating to recipients.
func RegisterMessageRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	messageHandler handlers.MessageHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	employerOnly := middleware.RequireRole(models.UserRoleEmployer)

	messages := rg.Group("/messages")
	messages.Use(authMiddleware)
	{
		messages.POST("", employerOnly, messageHandler.SendMessage)   // Send a direct message
		messages.GET("", messageHandler.ListMessages)                 // The caller's inbox
		messages.PATCH("/:id/read", messageHandler.MarkMessageRead)   // Mark as read
		messages.DELETE("/:id", messageHandler.DeleteMessage)         // Remove a message
	}
}
