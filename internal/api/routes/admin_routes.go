// internal/api/routes/admin_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mdramjankhan/HireMe/internal/api/handlers"
	"github.com/mdramjankhan/HireMe/internal/api/middleware"
	"github.com/mdramjankhan/HireMe/internal/models"
)

// RegisterAdminRoutes registers the moderation surface. Every route requires
// an admin account.
func RegisterAdminRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	userHandler handlers.UserHandlerInterface,
	jobHandler handlers.JobHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	admin := rg.Group("/admin")
	admin.Use(authMiddleware, middleware.RequireRole(models.UserRoleAdmin))
	{
		admin.GET("/users", userHandler.GetUsers)                      // Every account
		admin.PATCH("/users/:id/status", userHandler.ToggleUserStatus) // Activate / deactivate
		admin.DELETE("/users/:id", userHandler.DeleteUser)             // Remove an account and its data

		admin.GET("/jobs", jobHandler.ListAllJobs)                // Every posting, all moderation states
		admin.PATCH("/jobs/:id/approve", jobHandler.ApproveJob)   // Publish a pending posting
		admin.PATCH("/jobs/:id/reject", jobHandler.RejectJob)     // Reject a pending posting
	}
}
