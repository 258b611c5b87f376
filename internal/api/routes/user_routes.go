// internal/api/routes/user_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mdramjankhan/HireMe/internal/api/handlers"
)

// RegisterUserRoutes registers the public auth routes and the
// authenticated account routes.
func RegisterUserRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	userHandler handlers.UserHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", userHandler.Register) // Create an account
		auth.POST("/login", userHandler.Login)       // Exchange credentials for a token
	}

	users := rg.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("/me", userHandler.GetMe)                    // The authenticated account
		users.PATCH("/me/profile", userHandler.UpdateProfile)  // Partial profile update
		users.GET("/:id", userHandler.GetUserByID)             // Public view of another account
	}
}
