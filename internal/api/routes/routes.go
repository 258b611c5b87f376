// internal/api/routes/routes.go
package routes

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/mdramjankhan/HireMe/internal/api/handlers"
	"github.com/mdramjankhan/HireMe/internal/api/middleware"
	"github.com/mdramjankhan/HireMe/internal/app"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	//Create handlers
	userHandler := handlers.NewUserHandler(app.UserService, app.Validator)
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(app.ApplicationService, app.Validator)
	notificationHandler := handlers.NewNotificationHandler(app.NotificationService)
	messageHandler := handlers.NewMessageHandler(app.MessageService, app.Validator)
	recommendationHandler := handlers.NewRecommendationHandler(app.RecommendationService)
	wsHandler := handlers.NewWSHandler(app.Hub, app.Config.JWT.Secret)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterUserRoutes(apiV1, userHandler, authMiddleware)
	RegisterJobRoutes(apiV1, jobHandler, applicationHandler, authMiddleware)
	RegisterApplicationRoutes(apiV1, applicationHandler, authMiddleware)
	RegisterNotificationRoutes(apiV1, notificationHandler, authMiddleware)
	RegisterMessageRoutes(apiV1, messageHandler, authMiddleware)
	RegisterRecommendationRoutes(apiV1, recommendationHandler, authMiddleware)
	RegisterAdminRoutes(apiV1, userHandler, jobHandler, authMiddleware)

	// --- Realtime ---
	router.GET("/ws", wsHandler.ServeWS)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Routes registered")
}
