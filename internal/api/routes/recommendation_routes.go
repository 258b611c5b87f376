// internal/api/routes/recommendation_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mdramjankhan/HireMe/internal/api/handlers"
	"github.com/mdramjankhan/HireMe/internal/api/middleware"
	"github.com/mdramjankhan/HireMe/internal/models"
)

// RegisterRecommendationRoutes registers the recommendation reader.
func RegisterRecommendationRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	recommendationHandler *handlers.RecommendationHandler,
	authMiddleware gin.HandlerFunc,
) {
	recommendations := rg.Group("/recommendations")
	recommendations.Use(authMiddleware, middleware.RequireRole(models.UserRoleJobseeker))
	{
		recommendations.GET("", recommendationHandler.GetRecommendations) // Jobs matching the caller's skills
	}
}
