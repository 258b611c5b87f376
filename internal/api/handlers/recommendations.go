// internal/api/handlers/recommendations.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdramjankhan/HireMe/internal/api/middleware"
	"github.com/mdramjankhan/HireMe/internal/services"
)

// RecommendationHandler holds dependencies for the recommendation reader.
type RecommendationHandler struct {
	service services.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(service services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// GetRecommendations godoc
// @Summary      Get recommended jobs
// @Description  Jobseeker only. Matches approved postings against the caller's skill list.
// @Tags         recommendations
// @Produce      json
// @Success      200 {array}   dto.JobResponse "Recommended jobs"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "User Not Found"
// @Router       /recommendations [get]
// @Security     BearerAuth
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobs, err := h.service.Recommend(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Error getting recommendations for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recommendations"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobModelsToJobResponses(jobs))
}
