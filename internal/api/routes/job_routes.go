// internal/api/routes/job_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mdramjankhan/HireMe/internal/api/handlers"
	"github.com/mdramjankhan/HireMe/internal/api/middleware"
	"github.com/mdramjankhan/HireMe/internal/models"
)

// RegisterJobRoutes registers all routes related to job postings. Browsing
// the board is public; posting and managing require an employer account.
func RegisterJobRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	jobHandler handlers.JobHandlerInterface, // Use interface
	applicationHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	employerOnly := middleware.RequireRole(models.UserRoleEmployer)

	jobs := rg.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)        // Public board, approved postings only
		jobs.GET("/:id", jobHandler.GetJobByID)  // Public posting details
	}

	managed := rg.Group("/jobs")
	managed.Use(authMiddleware)
	{
		managed.POST("", employerOnly, jobHandler.CreateJob)       // Create a new posting (pending approval)
		managed.GET("/my", employerOnly, jobHandler.ListMyJobs)    // The employer's own postings
		managed.PATCH("/:id", employerOnly, jobHandler.UpdateJob)  // Edit a posting
		managed.DELETE("/:id", jobHandler.DeleteJob)               // Delete a posting (owner or admin)
		managed.GET("/:id/applications", employerOnly, applicationHandler.ListByJob) // Applications for a posting
	}
}
