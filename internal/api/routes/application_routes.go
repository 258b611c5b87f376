// internal/api/routes/application_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mdramjankhan/HireMe/internal/api/handlers"
	"github.com/mdramjankhan/HireMe/internal/api/middleware"
	"github.com/mdramjankhan/HireMe/internal/models"
)

// RegisterApplicationRoutes registers all routes related to the application
// ledger. Applying is for jobseekers; reviewing is for employers.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	applicationHandler handlers.ApplicationHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	jobseekerOnly := middleware.RequireRole(models.UserRoleJobseeker)
	employerOnly := middleware.RequireRole(models.UserRoleEmployer)

	applications := rg.Group("/applications")
	applications.Use(authMiddleware)
	{
		applications.POST("", jobseekerOnly, applicationHandler.Apply)              // Apply to a job
		applications.GET("/my", jobseekerOnly, applicationHandler.ListMine)         // The jobseeker's own applications
		applications.PATCH("/:id/shortlist", employerOnly, applicationHandler.Shortlist) // Shortlist an applicant
		applications.PATCH("/:id/reject", employerOnly, applicationHandler.Reject)  // Reject an applicant
		applications.DELETE("/:id", employerOnly, applicationHandler.DeleteApplication) // Remove an application
	}
}
