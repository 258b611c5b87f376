// internal/api/handlers/applications.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mdramjankhan/HireMe/internal/api/middleware"
	"github.com/mdramjankhan/HireMe/internal/services"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

// ApplicationHandler holds dependencies for application ledger operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Jobseeker only. A user may apply to a given job at most once.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application body dto.ApplyRequest true "Application details"
// @Success      201 {object}  dto.ApplicationResponse "Application created"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Already applied"
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	applicantID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.ApplicantID = applicantID

	application, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already applied to this job"})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error creating application: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapApplicationModelToResponse(application))
}

// ListByJob godoc
// @Summary      List applications for a job
// @Description  Employer only. Restricted to the employer who posted the job.
// @Tags         applications
// @Produce      json
// @Param        id     path   string true "Job ID" Format(uuid)
// @Param        limit  query  int false "Page size (default 20)"
// @Param        offset query  int false "Offset (default 0)"
// @Success      200 {array}   dto.ApplicantApplicationResponse "Applications"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req dto.ListApplicationsByJobRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.JobID = jobID
	req.UserID = userID

	applications, err := h.service.ListByJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to view applications for this job"})
		} else {
			log.Printf("Error listing applications for job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		}
		return
	}

	responses := make([]dto.ApplicantApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, MapApplicationWithApplicantToResponse(&applications[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// ListMine godoc
// @Summary      List the authenticated jobseeker's applications
// @Description  Jobseeker only. Applications whose job was deleted are omitted.
// @Tags         applications
// @Produce      json
// @Param        limit  query  int false "Page size (default 20)"
// @Param        offset query  int false "Offset (default 0)"
// @Success      200 {array}   dto.MyApplicationResponse "Applications"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Router       /applications/my [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	applicantID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListApplicationsByApplicantRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.ApplicantID = applicantID

	applications, err := h.service.ListMine(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error listing applications for applicant %s: %v", applicantID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	responses := make([]dto.MyApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, MapApplicationWithJobToResponse(&applications[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// Shortlist godoc
// @Summary      Shortlist an application
// @Description  Employer only. Moves an applied application to shortlisted, notifies the applicant.
// @Tags         applications
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Success      200 {object}  dto.ApplicationResponse "Updated application"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Not in applied state"
// @Router       /applications/{id}/shortlist [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) Shortlist(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	req := dto.ShortlistApplicationRequest{ApplicationID: applicationID, UserID: userID}
	application, err := h.service.Shortlist(c.Request.Context(), &req)
	if err != nil {
		h.respondTransitionError(c, applicationID, err)
		return
	}

	c.JSON(http.StatusOK, MapApplicationModelToResponse(application))
}

// Reject godoc
// @Summary      Reject an application
// @Description  Employer only. Moves an applied application to rejected. No notification is sent.
// @Tags         applications
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Success      200 {object}  dto.ApplicationResponse "Updated application"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Not in applied state"
// @Router       /applications/{id}/reject [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) Reject(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	req := dto.RejectApplicationRequest{ApplicationID: applicationID, UserID: userID}
	application, err := h.service.Reject(c.Request.Context(), &req)
	if err != nil {
		h.respondTransitionError(c, applicationID, err)
		return
	}

	c.JSON(http.StatusOK, MapApplicationModelToResponse(application))
}

func (h *ApplicationHandler) respondTransitionError(c *gin.Context, applicationID uuid.UUID, err error) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	} else if errors.Is(err, services.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the employer for this job"})
	} else if errors.Is(err, services.ErrInvalidState) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else {
		log.Printf("Error updating application %s: %v", applicationID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
	}
}

// DeleteApplication godoc
// @Summary      Delete an application
// @Description  Employer only. Restricted to the employer who posted the job.
// @Tags         applications
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Success      204 "Application deleted"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	req := dto.DeleteApplicationRequest{ApplicationID: applicationID, UserID: userID}
	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not the employer for this job"})
		} else {
			log.Printf("Error deleting application %s: %v", applicationID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
