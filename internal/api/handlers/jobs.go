// internal/api/handlers/jobs.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mdramjankhan/HireMe/internal/api/middleware"
	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/services"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

// JobHandler holds dependencies for job posting operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// CreateJob godoc
// @Summary      Create a new job posting
// @Description  Employer only. The posting starts in the pending moderation state.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Posting details"
// @Success      201 {object}  dto.JobResponse "Job created"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	employerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.EmployerID = employerID

	job, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}

	c.JSON(http.StatusCreated, MapJobModelToJobResponse(job))
}

// ListJobs godoc
// @Summary      List approved job postings
// @Description  The public board. Only approved postings appear.
// @Tags         jobs
// @Produce      json
// @Param        limit  query  int false "Page size (default 20)"
// @Param        offset query  int false "Offset (default 0)"
// @Success      200 {array}   dto.JobResponse "Jobs"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	jobs, err := h.service.ListApproved(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error listing jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	c.JSON(http.StatusOK, MapJobModelsToJobResponses(jobs))
}

// ListMyJobs godoc
// @Summary      List the authenticated employer's postings
// @Description  Employer only. Returns postings in every moderation state.
// @Tags         jobs
// @Produce      json
// @Param        limit  query  int false "Page size (default 20)"
// @Param        offset query  int false "Offset (default 0)"
// @Success      200 {array}   dto.JobResponse "Jobs"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Router       /jobs/my [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	employerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListJobsByEmployerRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.EmployerID = employerID

	jobs, err := h.service.ListByEmployer(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error listing jobs for employer %s: %v", employerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	c.JSON(http.StatusOK, MapJobModelsToJobResponses(jobs))
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobResponse "Job details"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	req := dto.GetJobByIDRequest{ID: jobID}
	job, err := h.service.GetByID(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("Error fetching job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Description  Employer only. Only the owning employer may edit a posting.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id  path     string true "Job ID" Format(uuid)
// @Param        job body     dto.UpdateJobRequest true "Fields to update"
// @Success      200 {object}  dto.JobResponse "Updated job"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Router       /jobs/{id} [patch]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	employerID, err := middleware.GetUserIDFromContext(c)
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

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.ID = jobID
	req.EmployerID = employerID

	job, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not the employer for this job"})
		} else {
			log.Printf("Error updating job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// DeleteJob godoc
// @Summary      Delete a job posting
// @Description  Employer only. Removes the posting and its applications.
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      204 "Job deleted"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	callerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	role, err := middleware.GetUserRoleFromContext(c)
	if err != nil {
		log.Printf("Error getting user role from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	req := dto.DeleteJobRequest{
		ID:       jobID,
		CallerID: callerID,
		Admin:    role == models.UserRoleAdmin,
	}
	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not the employer for this job"})
		} else {
			log.Printf("Error deleting job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListAllJobs godoc
// @Summary      List all job postings
// @Description  Admin only. Returns postings in every moderation state.
// @Tags         admin
// @Produce      json
// @Param        limit  query  int false "Page size (default 20)"
// @Param        offset query  int false "Offset (default 0)"
// @Success      200 {array}   dto.JobResponse "Jobs"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Router       /admin/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListAllJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	jobs, err := h.service.ListAll(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error listing all jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	c.JSON(http.StatusOK, MapJobModelsToJobResponses(jobs))
}

// ApproveJob godoc
// @Summary      Approve a pending job posting
// @Description  Admin only. Approved postings appear on the public board.
// @Tags         admin
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobResponse "Updated job"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Router       /admin/jobs/{id}/approve [patch]
// @Security     BearerAuth
func (h *JobHandler) ApproveJob(c *gin.Context) {
	h.setJobStatus(c, models.JobStatusApproved)
}

// RejectJob godoc
// @Summary      Reject a pending job posting
// @Description  Admin only.
// @Tags         admin
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobResponse "Updated job"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Router       /admin/jobs/{id}/reject [patch]
// @Security     BearerAuth
func (h *JobHandler) RejectJob(c *gin.Context) {
	h.setJobStatus(c, models.JobStatusRejected)
}

func (h *JobHandler) setJobStatus(c *gin.Context, status models.JobStatus) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	req := dto.SetJobStatusRequest{ID: jobID, Status: status}
	job, err := h.service.SetStatus(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error setting status for job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job status"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}
