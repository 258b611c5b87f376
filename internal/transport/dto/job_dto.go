package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mdramjankhan/HireMe/internal/models"
)

// CreateJobRequest is the employer's job-posting payload. EmployerID is set
// from the authenticated caller, never from the body.
type CreateJobRequest struct {
	Title           string    `json:"title" validate:"required,max=200"`
	Company         string    `json:"company" validate:"required,max=200"`
	Location        string    `json:"location" validate:"required,max=200"`
	Category        string    `json:"category" validate:"required,max=100"`
	JobType         string    `json:"type" validate:"required,max=100"`
	EmploymentType  string    `json:"employment_type" validate:"required,max=100"`
	SalaryRange     string    `json:"salary_range" validate:"omitempty,max=100"`
	ExperienceLevel string    `json:"experience_level" validate:"omitempty,max=100"`
	Description     string    `json:"description" validate:"required"`
	Requirements    string    `json:"requirements" validate:"required"`
	EmployerID      uuid.UUID `json:"-"`
}

type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// UpdateJobRequest carries partial edits to a posting. EmployerID is the
// caller; ownership is checked in the service.
type UpdateJobRequest struct {
	ID              uuid.UUID `json:"-" validate:"required"`
	EmployerID      uuid.UUID `json:"-"`
	Title           *string   `json:"title,omitempty" validate:"omitempty,max=200"`
	Company         *string   `json:"company,omitempty" validate:"omitempty,max=200"`
	Location        *string   `json:"location,omitempty" validate:"omitempty,max=200"`
	Category        *string   `json:"category,omitempty" validate:"omitempty,max=100"`
	JobType         *string   `json:"type,omitempty" validate:"omitempty,max=100"`
	EmploymentType  *string   `json:"employment_type,omitempty" validate:"omitempty,max=100"`
	SalaryRange     *string   `json:"salary_range,omitempty" validate:"omitempty,max=100"`
	ExperienceLevel *string   `json:"experience_level,omitempty" validate:"omitempty,max=100"`
	Description     *string   `json:"description,omitempty"`
	Requirements    *string   `json:"requirements,omitempty"`
}

type ListJobsRequest struct {
	Limit  int `form:"limit,default=20" validate:"omitempty,gte=0,lte=100"`
	Offset int `form:"offset,default=0" validate:"omitempty,gte=0"`
}

type ListJobsByEmployerRequest struct {
	EmployerID uuid.UUID `json:"-" validate:"required"`
	Limit      int       `form:"limit,default=20" validate:"omitempty,gte=0,lte=100"`
	Offset     int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// DeleteJobRequest identifies the posting and the caller. Admin is true for
// moderation deletes, which skip the ownership check.
type DeleteJobRequest struct {
	ID       uuid.UUID `json:"-" validate:"required"`
	CallerID uuid.UUID `json:"-"`
	Admin    bool      `json:"-"`
}

// SetJobStatusRequest is the admin approve/reject payload.
type SetJobStatusRequest struct {
	ID     uuid.UUID        `json:"-" validate:"required"`
	Status models.JobStatus `json:"-"`
}

type JobResponse struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	Company         string           `json:"company"`
	Location        string           `json:"location"`
	Category        string           `json:"category"`
	JobType         string           `json:"type"`
	EmploymentType  string           `json:"employment_type"`
	SalaryRange     string           `json:"salary_range,omitempty"`
	ExperienceLevel string           `json:"experience_level,omitempty"`
	Description     string           `json:"description"`
	Requirements    string           `json:"requirements"`
	Status          models.JobStatus `json:"status"`
	EmployerID      uuid.UUID        `json:"employer_id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
