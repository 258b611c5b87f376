package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mdramjankhan/HireMe/internal/models"
)

// ApplyRequest is the job seeker's submission. Resume is mandatory, the
// cover letter optional. ApplicantID is set from the authenticated caller.
type ApplyRequest struct {
	JobID       uuid.UUID `json:"job_id" validate:"required"`
	Resume      string    `json:"resume" validate:"required"`
	CoverLetter string    `json:"cover_letter"`
	ApplicantID uuid.UUID `json:"-"`
}

// CreateApplicationRequest is used internally by the service when inserting
// the ledger row.
type CreateApplicationRequest struct {
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	Resume      string
	CoverLetter string
}

type ListApplicationsByJobRequest struct {
	JobID  uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
	Limit  int       `form:"limit,default=20" validate:"omitempty,gte=0,lte=100"`
	Offset int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

type ListApplicationsByApplicantRequest struct {
	ApplicantID uuid.UUID `json:"-" validate:"required"`
	Limit       int       `form:"limit,default=20" validate:"omitempty,gte=0,lte=100"`
	Offset      int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

type ShortlistApplicationRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"`
	UserID        uuid.UUID `json:"-"`
}

type RejectApplicationRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"`
	UserID        uuid.UUID `json:"-"`
}

type DeleteApplicationRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"`
	UserID        uuid.UUID `json:"-"`
}

type ApplicationResponse struct {
	ID          uuid.UUID                `json:"id"`
	JobID       uuid.UUID                `json:"job_id"`
	ApplicantID uuid.UUID                `json:"applicant_id"`
	Resume      string                   `json:"resume"`
	CoverLetter string                   `json:"cover_letter,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// ApplicantApplicationResponse is the employer-facing row: the application
// plus the applicant's public fields.
type ApplicantApplicationResponse struct {
	ApplicationResponse
	ApplicantName    string         `json:"applicant_name"`
	ApplicantEmail   string         `json:"applicant_email"`
	ApplicantProfile models.Profile `json:"applicant_profile"`
}

// MyApplicationResponse is the applicant-facing row: the application plus
// its job's summary.
type MyApplicationResponse struct {
	ApplicationResponse
	JobTitle    string `json:"job_title"`
	JobCompany  string `json:"job_company"`
	JobLocation string `json:"job_location"`
}
