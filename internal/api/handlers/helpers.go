package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		case "uuid":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid UUID", fieldName)
		}
	}
	return errorsMap
}

// MapUserModelToUserResponse converts a models.User to a dto.UserResponse
func MapUserModelToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Status:     user.Status,
		JobsPosted: user.JobsPosted,
		Profile:    user.Profile,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// MapJobModelToJobResponse converts a models.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:              job.ID,
		Title:           job.Title,
		Company:         job.Company,
		Location:        job.Location,
		Category:        job.Category,
		JobType:         job.JobType,
		EmploymentType:  job.EmploymentType,
		SalaryRange:     job.SalaryRange,
		ExperienceLevel: job.ExperienceLevel,
		Description:     job.Description,
		Requirements:    job.Requirements,
		Status:          job.Status,
		EmployerID:      job.EmployerID,
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
	}
}

// MapJobModelsToJobResponses converts a slice of jobs.
func MapJobModelsToJobResponses(jobs []models.Job) []dto.JobResponse {
	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, MapJobModelToJobResponse(&jobs[i]))
	}
	return responses
}

// MapApplicationModelToResponse converts a models.Application to a dto.ApplicationResponse
func MapApplicationModelToResponse(app *models.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		ApplicantID: app.ApplicantID,
		Resume:      app.Resume,
		CoverLetter: app.CoverLetter,
		Status:      app.Status,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}
}

// MapApplicationWithApplicantToResponse converts the employer-facing join row.
func MapApplicationWithApplicantToResponse(app *models.ApplicationWithApplicant) dto.ApplicantApplicationResponse {
	return dto.ApplicantApplicationResponse{
		ApplicationResponse: MapApplicationModelToResponse(&app.Application),
		ApplicantName:       app.ApplicantName,
		ApplicantEmail:      app.ApplicantEmail,
		ApplicantProfile:    app.ApplicantProfile,
	}
}

// MapApplicationWithJobToResponse converts the applicant-facing join row.
func MapApplicationWithJobToResponse(app *models.ApplicationWithJob) dto.MyApplicationResponse {
	return dto.MyApplicationResponse{
		ApplicationResponse: MapApplicationModelToResponse(&app.Application),
		JobTitle:            app.JobTitle,
		JobCompany:          app.JobCompany,
		JobLocation:         app.JobLocation,
	}
}

// MapMessageModelToResponse converts a models.Message to a dto.MessageResponse
func MapMessageModelToResponse(msg *models.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:          msg.ID,
		SenderID:    msg.SenderID,
		RecipientID: msg.RecipientID,
		Subject:     msg.Subject,
		Body:        msg.Body,
		IsRead:      msg.IsRead,
		CreatedAt:   msg.CreatedAt,
	}
}

// MapMessageWithSenderToResponse converts the inbox join row.
func MapMessageWithSenderToResponse(msg *models.MessageWithSender) dto.MessageResponse {
	resp := MapMessageModelToResponse(&msg.Message)
	resp.SenderName = msg.SenderName
	resp.SenderCompanyName = msg.SenderCompanyName
	return resp
}
