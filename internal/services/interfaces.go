package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, string, error) // Returns user and token
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error)
	GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, callerRole models.UserRole, req *dto.UpdateProfileRequest) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	ToggleStatus(ctx context.Context, req *dto.ToggleUserStatusRequest) (*models.User, error)
	Delete(ctx context.Context, req *dto.DeleteUserRequest) error
}

// JobService defines the interface for job-posting business logic.
type JobService interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListApproved(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	ListAll(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	ListByEmployer(ctx context.Context, req *dto.ListJobsByEmployerRequest) ([]models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, req *dto.DeleteJobRequest) error
	SetStatus(ctx context.Context, req *dto.SetJobStatusRequest) (*models.Job, error)
}

// ApplicationService defines the interface for the application ledger.
type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error)
	ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]models.ApplicationWithApplicant, error)
	ListMine(ctx context.Context, req *dto.ListApplicationsByApplicantRequest) ([]models.ApplicationWithJob, error)
	Shortlist(ctx context.Context, req *dto.ShortlistApplicationRequest) (*models.Application, error)
	Reject(ctx context.Context, req *dto.RejectApplicationRequest) (*models.Application, error)
	Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error
}

// NotificationService defines the interface for the notification log.
type NotificationService interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]dto.NotificationResponse, error)
	MarkRead(ctx context.Context, req *dto.MarkNotificationReadRequest) (*models.Notification, error)
	Delete(ctx context.Context, req *dto.DeleteNotificationRequest) error
}

// MessageService defines the interface for the direct-message mailbox.
type MessageService interface {
	Send(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error)
	ListMine(ctx context.Context, recipientID uuid.UUID) ([]models.MessageWithSender, error)
	MarkRead(ctx context.Context, req *dto.MarkMessageReadRequest) (*models.Message, error)
	Delete(ctx context.Context, req *dto.DeleteMessageRequest) error
}

// RecommendationService projects job-registry state through an applicant's
// skill list.
type RecommendationService interface {
	Recommend(ctx context.Context, userID uuid.UUID) ([]models.Job, error)
}
