package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error)
	GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.UserStatus) (*models.User, error)
	AdjustJobsPosted(ctx context.Context, id uuid.UUID, delta int) error
	Delete(ctx context.Context, req *dto.DeleteUserRequest) error
	WithTx(tx pgx.Tx) UserRepository
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListByStatus(ctx context.Context, status models.JobStatus, limit, offset int) ([]models.Job, error)
	ListAll(ctx context.Context, limit, offset int) ([]models.Job, error)
	ListByEmployer(ctx context.Context, req *dto.ListJobsByEmployerRequest) ([]models.Job, error)
	ListByAnySkill(ctx context.Context, skills []string, limit int) ([]models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*models.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByEmployer(ctx context.Context, employerID uuid.UUID) ([]uuid.UUID, error)
	WithTx(tx pgx.Tx) JobRepository
}

// ApplicationRepository defines the interface for the application ledger.
type ApplicationRepository interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (*models.Application, error)
	ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]models.ApplicationWithApplicant, error)
	ListByApplicant(ctx context.Context, req *dto.ListApplicationsByApplicantRequest) ([]models.ApplicationWithJob, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ApplicationStatus) (*models.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByJob(ctx context.Context, jobID uuid.UUID) (int64, error)
	DeleteByApplicant(ctx context.Context, applicantID uuid.UUID) (int64, error)
	DeleteByEmployerJobs(ctx context.Context, employerID uuid.UUID) (int64, error)
	WithTx(tx pgx.Tx) ApplicationRepository
}

// NotificationRepository defines the interface for the notification log.
type NotificationRepository interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) (*models.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*models.Notification, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	WithTx(tx pgx.Tx) NotificationRepository
}

// MessageRepository defines the interface for the direct-message mailbox.
type MessageRepository interface {
	Create(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]models.MessageWithSender, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) (*models.Message, error)
	Delete(ctx context.Context, id, recipientID uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	WithTx(tx pgx.Tx) MessageRepository
}
