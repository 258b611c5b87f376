package services

import (
	"context"
	"fmt"
	"log"

	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/storage"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

type jobService struct {
	jobRepo  storage.JobRepository
	appRepo  storage.ApplicationRepository
	userRepo storage.UserRepository
	db       TxBeginner
}

// NewJobService creates a new instance of JobService.
func NewJobService(
	jobRepo storage.JobRepository,
	appRepo storage.ApplicationRepository,
	userRepo storage.UserRepository,
	db TxBeginner,
) JobService {
	return &jobService{
		jobRepo:  jobRepo,
		appRepo:  appRepo,
		userRepo: userRepo,
		db:       db,
	}
}

// Create records a new posting in the 'pending' moderation state and bumps
// the employer's posted counter in the same transaction.
func (s *jobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Create: error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	job, err := s.jobRepo.WithTx(tx).Create(ctx, req)
	if err != nil {
		log.Printf("Create: error creating job for employer %s: %v", req.EmployerID, err)
		return nil, mapRepoError(err, "creating job")
	}

	if err := s.userRepo.WithTx(tx).AdjustJobsPosted(ctx, req.EmployerID, 1); err != nil {
		log.Printf("Create: error incrementing jobs_posted for employer %s: %v", req.EmployerID, err)
		return nil, mapRepoError(err, "updating employer job counter")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Create: error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing job create: %w", err)
	}

	log.Printf("Job %s created by employer %s (pending approval)", job.ID, req.EmployerID)
	return job, nil
}

// GetByID retrieves a single posting regardless of status.
func (s *jobService) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.ID))
	}
	return job, nil
}

// ListApproved retrieves the public board: approved postings only.
func (s *jobService) ListApproved(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByStatus(ctx, models.JobStatusApproved, req.Limit, req.Offset)
	if err != nil {
		log.Printf("ListApproved: error listing jobs: %v", err)
		return nil, mapRepoError(err, "listing approved jobs")
	}
	return jobs, nil
}

// ListAll retrieves every posting regardless of status. Admin only,
// enforced at the route level.
func (s *jobService) ListAll(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListAll(ctx, req.Limit, req.Offset)
	if err != nil {
		log.Printf("ListAll: error listing jobs: %v", err)
		return nil, mapRepoError(err, "listing jobs")
	}
	return jobs, nil
}

// ListByEmployer retrieves the caller's own postings, all statuses.
func (s *jobService) ListByEmployer(ctx context.Context, req *dto.ListJobsByEmployerRequest) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByEmployer(ctx, req)
	if err != nil {
		log.Printf("ListByEmployer: error listing jobs for employer %s: %v", req.EmployerID, err)
		return nil, mapRepoError(err, fmt.Sprintf("listing jobs for employer %s", req.EmployerID))
	}
	return jobs, nil
}

// Update applies partial edits to a posting. Only the owning employer may
// edit it.
func (s *jobService) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	idReq := dto.GetJobByIDRequest{ID: req.ID}
	job, err := s.jobRepo.GetByID(ctx, &idReq)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.ID))
	}

	if job.EmployerID != req.EmployerID {
		log.Printf("Update: forbidden attempt by user %s on job %s owned by %s", req.EmployerID, req.ID, job.EmployerID)
		return nil, ErrForbidden
	}

	updated, err := s.jobRepo.Update(ctx, req)
	if err != nil {
		log.Printf("Update: error updating job %s: %v", req.ID, err)
		return nil, mapRepoError(err, fmt.Sprintf("updating job %s", req.ID))
	}
	return updated, nil
}

// Delete removes a posting along with its applications and decrements the
// employer's posted counter, all in one transaction. Admin deletes skip the
// ownership check.
func (s *jobService) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	idReq := dto.GetJobByIDRequest{ID: req.ID}
	job, err := s.jobRepo.GetByID(ctx, &idReq)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching job %s", req.ID))
	}

	if !req.Admin && job.EmployerID != req.CallerID {
		log.Printf("Delete: forbidden attempt by user %s on job %s owned by %s", req.CallerID, req.ID, job.EmployerID)
		return ErrForbidden
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Delete: error beginning transaction: %v", err)
		return fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	removed, err := s.appRepo.WithTx(tx).DeleteByJob(ctx, job.ID)
	if err != nil {
		log.Printf("Delete: error deleting applications for job %s: %v", job.ID, err)
		return mapRepoError(err, "deleting job's applications")
	}

	if err := s.jobRepo.WithTx(tx).Delete(ctx, job.ID); err != nil {
		log.Printf("Delete: error deleting job %s: %v", job.ID, err)
		return mapRepoError(err, "deleting job")
	}

	if err := s.userRepo.WithTx(tx).AdjustJobsPosted(ctx, job.EmployerID, -1); err != nil {
		log.Printf("Delete: error decrementing jobs_posted for employer %s: %v", job.EmployerID, err)
		return mapRepoError(err, "updating employer job counter")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Delete: error committing transaction: %v", err)
		return fmt.Errorf("internal error committing job delete: %w", err)
	}

	log.Printf("Job %s deleted (%d applications removed)", job.ID, removed)
	return nil
}

// SetStatus is the admin moderation action: approve or reject a posting.
func (s *jobService) SetStatus(ctx context.Context, req *dto.SetJobStatusRequest) (*models.Job, error) {
	if req.Status != models.JobStatusApproved && req.Status != models.JobStatusRejected {
		return nil, fmt.Errorf("%w: status must be approved or rejected", ErrValidation)
	}

	job, err := s.jobRepo.SetStatus(ctx, req.ID, req.Status)
	if err != nil {
		log.Printf("SetStatus: error setting status for job %s: %v", req.ID, err)
		return nil, mapRepoError(err, fmt.Sprintf("updating status for job %s", req.ID))
	}

	log.Printf("Job %s status set to %s", job.ID, job.Status)
	return job, nil
}
