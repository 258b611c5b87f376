package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/realtime"
	"github.com/mdramjankhan/HireMe/internal/storage"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

// TxBeginner starts database transactions. Satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// shortlistMessage is the notification text recorded when an applicant is
// shortlisted.
const shortlistMessage = "You have been shortlisted for a job!"

type applicationService struct {
	appRepo   storage.ApplicationRepository
	jobRepo   storage.JobRepository
	notifRepo storage.NotificationRepository
	publisher realtime.Publisher
	db        TxBeginner
}

// NewApplicationService creates a new instance of ApplicationService. The
// publisher is the best-effort push collaborator; it is invoked after the
// ledger write commits and must never delay or fail the operation.
func NewApplicationService(
	appRepo storage.ApplicationRepository,
	jobRepo storage.JobRepository,
	notifRepo storage.NotificationRepository,
	publisher realtime.Publisher,
	db TxBeginner,
) ApplicationService {
	return &applicationService{
		appRepo:   appRepo,
		jobRepo:   jobRepo,
		notifRepo: notifRepo,
		publisher: publisher,
		db:        db,
	}
}

// Apply submits a new application for a job.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	if req.Resume == "" {
		return nil, fmt.Errorf("%w: resume is required", ErrValidation)
	}

	// 1. Verify the job exists
	jobReq := dto.GetJobByIDRequest{ID: req.JobID}
	if _, err := s.jobRepo.GetByID(ctx, &jobReq); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application", req.JobID))
	}

	// 2. Friendly duplicate check. The unique index on (job_id, applicant_id)
	// is what actually guarantees the invariant under concurrent applies;
	// this pre-check just produces the error without burning an insert.
	_, err := s.appRepo.GetByJobAndApplicant(ctx, req.JobID, req.ApplicantID)
	if err == nil {
		log.Printf("Apply: applicant %s already applied to job %s", req.ApplicantID, req.JobID)
		return nil, fmt.Errorf("%w: already applied to this job", ErrConflict)
	}
	if !isNotFound(err) {
		return nil, mapRepoError(err, "checking for existing application")
	}

	// 3. Insert the ledger row
	createReq := dto.CreateApplicationRequest{
		JobID:       req.JobID,
		ApplicantID: req.ApplicantID,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
	}
	application, err := s.appRepo.Create(ctx, &createReq)
	if err != nil {
		log.Printf("Apply: error creating application: %v", err)
		return nil, mapRepoError(err, "creating application")
	}

	// No notification is recorded on a raw apply; only shortlist fans out.
	return application, nil
}

// ListByJob retrieves a job's applications for its owning employer.
func (s *applicationService) ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]models.ApplicationWithApplicant, error) {
	// 1. Fetch the job to verify existence and check ownership
	jobReq := dto.GetJobByIDRequest{ID: req.JobID}
	job, err := s.jobRepo.GetByID(ctx, &jobReq)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for listing applications", req.JobID))
	}

	// 2. Only the employer who posted the job can list its applicants
	if job.EmployerID != req.UserID {
		log.Printf("ListByJob: forbidden attempt by user %s to list applications for job %s owned by %s", req.UserID, req.JobID, job.EmployerID)
		return nil, ErrForbidden
	}

	applications, err := s.appRepo.ListByJob(ctx, req)
	if err != nil {
		log.Printf("ListByJob: error listing applications for job %s: %v", req.JobID, err)
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for job %s", req.JobID))
	}
	return applications, nil
}

// ListMine retrieves the requesting applicant's applications joined with
// their jobs. Entries whose job has been deleted are filtered by the join.
func (s *applicationService) ListMine(ctx context.Context, req *dto.ListApplicationsByApplicantRequest) ([]models.ApplicationWithJob, error) {
	applications, err := s.appRepo.ListByApplicant(ctx, req)
	if err != nil {
		log.Printf("ListMine: error listing applications for applicant %s: %v", req.ApplicantID, err)
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for applicant %s", req.ApplicantID))
	}
	return applications, nil
}

// Shortlist moves an 'applied' application to 'shortlisted', records a
// notification for the applicant and emits a best-effort push event.
func (s *applicationService) Shortlist(ctx context.Context, req *dto.ShortlistApplicationRequest) (*models.Application, error) {
	application, err := s.checkTransition(ctx, req.ApplicationID, req.UserID, models.ApplicationStatusShortlisted)
	if err != nil {
		return nil, err
	}

	// --- Transaction: status update + notification append commit together ---
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Shortlist: error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	txAppRepo := s.appRepo.WithTx(tx)
	txNotifRepo := s.notifRepo.WithTx(tx)

	updatedApp, err := txAppRepo.UpdateStatus(ctx, application.ID, models.ApplicationStatusApplied, models.ApplicationStatusShortlisted)
	if err != nil {
		if isNotFound(err) {
			// The row left 'applied' between the check and the update.
			log.Printf("Shortlist: application %s was decided concurrently", application.ID)
			return nil, fmt.Errorf("%w: application is not in 'applied' state", ErrInvalidState)
		}
		log.Printf("Shortlist: error updating application status for %s: %v", application.ID, err)
		return nil, mapRepoError(err, "updating application status")
	}

	notifReq := dto.CreateNotificationRequest{
		UserID:      application.ApplicantID,
		Message:     shortlistMessage,
		Type:        models.NotificationTypeShortlist,
		RelatedKind: models.RelatedKindApplication,
		RelatedID:   application.ID,
	}
	if _, err := txNotifRepo.Create(ctx, &notifReq); err != nil {
		log.Printf("Shortlist: error creating notification for applicant %s: %v", application.ApplicantID, err)
		return nil, mapRepoError(err, "creating shortlist notification")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Shortlist: error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing shortlist: %w", err)
	}
	// --- End transaction ---

	// Push is fire-and-forget, outside the transaction boundary. Publish
	// never blocks; if the applicant has no active connection the event is
	// dropped and the notification log remains the source of truth.
	s.publisher.Publish(application.ApplicantID, realtime.Event{
		Message:       "You have been shortlisted",
		ApplicationID: application.ID,
	})

	log.Printf("Application %s shortlisted by user %s", updatedApp.ID, req.UserID)
	return updatedApp, nil
}

// Reject moves an 'applied' application to 'rejected'. Rejection records no
// notification and emits no push event.
func (s *applicationService) Reject(ctx context.Context, req *dto.RejectApplicationRequest) (*models.Application, error) {
	application, err := s.checkTransition(ctx, req.ApplicationID, req.UserID, models.ApplicationStatusRejected)
	if err != nil {
		return nil, err
	}

	updatedApp, err := s.appRepo.UpdateStatus(ctx, application.ID, models.ApplicationStatusApplied, models.ApplicationStatusRejected)
	if err != nil {
		if isNotFound(err) {
			log.Printf("Reject: application %s was decided concurrently", application.ID)
			return nil, fmt.Errorf("%w: application is not in 'applied' state", ErrInvalidState)
		}
		log.Printf("Reject: error updating application status for %s: %v", application.ID, err)
		return nil, mapRepoError(err, "updating application status")
	}

	log.Printf("Application %s rejected by user %s", updatedApp.ID, req.UserID)
	return updatedApp, nil
}

// checkTransition loads the application and its job, verifies the caller
// owns the job, and validates the requested status change. The conditional
// UpdateStatus is what enforces the transition under concurrent writers;
// this check distinguishes not-found, forbidden and invalid-state upfront.
func (s *applicationService) checkTransition(ctx context.Context, applicationID, callerID uuid.UUID, target models.ApplicationStatus) (*models.Application, error) {
	application, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", applicationID))
	}

	jobReq := dto.GetJobByIDRequest{ID: application.JobID}
	job, err := s.jobRepo.GetByID(ctx, &jobReq)
	if err != nil {
		log.Printf("checkTransition: error fetching job %s for application %s: %v", application.JobID, applicationID, err)
		return nil, mapRepoError(err, fmt.Sprintf("fetching associated job %s", application.JobID))
	}

	if job.EmployerID != callerID {
		log.Printf("checkTransition: forbidden attempt by user %s on application %s (job employer: %s)", callerID, applicationID, job.EmployerID)
		return nil, ErrForbidden
	}

	if !isValidApplicationTransition(application.Status, target) {
		log.Printf("checkTransition: invalid transition %s -> %s for application %s", application.Status, target, applicationID)
		return nil, fmt.Errorf("%w: application is not in 'applied' state, current state: %s", ErrInvalidState, application.Status)
	}

	return application, nil
}

// Delete removes an application. Only the owning job's employer may delete.
func (s *applicationService) Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	application, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}

	jobReq := dto.GetJobByIDRequest{ID: application.JobID}
	job, err := s.jobRepo.GetByID(ctx, &jobReq)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching associated job %s", application.JobID))
	}

	if job.EmployerID != req.UserID {
		log.Printf("Delete: forbidden attempt by user %s on application %s (job employer: %s)", req.UserID, req.ApplicationID, job.EmployerID)
		return ErrForbidden
	}

	if err := s.appRepo.Delete(ctx, application.ID); err != nil {
		log.Printf("Delete: error deleting application %s: %v", application.ID, err)
		return mapRepoError(err, "deleting application")
	}

	log.Printf("Application %s deleted by user %s", application.ID, req.UserID)
	return nil
}
