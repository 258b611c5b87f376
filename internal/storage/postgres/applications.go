package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/storage"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

// ApplicationRepo implements storage.ApplicationRepository using PostgreSQL.
// The at-most-one-application-per-(job, applicant) invariant is enforced by
// the unique index on (job_id, applicant_id), not by a check-then-insert, so
// it holds under concurrent applies.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// WithTx creates a new ApplicationRepo bound to the transaction.
func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

const applicationColumns = "id, job_id, applicant_id, resume, cover_letter, status, created_at, updated_at"

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(
		&a.ID,
		&a.JobID,
		&a.ApplicantID,
		&a.Resume,
		&a.CoverLetter,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new ledger row with status 'applied'. A second insert for
// the same (job, applicant) pair fails with ErrConflict via the unique index.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	query := fmt.Sprintf(`
		INSERT INTO applications (id, job_id, applicant_id, resume, cover_letter, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s
	`, applicationColumns)

	app, err := scanApplication(r.db.QueryRow(ctx, query,
		uuid.New(),
		req.JobID,
		req.ApplicantID,
		req.Resume,
		req.CoverLetter,
		models.ApplicationStatusApplied,
	))
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			log.Printf("Duplicate application for job %s by applicant %s\n", req.JobID, req.ApplicantID)
			return nil, fmt.Errorf("application already exists for this job and applicant: %w", storage.ErrConflict)
		}
		if isPgErrCode(err, pgForeignKeyViolation) {
			log.Printf("Error creating application: missing job or applicant (job: %s): %v\n", req.JobID, err)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", app.ID)
	return app, nil
}

// GetByID retrieves a specific application by its ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	query := fmt.Sprintf("SELECT %s FROM applications WHERE id = $1", applicationColumns)
	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}
	return app, nil
}

// GetByJobAndApplicant retrieves the single application for a (job,
// applicant) pair, if one exists.
func (r *ApplicationRepo) GetByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (*models.Application, error) {
	query := fmt.Sprintf("SELECT %s FROM applications WHERE job_id = $1 AND applicant_id = $2", applicationColumns)
	app, err := scanApplication(r.db.QueryRow(ctx, query, jobID, applicantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error querying application by job %s and applicant %s: %v\n", jobID, applicantID, err)
		return nil, fmt.Errorf("failed to get application by job and applicant: %w", err)
	}
	return app, nil
}

// ListByJob retrieves a job's applications joined with each applicant's
// public profile fields, newest first.
func (r *ApplicationRepo) ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]models.ApplicationWithApplicant, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.resume, a.cover_letter, a.status, a.created_at, a.updated_at,
		       u.name, u.email, u.profile
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, req.JobID, req.Limit, req.Offset)
	if err != nil {
		log.Printf("Error querying applications by job ID %s: %v\n", req.JobID, err)
		return nil, fmt.Errorf("failed to list applications by job: %w", err)
	}
	defer rows.Close()

	apps := make([]models.ApplicationWithApplicant, 0)
	for rows.Next() {
		var a models.ApplicationWithApplicant
		err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantID, &a.Resume, &a.CoverLetter, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.ApplicantName, &a.ApplicantEmail, &a.ApplicantProfile,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// ListByApplicant retrieves an applicant's applications joined with each
// job's summary fields, newest first. The inner join drops entries whose job
// has been deleted.
func (r *ApplicationRepo) ListByApplicant(ctx context.Context, req *dto.ListApplicationsByApplicantRequest) ([]models.ApplicationWithJob, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.resume, a.cover_letter, a.status, a.created_at, a.updated_at,
		       j.title, j.company, j.location
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, req.ApplicantID, req.Limit, req.Offset)
	if err != nil {
		log.Printf("Error querying applications by applicant ID %s: %v\n", req.ApplicantID, err)
		return nil, fmt.Errorf("failed to list applications by applicant: %w", err)
	}
	defer rows.Close()

	apps := make([]models.ApplicationWithJob, 0)
	for rows.Next() {
		var a models.ApplicationWithJob
		err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantID, &a.Resume, &a.CoverLetter, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.JobTitle, &a.JobCompany, &a.JobLocation,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// UpdateStatus moves an application between ledger statuses. The write only
// applies while the row is still in the expected 'from' status; a row in any
// other status is reported as ErrNotFound and left untouched.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ApplicationStatus) (*models.Application, error) {
	query := fmt.Sprintf("UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3 RETURNING %s", applicationColumns)
	app, err := scanApplication(r.db.QueryRow(ctx, query, to, id, from))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application %s not found in status %s for update\n", id, from)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application status for ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return app, nil
}

// Delete removes an application row.
func (r *ApplicationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM applications WHERE id = $1", id)
	if err != nil {
		log.Printf("Error deleting application with ID %s: %v\n", id, err)
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("Application not found for deletion with ID: %s\n", id)
		return storage.ErrNotFound
	}
	log.Printf("Application deleted successfully with ID: %s", id)
	return nil
}

// DeleteByJob removes every application referencing the job and returns the
// number of rows removed. Used by the job-delete cascade.
func (r *ApplicationRepo) DeleteByJob(ctx context.Context, jobID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM applications WHERE job_id = $1", jobID)
	if err != nil {
		log.Printf("Error cascading application delete for job %s: %v\n", jobID, err)
		return 0, fmt.Errorf("failed to delete applications by job: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByEmployerJobs removes every application received by the employer's
// postings. The user-delete cascade runs this before the postings themselves
// are deleted, so the applications.job_id foreign key is never violated.
func (r *ApplicationRepo) DeleteByEmployerJobs(ctx context.Context, employerID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM applications WHERE job_id IN (SELECT id FROM jobs WHERE employer_id = $1)", employerID)
	if err != nil {
		log.Printf("Error deleting applications for employer %s's jobs: %v\n", employerID, err)
		return 0, fmt.Errorf("failed to delete applications for employer's jobs: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByApplicant removes every application submitted by the user. Used by
// the user-delete cascade.
func (r *ApplicationRepo) DeleteByApplicant(ctx context.Context, applicantID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM applications WHERE applicant_id = $1", applicantID)
	if err != nil {
		log.Printf("Error deleting applications for applicant %s: %v\n", applicantID, err)
		return 0, fmt.Errorf("failed to delete applications by applicant: %w", err)
	}
	return tag.RowsAffected(), nil
}
