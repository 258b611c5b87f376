package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/storage"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

const jobColumns = "id, title, company, location, category, job_type, employment_type, salary_range, experience_level, description, requirements, status, employer_id, created_at, updated_at"

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Company,
		&j.Location,
		&j.Category,
		&j.JobType,
		&j.EmploymentType,
		&j.SalaryRange,
		&j.ExperienceLevel,
		&j.Description,
		&j.Requirements,
		&j.Status,
		&j.EmployerID,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobRepo) queryJobs(ctx context.Context, query string, args ...interface{}) ([]models.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]models.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

// Create saves a new job posting in the 'pending' moderation state.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	query := fmt.Sprintf(`
		INSERT INTO jobs (id, title, company, location, category, job_type, employment_type,
			salary_range, experience_level, description, requirements, status, employer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING %s
	`, jobColumns)

	job, err := scanJob(r.db.QueryRow(ctx, query,
		uuid.New(),
		req.Title,
		req.Company,
		req.Location,
		req.Category,
		req.JobType,
		req.EmploymentType,
		req.SalaryRange,
		req.ExperienceLevel,
		req.Description,
		req.Requirements,
		models.JobStatusPending,
		req.EmployerID,
	))
	if err != nil {
		if isPgErrCode(err, pgForeignKeyViolation) {
			log.Printf("Error creating job: foreign key violation (employer_id: %s): %v\n", req.EmployerID, err)
			return nil, fmt.Errorf("failed to create job: invalid employer ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", job.ID)
	return job, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	query := fmt.Sprintf("SELECT %s FROM jobs WHERE id = $1", jobColumns)
	job, err := scanJob(r.db.QueryRow(ctx, query, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", req.ID, err)
	}
	return job, nil
}

// ListByStatus retrieves jobs in the given moderation state, newest first.
func (r *JobRepo) ListByStatus(ctx context.Context, status models.JobStatus, limit, offset int) ([]models.Job, error) {
	query := fmt.Sprintf("SELECT %s FROM jobs WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3", jobColumns)
	jobs, err := r.queryJobs(ctx, query, status, limit, offset)
	if err != nil {
		log.Printf("Error listing jobs by status %s: %v\n", status, err)
		return nil, fmt.Errorf("failed to list jobs by status: %w", err)
	}
	return jobs, nil
}

// ListAll retrieves every job regardless of moderation state (admin view).
func (r *JobRepo) ListAll(ctx context.Context, limit, offset int) ([]models.Job, error) {
	query := fmt.Sprintf("SELECT %s FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2", jobColumns)
	jobs, err := r.queryJobs(ctx, query, limit, offset)
	if err != nil {
		log.Printf("Error listing all jobs: %v\n", err)
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// ListByEmployer retrieves an employer's own postings, newest first.
func (r *JobRepo) ListByEmployer(ctx context.Context, req *dto.ListJobsByEmployerRequest) ([]models.Job, error) {
	query := fmt.Sprintf("SELECT %s FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3", jobColumns)
	jobs, err := r.queryJobs(ctx, query, req.EmployerID, req.Limit, req.Offset)
	if err != nil {
		log.Printf("Error listing jobs by employer %s: %v\n", req.EmployerID, err)
		return nil, fmt.Errorf("failed to list jobs by employer: %w", err)
	}
	return jobs, nil
}

// ListByAnySkill retrieves approved jobs whose requirements contain any of
// the given skills as a case-insensitive substring. Results keep the storage
// default order; there is no ranking.
func (r *JobRepo) ListByAnySkill(ctx context.Context, skills []string, limit int) ([]models.Job, error) {
	if len(skills) == 0 {
		return r.ListByStatus(ctx, models.JobStatusApproved, limit, 0)
	}

	conditions := make([]string, 0, len(skills))
	args := []interface{}{models.JobStatusApproved}
	for _, skill := range skills {
		// Skills are user input; escape LIKE metacharacters so a skill such
		// as "C%" only matches the literal text.
		args = append(args, "%"+escapeLike(skill)+"%")
		conditions = append(conditions, fmt.Sprintf("requirements ILIKE $%d", len(args)))
	}
	args = append(args, limit)

	query := fmt.Sprintf("SELECT %s FROM jobs WHERE status = $1 AND (%s) LIMIT $%d",
		jobColumns, strings.Join(conditions, " OR "), len(args))

	jobs, err := r.queryJobs(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing jobs by skills: %v\n", err)
		return nil, fmt.Errorf("failed to list jobs by skills: %w", err)
	}
	return jobs, nil
}

// Update applies the non-nil fields of the request to the posting.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		appendSet("title", *req.Title)
	}
	if req.Company != nil {
		appendSet("company", *req.Company)
	}
	if req.Location != nil {
		appendSet("location", *req.Location)
	}
	if req.Category != nil {
		appendSet("category", *req.Category)
	}
	if req.JobType != nil {
		appendSet("job_type", *req.JobType)
	}
	if req.EmploymentType != nil {
		appendSet("employment_type", *req.EmploymentType)
	}
	if req.SalaryRange != nil {
		appendSet("salary_range", *req.SalaryRange)
	}
	if req.ExperienceLevel != nil {
		appendSet("experience_level", *req.ExperienceLevel)
	}
	if req.Description != nil {
		appendSet("description", *req.Description)
	}
	if req.Requirements != nil {
		appendSet("requirements", *req.Requirements)
	}

	args = append(args, req.ID)
	query := fmt.Sprintf("UPDATE jobs SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), len(args), jobColumns)

	job, err := scanJob(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// SetStatus moves a posting to the given moderation state.
func (r *JobRepo) SetStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*models.Job, error) {
	query := fmt.Sprintf("UPDATE jobs SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING %s", jobColumns)
	job, err := scanJob(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found for status update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error setting status for job %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to set job status: %w", err)
	}
	return job, nil
}

// Delete removes a job row. The applications cascade is handled by the
// service within the same transaction.
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM jobs WHERE id = $1", id)
	if err != nil {
		log.Printf("Error deleting job with ID %s: %v\n", id, err)
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("Job not found for deletion with ID: %s\n", id)
		return storage.ErrNotFound
	}
	log.Printf("Job deleted successfully with ID: %s", id)
	return nil
}

// DeleteByEmployer removes all of an employer's postings and returns the
// deleted IDs so the caller can cascade their applications.
func (r *JobRepo) DeleteByEmployer(ctx context.Context, employerID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, "DELETE FROM jobs WHERE employer_id = $1 RETURNING id", employerID)
	if err != nil {
		log.Printf("Error deleting jobs for employer %s: %v\n", employerID, err)
		return nil, fmt.Errorf("failed to delete jobs by employer: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan deleted job id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
