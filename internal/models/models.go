package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- User Role Enum ---
type UserRole string

const (
	UserRoleJobseeker UserRole = "jobseeker"
	UserRoleEmployer  UserRole = "employer"
	UserRoleAdmin     UserRole = "admin"
)

// Scan implements the sql.Scanner interface for UserRole
func (r *UserRole) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan UserRole: value is not string or []byte")
		}
	}
	v := UserRole(strVal)
	switch v {
	case UserRoleJobseeker, UserRoleEmployer, UserRoleAdmin:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid UserRole value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for UserRole
func (r UserRole) Value() (driver.Value, error) {
	return string(r), nil
}

// --- User Status Enum ---
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// Scan implements the sql.Scanner interface for UserStatus
func (s *UserStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan UserStatus: value is not string or []byte")
		}
	}
	v := UserStatus(strVal)
	switch v {
	case UserStatusActive, UserStatusInactive:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid UserStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for UserStatus
func (s UserStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Job Status Enum (moderation state) ---
type JobStatus string

const (
	JobStatusPending  JobStatus = "pending"
	JobStatusApproved JobStatus = "approved"
	JobStatusRejected JobStatus = "rejected"
)

// Scan implements the sql.Scanner interface for JobStatus
func (js *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusPending, JobStatusApproved, JobStatusRejected:
		*js = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (as *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	switch v {
	case ApplicationStatusApplied, ApplicationStatusShortlisted, ApplicationStatusRejected:
		*as = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (as ApplicationStatus) Value() (driver.Value, error) {
	return string(as), nil
}

// --- Notification Type Enum ---
type NotificationType string

const (
	NotificationTypeApplication NotificationType = "application"
	NotificationTypeShortlist   NotificationType = "shortlist"
	NotificationTypeJobUpdate   NotificationType = "job_update"
)

// Scan implements the sql.Scanner interface for NotificationType
func (nt *NotificationType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan NotificationType: value is not string or []byte")
		}
	}
	v := NotificationType(strVal)
	switch v {
	case NotificationTypeApplication, NotificationTypeShortlist, NotificationTypeJobUpdate:
		*nt = v
		return nil
	default:
		return fmt.Errorf("invalid NotificationType value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for NotificationType
func (nt NotificationType) Value() (driver.Value, error) {
	return string(nt), nil
}

// --- Related Entity Kind Enum ---
// RelatedKind tags which entity a notification's RelatedID points at.
type RelatedKind string

const (
	RelatedKindJob         RelatedKind = "job"
	RelatedKindApplication RelatedKind = "application"
)

// Scan implements the sql.Scanner interface for RelatedKind
func (rk *RelatedKind) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan RelatedKind: value is not string or []byte")
		}
	}
	v := RelatedKind(strVal)
	switch v {
	case RelatedKindJob, RelatedKindApplication:
		*rk = v
		return nil
	default:
		return fmt.Errorf("invalid RelatedKind value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for RelatedKind
func (rk RelatedKind) Value() (driver.Value, error) {
	return string(rk), nil
}

// Education is one entry of a job seeker's education history.
type Education struct {
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// Profile holds role-specific user details, stored as a JSONB column.
// Skills, education and resume apply to job seekers; the company fields
// to employers.
type Profile struct {
	Skills             []string    `json:"skills,omitempty"`
	Education          []Education `json:"education,omitempty"`
	DOB                *time.Time  `json:"dob,omitempty"`
	PhoneNumber        string      `json:"phone_number,omitempty"`
	About              string      `json:"about,omitempty"`
	Resume             string      `json:"resume,omitempty"`
	CompanyName        string      `json:"company_name,omitempty"`
	CompanyDescription string      `json:"company_description,omitempty"`
}

// User represents an account in the system.
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         UserRole   `json:"role" db:"role"`
	Status       UserStatus `json:"status" db:"status"`
	JobsPosted   int        `json:"jobs_posted" db:"jobs_posted"`
	Profile      Profile    `json:"profile" db:"profile"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// Job represents a job posting owned by an employer. Postings start in the
// 'pending' moderation state and only 'approved' jobs are publicly listed.
type Job struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Company         string    `json:"company" db:"company"`
	Location        string    `json:"location" db:"location"`
	Category        string    `json:"category" db:"category"`
	JobType         string    `json:"type" db:"job_type"`
	EmploymentType  string    `json:"employment_type" db:"employment_type"`
	SalaryRange     string    `json:"salary_range,omitempty" db:"salary_range"`
	ExperienceLevel string    `json:"experience_level,omitempty" db:"experience_level"`
	Description     string    `json:"description" db:"description"`
	Requirements    string    `json:"requirements" db:"requirements"`
	Status          JobStatus `json:"status" db:"status"`
	EmployerID      uuid.UUID `json:"employer_id" db:"employer_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Application is the ledger record tying one applicant to one job. At most
// one row exists per (job, applicant) pair, enforced by a unique index on
// the applications table.
type Application struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	JobID       uuid.UUID         `json:"job_id" db:"job_id"`
	ApplicantID uuid.UUID         `json:"applicant_id" db:"applicant_id"`
	Resume      string            `json:"resume" db:"resume"`
	CoverLetter string            `json:"cover_letter,omitempty" db:"cover_letter"`
	Status      ApplicationStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// Notification is an append-only per-user event record. RelatedKind and
// RelatedID together point at the job or application the event refers to.
type Notification struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	UserID      uuid.UUID        `json:"user_id" db:"user_id"`
	Message     string           `json:"message" db:"message"`
	Type        NotificationType `json:"type" db:"type"`
	RelatedKind RelatedKind      `json:"related_kind" db:"related_kind"`
	RelatedID   uuid.UUID        `json:"related_id" db:"related_id"`
	IsRead      bool             `json:"is_read" db:"is_read"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
}

// Message is a direct employer-to-applicant mail. It has no enforced
// relationship to jobs or applications.
type Message struct {
	ID          uuid.UUID `json:"id" db:"id"`
	SenderID    uuid.UUID `json:"sender_id" db:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id" db:"recipient_id"`
	Subject     string    `json:"subject" db:"subject"`
	Body        string    `json:"body" db:"body"`
	IsRead      bool      `json:"is_read" db:"is_read"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
