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
	"golang.org/x/crypto/bcrypt"

	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/storage"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// WithTx creates a new UserRepo bound to the transaction.
func (r *UserRepo) WithTx(tx pgx.Tx) storage.UserRepository {
	return &UserRepo{db: tx}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

const userColumns = "id, name, email, password_hash, role, status, jobs_posted, profile, created_at, updated_at"

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Status,
		&u.JobsPosted,
		&u.Profile,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetAll retrieves all users, ordered by name.
func (r *UserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY name", userColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying all users: %v\n", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			log.Printf("Error scanning user row: %v\n", err)
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// GetByID retrieves a single user by ID.
func (r *UserRepo) GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", req.ID, err)
	}
	return user, nil
}

// GetByEmail retrieves a single user by email, including the password hash.
func (r *UserRepo) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, req.Email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with email: %s\n", req.Email)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// Create saves a new user with a bcrypt-hashed password.
func (r *UserRepo) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO users (id, name, email, password_hash, role, status, jobs_posted, profile, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, NOW(), NOW())
		RETURNING %s
	`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query,
		uuid.New(),
		req.Name,
		req.Email,
		string(hashedPassword),
		models.UserRole(req.Role),
		models.UserStatusActive,
		models.Profile{},
	))
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			log.Printf("Attempted to create user with duplicate email %s\n", req.Email)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user with email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %s", user.ID)
	return user, nil
}

// UpdateProfile applies the non-nil fields of the request to the user row.
// Profile fields are merged into the JSONB column in one statement.
func (r *UserRepo) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	// Fetch the current profile so partial updates merge instead of replace.
	current, err := r.GetByID(ctx, &dto.GetUserByIDRequest{ID: req.ID})
	if err != nil {
		return nil, err
	}

	profile := current.Profile
	if req.Skills != nil {
		profile.Skills = *req.Skills
	}
	if req.Education != nil {
		profile.Education = *req.Education
	}
	if req.DOB != nil {
		profile.DOB = req.DOB
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.About != nil {
		profile.About = *req.About
	}
	if req.Resume != nil {
		profile.Resume = *req.Resume
	}
	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.CompanyDescription != nil {
		profile.CompanyDescription = *req.CompanyDescription
	}

	setClauses := []string{"profile = $1", "updated_at = NOW()"}
	args := []interface{}{profile}
	if req.Name != nil {
		args = append(args, *req.Name)
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.Email != nil {
		args = append(args, *req.Email)
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", len(args)))
	}

	args = append(args, req.ID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), len(args), userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		if isPgErrCode(err, pgUniqueViolation) {
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error updating profile for user %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}
	return user, nil
}

// SetStatus sets the active/inactive flag on a user.
func (r *UserRepo) SetStatus(ctx context.Context, id uuid.UUID, status models.UserStatus) (*models.User, error) {
	query := fmt.Sprintf("UPDATE users SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING %s", userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found for status update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error setting status for user %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to set user status: %w", err)
	}
	return user, nil
}

// AdjustJobsPosted increments (or decrements) the employer's posting counter
// atomically. The counter never goes below zero.
func (r *UserRepo) AdjustJobsPosted(ctx context.Context, id uuid.UUID, delta int) error {
	query := `
		UPDATE users
		SET jobs_posted = GREATEST(jobs_posted + $1, 0), updated_at = NOW()
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, delta, id)
	if err != nil {
		log.Printf("Error adjusting jobs_posted for user %s: %v\n", id, err)
		return fmt.Errorf("failed to adjust jobs posted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Delete removes a user row. Dependent rows are removed by the service
// within the same transaction before this is called.
func (r *UserRepo) Delete(ctx context.Context, req *dto.DeleteUserRequest) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM users WHERE id = $1", req.ID)
	if err != nil {
		log.Printf("Error deleting user with ID %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("User not found for deletion with ID: %s\n", req.ID)
		return storage.ErrNotFound
	}
	log.Printf("User deleted successfully with ID: %s", req.ID)
	return nil
}
