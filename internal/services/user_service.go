package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mdramjankhan/HireMe/internal/auth"
	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/storage"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

type userService struct {
	userRepo  storage.UserRepository
	jobRepo   storage.JobRepository
	appRepo   storage.ApplicationRepository
	notifRepo storage.NotificationRepository
	msgRepo   storage.MessageRepository
	db        TxBeginner
	jwtSecret string
	tokenTTL  time.Duration
}

// NewUserService creates a new instance of UserService. The job, application,
// notification and message repositories are needed for the admin delete
// cascade.
func NewUserService(
	userRepo storage.UserRepository,
	jobRepo storage.JobRepository,
	appRepo storage.ApplicationRepository,
	notifRepo storage.NotificationRepository,
	msgRepo storage.MessageRepository,
	db TxBeginner,
	jwtSecret string,
	tokenTTL time.Duration,
) UserService {
	return &userService{
		userRepo:  userRepo,
		jobRepo:   jobRepo,
		appRepo:   appRepo,
		notifRepo: notifRepo,
		msgRepo:   msgRepo,
		db:        db,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register creates a new account and returns it with a signed token.
func (s *userService) Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, string, error) {
	user, err := s.userRepo.Create(ctx, req)
	if err != nil {
		log.Printf("Register: error creating user %s: %v", req.Email, err)
		return nil, "", mapRepoError(err, "creating user")
	}

	token, err := auth.GenerateToken(s.jwtSecret, s.tokenTTL, user.ID, user.Role)
	if err != nil {
		log.Printf("Register: error generating token for user %s: %v", user.ID, err)
		return nil, "", fmt.Errorf("internal error generating token: %w", err)
	}

	log.Printf("User %s registered with role %s", user.ID, user.Role)
	return user, token, nil
}

// Login verifies credentials and returns the user with a signed token.
// Deactivated accounts cannot log in.
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	emailReq := dto.GetUserByEmailRequest{Email: req.Email}
	user, err := s.userRepo.GetByEmail(ctx, &emailReq)
	if err != nil {
		if isNotFound(err) {
			// Same error as a wrong password, no account enumeration
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", mapRepoError(err, "fetching user by email")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login: invalid password for user %s", user.ID)
		return nil, "", ErrInvalidCredentials
	}

	if user.Status == models.UserStatusInactive {
		log.Printf("Login: blocked login for deactivated user %s", user.ID)
		return nil, "", fmt.Errorf("%w: account is deactivated", ErrForbidden)
	}

	token, err := auth.GenerateToken(s.jwtSecret, s.tokenTTL, user.ID, user.Role)
	if err != nil {
		log.Printf("Login: error generating token for user %s: %v", user.ID, err)
		return nil, "", fmt.Errorf("internal error generating token: %w", err)
	}

	return user, token, nil
}

// GetByID retrieves a single user.
func (s *userService) GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", req.ID))
	}
	return user, nil
}

// UpdateProfile applies a partial profile update. Employers may only change
// their name, email and the company-facing fields; everything else belongs
// to jobseeker profiles.
func (s *userService) UpdateProfile(ctx context.Context, callerRole models.UserRole, req *dto.UpdateProfileRequest) (*models.User, error) {
	if callerRole == models.UserRoleEmployer {
		if req.Skills != nil || req.Education != nil || req.DOB != nil ||
			req.PhoneNumber != nil || req.Resume != nil {
			log.Printf("UpdateProfile: employer %s attempted to set jobseeker-only fields", req.ID)
			return nil, fmt.Errorf("%w: field not allowed for employer accounts", ErrValidation)
		}
	}

	user, err := s.userRepo.UpdateProfile(ctx, req)
	if err != nil {
		log.Printf("UpdateProfile: error updating user %s: %v", req.ID, err)
		return nil, mapRepoError(err, fmt.Sprintf("updating profile for user %s", req.ID))
	}
	return user, nil
}

// GetAll retrieves all users. Admin only, enforced at the route level.
func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		log.Printf("GetAll: error listing users: %v", err)
		return nil, mapRepoError(err, "listing users")
	}
	return users, nil
}

// ToggleStatus flips an account between active and inactive.
func (s *userService) ToggleStatus(ctx context.Context, req *dto.ToggleUserStatusRequest) (*models.User, error) {
	idReq := dto.GetUserByIDRequest{ID: req.ID}
	user, err := s.userRepo.GetByID(ctx, &idReq)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", req.ID))
	}

	next := models.UserStatusInactive
	if user.Status == models.UserStatusInactive {
		next = models.UserStatusActive
	}

	updated, err := s.userRepo.SetStatus(ctx, user.ID, next)
	if err != nil {
		log.Printf("ToggleStatus: error setting status for user %s: %v", user.ID, err)
		return nil, mapRepoError(err, "updating user status")
	}

	log.Printf("User %s status set to %s", updated.ID, updated.Status)
	return updated, nil
}

// Delete removes an account and everything hanging off it: the user's
// postings with their applications, the user's own applications,
// notifications and messages. All of it commits in one transaction.
func (s *userService) Delete(ctx context.Context, req *dto.DeleteUserRequest) error {
	idReq := dto.GetUserByIDRequest{ID: req.ID}
	if _, err := s.userRepo.GetByID(ctx, &idReq); err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching user %s", req.ID))
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Delete: error beginning transaction: %v", err)
		return fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	txUserRepo := s.userRepo.WithTx(tx)
	txJobRepo := s.jobRepo.WithTx(tx)
	txAppRepo := s.appRepo.WithTx(tx)
	txNotifRepo := s.notifRepo.WithTx(tx)
	txMsgRepo := s.msgRepo.WithTx(tx)

	// Applications received by the user's postings go first. The postings
	// cannot be deleted while application rows still reference them.
	if _, err := txAppRepo.DeleteByEmployerJobs(ctx, req.ID); err != nil {
		log.Printf("Delete: error deleting applications for user %s's jobs: %v", req.ID, err)
		return mapRepoError(err, "deleting applications for user's jobs")
	}
	jobIDs, err := txJobRepo.DeleteByEmployer(ctx, req.ID)
	if err != nil {
		log.Printf("Delete: error deleting jobs for user %s: %v", req.ID, err)
		return mapRepoError(err, "deleting user's jobs")
	}

	if _, err := txAppRepo.DeleteByApplicant(ctx, req.ID); err != nil {
		log.Printf("Delete: error deleting applications by user %s: %v", req.ID, err)
		return mapRepoError(err, "deleting user's applications")
	}
	if _, err := txNotifRepo.DeleteByUser(ctx, req.ID); err != nil {
		log.Printf("Delete: error deleting notifications for user %s: %v", req.ID, err)
		return mapRepoError(err, "deleting user's notifications")
	}
	if _, err := txMsgRepo.DeleteByUser(ctx, req.ID); err != nil {
		log.Printf("Delete: error deleting messages for user %s: %v", req.ID, err)
		return mapRepoError(err, "deleting user's messages")
	}
	if err := txUserRepo.Delete(ctx, req); err != nil {
		log.Printf("Delete: error deleting user %s: %v", req.ID, err)
		return mapRepoError(err, "deleting user")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Delete: error committing transaction: %v", err)
		return fmt.Errorf("internal error committing user delete: %w", err)
	}

	log.Printf("User %s deleted (%d jobs removed)", req.ID, len(jobIDs))
	return nil
}
