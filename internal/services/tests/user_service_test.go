package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mdramjankhan/HireMe/internal/auth"
	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/services"
	"github.com/mdramjankhan/HireMe/internal/storage"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

const testSecret = "test-secret"

func setupUserServiceTest() (context.Context, services.UserService, *MockUserRepository, *MockJobRepository, *MockApplicationRepository, *MockNotificationRepository, *MockMessageRepository, *stubTxBeginner) {
	mockUserRepo := new(MockUserRepository)
	mockJobRepo := new(MockJobRepository)
	mockAppRepo := new(MockApplicationRepository)
	mockNotifRepo := new(MockNotificationRepository)
	mockMsgRepo := new(MockMessageRepository)
	db := newStubTxBeginner()
	svc := services.NewUserService(mockUserRepo, mockJobRepo, mockAppRepo, mockNotifRepo, mockMsgRepo, db, testSecret, 3*time.Hour)
	return context.Background(), svc, mockUserRepo, mockJobRepo, mockAppRepo, mockNotifRepo, mockMsgRepo, db
}

func TestUserService_Register_Success(t *testing.T) {
	ctx, svc, mockUserRepo, _, _, _, _, _ := setupUserServiceTest()

	req := &dto.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "hunter2hunter2", Role: "employer"}
	created := &models.User{ID: uuid.New(), Name: "Jane", Email: req.Email, Role: models.UserRoleEmployer, Status: models.UserStatusActive}

	mockUserRepo.On("Create", ctx, req).Return(created, nil)

	user, token, err := svc.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, created, user)

	// The issued token carries the user's identity and role
	claims, err := auth.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, models.UserRoleEmployer, claims.Role)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	ctx, svc, mockUserRepo, _, _, _, _, _ := setupUserServiceTest()

	req := &dto.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "hunter2hunter2", Role: "jobseeker"}
	mockUserRepo.On("Create", ctx, req).Return(nil, storage.ErrDuplicateEmail)

	_, _, err := svc.Register(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict))
}

func TestUserService_Login_Success(t *testing.T) {
	ctx, svc, mockUserRepo, _, _, _, _, _ := setupUserServiceTest()

	password := "correct horse battery staple"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "jane@example.com",
		PasswordHash: string(hash),
		Role:         models.UserRoleJobseeker,
		Status:       models.UserStatusActive,
	}
	mockUserRepo.On("GetByEmail", ctx, &dto.GetUserByEmailRequest{Email: user.Email}).Return(user, nil)

	result, token, err := svc.Login(ctx, &dto.LoginRequest{Email: user.Email, Password: password})

	require.NoError(t, err)
	assert.Equal(t, user, result)
	assert.NotEmpty(t, token)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctx, svc, mockUserRepo, _, _, _, _, _ := setupUserServiceTest()

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: string(hash), Status: models.UserStatusActive}
	mockUserRepo.On("GetByEmail", ctx, mock.Anything).Return(user, nil)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: user.Email, Password: "wrong"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}

// Unknown emails produce the same error as a wrong password.
func TestUserService_Login_UnknownEmail(t *testing.T) {
	ctx, svc, mockUserRepo, _, _, _, _, _ := setupUserServiceTest()

	mockUserRepo.On("GetByEmail", ctx, mock.Anything).Return(nil, storage.ErrNotFound)

	_, _, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}

func TestUserService_Login_DeactivatedAccount(t *testing.T) {
	ctx, svc, mockUserRepo, _, _, _, _, _ := setupUserServiceTest()

	password := "hunter2hunter2"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{ID: uuid.New(), PasswordHash: string(hash), Status: models.UserStatusInactive}
	mockUserRepo.On("GetByEmail", ctx, mock.Anything).Return(user, nil)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "jane@example.com", Password: password})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestUserService_UpdateProfile_EmployerRestrictedFields(t *testing.T) {
	ctx, svc, mockUserRepo, _, _, _, _, _ := setupUserServiceTest()

	skills := []string{"go"}
	req := &dto.UpdateProfileRequest{ID: uuid.New(), Skills: &skills}

	_, err := svc.UpdateProfile(ctx, models.UserRoleEmployer, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))
	mockUserRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
}

func TestUserService_UpdateProfile_EmployerCompanyFields(t *testing.T) {
	ctx, svc, mockUserRepo, _, _, _, _, _ := setupUserServiceTest()

	companyName := "Acme"
	req := &dto.UpdateProfileRequest{ID: uuid.New(), CompanyName: &companyName}
	updated := &models.User{ID: req.ID, Profile: models.Profile{CompanyName: companyName}}

	mockUserRepo.On("UpdateProfile", ctx, req).Return(updated, nil)

	user, err := svc.UpdateProfile(ctx, models.UserRoleEmployer, req)

	require.NoError(t, err)
	assert.Equal(t, companyName, user.Profile.CompanyName)
}

func TestUserService_UpdateProfile_JobseekerSkills(t *testing.T) {
	ctx, svc, mockUserRepo, _, _, _, _, _ := setupUserServiceTest()

	skills := []string{"go", "postgres"}
	req := &dto.UpdateProfileRequest{ID: uuid.New(), Skills: &skills}
	updated := &models.User{ID: req.ID, Profile: models.Profile{Skills: skills}}

	mockUserRepo.On("UpdateProfile", ctx, req).Return(updated, nil)

	user, err := svc.UpdateProfile(ctx, models.UserRoleJobseeker, req)

	require.NoError(t, err)
	assert.Equal(t, skills, user.Profile.Skills)
}

func TestUserService_ToggleStatus_Flips(t *testing.T) {
	ctx, svc, mockUserRepo, _, _, _, _, _ := setupUserServiceTest()

	userID := uuid.New()
	active := &models.User{ID: userID, Status: models.UserStatusActive}
	inactive := &models.User{ID: userID, Status: models.UserStatusInactive}

	mockUserRepo.On("GetByID", ctx, &dto.GetUserByIDRequest{ID: userID}).Return(active, nil)
	mockUserRepo.On("SetStatus", ctx, userID, models.UserStatusInactive).Return(inactive, nil)

	user, err := svc.ToggleStatus(ctx, &dto.ToggleUserStatusRequest{ID: userID})

	require.NoError(t, err)
	assert.Equal(t, models.UserStatusInactive, user.Status)
}

func TestUserService_Delete_Cascades(t *testing.T) {
	ctx, svc, mockUserRepo, mockJobRepo, mockAppRepo, mockNotifRepo, mockMsgRepo, db := setupUserServiceTest()

	userID := uuid.New()
	jobA := uuid.New()
	jobB := uuid.New()
	req := &dto.DeleteUserRequest{ID: userID}

	// The applications referencing the user's jobs hold a foreign key on
	// jobs.id, so their delete must run before the jobs delete.
	var order []string
	mockUserRepo.On("GetByID", ctx, &dto.GetUserByIDRequest{ID: userID}).Return(&models.User{ID: userID}, nil)
	mockAppRepo.On("DeleteByEmployerJobs", ctx, userID).Run(func(args mock.Arguments) {
		order = append(order, "applications")
	}).Return(int64(2), nil)
	mockJobRepo.On("DeleteByEmployer", ctx, userID).Run(func(args mock.Arguments) {
		order = append(order, "jobs")
	}).Return([]uuid.UUID{jobA, jobB}, nil)
	mockAppRepo.On("DeleteByApplicant", ctx, userID).Return(int64(1), nil)
	mockNotifRepo.On("DeleteByUser", ctx, userID).Return(int64(4), nil)
	mockMsgRepo.On("DeleteByUser", ctx, userID).Return(int64(1), nil)
	mockUserRepo.On("Delete", ctx, req).Return(nil)

	err := svc.Delete(ctx, req)

	require.NoError(t, err)
	assert.True(t, db.tx.committed)
	assert.Equal(t, []string{"applications", "jobs"}, order, "applications must be removed before the jobs they reference")
	mockUserRepo.AssertCalled(t, "Delete", ctx, req)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	ctx, svc, mockUserRepo, mockJobRepo, _, _, _, _ := setupUserServiceTest()

	mockUserRepo.On("GetByID", ctx, mock.Anything).Return(nil, storage.ErrNotFound)

	err := svc.Delete(ctx, &dto.DeleteUserRequest{ID: uuid.New()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
	mockJobRepo.AssertNotCalled(t, "DeleteByEmployer", mock.Anything, mock.Anything)
}
