package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/realtime"
	"github.com/mdramjankhan/HireMe/internal/services"
	"github.com/mdramjankhan/HireMe/internal/storage"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

func setupApplicationServiceTest() (context.Context, services.ApplicationService, *MockApplicationRepository, *MockJobRepository, *MockNotificationRepository, *MockPublisher, *stubTxBeginner) {
	mockAppRepo := new(MockApplicationRepository)
	mockJobRepo := new(MockJobRepository)
	mockNotifRepo := new(MockNotificationRepository)
	mockPublisher := new(MockPublisher)
	db := newStubTxBeginner()
	svc := services.NewApplicationService(mockAppRepo, mockJobRepo, mockNotifRepo, mockPublisher, db)
	return context.Background(), svc, mockAppRepo, mockJobRepo, mockNotifRepo, mockPublisher, db
}

func TestApplicationService_Apply_Success(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, _, _, _ := setupApplicationServiceTest()

	jobID := uuid.New()
	applicantID := uuid.New()
	req := &dto.ApplyRequest{JobID: jobID, Resume: "resume.pdf", ApplicantID: applicantID}

	job := &models.Job{ID: jobID, Status: models.JobStatusApproved, EmployerID: uuid.New()}
	expected := &models.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: applicantID,
		Resume:      req.Resume,
		Status:      models.ApplicationStatusApplied,
	}

	mockJobRepo.On("GetByID", ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(job, nil)
	mockAppRepo.On("GetByJobAndApplicant", ctx, jobID, applicantID).Return(nil, storage.ErrNotFound)
	mockAppRepo.On("Create", ctx, mock.AnythingOfType("*dto.CreateApplicationRequest")).Return(expected, nil)

	application, err := svc.Apply(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expected, application)
	assert.Equal(t, models.ApplicationStatusApplied, application.Status)
	mockAppRepo.AssertExpectations(t)
}

func TestApplicationService_Apply_JobNotFound(t *testing.T) {
	ctx, svc, _, mockJobRepo, _, _, _ := setupApplicationServiceTest()

	req := &dto.ApplyRequest{JobID: uuid.New(), Resume: "resume.pdf", ApplicantID: uuid.New()}
	mockJobRepo.On("GetByID", ctx, mock.Anything).Return(nil, storage.ErrNotFound)

	_, err := svc.Apply(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestApplicationService_Apply_MissingResume(t *testing.T) {
	ctx, svc, _, _, _, _, _ := setupApplicationServiceTest()

	req := &dto.ApplyRequest{JobID: uuid.New(), ApplicantID: uuid.New()}

	_, err := svc.Apply(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, _, _, _ := setupApplicationServiceTest()

	jobID := uuid.New()
	applicantID := uuid.New()
	req := &dto.ApplyRequest{JobID: jobID, Resume: "resume.pdf", ApplicantID: applicantID}

	job := &models.Job{ID: jobID, Status: models.JobStatusApproved}
	existing := &models.Application{ID: uuid.New(), JobID: jobID, ApplicantID: applicantID}

	mockJobRepo.On("GetByID", ctx, mock.Anything).Return(job, nil)
	mockAppRepo.On("GetByJobAndApplicant", ctx, jobID, applicantID).Return(existing, nil)

	_, err := svc.Apply(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict))
	mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// A concurrent apply can slip past the pre-check; the unique index surfaces
// it from the insert instead.
func TestApplicationService_Apply_DuplicateRace(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, _, _, _ := setupApplicationServiceTest()

	jobID := uuid.New()
	applicantID := uuid.New()
	req := &dto.ApplyRequest{JobID: jobID, Resume: "resume.pdf", ApplicantID: applicantID}

	mockJobRepo.On("GetByID", ctx, mock.Anything).Return(&models.Job{ID: jobID}, nil)
	mockAppRepo.On("GetByJobAndApplicant", ctx, jobID, applicantID).Return(nil, storage.ErrNotFound)
	mockAppRepo.On("Create", ctx, mock.Anything).Return(nil, storage.ErrConflict)

	_, err := svc.Apply(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict))
}

func TestApplicationService_Shortlist_Success(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, mockNotifRepo, mockPublisher, db := setupApplicationServiceTest()

	employerID := uuid.New()
	applicantID := uuid.New()
	jobID := uuid.New()
	applicationID := uuid.New()

	application := &models.Application{
		ID:          applicationID,
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.ApplicationStatusApplied,
	}
	updated := &models.Application{
		ID:          applicationID,
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.ApplicationStatusShortlisted,
	}
	job := &models.Job{ID: jobID, EmployerID: employerID}

	mockAppRepo.On("GetByID", ctx, applicationID).Return(application, nil)
	mockJobRepo.On("GetByID", ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(job, nil)
	mockAppRepo.On("UpdateStatus", ctx, applicationID, models.ApplicationStatusApplied, models.ApplicationStatusShortlisted).Return(updated, nil)
	mockNotifRepo.On("Create", ctx, mock.MatchedBy(func(req *dto.CreateNotificationRequest) bool {
		return req.UserID == applicantID &&
			req.Message == "You have been shortlisted for a job!" &&
			req.Type == models.NotificationTypeShortlist &&
			req.RelatedKind == models.RelatedKindApplication &&
			req.RelatedID == applicationID
	})).Return(&models.Notification{ID: uuid.New()}, nil)
	mockPublisher.On("Publish", applicantID, mock.MatchedBy(func(event realtime.Event) bool {
		return event.ApplicationID == applicationID && event.Message != ""
	})).Return()

	result, err := svc.Shortlist(ctx, &dto.ShortlistApplicationRequest{ApplicationID: applicationID, UserID: employerID})

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusShortlisted, result.Status)
	assert.True(t, db.tx.committed, "status update and notification should commit together")
	mockNotifRepo.AssertNumberOfCalls(t, "Create", 1)
	mockPublisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestApplicationService_Shortlist_Forbidden(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, mockNotifRepo, mockPublisher, _ := setupApplicationServiceTest()

	application := &models.Application{
		ID:          uuid.New(),
		JobID:       uuid.New(),
		ApplicantID: uuid.New(),
		Status:      models.ApplicationStatusApplied,
	}
	job := &models.Job{ID: application.JobID, EmployerID: uuid.New()}

	mockAppRepo.On("GetByID", ctx, application.ID).Return(application, nil)
	mockJobRepo.On("GetByID", ctx, mock.Anything).Return(job, nil)

	// Caller is not the employer who posted the job
	_, err := svc.Shortlist(ctx, &dto.ShortlistApplicationRequest{ApplicationID: application.ID, UserID: uuid.New()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
	mockNotifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestApplicationService_Shortlist_AlreadyDecided(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, mockNotifRepo, mockPublisher, _ := setupApplicationServiceTest()

	employerID := uuid.New()
	application := &models.Application{
		ID:          uuid.New(),
		JobID:       uuid.New(),
		ApplicantID: uuid.New(),
		Status:      models.ApplicationStatusRejected,
	}
	job := &models.Job{ID: application.JobID, EmployerID: employerID}

	mockAppRepo.On("GetByID", ctx, application.ID).Return(application, nil)
	mockJobRepo.On("GetByID", ctx, mock.Anything).Return(job, nil)

	_, err := svc.Shortlist(ctx, &dto.ShortlistApplicationRequest{ApplicationID: application.ID, UserID: employerID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidState))
	mockAppRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockNotifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestApplicationService_Shortlist_DecidedBetweenCheckAndUpdate(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, mockNotifRepo, mockPublisher, db := setupApplicationServiceTest()

	employerID := uuid.New()
	application := &models.Application{
		ID:          uuid.New(),
		JobID:       uuid.New(),
		ApplicantID: uuid.New(),
		Status:      models.ApplicationStatusApplied,
	}
	job := &models.Job{ID: application.JobID, EmployerID: employerID}

	// The pre-check sees 'applied', but a concurrent reject wins the write:
	// the conditional update matches no row.
	mockAppRepo.On("GetByID", ctx, application.ID).Return(application, nil)
	mockJobRepo.On("GetByID", ctx, mock.Anything).Return(job, nil)
	mockAppRepo.On("UpdateStatus", ctx, application.ID, models.ApplicationStatusApplied, models.ApplicationStatusShortlisted).
		Return(nil, storage.ErrNotFound)

	_, err := svc.Shortlist(ctx, &dto.ShortlistApplicationRequest{ApplicationID: application.ID, UserID: employerID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidState))
	assert.False(t, db.tx.committed, "a lost status race must not commit")
	mockNotifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestApplicationService_Reject_DecidedBetweenCheckAndUpdate(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, _, _, _ := setupApplicationServiceTest()

	employerID := uuid.New()
	application := &models.Application{
		ID:     uuid.New(),
		JobID:  uuid.New(),
		Status: models.ApplicationStatusApplied,
	}
	job := &models.Job{ID: application.JobID, EmployerID: employerID}

	mockAppRepo.On("GetByID", ctx, application.ID).Return(application, nil)
	mockJobRepo.On("GetByID", ctx, mock.Anything).Return(job, nil)
	mockAppRepo.On("UpdateStatus", ctx, application.ID, models.ApplicationStatusApplied, models.ApplicationStatusRejected).
		Return(nil, storage.ErrNotFound)

	_, err := svc.Reject(ctx, &dto.RejectApplicationRequest{ApplicationID: application.ID, UserID: employerID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidState))
}

func TestApplicationService_Reject_Success_NoSideEffects(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, mockNotifRepo, mockPublisher, _ := setupApplicationServiceTest()

	employerID := uuid.New()
	application := &models.Application{
		ID:          uuid.New(),
		JobID:       uuid.New(),
		ApplicantID: uuid.New(),
		Status:      models.ApplicationStatusApplied,
	}
	updated := &models.Application{ID: application.ID, Status: models.ApplicationStatusRejected}
	job := &models.Job{ID: application.JobID, EmployerID: employerID}

	mockAppRepo.On("GetByID", ctx, application.ID).Return(application, nil)
	mockJobRepo.On("GetByID", ctx, mock.Anything).Return(job, nil)
	mockAppRepo.On("UpdateStatus", ctx, application.ID, models.ApplicationStatusApplied, models.ApplicationStatusRejected).Return(updated, nil)

	result, err := svc.Reject(ctx, &dto.RejectApplicationRequest{ApplicationID: application.ID, UserID: employerID})

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, result.Status)
	// Rejection is silent: no notification, no push
	mockNotifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestApplicationService_Reject_AlreadyShortlisted(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, _, _, _ := setupApplicationServiceTest()

	employerID := uuid.New()
	application := &models.Application{
		ID:     uuid.New(),
		JobID:  uuid.New(),
		Status: models.ApplicationStatusShortlisted,
	}
	job := &models.Job{ID: application.JobID, EmployerID: employerID}

	mockAppRepo.On("GetByID", ctx, application.ID).Return(application, nil)
	mockJobRepo.On("GetByID", ctx, mock.Anything).Return(job, nil)

	_, err := svc.Reject(ctx, &dto.RejectApplicationRequest{ApplicationID: application.ID, UserID: employerID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidState))
}

func TestApplicationService_ListByJob_Success(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, _, _, _ := setupApplicationServiceTest()

	employerID := uuid.New()
	jobID := uuid.New()
	job := &models.Job{ID: jobID, EmployerID: employerID}
	rows := []models.ApplicationWithApplicant{
		{
			Application:    models.Application{ID: uuid.New(), JobID: jobID},
			ApplicantName:  "Jane Doe",
			ApplicantEmail: "jane@example.com",
		},
	}
	req := &dto.ListApplicationsByJobRequest{JobID: jobID, UserID: employerID, Limit: 20}

	mockJobRepo.On("GetByID", ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(job, nil)
	mockAppRepo.On("ListByJob", ctx, req).Return(rows, nil)

	applications, err := svc.ListByJob(ctx, req)

	require.NoError(t, err)
	assert.Len(t, applications, 1)
	assert.Equal(t, "Jane Doe", applications[0].ApplicantName)
}

func TestApplicationService_ListByJob_Forbidden(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, _, _, _ := setupApplicationServiceTest()

	jobID := uuid.New()
	job := &models.Job{ID: jobID, EmployerID: uuid.New()}
	req := &dto.ListApplicationsByJobRequest{JobID: jobID, UserID: uuid.New()}

	mockJobRepo.On("GetByID", ctx, mock.Anything).Return(job, nil)

	_, err := svc.ListByJob(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
	mockAppRepo.AssertNotCalled(t, "ListByJob", mock.Anything, mock.Anything)
}

func TestApplicationService_Delete_Success(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, _, _, _ := setupApplicationServiceTest()

	employerID := uuid.New()
	application := &models.Application{ID: uuid.New(), JobID: uuid.New()}
	job := &models.Job{ID: application.JobID, EmployerID: employerID}

	mockAppRepo.On("GetByID", ctx, application.ID).Return(application, nil)
	mockJobRepo.On("GetByID", ctx, mock.Anything).Return(job, nil)
	mockAppRepo.On("Delete", ctx, application.ID).Return(nil)

	err := svc.Delete(ctx, &dto.DeleteApplicationRequest{ApplicationID: application.ID, UserID: employerID})

	require.NoError(t, err)
	mockAppRepo.AssertExpectations(t)
}

func TestApplicationService_Delete_Forbidden(t *testing.T) {
	ctx, svc, mockAppRepo, mockJobRepo, _, _, _ := setupApplicationServiceTest()

	application := &models.Application{ID: uuid.New(), JobID: uuid.New()}
	job := &models.Job{ID: application.JobID, EmployerID: uuid.New()}

	mockAppRepo.On("GetByID", ctx, application.ID).Return(application, nil)
	mockJobRepo.On("GetByID", ctx, mock.Anything).Return(job, nil)

	err := svc.Delete(ctx, &dto.DeleteApplicationRequest{ApplicationID: application.ID, UserID: uuid.New()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
	mockAppRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
