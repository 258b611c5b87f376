package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/storage"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

type notificationService struct {
	notifRepo storage.NotificationRepository
	jobRepo   storage.JobRepository
	appRepo   storage.ApplicationRepository
}

// NewNotificationService creates a new instance of NotificationService. The
// job and application repositories resolve the related-entity projections
// when listing.
func NewNotificationService(
	notifRepo storage.NotificationRepository,
	jobRepo storage.JobRepository,
	appRepo storage.ApplicationRepository,
) NotificationService {
	return &notificationService{
		notifRepo: notifRepo,
		jobRepo:   jobRepo,
		appRepo:   appRepo,
	}
}

// ListMine retrieves the caller's notifications, newest first, with the
// related job or application resolved when it still exists. A dangling
// reference never fails the listing; the entry is returned with Related nil.
func (s *notificationService) ListMine(ctx context.Context, userID uuid.UUID) ([]dto.NotificationResponse, error) {
	notifications, err := s.notifRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("ListMine: error listing notifications for user %s: %v", userID, err)
		return nil, mapRepoError(err, fmt.Sprintf("listing notifications for user %s", userID))
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp := dto.NotificationResponse{
			ID:          n.ID,
			UserID:      n.UserID,
			Message:     n.Message,
			Type:        n.Type,
			RelatedKind: n.RelatedKind,
			RelatedID:   n.RelatedID,
			Related:     s.resolveRelated(ctx, n),
			IsRead:      n.IsRead,
			CreatedAt:   n.CreatedAt,
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *notificationService) resolveRelated(ctx context.Context, n models.Notification) interface{} {
	switch n.RelatedKind {
	case models.RelatedKindJob:
		jobReq := dto.GetJobByIDRequest{ID: n.RelatedID}
		job, err := s.jobRepo.GetByID(ctx, &jobReq)
		if err != nil {
			if !isNotFound(err) {
				log.Printf("resolveRelated: error fetching job %s for notification %s: %v", n.RelatedID, n.ID, err)
			}
			return nil
		}
		return &dto.RelatedJobRef{
			ID:       job.ID,
			Title:    job.Title,
			Company:  job.Company,
			Location: job.Location,
		}

	case models.RelatedKindApplication:
		application, err := s.appRepo.GetByID(ctx, n.RelatedID)
		if err != nil {
			if !isNotFound(err) {
				log.Printf("resolveRelated: error fetching application %s for notification %s: %v", n.RelatedID, n.ID, err)
			}
			return nil
		}
		ref := &dto.RelatedApplicationRef{
			ID:     application.ID,
			Status: application.Status,
		}
		// The application's job may have been deleted since; the reference
		// still resolves without it.
		jobReq := dto.GetJobByIDRequest{ID: application.JobID}
		if job, err := s.jobRepo.GetByID(ctx, &jobReq); err == nil {
			ref.Job = &dto.RelatedJobRef{
				ID:       job.ID,
				Title:    job.Title,
				Company:  job.Company,
				Location: job.Location,
			}
		}
		return ref

	default:
		return nil
	}
}

// MarkRead flags one of the caller's notifications as read.
func (s *notificationService) MarkRead(ctx context.Context, req *dto.MarkNotificationReadRequest) (*models.Notification, error) {
	notification, err := s.notifRepo.MarkRead(ctx, req.ID, req.UserID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("marking notification %s as read", req.ID))
	}
	return notification, nil
}

// Delete removes one of the caller's notifications.
func (s *notificationService) Delete(ctx context.Context, req *dto.DeleteNotificationRequest) error {
	if err := s.notifRepo.Delete(ctx, req.ID, req.UserID); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting notification %s", req.ID))
	}
	return nil
}
