package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mdramjankhan/HireMe/internal/models"
	"github.com/mdramjankhan/HireMe/internal/storage"
	"github.com/mdramjankhan/HireMe/internal/transport/dto"
)

const (
	recommendationLimit    = 10
	recommendationCacheTTL = 5 * time.Minute
)

type recommendationService struct {
	userRepo storage.UserRepository
	jobRepo  storage.JobRepository
	cache    *redis.Client
}

// NewRecommendationService creates a new instance of RecommendationService.
// The cache client is optional; pass nil to disable caching.
func NewRecommendationService(userRepo storage.UserRepository, jobRepo storage.JobRepository, cache *redis.Client) RecommendationService {
	return &recommendationService{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		cache:    cache,
	}
}

// Recommend matches approved postings against the caller's skill list. A
// user with no recorded skills gets the newest approved postings instead.
// Results are cached per user; cache failures fall through to the database.
func (s *recommendationService) Recommend(ctx context.Context, userID uuid.UUID) ([]models.Job, error) {
	if jobs, ok := s.cacheGet(ctx, userID); ok {
		return jobs, nil
	}

	idReq := dto.GetUserByIDRequest{ID: userID}
	user, err := s.userRepo.GetByID(ctx, &idReq)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", userID))
	}

	var jobs []models.Job
	if len(user.Profile.Skills) > 0 {
		jobs, err = s.jobRepo.ListByAnySkill(ctx, user.Profile.Skills, recommendationLimit)
	} else {
		jobs, err = s.jobRepo.ListByStatus(ctx, models.JobStatusApproved, recommendationLimit, 0)
	}
	if err != nil {
		log.Printf("Recommend: error listing jobs for user %s: %v", userID, err)
		return nil, mapRepoError(err, fmt.Sprintf("listing recommendations for user %s", userID))
	}

	s.cacheSet(ctx, userID, jobs)
	return jobs, nil
}

func recommendationCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("recommendations:%s", userID)
}

func (s *recommendationService) cacheGet(ctx context.Context, userID uuid.UUID) ([]models.Job, bool) {
	if s.cache == nil {
		return nil, false
	}

	payload, err := s.cache.Get(ctx, recommendationCacheKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cacheGet: error reading recommendations for user %s: %v", userID, err)
		}
		return nil, false
	}

	var jobs []models.Job
	if err := json.Unmarshal(payload, &jobs); err != nil {
		log.Printf("cacheGet: error decoding cached recommendations for user %s: %v", userID, err)
		return nil, false
	}
	return jobs, true
}

func (s *recommendationService) cacheSet(ctx context.Context, userID uuid.UUID, jobs []models.Job) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(jobs)
	if err != nil {
		log.Printf("cacheSet: error encoding recommendations for user %s: %v", userID, err)
		return
	}
	if err := s.cache.Set(ctx, recommendationCacheKey(userID), payload, recommendationCacheTTL).Err(); err != nil {
		log.Printf("cacheSet: error caching recommendations for user %s: %v", userID, err)
	}
}
