// internal/app/app.go (or similar package)
package app

import (
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/mdramjankhan/HireMe/config"
	"github.com/mdramjankhan/HireMe/internal/realtime"
	"github.com/mdramjankhan/HireMe/internal/services"
	"github.com/mdramjankhan/HireMe/internal/storage/postgres"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate
	Hub         *realtime.Hub

	UserService           services.UserService
	JobService            services.JobService
	ApplicationService    services.ApplicationService
	NotificationService   services.NotificationService
	MessageService        services.MessageService
	RecommendationService services.RecommendationService
}

// New wires repositories and services into an application container.
func New(cfg *config.Config, dbPool *pgxpool.Pool, redisClient *redis.Client, validate *validator.Validate) *Application {
	hub := realtime.NewHub()

	userRepo := postgres.NewUserRepo(dbPool)
	jobRepo := postgres.NewJobRepo(dbPool)
	appRepo := postgres.NewApplicationRepo(dbPool)
	notifRepo := postgres.NewNotificationRepo(dbPool)
	msgRepo := postgres.NewMessageRepo(dbPool)

	return &Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validate,
		Hub:         hub,

		UserService: services.NewUserService(
			userRepo, jobRepo, appRepo, notifRepo, msgRepo,
			dbPool, cfg.JWT.Secret, cfg.JWT.Expiration,
		),
		JobService:            services.NewJobService(jobRepo, appRepo, userRepo, dbPool),
		ApplicationService:    services.NewApplicationService(appRepo, jobRepo, notifRepo, hub, dbPool),
		NotificationService:   services.NewNotificationService(notifRepo, jobRepo, appRepo),
		MessageService:        services.NewMessageService(msgRepo, userRepo),
		RecommendationService: services.NewRecommendationService(userRepo, jobRepo, redisClient),
	}
}
