package v1

import (
	"log"

	"hireflow/internal/config"
	"hireflow/internal/database"
	"hireflow/internal/delivery/http/handler"
	"hireflow/internal/delivery/http/middleware"
	"hireflow/internal/infrastructure/cache"
	"hireflow/internal/infrastructure/ranker"
	"hireflow/internal/pkg/jwt"
	"hireflow/internal/repository"
	"hireflow/internal/usecase"
	"hireflow/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Dependencies struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func Register(r fiber.Router, d Dependencies) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(d.DB)
	skillRepo := repository.NewPostgresSkillRepository(d.DB)
	seekerRepo := repository.NewPostgresSeekerRepository(d.DB)
	recruiterRepo := repository.NewPostgresRecruiterRepository(d.DB)
	jobRepo := repository.NewPostgresJobRepository(d.DB)
	appRepo := repository.NewPostgresApplicationRepository(d.DB)
	messageRepo := repository.NewPostgresMessageRepository(d.DB)
	notificationRepo := repository.NewPostgresNotificationRepository(d.DB)
	analyticsRepo := repository.NewPostgresAnalyticsRepository(d.DB)

	rankerClient := ranker.NewHTTPRanker(d.Config.Ranker.BaseURL, d.Config.Ranker.Timeout, d.Logger)

	notificationUC := usecase.NewNotificationUsecase(notificationRepo, d.Hub, d.Logger)
	authUC := usecase.NewAuthUsecase(userRepo, seekerRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo, seekerRepo, recruiterRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo, d.Cache)
	seekerUC := usecase.NewSeekerUsecase(seekerRepo, analyticsRepo)
	recruiterUC := usecase.NewRecruiterUsecase(recruiterRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, recruiterRepo)
	applicationUC := usecase.NewApplicationUsecase(appRepo, jobRepo, seekerRepo, recruiterRepo, notificationUC)
	recommendationUC := usecase.NewRecommendationUsecase(jobRepo, seekerRepo, rankerClient, d.Config.Ranker.Timeout, d.Logger)
	messageUC := usecase.NewMessageUsecase(messageRepo, userRepo, notificationUC, d.Hub)
	adminUC := usecase.NewAdminUsecase(userRepo, jobRepo, appRepo, recruiterRepo, notificationUC)
	analyticsUC := usecase.NewAnalyticsUsecase(analyticsRepo, recruiterRepo)

	handler.NewAuthHandler(authUC, authMw).RegisterRoutes(r)
	handler.NewUserHandler(userUC, authMw).RegisterRoutes(r)
	handler.NewSkillHandler(skillUC, authMw).RegisterRoutes(r)
	handler.NewSeekerHandler(seekerUC, recommendationUC, authMw).RegisterRoutes(r)
	handler.NewRecruiterHandler(recruiterUC, analyticsUC, authMw).RegisterRoutes(r)
	handler.NewJobHandler(jobUC, authMw).RegisterRoutes(r)
	handler.NewApplicationHandler(applicationUC, authMw).RegisterRoutes(r)
	handler.NewMessageHandler(messageUC, authMw).RegisterRoutes(r)
	handler.NewNotificationHandler(notificationUC, authMw).RegisterRoutes(r)
	handler.NewAdminHandler(adminUC, analyticsUC, authMw).RegisterRoutes(r)
}
