package v1

import (
	"log"

	"talent-match/internal/config"
	"talent-match/internal/database"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redisCache *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	candidateRepo := repository.NewPostgresCandidateRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)
	skillMarketRepo := repository.NewPostgresSkillMarketRepository(db)

	matchUC := usecase.NewMatchUsecase(candidateRepo, jobRepo, applicationRepo)
	similarityUC := usecase.NewSimilarityUsecase(candidateRepo, jobRepo)
	recommendationUC := usecase.NewRecommendationUsecase(
		candidateRepo,
		jobRepo,
		similarityUC,
		redisCache,
		cfg.Cache.RecommendationTTL,
		logger,
	)
	marketUC := usecase.NewMarketUsecase(skillMarketRepo)

	matchHandler := handler.NewMatchHandler(matchUC)
	similarityHandler := handler.NewSimilarityHandler(similarityUC)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUC)
	marketHandler := handler.NewMarketHandler(marketUC)

	protected := r.Group("", authMw.Middleware())

	jobsGroup := protected.Group("/jobs")
	matchHandler.RegisterRoutes(jobsGroup)
	similarityHandler.RegisterJobRoutes(jobsGroup)

	candidatesGroup := protected.Group("/candidates")
	similarityHandler.RegisterCandidateRoutes(candidatesGroup)
	recommendationHandler.RegisterRoutes(candidatesGroup)

	skillsGroup := protected.Group("/skills")
	marketHandler.RegisterRoutes(skillsGroup)
}
