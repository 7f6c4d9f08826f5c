package app

import (
	"context"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/database"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/delivery/http/routes"
	"talent-match/internal/domain/matching"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"
	"talent-match/internal/ws"

	"go.uber.org/zap"
)

// Container wires every layer together. Everything hangs off the config
// and the two external connections.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Redis  *cache.Redis
	Hub    *ws.Hub

	Registry *routes.Registry
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redis := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	matcher := matching.New()

	users := repository.NewPostgresUserRepository(db)
	resumes := repository.NewPostgresResumeRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	applications := repository.NewPostgresApplicationRepository(db)

	authUC := usecase.NewAuthUsecase(users, jwtSvc)
	matchingUC := usecase.NewMatchingUsecase(jobs, resumes, matcher)
	applicationUC := usecase.NewApplicationUsecase(
		jobs, resumes, applications, matcher,
		redis, ws.NewNotifier(hub), cfg.Matching.AlertThreshold, logger,
	)
	rankingUC := usecase.NewCandidateRankingUsecase(
		jobs, resumes, matcher, redis, cfg.Redis.TTL,
		cfg.Matching.MinScore, cfg.Matching.TopN, logger,
	)
	recommendationUC := usecase.NewJobRecommendationUsecase(jobs, resumes, matcher, logger)

	registry := &routes.Registry{
		Health:         handler.NewHealthHandler(db, redis),
		Auth:           handler.NewAuthHandler(authUC),
		Match:          handler.NewMatchHandler(matchingUC),
		Application:    handler.NewApplicationHandler(applicationUC),
		Candidates:     handler.NewCandidateHandler(rankingUC),
		Recommendation: handler.NewRecommendationHandler(recommendationUC),
		Alerts:         ws.NewHandler(hub, jwtSvc, logger),
		AuthMw:         middleware.NewAuthMiddleware(jwtSvc),
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Redis:    redis,
		Hub:      hub,
		Registry: registry,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
