package app

import (
	"context"
	"log/slog"

	httpapp "artisthub/internal/app/http"
	"artisthub/internal/config"
	"artisthub/internal/repository"
	artworkservice "artisthub/internal/services/artwork_service"
	commentservice "artisthub/internal/services/comment_service"
	dashboardservice "artisthub/internal/services/dashboard_service"
	eventservice "artisthub/internal/services/event_service"
	galleryservice "artisthub/internal/services/gallery_service"
	mediaservice "artisthub/internal/services/media_service"
	tokenservice "artisthub/internal/services/token_service"
	userservice "artisthub/internal/services/user_service"
	filestorage "artisthub/internal/storage/filestorage"
	"artisthub/internal/storage/postgresql"
	redisapp "artisthub/internal/storage/redis"
	httprouters "artisthub/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Storage    *postgresql.Storage
	Redis      *redisapp.Client
}

func New(log *slog.Logger, cfg *config.Config) *App {
	storage, err := postgresql.New(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	redisClient := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
	if err := redisClient.HealthCheck(context.Background()); err != nil {
		log.Warn("redis is not reachable", slog.String("addr", cfg.Redis.RedisAddr))
	}

	files, err := filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL)
	if err != nil {
		panic(err)
	}

	userRepo := repository.NewUserRepository(storage.DB)
	tokenRepo := repository.NewRedisTokenRepo(redisClient)
	galleryRepo := repository.NewGalleryRepository(storage.DB)
	artworkRepo := repository.NewArtworkRepository(storage.DB)
	commentRepo := repository.NewCommentRepository(storage.DB)
	eventRepo := repository.NewEventRepository(storage.DB)
	dashboardRepo := repository.NewDashboardRepository(storage.DB)

	userService := userservice.NewUserService(log, userRepo)
	tokenService := tokenservice.NewTokenService(log, tokenRepo, cfg.TokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	galleryService := galleryservice.NewGalleryService(log, galleryRepo)
	artworkService := artworkservice.NewArtworkService(log, artworkRepo, galleryRepo, userRepo, commentRepo)
	commentService := commentservice.NewCommentService(log, commentRepo, artworkRepo)
	eventService := eventservice.NewEventService(log, eventRepo, userRepo)
	dashboardService := dashboardservice.NewDashboardService(log, dashboardRepo)
	mediaService := mediaservice.NewMediaService(log, files, cfg.FileStorage.MaxSize)

	routers := httprouters.NewRouter(
		log,
		userService,
		tokenService,
		galleryService,
		artworkService,
		commentService,
		eventService,
		dashboardService,
		mediaService,
	)

	server := httpapp.New(log, cfg.TokenSecret, cfg.HTTP.Host, cfg.HTTP.Port, routers)
	server.BuildRouters()

	return &App{
		HTTPServer: server,
		Storage:    storage,
		Redis:      redisClient,
	}
}

func (a *App) Stop() error {
	if err := a.HTTPServer.Stop(); err != nil {
		return err
	}

	a.Storage.Stop()

	return a.Redis.Close()
}
