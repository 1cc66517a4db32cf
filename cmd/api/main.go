package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tweetapp/tweet-service/internal/api/http/handlers"
	"github.com/tweetapp/tweet-service/internal/auth"
	"github.com/tweetapp/tweet-service/internal/cache"
	"github.com/tweetapp/tweet-service/internal/config"
	"github.com/tweetapp/tweet-service/internal/events"
	"github.com/tweetapp/tweet-service/internal/observability"
	"github.com/tweetapp/tweet-service/internal/persistence"
	"github.com/tweetapp/tweet-service/internal/repository"
	"github.com/tweetapp/tweet-service/internal/service"
	"github.com/tweetapp/tweet-service/internal/worker"

	httptransport "github.com/tweetapp/tweet-service/internal/api/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var userRepo repository.UserRepository
	var tweetRepo repository.TweetRepository
	if pool := pg.PoolHandle(); pool != nil {
		userRepo = repository.NewUserRepository(pool)
		tweetRepo = repository.NewTweetRepository(pool)
	} else {
		userRepo = repository.NewMemoryUserRepository()
		tweetRepo = repository.NewMemoryTweetRepository()
	}

	dispatcher := events.NewInMemoryDispatcher()
	timeline := cache.NewTimelineCache(redis.Client, cfg.Redis.TimelineTTL(), logger)

	userService := service.NewUserService(*cfg, service.UserDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	tweetService := service.NewTweetService(*cfg, service.TweetDependencies{
		TweetRepo:  tweetRepo,
		Timeline:   timeline,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewMiddleware(tokens, userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(userService, tokens),
		Tweets:         handlers.NewTweetsHandler(tweetService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
