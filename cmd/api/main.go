package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/petcare-service/internal/api/http"
	"github.com/spec-kit/petcare-service/internal/api/http/handlers"
	"github.com/spec-kit/petcare-service/internal/auth"
	"github.com/spec-kit/petcare-service/internal/config"
	"github.com/spec-kit/petcare-service/internal/events"
	"github.com/spec-kit/petcare-service/internal/observability"
	"github.com/spec-kit/petcare-service/internal/persistence"
	"github.com/spec-kit/petcare-service/internal/repository"
	"github.com/spec-kit/petcare-service/internal/service"
	"github.com/spec-kit/petcare-service/internal/worker"
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

	if cfg.Auth.JWTSecret == "" {
		// Deployment defect: the service stays up for public routes but every
		// dashboard and API session check will deny.
		logger.Error("AUTH_JWT_SECRET is not set; all protected routes will be denied")
	}

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

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	petRepo := repository.NewPetRepository(pool)
	requestRepo := repository.NewCareRequestRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	limiter := auth.NewLoginLimiter(redis.Client, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow())
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo: userRepo,
		Limiter:  limiter,
	})
	userService := service.NewUserService(userRepo, dispatcher)
	petService := service.NewPetService(petRepo)
	requestService := service.NewCareRequestService(service.CareRequestDependencies{
		RequestRepo: requestRepo,
		PetRepo:     petRepo,
		UserRepo:    userRepo,
		Dispatcher:  dispatcher,
	})
	activityService := service.NewActivityService(activityRepo, requestService, dispatcher)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	gate := auth.NewDashboardGate(authService.TokenManager(), auth.DefaultRoutePolicy(), logger)
	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, cfg.App.IsProduction()),
		Pets:           handlers.NewPetsHandler(petService),
		CareRequests:   handlers.NewCareRequestsHandler(requestService),
		Activities:     handlers.NewActivitiesHandler(activityService),
		Caretakers:     handlers.NewCaretakersHandler(userService),
		Profile:        handlers.NewProfileHandler(userService),
		Admin:          handlers.NewAdminHandler(userService, requestService),
		Dashboard:      handlers.NewDashboardHandler(),
		Gate:           gate,
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
