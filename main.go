package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotbook/config"
	"slotbook/cron"
	sessionRepoPkg "slotbook/database/repository/session"
	timeslotRepoPkg "slotbook/database/repository/timeslot"
	userRepoPkg "slotbook/database/repository/user"
	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/models"
	"slotbook/routes"
	"slotbook/services/booking"
	"slotbook/services/user"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// newSessionRepo builds the configured session store and a matching close func.
func newSessionRepo(cfg config.Config) (sessionRepoPkg.SessionRepository, func(), error) {
	if cfg.SessionStore == config.SessionStoreRedis {
		client, err := utils.NewAuthCacheClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		return sessionRepoPkg.NewRedisSessionRepo(client), func() { _ = client.Close() }, nil
	}
	return sessionRepoPkg.NewMemorySessionRepo(), func() {}, nil
}

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// repositories.
	sessionRepo, closeSessions, err := newSessionRepo(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize session store: %v", err)
	}
	defer closeSessions()
	userRepo := userRepoPkg.NewMemoryUserRepo()
	timeslotRepo := timeslotRepoPkg.NewMemoryTimeSlotRepo(models.DefaultSlotTimes)

	// services.
	userService := &user.DefaultUserService{
		Repo:           userRepo,
		Sessions:       sessionRepo,
		TokenTTL:       cfg.TokenTTL,
		AdminUsernames: cfg.AdminUsernames,
		BcryptCost:     cfg.BcryptCost,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:   timeslotRepo,
		Policy: booking.OwnerOrAdminPolicy{},
	}

	// background jobs.
	sweeper, err := cron.StartSessionSweeper(cfg.TokenSweepSchedule, userService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start session sweeper: %v", err)
	}
	defer sweeper.Stop()

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	monitor := utils.NewHealthMonitor(cfg.SessionStore, sessionRepo)
	monitor.Start(bgCtx, utils.HealthCheckInterval)

	// handlers.
	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewUserHandler(userService),
		handlers.NewBookingHandler(bookingService),
		handlers.NewHealthHandler(monitor),
		middleware.AuthMiddleware(userService),
	)

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestContextMiddleware())
	routes.RegisterRoutes(router, handlerBundle, cfg)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server",
		zap.String("addr", srv.Addr),
		zap.String("env", cfg.Env),
		zap.String("sessionStore", cfg.SessionStore),
	)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("main: server stopped gracefully")
}
