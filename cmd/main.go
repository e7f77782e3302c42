package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/vetly/activity-scheduling/internal/config"
	"github.com/vetly/activity-scheduling/internal/domain"
	"github.com/vetly/activity-scheduling/internal/handler"
	"github.com/vetly/activity-scheduling/internal/health"
	"github.com/vetly/activity-scheduling/internal/infra/activitystore"
	"github.com/vetly/activity-scheduling/internal/infra/auditrecorder"
	"github.com/vetly/activity-scheduling/internal/infra/repository"
	"github.com/vetly/activity-scheduling/internal/localtime"
	"github.com/vetly/activity-scheduling/internal/observability/logging"
	"github.com/vetly/activity-scheduling/internal/observability/metrics"
	"github.com/vetly/activity-scheduling/internal/observability/middleware"
	"github.com/vetly/activity-scheduling/internal/service/extension"
	"github.com/vetly/activity-scheduling/internal/service/notify"
	"github.com/vetly/activity-scheduling/internal/service/recurrence"
	"github.com/vetly/activity-scheduling/internal/service/virtual"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.DeviceGateway.Validate(); err != nil {
		slog.Error("device gateway configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	scheduleMetrics, err := metrics.NewScheduleMetrics()
	if err != nil {
		slog.Error("failed to initialize schedule metrics", slog.String("error", err.Error()))
		return 1
	}

	// Schedule audit recorder (InfluxDB for local, BigQuery for gcloud)
	auditCfg := auditrecorder.LoadConfig()
	auditRecorder, err := auditrecorder.NewRecorder(ctx, auditCfg)
	if err != nil {
		slog.Error("failed to initialize schedule audit recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := auditRecorder.Close(); err != nil {
			slog.Warn("failed to close schedule audit recorder", slog.String("error", err.Error()))
		}
	}()

	codec := localtime.NewCodec(cfg.Schedule.Location)
	activityClient := activitystore.NewClient(cfg.ActivityServiceURL, codec)

	deviceGateway, cleanup, err := initDeviceGateway(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize device gateway", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("device gateway cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:      cfg.Redis.Addr,
		Password:  cfg.Redis.Password,
		DB:        cfg.Redis.DB,
		TLSConfig: cfg.Redis.TLSConfig(),
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	promptStore := repository.NewPromptStore(redisClient)
	notificationStore := repository.NewNotificationStore(redisClient)

	clock := domain.SystemClock()
	expander := recurrence.NewExpander()
	generator := virtual.NewGenerator(expander, codec)
	scheduler := notify.NewScheduler(deviceGateway, notificationStore, codec, clock, scheduleMetrics)
	planner := extension.NewPlanner(deviceGateway, promptStore, codec, clock, cfg.Schedule.ReminderHour, scheduleMetrics)
	orchestrator := extension.NewOrchestrator(
		activityClient,
		activityClient,
		promptStore,
		expander,
		scheduler,
		planner,
		codec,
		clock,
		scheduleMetrics,
	)

	occurrenceHandler := handler.NewOccurrenceHandler(generator, codec, scheduleMetrics)
	scheduleHandler := handler.NewScheduleHandler(scheduler, planner, codec, clock, auditRecorder)
	extensionHandler := handler.NewExtensionHandler(orchestrator, promptStore, scheduler, clock, auditRecorder)
	templateHandler := handler.NewTemplateHandler(activityClient, scheduler, promptStore)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      logging.Module("activity-scheduling"),
		TracerName:  "github.com/vetly/activity-scheduling/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	// Health check endpoints
	healthChecker := health.NewChecker(redisClient, Version).
		WithCheck("activity_store", func(ctx context.Context) error {
			_, err := activityClient.ListPets(ctx)
			return err
		})
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.POST("/occurrences/expand", occurrenceHandler.HandleExpand)
		v1.POST("/notifications/schedule", scheduleHandler.HandleSchedule)
		v1.POST("/notifications/reschedule", scheduleHandler.HandleReschedule)
		v1.POST("/notifications/cancel", scheduleHandler.HandleCancel)
		v1.GET("/extensions/pending", extensionHandler.HandlePending)
		v1.POST("/extensions/accept", extensionHandler.HandleAccept)
		v1.POST("/extensions/dismiss", extensionHandler.HandleDismiss)
		v1.DELETE("/templates/:id", templateHandler.HandleDelete)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Int("extension_reminder_hour", cfg.Schedule.ReminderHour),
			slog.String("timezone", cfg.Schedule.Location.String()),
		)
		serverErr <- srv.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
