package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/reminder"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	timezone.SetDefault(cfg.DefaultTimezone)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	redisClient, err := cache.NewRedis(ctx, cfg)
	if err != nil {
		log.Fatal("failed to connect redis", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins()))

	r.GET("/health", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "redis": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	dispatcher := routes.RegisterRoutes(r, db, cfg, log)

	// ======================================================
	// REMINDERS
	// ======================================================
	var sender reminder.Sender = reminder.NewLogSender(log)
	if cfg.MailEnabled() {
		sender = reminder.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	}

	worker := reminder.NewWorker(
		log,
		infraRepo.NewReminderGormSource(db),
		cache.NewMarker(redisClient, "reminder:"),
		sender,
		reminder.Options{
			Spec:   cfg.ReminderCron,
			Lead:   cfg.ReminderLead,
			Window: cfg.ReminderWindow,
		},
	)
	worker.Start(ctx)

	// ======================================================
	// HTTP
	// ======================================================
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}

	worker.Stop()
	dispatcher.Close()
}
