package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"compliance_reminder_service/internal/app"
	"compliance_reminder_service/internal/infra/config"
	idb "compliance_reminder_service/internal/infra/database"
	"compliance_reminder_service/internal/infra/logger"
	"compliance_reminder_service/internal/infra/mailer"
	"compliance_reminder_service/internal/infra/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get()
	log.Infof("Configuration loaded. Environment: %s, Timezone: %s", cfg.Environment, cfg.SchedulerTimezone)

	location, err := time.LoadLocation(cfg.SchedulerTimezone)
	if err != nil {
		log.Fatalf("FATAL: Invalid SCHEDULER_TIMEZONE %q: %v", cfg.SchedulerTimezone, err)
	}

	// Initialize Database Connection
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully.")

	// Initialize Repositories
	taskRepo := idb.NewPostgresTaskRepository(db)
	historyRepo := idb.NewPostgresHistoryRepository(db)

	// Initialize Mail Sender
	sesMailer, err := mailer.NewSESMailer(context.Background(), cfg.AWSRegion, cfg.MailFrom)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize SES mailer: %v", err)
	}
	log.Infof("SES mailer initialized (region %s, from %s).", cfg.AWSRegion, cfg.MailFrom)

	// Initialize DispatchService
	dispatchService := app.NewDispatchServiceImpl(taskRepo, historyRepo, sesMailer, log, cfg.DefaultSubject)

	// Initialize DispatchScheduler
	dispatchScheduler := scheduler.NewDispatchScheduler(dispatchService, log, cfg.CronSpecDispatch, location)
	if err := dispatchScheduler.Start(); err != nil {
		log.Fatalf("FATAL: Could not start dispatch scheduler: %v", err)
	}

	log.Info("Application setup complete. Scheduler is running.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	dispatchScheduler.Stop()
	// db.Close() is handled by defer
	log.Info("Application shut down gracefully.")
}
