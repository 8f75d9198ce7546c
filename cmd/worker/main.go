package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"perkpal-backend/internal/config"
	"perkpal-backend/internal/domains/lead/job"
	leadmodel "perkpal-backend/internal/domains/lead/model"
	"perkpal-backend/internal/infrastructure/email"
	"perkpal-backend/pkg/logger"
)

// The worker consumes background tasks enqueued by the API. It only needs
// Redis and SMTP, so it loads config directly instead of the full container.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.App.Environment)

	emailSvc := email.NewSMTPEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.From,
	)

	mux := asynq.NewServeMux()
	notifyHandler := job.NewNotifyHandler(emailSvc, cfg.Email.LeadInbox)
	mux.HandleFunc(leadmodel.TaskTypeNotify, notifyHandler.ProcessTask)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 10,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("task failed: "+task.Type(), err)
			}),
		},
	)

	go func() {
		logger.Info("worker starting", map[string]interface{}{"redis": cfg.Redis.Addr})
		if err := srv.Run(mux); err != nil {
			log.Fatalf("worker failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down", nil)
	srv.Shutdown()
	logger.Info("worker stopped", nil)
}
