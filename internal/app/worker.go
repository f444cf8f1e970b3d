package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/attendance"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/config"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/deduction"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/employee"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/messaging/kafka"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/messaging/kafka/producer"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/settings"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker hosts the background loops: the absence marker and the
// outbox producer. It blocks until SIGINT or SIGTERM.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	settingsService := settings.NewService(settings.NewRepository(gormDB))
	marker := attendance.NewAbsenceMarker(
		sqlDB,
		attendance.NewRepository(gormDB),
		deduction.NewRepository(gormDB),
		employee.NewRepository(gormDB),
		settingsService,
		logger,
	).WithOutbox(outboxRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		cfg.OutboxPollInterval,
	)

	go runAbsenceLoop(ctx, marker, logger, cfg.AbsenceJobInterval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}

func runAbsenceLoop(ctx context.Context, marker *attendance.AbsenceMarker, logger *zap.Logger, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	log := logger.Named("absence.loop")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("absence loop started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			log.Info("absence loop stopped")
			return
		case <-ticker.C:
			if _, err := marker.Run(ctx); err != nil {
				log.Error("absence pass failed", zap.Error(err))
			}
		}
	}
}
