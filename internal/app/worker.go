package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/PADMANABAN5/hrms/internal/messaging/kafka"
	"github.com/PADMANABAN5/hrms/internal/messaging/kafka/producer"
	"github.com/PADMANABAN5/hrms/internal/shared/connection"
)

// RunWorker starts the outbox relay. It polls pending outbox rows and
// publishes them to Kafka until the process receives a stop signal.
func RunWorker() error {
	logger := zap.L().Named("worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		broker = "localhost:9092"
	}
	writer, err := connection.ConnectKafkaWithRetry(broker, 5)
	if err != nil {
		return err
	}
	defer writer.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	publisher := producer.NewKafkaPublisher(writer, logger)
	worker := producer.NewOutboxWorker(outboxRepo, publisher, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("outbox worker started", zap.String("broker", broker))
	worker.Run(ctx)
	logger.Info("outbox worker stopped")
	return nil
}
