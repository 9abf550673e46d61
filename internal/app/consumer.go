package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/PADMANABAN5/hrms/internal/document"
	"github.com/PADMANABAN5/hrms/internal/employee"
	"github.com/PADMANABAN5/hrms/internal/events"
	"github.com/PADMANABAN5/hrms/internal/leave"
	"github.com/PADMANABAN5/hrms/internal/mailer"
	"github.com/PADMANABAN5/hrms/internal/messaging/kafka"
	"github.com/PADMANABAN5/hrms/internal/messaging/kafka/consumer"
	"github.com/PADMANABAN5/hrms/internal/payslip"
	"github.com/PADMANABAN5/hrms/internal/shared/connection"
	"github.com/PADMANABAN5/hrms/internal/shared/counter"
)

// RunConsumer starts the payslip email consumer. Each consumed event is
// rendered to PDF and delivered over SMTP.
func RunConsumer() error {
	logger := zap.L().Named("consumer")

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

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	employeeService := employee.NewService(employee.NewRepository(gormDB), counter.NewRepository(gormDB), redisClient, logger)
	leaveService := leave.NewService(leave.NewRepository(gormDB))

	payslipService := payslip.NewService(
		sqlDB,
		payslip.NewRepository(gormDB),
		payslip.NewDraftStore(redisClient),
		kafka.NewOutboxRepository(sqlDB),
		employeeService,
		leaveService,
		document.NewPDFRenderer(),
		mailer.NewSMTPMailerFromEnv(logger),
		logger,
	)

	groupID := os.Getenv("KAFKA_CONSUMER_GROUP")
	if groupID == "" {
		groupID = "hrms-payslip-email"
	}

	c := consumer.NewFromEnv(
		events.PayslipEmailRequestedTopic,
		groupID,
		consumer.NewPayslipEmailHandler(payslipService, logger),
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("payslip email consumer started", zap.String("group_id", groupID))
	c.Run(ctx)
	logger.Info("payslip email consumer stopped")
	return nil
}
