package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/PADMANABAN5/hrms/internal/events"
)

// PayslipEmailSender renders the payslip document and delivers it to the
// recipient. Implemented by the payslip service.
type PayslipEmailSender interface {
	DeliverEmail(ctx context.Context, payslipID string, recipient string, subject string) error
}

func NewPayslipEmailHandler(sender PayslipEmailSender, logger *zap.Logger) Handler {
	log := logger.Named("payslip_email_handler")

	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.PayslipEmailRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			// Malformed payloads are logged and dropped. Redelivery
			// would never succeed.
			log.Error("dropping malformed payslip email event",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			return nil
		}

		if err := sender.DeliverEmail(ctx, event.PayslipID, event.RecipientEmail, event.Subject); err != nil {
			log.Error("failed to deliver payslip email",
				zap.String("payslip_id", event.PayslipID),
				zap.String("recipient", event.RecipientEmail),
				zap.Error(err),
			)
			return err
		}

		log.Info("payslip email delivered",
			zap.String("payslip_id", event.PayslipID),
			zap.String("recipient", event.RecipientEmail),
		)
		return nil
	}
}
