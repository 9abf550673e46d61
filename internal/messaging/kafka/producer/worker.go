package producer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/PADMANABAN5/hrms/internal/messaging/kafka"
)

const (
	pollInterval = 2 * time.Second
	batchSize    = 50
)

// OutboxWorker drains pending outbox rows into Kafka. Rows are marked
// sent or failed individually so a poisoned payload never blocks the batch.
type OutboxWorker struct {
	repo      kafka.OutboxRepository
	publisher Publisher
	logger    *zap.Logger
}

func NewOutboxWorker(repo kafka.OutboxRepository, publisher Publisher, logger *zap.Logger) *OutboxWorker {
	return &OutboxWorker{
		repo:      repo,
		publisher: publisher,
		logger:    logger.Named("outbox_worker"),
	}
}

func (w *OutboxWorker) Run(ctx context.Context) {
	w.logger.Info("outbox worker started")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("outbox worker stopped")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

func (w *OutboxWorker) processBatch(ctx context.Context) {
	events, err := w.repo.ListPending(ctx, batchSize)
	if err != nil {
		w.logger.Error("failed to list pending outbox events", zap.Error(err))
		return
	}

	for _, event := range events {
		if err := w.publisher.Publish(ctx, event.Topic, event.AggregateID, event.Payload); err != nil {
			if markErr := w.repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				w.logger.Error("failed to mark outbox event failed",
					zap.String("event_id", event.ID),
					zap.Error(markErr),
				)
			}
			continue
		}

		if err := w.repo.MarkSent(ctx, event.ID); err != nil {
			w.logger.Error("failed to mark outbox event sent",
				zap.String("event_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		w.logger.Info("outbox event dispatched",
			zap.String("event_id", event.ID),
			zap.String("topic", event.Topic),
			zap.String("event_type", event.EventType),
		)
	}
}
