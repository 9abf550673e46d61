package consumer

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Handler processes one Kafka message. A returned error leaves the offset
// uncommitted so the message is redelivered.
type Handler func(ctx context.Context, msg kafkago.Message) error

type Consumer struct {
	reader  *kafkago.Reader
	handler Handler
	logger  *zap.Logger
}

func New(broker, topic, groupID string, handler Handler, logger *zap.Logger) *Consumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0,
	})

	return &Consumer{
		reader:  reader,
		handler: handler,
		logger:  logger.Named("kafka_consumer").With(zap.String("topic", topic)),
	}
}

func NewFromEnv(topic, groupID string, handler Handler, logger *zap.Logger) *Consumer {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		broker = "localhost:9092"
	}
	return New(broker, topic, groupID, handler, logger)
}

func (c *Consumer) Run(ctx context.Context) {
	c.logger.Info("consumer started")
	defer c.reader.Close()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				c.logger.Info("consumer stopped")
				return
			}
			c.logger.Error("failed to fetch message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		if err := c.handler(ctx, msg); err != nil {
			c.logger.Error("handler failed, message will be redelivered",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			time.Sleep(time.Second)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("failed to commit offset",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}
	}
}
