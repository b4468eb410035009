package delivery_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/pkg/logger"
)

type Handler struct {
	statsService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, statsService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		statsService:             statsService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("delivery.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Session closed on rebalance or consumer group shutdown.
			h.log.Info("delivery.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message. It returns true when
// ConsumeClaim must stop (context cancelled), false to keep consuming.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event entities.DeliveryStatusChanged
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("delivery.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("delivery", event.DeliveryID),
		logger.NewField("status", event.Status.String()),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("delivery.status.changed processing")

	statsEntity, err := h.statsService.ApplyStatusChange(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler context cancelled, message will be reprocessed")
			return true
		default:
			// Counters are a projection; a poisoned message must not wedge
			// the partition.
			msgLog.With(
				logger.NewField("error", err),
			).Error("delivery.status.changed handler failed, skipping message")
			sess.MarkMessage(message, "")
			return false
		}
	}

	if statsEntity != nil {
		msgLog = h.log.With(
			logger.NewField("rider", statsEntity.RiderID),
			logger.NewField("finished", statsEntity.Finished),
			logger.NewField("cancelled", statsEntity.Cancelled),
			logger.NewField("offset", message.Offset),
		)
	}
	msgLog.Info("delivery.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
