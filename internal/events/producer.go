// Package events publishes delivery lifecycle notifications to Kafka.
// Postgres stays the source of truth: a failed publish is logged and
// dropped, never propagated to the caller.
package events

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/pkg/logger"
)

type Producer struct {
	producer sarama.SyncProducer
	log      logger.Logger
	topic    string
}

func New(producer sarama.SyncProducer, log logger.Logger, topic string) *Producer {
	return &Producer{
		producer: producer,
		log:      log,
		topic:    topic,
	}
}

func (p *Producer) PublishStatusChanged(_ context.Context, event entities.DeliveryStatusChanged) {
	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("marshalling delivery status event",
			logger.NewField("error", err),
			logger.NewField("delivery", event.DeliveryID),
		)
		return
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(deliveryKey(event.DeliveryID)),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		p.log.Error("publishing delivery status event",
			logger.NewField("error", err),
			logger.NewField("delivery", event.DeliveryID),
			logger.NewField("status", event.Status.String()),
		)
		return
	}

	p.log.Info("delivery status event published",
		logger.NewField("delivery", event.DeliveryID),
		logger.NewField("status", event.Status.String()),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
}

func (p *Producer) Close() error {
	return p.producer.Close()
}

// deliveryKey keeps all events of one delivery on one partition, so the
// consumer sees its transitions in order.
func deliveryKey(deliveryID int64) string {
	return "delivery-" + strconv.FormatInt(deliveryID, 10)
}
