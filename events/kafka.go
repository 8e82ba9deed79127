package events

import (
	"context"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes order events to one topic keyed by order id.
type KafkaPublisher struct {
	w *kafka.Writer
}

// NewKafkaPublisher returns nil when no brokers are configured.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	if len(brokers) == 0 {
		return nil
	}
	return &KafkaPublisher{w: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev OrderEvent) error {
	body, err := sonic.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "encode order event")
	}
	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(ev.OrderID, 10)),
		Value: body,
	})
	return errors.Wrap(err, "kafka write")
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}
