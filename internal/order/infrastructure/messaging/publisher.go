// Package messaging 提供订单事件的发布实现
package messaging

import (
	"context"

	"github.com/wyfcoding/motoparts/internal/order/domain"
	"github.com/wyfcoding/motoparts/pkg/logger"
	"github.com/wyfcoding/motoparts/pkg/mq"
)

// KafkaPublisher 将领域事件写入 Kafka
type KafkaPublisher struct {
	producer *mq.KafkaProducer
}

// NewKafkaPublisher 创建 Kafka 事件发布者
func NewKafkaPublisher(producer *mq.KafkaProducer) domain.EventPublisher {
	return &KafkaPublisher{producer: producer}
}

// Publish 发布事件
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	return p.producer.SendMessage(ctx, topic, key, event)
}

// LogPublisher 未配置 Kafka 时的日志发布者
type LogPublisher struct{}

// NewLogPublisher 创建日志事件发布者
func NewLogPublisher() domain.EventPublisher {
	return &LogPublisher{}
}

// Publish 仅记录日志
func (p *LogPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	logger.Debug(ctx, "Publishing event", "topic", topic, "key", key, "event", event)
	return nil
}
