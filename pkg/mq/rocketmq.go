package mq

import (
	"time"

	"DevHub/config"
	"DevHub/pkg/log"

	rmq_client "github.com/apache/rocketmq-clients/golang/v5"
	"github.com/apache/rocketmq-clients/golang/v5/credentials"
	"go.uber.org/zap"
)

// InitProducer builds the producer used for notification fan-out. Returns nil
// when the broker is not configured so local dev can run without MQ.
func InitProducer(cfg *config.RocketMQConfig) rmq_client.Producer {
	if cfg == nil || cfg.Endpoint == "" {
		log.L.Warn("rocketmq not configured, notification dispatch disabled")
		return nil
	}
	p, err := rmq_client.NewProducer(&rmq_client.Config{
		Endpoint: cfg.Endpoint,
		Credentials: &credentials.SessionCredentials{
			AccessKey:    cfg.AccessKey,
			AccessSecret: cfg.SecretKey,
		},
	}, rmq_client.WithTopics(cfg.NotifyTopic))
	if err != nil {
		log.L.Error("new rocketmq producer", zap.Error(err))
		return nil
	}
	if err = p.Start(); err != nil {
		log.L.Error("start rocketmq producer", zap.Error(err))
		return nil
	}
	log.L.Info("init producer success")
	return p
}

// InitSimpleConsumer subscribes the notification topic for the dispatch worker.
func InitSimpleConsumer(cfg *config.RocketMQConfig) rmq_client.SimpleConsumer {
	if cfg == nil || cfg.Endpoint == "" {
		return nil
	}
	c, err := rmq_client.NewSimpleConsumer(&rmq_client.Config{
		Endpoint:      cfg.Endpoint,
		ConsumerGroup: cfg.ConsumerGroup,
		Credentials: &credentials.SessionCredentials{
			AccessKey:    cfg.AccessKey,
			AccessSecret: cfg.SecretKey,
		},
	},
		rmq_client.WithSimpleAwaitDuration(5*time.Second),
		rmq_client.WithSimpleSubscriptionExpressions(map[string]*rmq_client.FilterExpression{
			cfg.NotifyTopic: rmq_client.SUB_ALL,
		}),
	)
	if err != nil {
		log.L.Error("new rocketmq consumer", zap.Error(err))
		return nil
	}
	if err = c.Start(); err != nil {
		log.L.Error("start rocketmq consumer", zap.Error(err))
		return nil
	}
	log.L.Info("init consumer success")
	return c
}
