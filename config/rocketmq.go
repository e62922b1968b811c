package config

type RocketMQConfig struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	AccessKey string `json:"ak" yaml:"ak"`
	SecretKey string `json:"sk" yaml:"sk"`

	NotifyTopic   string `json:"notify_topic" yaml:"notify_topic"`
	ConsumerGroup string `json:"consumer_group" yaml:"consumer_group"`
}

func ProvideRocketMQConfig(cfg *Config) *RocketMQConfig {
	return cfg.RocketMQ
}
