package config

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`

	// One bucket per asset class, mirroring the storage layout the web
	// client expects (public URLs except receipts).
	AvatarBucket  string `json:"avatar_bucket" yaml:"avatar_bucket"`
	BannerBucket  string `json:"banner_bucket" yaml:"banner_bucket"`
	PostBucket    string `json:"post_bucket" yaml:"post_bucket"`
	ReceiptBucket string `json:"receipt_bucket" yaml:"receipt_bucket"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
