package config

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
	CdnBase         string `json:"cdn_base" yaml:"cdn_base"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
