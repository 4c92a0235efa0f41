package config

// LookupConfig 外部商品库查询配置
type LookupConfig struct {
	OpenFoodFactsBase string `json:"open_food_facts_base" yaml:"open_food_facts_base"`
	UserAgent         string `json:"user_agent" yaml:"user_agent"`
	TimeoutSeconds    int    `json:"timeout_seconds" yaml:"timeout_seconds"`
	CacheTTLSeconds   int    `json:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`
}

func ProvideLookupConfig(cfg *Config) *LookupConfig {
	return cfg.Lookup
}
