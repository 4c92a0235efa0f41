package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
}

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
}

// AdminConfig 管理接口配置，token_hash 为 bcrypt 散列
type AdminConfig struct {
	TokenHash string `json:"token_hash" yaml:"token_hash"`
}
