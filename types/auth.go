package types

// DeviceTokenResponse 设备令牌，客户端持有后钱包就跟设备绑定
type DeviceTokenResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

type SeedDemoResponse struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}
