package types

// WalletResponse 钱包概览
type WalletResponse struct {
	UserID       string `json:"user_id"`
	Points       int64  `json:"points"`
	Streak       int    `json:"streak"`
	LastActivity string `json:"last_activity,omitempty"` // 格式 2006-01-02
}

// RewardEventItem 单条积分流水
type RewardEventItem struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Points    int64  `json:"points"`
	Barcode   string `json:"barcode,omitempty"`
	Streak    int    `json:"streak,omitempty"`
	CreatedAt string `json:"created_at"` // 格式化时间
}

type ListRewardEventsRequest struct {
	Limit int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

type ListRewardEventsResponse struct {
	Events []RewardEventItem `json:"events"`
}
