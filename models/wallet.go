package models

import (
	"time"

	"gorm.io/datatypes"
)

// Wallet 积分钱包，一个用户一行，只由奖励引擎写入
type Wallet struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID       string     `gorm:"size:64;uniqueIndex;not null;column:user_id" json:"user_id"`
	Points       int64      `gorm:"default:0;not null;column:points" json:"points"` // Points: 累计积分，只增不减
	Streak       int        `gorm:"default:0;not null;column:streak" json:"streak"` // Streak: 连续活跃天数
	LastActivity *time.Time `gorm:"column:last_activity" json:"last_activity"`      // LastActivity: 最近活跃日（按自然日截断）
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Wallet) TableName() string {
	return "wallets"
}

// 奖励事件类型
const (
	RewardTypeProductAddition = "product_addition" // 新增商品
	RewardTypeRating          = "rating"           // 评价商品
	RewardTypeVerification    = "verification"     // 核验商品
	RewardTypeStreakBonus     = "streak_bonus"     // 连续活跃奖励
)

// RewardMeta 奖励事件附加信息，不同事件类型只填对应字段
type RewardMeta struct {
	Barcode string `json:"barcode,omitempty"` // 商品相关事件
	Streak  int    `json:"streak,omitempty"`  // 连续活跃奖励事件
}

// ProductMeta 商品相关事件的附加信息
func ProductMeta(barcode string) RewardMeta {
	return RewardMeta{Barcode: barcode}
}

// StreakMeta 连续活跃奖励事件的附加信息
func StreakMeta(streak int) RewardMeta {
	return RewardMeta{Streak: streak}
}

// RewardEvent 积分流水，只追加不修改，作为审计与幂等依据
type RewardEvent struct {
	ID        int64                            `gorm:"primaryKey;column:id" json:"id"`
	UserID    string                           `gorm:"size:64;not null;index:idx_user_id;column:user_id" json:"user_id"`
	Type      string                           `gorm:"size:32;not null;index:idx_type;column:type" json:"type"`
	Points    int64                            `gorm:"not null;column:points" json:"points"` // Points: 非负
	Metadata  datatypes.JSONType[RewardMeta]   `gorm:"column:metadata" json:"metadata"`
	CreatedAt time.Time                        `gorm:"column:created_at;autoCreateTime;index:idx_created_at" json:"created_at"`
}

func (RewardEvent) TableName() string {
	return "reward_events"
}
