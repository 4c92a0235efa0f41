package models

import "time"

// 核验结论
const (
	VerdictMatch    = "match"    // 信息与实物一致
	VerdictMismatch = "mismatch" // 信息与实物不符
)

// Verification 社区核验投票，(user_id, barcode) 唯一，写入后不再修改
type Verification struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	UserID    string    `gorm:"size:64;not null;uniqueIndex:idx_user_barcode;column:user_id" json:"user_id"`
	Barcode   string    `gorm:"size:32;not null;uniqueIndex:idx_user_barcode;index:idx_barcode;column:barcode" json:"barcode"`
	Verdict   string    `gorm:"size:16;not null;column:verdict" json:"verdict"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_created_at" json:"created_at"`
}

func (Verification) TableName() string {
	return "verifications"
}
