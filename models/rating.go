package models

import (
	"time"

	"gorm.io/datatypes"
)

// Rating 商品评价，一条一分
type Rating struct {
	ID        int64                       `gorm:"primaryKey;column:id" json:"id"`
	Barcode   string                      `gorm:"size:32;not null;index:idx_barcode;column:barcode" json:"barcode"`
	UserID    string                      `gorm:"size:64;not null;index:idx_user_id;column:user_id" json:"user_id"`
	Score     int                         `gorm:"not null;column:score" json:"score"` // Score: 评分 1-5
	Comment   *string                     `gorm:"type:text;column:comment" json:"comment"`
	Tags      datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	CreatedAt time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Rating) TableName() string {
	return "ratings"
}
