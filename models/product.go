package models

import (
	"time"

	"gorm.io/datatypes"
)

// Product 对应数据库中的 products 表，barcode 为业务主键
type Product struct {
	Barcode     string                      `gorm:"primaryKey;size:32;column:barcode" json:"barcode"`            // Barcode: 商品条码（JAN/EAN）
	TitleJa     string                      `gorm:"size:255;not null;column:title_ja" json:"title_ja"`           // TitleJa: 日文名称
	TitleEn     *string                     `gorm:"size:255;column:title_en" json:"title_en"`                    // TitleEn: 英文名称
	TitleZh     *string                     `gorm:"size:255;column:title_zh" json:"title_zh"`                    // TitleZh: 中文名称
	Brand       *string                     `gorm:"size:128;column:brand" json:"brand"`                          // Brand: 品牌
	Chains      datatypes.JSONSlice[string] `gorm:"column:chains" json:"chains"`                                 // Chains: 在售便利店渠道
	Category    *string                     `gorm:"size:64;index:idx_category;column:category" json:"category"`  // Category: 分类
	ImageURL    *string                     `gorm:"size:512;column:image_url" json:"image_url"`                  // ImageURL: 商品图 URL
	Pending     bool                        `gorm:"default:true;not null;column:pending" json:"pending"`         // Pending: 是否待社区核验
	Hidden      bool                        `gorm:"default:false;not null;column:hidden" json:"hidden"`          // Hidden: 是否因核验失败被隐藏
	CreatedBy   string                      `gorm:"size:64;default:'';column:created_by" json:"created_by"`      // CreatedBy: 提交者
	ReleaseDate *time.Time                  `gorm:"index:idx_release_date;column:release_date" json:"release_date"` // ReleaseDate: 发售日
	CreatedAt   time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
