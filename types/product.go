package types

import "Conbini/models"

// CreateProductRequest 新增商品表单（multipart，图片字段单独处理）
type CreateProductRequest struct {
	Barcode     string   `form:"barcode" binding:"required"`
	TitleJa     string   `form:"title_ja" binding:"required"`
	TitleEn     string   `form:"title_en"`
	TitleZh     string   `form:"title_zh"`
	Brand       string   `form:"brand"`
	Chains      []string `form:"chains" binding:"required,min=1"` // 在售渠道，至少一个
	Category    string   `form:"category"`
	ReleaseDate string   `form:"release_date"` // 格式 2006-01-02
}

type ListProductsRequest struct {
	Sort     string   `form:"sort" binding:"omitempty,oneof=new top popular"`
	Chains   []string `form:"chains"`
	Category string   `form:"category"`
	OnlyNew  bool     `form:"only_new"`
	Limit    int      `form:"limit,default=50"`
}

// ProductWithStats 列表项：商品 + 评分聚合
type ProductWithStats struct {
	models.Product
	Avg   float64 `json:"avg"`
	Count int64   `json:"count"`
}

type ListProductsResponse struct {
	Items []ProductWithStats `json:"items"`
}

// ProductSeed 外部商品库返回的预填字段，仅用于新增表单，不作为权威数据
type ProductSeed struct {
	Barcode  string `json:"barcode"`
	TitleJa  string `json:"title_ja"`
	TitleEn  string `json:"title_en,omitempty"`
	TitleZh  string `json:"title_zh,omitempty"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}
