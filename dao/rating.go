package dao

import (
	"Conbini/models"
	"context"

	"gorm.io/gorm"
)

type Rating struct {
	Repo[models.Rating]
}

func NewRating(db *gorm.DB) *Rating {
	return &Rating{
		Repo: NewRepo[models.Rating](db),
	}
}

func (r *Rating) CreateRating(ctx context.Context, rating *models.Rating) error {
	return r.Db.WithContext(ctx).Create(rating).Error
}

// ListByBarcode 按时间倒序取商品评价
func (r *Rating) ListByBarcode(ctx context.Context, barcode string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.Db.WithContext(ctx).
		Where("barcode = ?", barcode).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

// RatingStats 商品评分聚合
type RatingStats struct {
	Avg   float64 `json:"avg"`
	Count int64   `json:"count"`
}

// GetStats 平均分与评价数
func (r *Rating) GetStats(ctx context.Context, barcode string) (*RatingStats, error) {
	var res RatingStats
	err := r.Db.WithContext(ctx).Model(&models.Rating{}).
		Select("IFNULL(AVG(score), 0) AS avg, COUNT(*) AS count").
		Where("barcode = ?", barcode).
		Scan(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}
