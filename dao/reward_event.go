package dao

import (
	"Conbini/models"
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RewardEvent struct {
	Repo[models.RewardEvent]
}

func NewRewardEvent(db *gorm.DB) *RewardEvent {
	return &RewardEvent{
		Repo: NewRepo[models.RewardEvent](db),
	}
}

// HasEventSince 指定用户、类型、条码在 since 之后是否已有流水（按日幂等的依据）
func (r *RewardEvent) HasEventSince(ctx context.Context, userID, eventType, barcode string, since time.Time) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(&models.RewardEvent{}).
		Where("user_id = ? AND type = ? AND created_at >= ?", userID, eventType, since).
		Where(datatypes.JSONQuery("metadata").Equals(barcode, "barcode")).
		Count(&count).Error
	return count > 0, err
}

// CountByTypeAndBarcode 某商品某类型流水总数（先着 N 名封顶的依据，跨用户）
func (r *RewardEvent) CountByTypeAndBarcode(ctx context.Context, eventType, barcode string) (int64, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(&models.RewardEvent{}).
		Where("type = ?", eventType).
		Where(datatypes.JSONQuery("metadata").Equals(barcode, "barcode")).
		Count(&count).Error
	return count, err
}

// ListByUser 按时间倒序取用户流水
func (r *RewardEvent) ListByUser(ctx context.Context, userID string, limit int) ([]models.RewardEvent, error) {
	var events []models.RewardEvent
	err := r.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
