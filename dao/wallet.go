package dao

import (
	"Conbini/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type Wallet struct {
	Repo[models.Wallet]
}

func NewWallet(db *gorm.DB) *Wallet {
	return &Wallet{
		Repo: NewRepo[models.Wallet](db),
	}
}

// GetOrCreate 按用户取钱包，不存在则初始化（幂等）
func (w *Wallet) GetOrCreate(ctx context.Context, userID string) (*models.Wallet, error) {
	wallet := &models.Wallet{UserID: userID}
	err := w.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		FirstOrCreate(wallet).Error
	return wallet, err
}

// AddPoints 余额累加。gorm.Expr 保证并发下的原子加，避免读改写覆盖
func (w *Wallet) AddPoints(ctx context.Context, userID string, points int64) (int64, error) {
	result := w.Db.WithContext(ctx).Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"points":     gorm.Expr("points + ?", points),
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// UpdateStreak 更新连续活跃状态
func (w *Wallet) UpdateStreak(ctx context.Context, userID string, streak int, lastActivity time.Time) error {
	return w.Db.WithContext(ctx).Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"streak":        streak,
			"last_activity": lastActivity,
			"updated_at":    time.Now(),
		}).Error
}
