package dao

import (
	"Conbini/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type Verification struct {
	Repo[models.Verification]
}

func NewVerification(db *gorm.DB) *Verification {
	return &Verification{
		Repo: NewRepo[models.Verification](db),
	}
}

// CheckExists 用户是否已核验过该商品
func (d *Verification) CheckExists(ctx context.Context, userID, barcode string) (bool, error) {
	return d.Repo.IsExist(ctx, "user_id = ? AND barcode = ?", userID, barcode)
}

// GetUserVerdict 取用户对该商品的结论，没有则返回 gorm.ErrRecordNotFound
func (d *Verification) GetUserVerdict(ctx context.Context, userID, barcode string) (*models.Verification, error) {
	return d.Repo.FindByWhere(ctx, "user_id = ? AND barcode = ?", userID, barcode)
}

// TallyResult 核验计票结果
type TallyResult struct {
	MatchCount    int64 `json:"match_count"`
	MismatchCount int64 `json:"mismatch_count"`
	TotalCount    int64 `json:"total_count"`
}

// Tally 统计 windowStart 之后的计票。窗口是调用时刻回看，行本身永不删除，
// 同一条票在后续评估中可以滑出窗口
func (d *Verification) Tally(ctx context.Context, barcode string, windowStart time.Time) (*TallyResult, error) {
	var res TallyResult
	err := d.Db.WithContext(ctx).Model(&models.Verification{}).
		Select(
			"COUNT(*) AS total_count, "+
				"IFNULL(SUM(CASE WHEN verdict = ? THEN 1 ELSE 0 END), 0) AS match_count, "+
				"IFNULL(SUM(CASE WHEN verdict = ? THEN 1 ELSE 0 END), 0) AS mismatch_count",
			models.VerdictMatch, models.VerdictMismatch,
		).
		Where("barcode = ? AND created_at >= ?", barcode, windowStart).
		Scan(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// TallyAll 全量计票（详情页展示用，不做窗口过滤）
func (d *Verification) TallyAll(ctx context.Context, barcode string) (*TallyResult, error) {
	var res TallyResult
	err := d.Db.WithContext(ctx).Model(&models.Verification{}).
		Select(
			"COUNT(*) AS total_count, "+
				"IFNULL(SUM(CASE WHEN verdict = ? THEN 1 ELSE 0 END), 0) AS match_count, "+
				"IFNULL(SUM(CASE WHEN verdict = ? THEN 1 ELSE 0 END), 0) AS mismatch_count",
			models.VerdictMatch, models.VerdictMismatch,
		).
		Where("barcode = ?", barcode).
		Scan(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}
