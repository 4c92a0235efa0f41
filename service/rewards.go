package service

import (
	"Conbini/dao"
	"Conbini/models"
	"Conbini/pkg/snowflake"
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 奖励策略常量
const (
	AddProductPoints         = 20 // 新增商品
	RatingPoints             = 3  // 评价商品
	VerificationRewardPoints = 3  // 核验商品
	VerificationRewardLimit  = 3  // 核验奖励先着3名
)

// 连续活跃奖励档位
var streakBonuses = map[int]int64{
	3:  10,
	7:  20,
	14: 40,
}

type RewardsService struct {
	DB             *gorm.DB
	WalletDAO      *dao.Wallet
	RewardEventDAO *dao.RewardEvent
}

var _ IRewardsService = (*RewardsService)(nil)

type IRewardsService interface {
	GetOrCreateWallet(ctx context.Context, userID string) (*models.Wallet, error)
	ListRewardEvents(ctx context.Context, userID string, limit int) ([]models.RewardEvent, error)

	// 三个触发入口。"已奖励过"一律静默返回 nil，存储故障才返回错误，
	// 由调用方记录日志后继续，不阻断主流程
	RewardProductAddition(ctx context.Context, userID, barcode string) error
	RewardRating(ctx context.Context, userID, barcode string) error
	RewardVerification(ctx context.Context, userID, barcode string) error
}

func (s *RewardsService) GetOrCreateWallet(ctx context.Context, userID string) (*models.Wallet, error) {
	if userID == "" {
		return nil, errors.New("用户标识不能为空")
	}
	return s.WalletDAO.GetOrCreate(ctx, userID)
}

func (s *RewardsService) ListRewardEvents(ctx context.Context, userID string, limit int) ([]models.RewardEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.RewardEventDAO.ListByUser(ctx, userID, limit)
}

// grantPoints 记一条流水并累加钱包余额，两步在同一事务内完成。
// 本方法不做去重，幂等检查由各 Reward* 入口负责
func (s *RewardsService) grantPoints(ctx context.Context, userID string, points int64, eventType string, meta models.RewardMeta) (int64, error) {
	if points < 0 {
		return 0, errors.New("积分数额不能为负")
	}

	var balance int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		walletDAO := dao.NewWallet(tx)
		eventDAO := dao.NewRewardEvent(tx)

		wallet, err := walletDAO.GetOrCreate(ctx, userID)
		if err != nil {
			return errors.New("获取积分钱包失败: " + err.Error())
		}

		event := &models.RewardEvent{
			ID:       snowflake.GenID(),
			UserID:   userID,
			Type:     eventType,
			Points:   points,
			Metadata: datatypes.NewJSONType(meta),
		}
		if err := eventDAO.Create(ctx, event); err != nil {
			return errors.New("写入积分流水失败: " + err.Error())
		}

		if _, err := walletDAO.AddPoints(ctx, userID, points); err != nil {
			return errors.New("更新钱包余额失败: " + err.Error())
		}

		balance = wallet.Points + points
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// RewardProductAddition 新增商品奖励。无重复检查：一个用户可以录入多个商品，
// 条码唯一性由商品服务在入库前把关
func (s *RewardsService) RewardProductAddition(ctx context.Context, userID, barcode string) error {
	if _, err := s.grantPoints(ctx, userID, AddProductPoints, models.RewardTypeProductAddition, models.ProductMeta(barcode)); err != nil {
		return err
	}
	_, err := s.calculateStreakBonus(ctx, userID)
	return err
}

// RewardRating 评价奖励。同一用户同一商品每个自然日只奖励一次
func (s *RewardsService) RewardRating(ctx context.Context, userID, barcode string) error {
	dayStart := truncateToDay(time.Now())

	exists, err := s.RewardEventDAO.HasEventSince(ctx, userID, models.RewardTypeRating, barcode, dayStart)
	if err != nil {
		return errors.New("检查评价流水失败: " + err.Error())
	}
	if exists {
		// 今日已奖励过，静默跳过
		return nil
	}

	if _, err := s.grantPoints(ctx, userID, RatingPoints, models.RewardTypeRating, models.ProductMeta(barcode)); err != nil {
		return err
	}
	_, err = s.calculateStreakBonus(ctx, userID)
	return err
}

// RewardVerification 核验奖励，只发给每个商品最先获得奖励的前3名。
// 重复核验在投票入口就被拦下，这里只需要管名额；超过名额的票
// 仍然参与计票，可以触发可见性变化，只是不再得分
func (s *RewardsService) RewardVerification(ctx context.Context, userID, barcode string) error {
	count, err := s.RewardEventDAO.CountByTypeAndBarcode(ctx, models.RewardTypeVerification, barcode)
	if err != nil {
		return errors.New("检查核验奖励名额失败: " + err.Error())
	}
	if count >= VerificationRewardLimit {
		return nil
	}

	if _, err := s.grantPoints(ctx, userID, VerificationRewardPoints, models.RewardTypeVerification, models.ProductMeta(barcode)); err != nil {
		return err
	}
	_, err = s.calculateStreakBonus(ctx, userID)
	return err
}

// calculateStreakBonus 按自然日推进连续活跃天数。每个自然日最多推进一次，
// 中断则归一。命中档位时发一条 streak_bonus 流水，返回本次奖励分数
func (s *RewardsService) calculateStreakBonus(ctx context.Context, userID string) (int64, error) {
	wallet, err := s.WalletDAO.GetOrCreate(ctx, userID)
	if err != nil {
		return 0, err
	}

	today := truncateToDay(time.Now())

	if wallet.LastActivity == nil {
		// 初次活跃
		return 0, s.WalletDAO.UpdateStreak(ctx, userID, 1, today)
	}

	daysDiff := daysBetween(*wallet.LastActivity, today)

	switch {
	case daysDiff == 0:
		// 今天已经活跃过
		return 0, nil
	case daysDiff == 1:
		newStreak := wallet.Streak + 1
		if err := s.WalletDAO.UpdateStreak(ctx, userID, newStreak, today); err != nil {
			return 0, err
		}
		bonus := streakBonusFor(newStreak)
		if bonus > 0 {
			if _, err := s.grantPoints(ctx, userID, bonus, models.RewardTypeStreakBonus, models.StreakMeta(newStreak)); err != nil {
				return 0, err
			}
		}
		return bonus, nil
	default:
		// 连续中断
		return 0, s.WalletDAO.UpdateStreak(ctx, userID, 1, today)
	}
}

func streakBonusFor(streak int) int64 {
	return streakBonuses[streak]
}

// truncateToDay 截断到当天零点
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween 两个时间点之间相差的自然日数，按日比较与小时数无关
func daysBetween(from, to time.Time) int {
	fromDay := truncateToDay(from)
	toDay := truncateToDay(to)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
