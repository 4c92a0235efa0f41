package service

import (
	"Conbini/dao"
	"Conbini/dao/cache"
	"Conbini/models"
	"Conbini/pkg/log"
	"Conbini/pkg/snowflake"
	"Conbini/types"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// 可见性评估只看最近24小时内的票
	visibilityWindow = 24 * time.Hour

	// 转换阈值：match 达到3票且 mismatch 不足3票转为可见，mismatch 达到3票隐藏
	verifyQuorum = 3
)

var (
	ErrDuplicateVerdict = errors.New("已经核验过该商品")
	ErrInvalidVerdict   = errors.New("核验结论只能是 match 或 mismatch")
	ErrVerdictBusy      = errors.New("操作太频繁,请稍后重试")
)

type VerificationService struct {
	DB              *gorm.DB
	VerificationDAO *dao.Verification
	ProductDAO      *dao.Product
	Cache           *cache.VerificationCache
	Rewards         IRewardsService
}

var _ IVerificationService = (*VerificationService)(nil)

type IVerificationService interface {
	SubmitVerdict(ctx context.Context, userID, barcode, verdict string) (*types.VerificationStatus, error)
	GetStatus(ctx context.Context, userID, barcode string) (*types.VerificationStatus, error)
}

// SubmitVerdict 记一票核验，然后同步重估商品可见性。
// 奖励发放失败只记日志，投票本身照常成功
func (s *VerificationService) SubmitVerdict(ctx context.Context, userID, barcode, verdict string) (*types.VerificationStatus, error) {
	if verdict != models.VerdictMatch && verdict != models.VerdictMismatch {
		return nil, ErrInvalidVerdict
	}

	// 1. 短锁挡并发重复提交
	if !s.Cache.AcquireVerdictLock(ctx, userID, barcode) {
		return nil, ErrVerdictBusy
	}
	defer s.Cache.ReleaseVerdictLock(ctx, userID, barcode)

	// 2. 先查后插只是快路径，(user_id, barcode) 唯一索引兜底
	exists, err := s.VerificationDAO.CheckExists(ctx, userID, barcode)
	if err != nil {
		return nil, errors.New("查询核验记录失败: " + err.Error())
	}
	if exists {
		return nil, ErrDuplicateVerdict
	}

	row := &models.Verification{
		ID:      snowflake.GenID(),
		UserID:  userID,
		Barcode: barcode,
		Verdict: verdict,
	}
	if err := s.VerificationDAO.Create(ctx, row); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateVerdict
		}
		return nil, errors.New("写入核验记录失败: " + err.Error())
	}

	s.Cache.InvalidateTally(ctx, barcode)

	// 3. 同步重估可见性
	if err := s.evaluateVisibility(ctx, barcode); err != nil {
		log.L.Error("evaluate visibility failed",
			zap.String("barcode", barcode), zap.Error(err))
	}

	// 4. 核验奖励，失败不回滚投票
	if err := s.Rewards.RewardVerification(ctx, userID, barcode); err != nil {
		log.L.Error("reward verification failed",
			zap.String("user_id", userID), zap.String("barcode", barcode), zap.Error(err))
	}

	return s.GetStatus(ctx, userID, barcode)
}

// GetStatus 核验状况，全量计票（不做窗口过滤）+ 当前用户自己的结论
func (s *VerificationService) GetStatus(ctx context.Context, userID, barcode string) (*types.VerificationStatus, error) {
	tally := s.Cache.GetTally(ctx, barcode)
	if tally == nil {
		var err error
		tally, err = s.VerificationDAO.TallyAll(ctx, barcode)
		if err != nil {
			return nil, errors.New("统计核验计票失败: " + err.Error())
		}
		s.Cache.SetTally(ctx, barcode, tally)
	}

	status := &types.VerificationStatus{
		MatchCount:    tally.MatchCount,
		MismatchCount: tally.MismatchCount,
		TotalCount:    tally.TotalCount,
	}

	if userID != "" {
		row, err := s.VerificationDAO.GetUserVerdict(ctx, userID, barcode)
		if err == nil {
			status.UserVerdict = &row.Verdict
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("查询用户核验记录失败: " + err.Error())
		}
	}

	return status, nil
}

// evaluateVisibility 对处于 pending 的商品按当前计票重估状态。
// 结果只取决于计票本身，与投票顺序无关。hidden 之后没有任何回退路径
func (s *VerificationService) evaluateVisibility(ctx context.Context, barcode string) error {
	product, err := s.ProductDAO.GetByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if !product.Pending {
		return nil
	}

	windowStart := time.Now().Add(-visibilityWindow)
	tally, err := s.VerificationDAO.Tally(ctx, barcode, windowStart)
	if err != nil {
		return err
	}

	switch nextVisibility(tally.MatchCount, tally.MismatchCount) {
	case makeVisible:
		return s.ProductDAO.SetVisible(ctx, barcode)
	case makeHidden:
		// pending 保持原样
		return s.ProductDAO.SetHidden(ctx, barcode)
	default:
		return nil
	}
}

type visibilityTransition int

const (
	stayPending visibilityTransition = iota
	makeVisible
	makeHidden
)

// nextVisibility 可见性转换规则。并列时偏向"不足3票 mismatch 不隐藏"，
// 避免把有争议的正常商品误杀
func nextVisibility(matchCount, mismatchCount int64) visibilityTransition {
	if matchCount >= verifyQuorum && mismatchCount < verifyQuorum {
		return makeVisible
	}
	if mismatchCount >= verifyQuorum {
		return makeHidden
	}
	return stayPending
}
