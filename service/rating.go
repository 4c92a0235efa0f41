package service

import (
	"Conbini/dao"
	"Conbini/models"
	"Conbini/pkg/log"
	"Conbini/pkg/snowflake"
	"Conbini/types"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RatingService struct {
	DB        *gorm.DB
	RatingDAO *dao.Rating
	Rewards   IRewardsService
}

var _ IRatingService = (*RatingService)(nil)

type IRatingService interface {
	SubmitRating(ctx context.Context, userID string, req *types.CreateRatingRequest) error
	ListRatings(ctx context.Context, barcode string) (*types.ListRatingsResponse, error)
}

// SubmitRating 写入评价后触发积分奖励。奖励失败只记日志，评价照常成功
func (s *RatingService) SubmitRating(ctx context.Context, userID string, req *types.CreateRatingRequest) error {
	if req.Score < 1 || req.Score > 5 {
		return errors.New("评分必须在1到5之间")
	}

	rating := &models.Rating{
		ID:      snowflake.GenID(),
		Barcode: req.Barcode,
		UserID:  userID,
		Score:   req.Score,
		Tags:    datatypes.NewJSONSlice(req.Tags),
	}
	if req.Comment != "" {
		rating.Comment = &req.Comment
	}

	if err := s.RatingDAO.CreateRating(ctx, rating); err != nil {
		return errors.New("写入评价失败: " + err.Error())
	}

	if err := s.Rewards.RewardRating(ctx, userID, req.Barcode); err != nil {
		log.L.Error("reward rating failed",
			zap.String("user_id", userID), zap.String("barcode", req.Barcode), zap.Error(err))
	}

	return nil
}

func (s *RatingService) ListRatings(ctx context.Context, barcode string) (*types.ListRatingsResponse, error) {
	ratings, err := s.RatingDAO.ListByBarcode(ctx, barcode)
	if err != nil {
		return nil, errors.New("查询评价失败: " + err.Error())
	}

	stats, err := s.RatingDAO.GetStats(ctx, barcode)
	if err != nil {
		return nil, errors.New("统计评分失败: " + err.Error())
	}

	resp := &types.ListRatingsResponse{
		Items: make([]types.RatingItem, 0, len(ratings)),
		Avg:   stats.Avg,
		Count: stats.Count,
	}
	for _, r := range ratings {
		item := types.RatingItem{
			ID:        r.ID,
			Barcode:   r.Barcode,
			UserID:    r.UserID,
			Score:     r.Score,
			Tags:      []string(r.Tags),
			CreatedAt: r.CreatedAt,
		}
		if r.Comment != nil {
			item.Comment = *r.Comment
		}
		resp.Items = append(resp.Items, item)
	}
	return resp, nil
}
