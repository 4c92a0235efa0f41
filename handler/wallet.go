package handler

import (
	"Conbini/pkg/context"
	"Conbini/pkg/response"
	"Conbini/service"
	"Conbini/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Wallet struct {
	Rewards service.IRewardsService
}

func (h *Wallet) RegisterRouter(r gin.IRouter) {
	walletGroup := r.Group("/v1/wallet")
	walletGroup.GET("", context.Wrap(h.GetWallet))
	walletGroup.GET("/events", context.Wrap(h.ListEvents))
}

// GetWallet 钱包概览，首次访问时懒创建
func (h *Wallet) GetWallet(c *gin.Context) error {
	userID := context.GetUserID(c)

	wallet, err := h.Rewards.GetOrCreateWallet(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	resp := types.WalletResponse{
		UserID: wallet.UserID,
		Points: wallet.Points,
		Streak: wallet.Streak,
	}
	if wallet.LastActivity != nil {
		resp.LastActivity = wallet.LastActivity.Format("2006-01-02")
	}
	response.Success(c, resp)
	return nil
}

// ListEvents 积分流水，按时间倒序
func (h *Wallet) ListEvents(c *gin.Context) error {
	var req types.ListRewardEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID := context.GetUserID(c)
	events, err := h.Rewards.ListRewardEvents(c.Request.Context(), userID, req.Limit)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	resp := types.ListRewardEventsResponse{
		Events: make([]types.RewardEventItem, 0, len(events)),
	}
	for _, e := range events {
		meta := e.Metadata.Data()
		resp.Events = append(resp.Events, types.RewardEventItem{
			ID:        e.ID,
			Type:      e.Type,
			Points:    e.Points,
			Barcode:   meta.Barcode,
			Streak:    meta.Streak,
			CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	response.Success(c, resp)
	return nil
}
