package handler

import (
	"Conbini/config"
	"Conbini/pkg/context"
	"Conbini/pkg/jwt"
	"Conbini/pkg/response"
	"Conbini/types"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Auth struct {
	Config *config.Config
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	authGroup := r.Group("/v1/auth")
	authGroup.POST("/device", context.Wrap(h.IssueDeviceToken))
}

// IssueDeviceToken 给新设备发一个长期令牌，钱包与积分从此绑定到该设备
func (h *Auth) IssueDeviceToken(c *gin.Context) error {
	userID := "device-" + uuid.NewString()

	token, err := jwt.GenerateToken([]byte(h.Config.Jwt.Secret), userID, "device", 365*24*time.Hour)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, "令牌签发失败")
	}

	response.Success(c, types.DeviceTokenResponse{
		UserID: userID,
		Token:  token,
	})
	return nil
}
