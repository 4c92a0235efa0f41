package handler

import (
	"Conbini/config"
	"Conbini/pkg/context"
	"Conbini/pkg/response"
	"Conbini/service"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type Admin struct {
	Config       *config.Config
	AdminService service.IAdminService
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	adminGroup := r.Group("/v1/admin")
	adminGroup.POST("/seed-demo", context.Wrap(h.SeedDemo))
}

// SeedDemo 灌入演示商品,只允许持有管理 token 的调用方执行
func (h *Admin) SeedDemo(c *gin.Context) error {
	if err := h.checkAdminToken(c); err != nil {
		return err
	}

	resp, err := h.AdminService.SeedDemo(c.Request.Context())
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, resp)
	return nil
}

func (h *Admin) checkAdminToken(c *gin.Context) *response.BizError {
	token := strings.TrimPrefix(c.GetHeader("X-Admin-Token"), "Bearer ")
	if token == "" || h.Config.Admin == nil || h.Config.Admin.TokenHash == "" {
		return response.NewError(http.StatusForbidden, "无管理权限")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.Config.Admin.TokenHash), []byte(token)); err != nil {
		return response.NewError(http.StatusForbidden, "无管理权限")
	}
	return nil
}
