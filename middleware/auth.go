package middleware

import (
	"strings"

	appctx "Conbini/pkg/context"
	"Conbini/pkg/jwt"
	"Conbini/pkg/response"

	"github.com/gin-gonic/gin"
	"net/http"
)

// Identity 设备身份中间件。带合法令牌则解析出 user_id，
// 不带令牌按匿名用户处理（读接口保持开放），带了但非法直接拒绝
func Identity(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "device", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(appctx.CtxUserID, claims.UserID)
		c.Next()
	}
}
