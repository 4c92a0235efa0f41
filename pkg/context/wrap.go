package context

import (
	"Conbini/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"

	// AnonymousUserID 未携带设备令牌时的兜底身份
	AnonymousUserID = "anonymous"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

// GetUserID 取当前请求的用户标识，未登录时退回匿名用户
func GetUserID(c *gin.Context) string {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return AnonymousUserID
	}

	uid, ok := v.(string)
	if !ok || uid == "" {
		return AnonymousUserID
	}

	return uid
}
