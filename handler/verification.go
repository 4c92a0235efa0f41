package handler

import (
	"Conbini/pkg/context"
	"Conbini/pkg/response"
	"Conbini/service"
	"Conbini/types"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Verification struct {
	VerificationService service.IVerificationService
}

func (h *Verification) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/verifications", context.Wrap(h.SubmitVerdict))
	r.GET("/v1/products/:barcode/verification", context.Wrap(h.GetStatus))
}

func (h *Verification) SubmitVerdict(c *gin.Context) error {
	var req types.SubmitVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID := context.GetUserID(c)
	status, err := h.VerificationService.SubmitVerdict(c.Request.Context(), userID, req.Barcode, req.Verdict)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidVerdict):
			return response.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDuplicateVerdict):
			return response.NewError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrVerdictBusy):
			return response.NewError(http.StatusTooManyRequests, err.Error())
		default:
			return response.NewError(http.StatusInternalServerError, err.Error())
		}
	}

	response.Success(c, status)
	return nil
}

func (h *Verification) GetStatus(c *gin.Context) error {
	barcode := c.Param("barcode")
	if barcode == "" {
		return response.NewError(http.StatusBadRequest, "条形码不能为空")
	}

	userID := context.GetUserID(c)
	status, err := h.VerificationService.GetStatus(c.Request.Context(), userID, barcode)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, status)
	return nil
}
