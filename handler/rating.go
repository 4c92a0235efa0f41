package handler

import (
	"Conbini/pkg/context"
	"Conbini/pkg/response"
	"Conbini/service"
	"Conbini/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Rating struct {
	RatingService service.IRatingService
}

func (h *Rating) RegisterRouter(r gin.IRouter) {
	ratingGroup := r.Group("/v1/ratings")
	ratingGroup.POST("", context.Wrap(h.SubmitRating))

	r.GET("/v1/products/:barcode/ratings", context.Wrap(h.ListRatings))
}

func (h *Rating) SubmitRating(c *gin.Context) error {
	var req types.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID := context.GetUserID(c)
	if err := h.RatingService.SubmitRating(c.Request.Context(), userID, &req); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, nil)
	return nil
}

func (h *Rating) ListRatings(c *gin.Context) error {
	barcode := c.Param("barcode")
	if barcode == "" {
		return response.NewError(http.StatusBadRequest, "条形码不能为空")
	}

	resp, err := h.RatingService.ListRatings(c.Request.Context(), barcode)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, resp)
	return nil
}
