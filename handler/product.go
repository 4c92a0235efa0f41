package handler

import (
	"Conbini/pkg/context"
	"Conbini/pkg/response"
	"Conbini/service"
	"Conbini/types"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Product struct {
	ProductService service.IProductService
}

func (h *Product) RegisterRouter(r gin.IRouter) {
	productGroup := r.Group("/v1/products")
	productGroup.POST("", context.Wrap(h.AddProduct))
	productGroup.GET("", context.Wrap(h.ListProducts))
	productGroup.GET("/new", context.Wrap(h.ListNewReleases))
	productGroup.GET("/:barcode", context.Wrap(h.GetProduct))
	productGroup.GET("/:barcode/seed", context.Wrap(h.GetSeed))
}

func (h *Product) AddProduct(c *gin.Context) error {
	var req types.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	// 图片可选,没传就只存文字信息
	image, err := c.FormFile("image")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID := context.GetUserID(c)
	if err := h.ProductService.AddProduct(c.Request.Context(), userID, &req, image); err != nil {
		if errors.Is(err, service.ErrProductExists) {
			return response.NewError(http.StatusConflict, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, nil)
	return nil
}

func (h *Product) ListProducts(c *gin.Context) error {
	var req types.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.ProductService.ListProducts(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, resp)
	return nil
}

func (h *Product) ListNewReleases(c *gin.Context) error {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	resp, err := h.ProductService.ListNewReleases(c.Request.Context(), limit)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, resp)
	return nil
}

func (h *Product) GetProduct(c *gin.Context) error {
	barcode := c.Param("barcode")
	if barcode == "" {
		return response.NewError(http.StatusBadRequest, "条形码不能为空")
	}

	product, err := h.ProductService.GetProduct(c.Request.Context(), barcode)
	if err != nil {
		return response.NewError(http.StatusNotFound, err.Error())
	}

	response.Success(c, product)
	return nil
}

func (h *Product) GetSeed(c *gin.Context) error {
	barcode := c.Param("barcode")
	if barcode == "" {
		return response.NewError(http.StatusBadRequest, "条形码不能为空")
	}

	seed, err := h.ProductService.GetSeed(c.Request.Context(), barcode)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, seed)
	return nil
}
