package service

import (
	"Conbini/dao"
	"Conbini/models"
	"Conbini/pkg/log"
	"Conbini/types"
	"context"
	"errors"
	"mime/multipart"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrProductExists = errors.New("该条码的商品已经登记过了")

type ProductService struct {
	DB         *gorm.DB
	ProductDAO *dao.Product
	RatingDAO  *dao.Rating
	Oss        IOssService
	Lookup     ILookupService
	Rewards    IRewardsService
}

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	AddProduct(ctx context.Context, userID string, req *types.CreateProductRequest, image *multipart.FileHeader) error
	GetProduct(ctx context.Context, barcode string) (*types.ProductWithStats, error)
	ListProducts(ctx context.Context, req *types.ListProductsRequest) (*types.ListProductsResponse, error)
	GetSeed(ctx context.Context, barcode string) (*types.ProductSeed, error)
	ListNewReleases(ctx context.Context, limit int) (*types.ListProductsResponse, error)
}

// AddProduct 新商品以 pending 状态入库，待社区核验。
// 图片上传失败是致命错误；积分奖励失败只记日志
func (s *ProductService) AddProduct(ctx context.Context, userID string, req *types.CreateProductRequest, image *multipart.FileHeader) error {
	if req.Barcode == "" || req.TitleJa == "" || len(req.Chains) == 0 {
		return errors.New("必填项缺失")
	}

	var imageURL *string
	if image != nil && image.Size > 0 {
		url, err := s.Oss.UploadProductImage(ctx, req.Barcode, image)
		if err != nil {
			return errors.New("图片上传失败: " + err.Error())
		}
		imageURL = &url
	}

	exists, err := s.ProductDAO.ExistsBarcode(ctx, req.Barcode)
	if err != nil {
		return errors.New("查询商品失败: " + err.Error())
	}
	if exists {
		return ErrProductExists
	}

	product := &models.Product{
		Barcode:   req.Barcode,
		TitleJa:   req.TitleJa,
		Chains:    datatypes.NewJSONSlice(req.Chains),
		ImageURL:  imageURL,
		Pending:   true,
		Hidden:    false,
		CreatedBy: userID,
	}
	if req.TitleEn != "" {
		product.TitleEn = &req.TitleEn
	}
	if req.TitleZh != "" {
		product.TitleZh = &req.TitleZh
	}
	if req.Brand != "" {
		product.Brand = &req.Brand
	}
	if req.Category != "" {
		product.Category = &req.Category
	}
	if req.ReleaseDate != "" {
		if release, err := time.ParseInLocation("2006-01-02", req.ReleaseDate, time.Local); err == nil {
			product.ReleaseDate = &release
		}
	}

	if err := s.ProductDAO.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrProductExists
		}
		return errors.New("写入商品失败: " + err.Error())
	}

	if err := s.Rewards.RewardProductAddition(ctx, userID, req.Barcode); err != nil {
		log.L.Error("reward product addition failed",
			zap.String("user_id", userID), zap.String("barcode", req.Barcode), zap.Error(err))
	}

	return nil
}

func (s *ProductService) GetProduct(ctx context.Context, barcode string) (*types.ProductWithStats, error) {
	product, err := s.ProductDAO.GetByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("商品不存在")
		}
		return nil, errors.New("查询商品失败: " + err.Error())
	}

	stats, err := s.RatingDAO.GetStats(ctx, barcode)
	if err != nil {
		return nil, errors.New("统计评分失败: " + err.Error())
	}

	return &types.ProductWithStats{
		Product: *product,
		Avg:     stats.Avg,
		Count:   stats.Count,
	}, nil
}

// ListProducts 列出可见商品并拼上评分聚合，聚合查询并发执行
func (s *ProductService) ListProducts(ctx context.Context, req *types.ListProductsRequest) (*types.ListProductsResponse, error) {
	products, err := s.ProductDAO.ListVisible(ctx, dao.ListFilter{
		Chains:    req.Chains,
		Category:  req.Category,
		OnlyNew:   req.OnlyNew,
		ByRelease: req.Sort == "new",
		Limit:     req.Limit,
	})
	if err != nil {
		return nil, errors.New("查询商品列表失败: " + err.Error())
	}

	items := make([]types.ProductWithStats, len(products))

	p := pool.New().WithContext(ctx).WithMaxGoroutines(8)
	for i := range products {
		p.Go(func(ctx context.Context) error {
			stats, err := s.RatingDAO.GetStats(ctx, products[i].Barcode)
			if err != nil {
				return err
			}
			items[i] = types.ProductWithStats{
				Product: products[i],
				Avg:     stats.Avg,
				Count:   stats.Count,
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, errors.New("统计评分失败: " + err.Error())
	}

	switch req.Sort {
	case "top":
		sort.SliceStable(items, func(a, b int) bool { return items[a].Avg > items[b].Avg })
	case "popular":
		sort.SliceStable(items, func(a, b int) bool { return items[a].Count > items[b].Count })
	}

	return &types.ListProductsResponse{Items: items}, nil
}

// ListNewReleases 首页"新发售"模块，取最近两周内发售的商品
func (s *ProductService) ListNewReleases(ctx context.Context, limit int) (*types.ListProductsResponse, error) {
	if limit <= 0 {
		limit = 10
	}

	products, err := s.ProductDAO.ListNewReleases(ctx, 14, limit)
	if err != nil {
		return nil, errors.New("查询新品失败: " + err.Error())
	}

	items := make([]types.ProductWithStats, len(products))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(8)
	for i := range products {
		p.Go(func(ctx context.Context) error {
			stats, err := s.RatingDAO.GetStats(ctx, products[i].Barcode)
			if err != nil {
				return err
			}
			items[i] = types.ProductWithStats{
				Product: products[i],
				Avg:     stats.Avg,
				Count:   stats.Count,
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, errors.New("统计评分失败: " + err.Error())
	}

	return &types.ListProductsResponse{Items: items}, nil
}

// GetSeed 从外部商品库拿预填字段，查不到返回 nil，不算错误
func (s *ProductService) GetSeed(ctx context.Context, barcode string) (*types.ProductSeed, error) {
	return s.Lookup.Lookup(ctx, barcode)
}
