package service

import (
	"Conbini/dao"
	"Conbini/models"
	"Conbini/types"
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AdminService struct {
	DB         *gorm.DB
	ProductDAO *dao.Product
}

var _ IAdminService = (*AdminService)(nil)

type IAdminService interface {
	SeedDemo(ctx context.Context) (*types.SeedDemoResponse, error)
}

type demoProduct struct {
	barcode  string
	titleJa  string
	titleEn  string
	brand    string
	chains   []string
	category string
}

// 演示用商品目录，首次部署时灌入，条码已存在则跳过
var demoProducts = []demoProduct{
	{"4901330571481", "ファミチキ", "Famichiki Fried Chicken", "ファミマ", []string{"FamilyMart"}, "Fried Foods"},
	{"4901330571482", "ファミマルコーヒー", "Famima Coffee", "ファミマ", []string{"FamilyMart"}, "Beverages"},
	{"4901330571483", "ファミマルチョココロネ", "Famima Chocolate Corone", "ファミマ", []string{"FamilyMart"}, "Desserts"},
	{"4901330571484", "ななチキ", "Nanachiki Fried Chicken", "セブンプレミアム", []string{"Seven"}, "Fried Foods"},
	{"4901330571485", "セブンカフェ", "Seven Cafe", "セブンイレブン", []string{"Seven"}, "Beverages"},
	{"4901330571486", "おにぎり ツナマヨ", "Onigiri Tuna Mayo", "セブンプレミアム", []string{"Seven"}, "Rice Balls"},
	{"4901330571487", "からあげクン レッド", "Karaage-kun Red", "ローソン", []string{"Lawson"}, "Fried Foods"},
	{"4901330571488", "ローソン プレミアムロールケーキ", "Lawson Premium Roll Cake", "ローソン", []string{"Lawson"}, "Desserts"},
	{"4901330571489", "からあげクン グリーン", "Karaage-kun Green", "ローソン", []string{"Lawson"}, "Fried Foods"},
	{"4901330571490", "ミニストップ からあげ", "MiniStop Karaage", "ミニストップ", []string{"MiniStop"}, "Fried Foods"},
	{"4901330571491", "ミニストップ おにぎり", "MiniStop Onigiri", "ミニストップ", []string{"MiniStop"}, "Rice Balls"},
}

// SeedDemo 灌入演示商品，直接以可见状态入库，不走核验流程
func (s *AdminService) SeedDemo(ctx context.Context) (*types.SeedDemoResponse, error) {
	resp := &types.SeedDemoResponse{}
	release := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	for _, d := range demoProducts {
		exists, err := s.ProductDAO.ExistsBarcode(ctx, d.barcode)
		if err != nil {
			return nil, errors.New("查询商品失败: " + err.Error())
		}
		if exists {
			resp.Skipped++
			continue
		}

		titleEn := d.titleEn
		brand := d.brand
		category := d.category
		releaseDate := release
		product := &models.Product{
			Barcode:     d.barcode,
			TitleJa:     d.titleJa,
			TitleEn:     &titleEn,
			Brand:       &brand,
			Chains:      datatypes.NewJSONSlice(d.chains),
			Category:    &category,
			Pending:     false,
			Hidden:      false,
			CreatedBy:   "seed",
			ReleaseDate: &releaseDate,
		}
		if err := s.ProductDAO.CreateProduct(ctx, product); err != nil {
			return nil, errors.New("写入演示商品失败: " + err.Error())
		}
		resp.Inserted++
	}

	return resp, nil
}
