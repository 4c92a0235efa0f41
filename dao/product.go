package dao

import (
	"Conbini/models"
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

func (p *Product) CreateProduct(ctx context.Context, product *models.Product) error {
	return p.Db.WithContext(ctx).Create(product).Error
}

func (p *Product) GetByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	return p.Repo.FindByWhere(ctx, "barcode = ?", barcode)
}

func (p *Product) ExistsBarcode(ctx context.Context, barcode string) (bool, error) {
	return p.Repo.IsExist(ctx, "barcode = ?", barcode)
}

// SetVisible 核验通过，清除 pending
func (p *Product) SetVisible(ctx context.Context, barcode string) error {
	return p.Db.WithContext(ctx).Model(&models.Product{}).
		Where("barcode = ?", barcode).
		Update("pending", false).Error
}

// SetHidden 核验失败，置为隐藏。pending 保持原样
func (p *Product) SetHidden(ctx context.Context, barcode string) error {
	return p.Db.WithContext(ctx).Model(&models.Product{}).
		Where("barcode = ?", barcode).
		Update("hidden", true).Error
}

// ListFilter 商品列表筛选条件
type ListFilter struct {
	Chains    []string
	Category  string
	OnlyNew   bool
	ByRelease bool // 按发售日排序，否则按录入时间
	Limit     int
}

// ListVisible 只返回已通过核验且未隐藏的商品
func (p *Product) ListVisible(ctx context.Context, filter ListFilter) ([]models.Product, error) {
	query := p.Db.WithContext(ctx).
		Where("hidden = ? AND pending = ?", false, false)

	if len(filter.Chains) > 0 {
		chainCond := p.Db.Where(datatypes.JSONArrayQuery("chains").Contains(filter.Chains[0]))
		for _, chain := range filter.Chains[1:] {
			chainCond = chainCond.Or(datatypes.JSONArrayQuery("chains").Contains(chain))
		}
		query = query.Where(chainCond)
	}

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.OnlyNew {
		twoWeeksAgo := time.Now().AddDate(0, 0, -14)
		query = query.Where("release_date >= ?", twoWeeksAgo)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	order := "created_at DESC"
	if filter.ByRelease {
		order = "release_date DESC"
	}

	var products []models.Product
	err := query.Order(order).Limit(limit).Find(&products).Error
	return products, err
}

// ListNewReleases 按发售日取最近 daysThreshold 天内的商品
func (p *Product) ListNewReleases(ctx context.Context, daysThreshold, limit int) ([]models.Product, error) {
	threshold := time.Now().AddDate(0, 0, -daysThreshold)

	var products []models.Product
	err := p.Db.WithContext(ctx).
		Where("hidden = ? AND pending = ? AND release_date >= ?", false, false, threshold).
		Order("release_date DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}
