package service

import (
	"Conbini/config"
	"Conbini/pkg/log"
	"Conbini/types"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Provider 外部商品库查询能力，查不到返回 (nil, nil)
type Provider interface {
	Lookup(ctx context.Context, barcode string) (*types.ProductSeed, error)
}

// OpenFoodFactsProvider 开放食品数据库
type OpenFoodFactsProvider struct {
	base      string
	userAgent string
	client    *http.Client
}

func (p *OpenFoodFactsProvider) Lookup(ctx context.Context, barcode string) (*types.ProductSeed, error) {
	url := fmt.Sprintf("%s/api/v0/product/%s.json", p.base, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if gjson.GetBytes(body, "status").Int() == 0 {
		return nil, nil
	}
	product := gjson.GetBytes(body, "product")
	if !product.Exists() {
		return nil, nil
	}

	seed := &types.ProductSeed{
		Barcode:  barcode,
		TitleJa:  firstString(product, "product_name_ja", "product_name"),
		TitleEn:  firstString(product, "product_name_en", "product_name"),
		TitleZh:  firstString(product, "product_name_zh"),
		Brand:    firstString(product, "brands", "brand"),
		Category: firstString(product, "categories", "category"),
		ImageURL: firstString(product, "image_url", "image_front_url"),
	}
	return seed, nil
}

// firstString 按顺序取第一个非空字段
func firstString(result gjson.Result, keys ...string) string {
	for _, key := range keys {
		if v := result.Get(key).String(); v != "" {
			return v
		}
	}
	return ""
}

// NullProvider 链尾兜底，永远查不到
type NullProvider struct{}

func (NullProvider) Lookup(ctx context.Context, barcode string) (*types.ProductSeed, error) {
	return nil, nil
}

type seedCacheEntry struct {
	seed      *types.ProductSeed
	expiresAt time.Time
}

// LookupService 按顺序尝试各个 Provider，第一个命中即返回。
// 命中结果进程内缓存一段时间，外部库压力不至于被扫码行为放大
type LookupService struct {
	providers []Provider
	cache     cmap.ConcurrentMap[string, seedCacheEntry]
	ttl       time.Duration
}

var _ ILookupService = (*LookupService)(nil)

type ILookupService interface {
	Lookup(ctx context.Context, barcode string) (*types.ProductSeed, error)
}

const (
	defaultLookupTimeout = 5 * time.Second
	defaultLookupTTL     = 10 * time.Minute
)

func NewLookupService(cfg *config.LookupConfig) ILookupService {
	timeout := defaultLookupTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	ttl := defaultLookupTTL
	if cfg.CacheTTLSeconds > 0 {
		ttl = time.Duration(cfg.CacheTTLSeconds) * time.Second
	}

	base := cfg.OpenFoodFactsBase
	if base == "" {
		base = "https://world.openfoodfacts.org"
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "ConbiniRater/1.0"
	}

	return &LookupService{
		providers: []Provider{
			&OpenFoodFactsProvider{
				base:      base,
				userAgent: userAgent,
				client:    &http.Client{Timeout: timeout},
			},
			NullProvider{},
		},
		cache: cmap.New[seedCacheEntry](),
		ttl:   ttl,
	}
}

func (s *LookupService) Lookup(ctx context.Context, barcode string) (*types.ProductSeed, error) {
	if entry, ok := s.cache.Get(barcode); ok && time.Now().Before(entry.expiresAt) {
		return entry.seed, nil
	}

	for _, provider := range s.providers {
		seed, err := provider.Lookup(ctx, barcode)
		if err != nil {
			// 单个 Provider 出错继续走链
			log.L.Warn("product lookup provider failed",
				zap.String("barcode", barcode), zap.Error(err))
			continue
		}
		if seed != nil {
			s.cache.Set(barcode, seedCacheEntry{seed: seed, expiresAt: time.Now().Add(s.ttl)})
			return seed, nil
		}
	}
	return nil, nil
}
