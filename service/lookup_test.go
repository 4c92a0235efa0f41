package service

import (
	"Conbini/config"
	"Conbini/types"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/stretchr/testify/require"
)

func TestOpenFoodFactsProviderFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v0/product/4901330571481.json", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name_ja": "ポテトチップス うすしお味",
				"product_name": "Potato Chips",
				"brands": "Calbee",
				"categories": "Snacks",
				"image_url": "https://img.example.com/p.jpg"
			}
		}`))
	}))
	defer ts.Close()

	p := &OpenFoodFactsProvider{base: ts.URL, userAgent: "test", client: ts.Client()}
	seed, err := p.Lookup(context.Background(), "4901330571481")
	require.NoError(t, err)
	require.NotNil(t, seed)
	require.Equal(t, "4901330571481", seed.Barcode)
	require.Equal(t, "ポテトチップス うすしお味", seed.TitleJa)
	// 没有 product_name_en 时回落到 product_name
	require.Equal(t, "Potato Chips", seed.TitleEn)
	require.Equal(t, "Calbee", seed.Brand)
	require.Equal(t, "https://img.example.com/p.jpg", seed.ImageURL)
}

func TestOpenFoodFactsProviderNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 0, "status_verbose": "product not found"}`))
	}))
	defer ts.Close()

	p := &OpenFoodFactsProvider{base: ts.URL, userAgent: "test", client: ts.Client()}
	seed, err := p.Lookup(context.Background(), "0000000000000")
	require.NoError(t, err)
	require.Nil(t, seed)
}

func TestOpenFoodFactsProviderHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	p := &OpenFoodFactsProvider{base: ts.URL, userAgent: "test", client: ts.Client()}
	seed, err := p.Lookup(context.Background(), "4901330571481")
	require.NoError(t, err)
	require.Nil(t, seed)
}

type stubProvider struct {
	seed  *types.ProductSeed
	err   error
	calls int32
}

func (p *stubProvider) Lookup(ctx context.Context, barcode string) (*types.ProductSeed, error) {
	atomic.AddInt32(&p.calls, 1)
	return p.seed, p.err
}

// 前一个 Provider 出错时继续走链,由后面的兜住
func TestLookupChainFallsThrough(t *testing.T) {
	broken := &stubProvider{err: errors.New("connection refused")}
	good := &stubProvider{seed: &types.ProductSeed{Barcode: "123", TitleJa: "テスト"}}

	svc := &LookupService{
		providers: []Provider{broken, good, NullProvider{}},
		cache:     cmap.New[seedCacheEntry](),
		ttl:       defaultLookupTTL,
	}

	seed, err := svc.Lookup(context.Background(), "123")
	require.NoError(t, err)
	require.NotNil(t, seed)
	require.Equal(t, "テスト", seed.TitleJa)
	require.EqualValues(t, 1, broken.calls)
	require.EqualValues(t, 1, good.calls)
}

// 全链都查不到时返回 (nil, nil),不算错误
func TestLookupChainExhausted(t *testing.T) {
	svc := &LookupService{
		providers: []Provider{&stubProvider{}, NullProvider{}},
		cache:     cmap.New[seedCacheEntry](),
		ttl:       defaultLookupTTL,
	}

	seed, err := svc.Lookup(context.Background(), "123")
	require.NoError(t, err)
	require.Nil(t, seed)
}

// 命中结果缓存,TTL 内不再触发外部查询
func TestLookupCacheHit(t *testing.T) {
	p := &stubProvider{seed: &types.ProductSeed{Barcode: "123"}}
	svc := &LookupService{
		providers: []Provider{p},
		cache:     cmap.New[seedCacheEntry](),
		ttl:       defaultLookupTTL,
	}

	for i := 0; i < 3; i++ {
		seed, err := svc.Lookup(context.Background(), "123")
		require.NoError(t, err)
		require.NotNil(t, seed)
	}
	require.EqualValues(t, 1, p.calls)
}

func TestNewLookupServiceDefaults(t *testing.T) {
	svc := NewLookupService(&config.LookupConfig{})
	require.NotNil(t, svc)
}
