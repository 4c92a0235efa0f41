package cache

import (
	"Conbini/dao"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	verdictLockKey = "lock:verification:%s:%s" // lock:verification:<user>:<barcode>
	tallyKey       = "verification:tally:%s"   // verification:tally:<barcode>

	tallyTTL = 30 * time.Second
)

// VerificationCache 核验相关的 redis 读写：投票锁与计票缓存
type VerificationCache struct {
	redis *redis.Client
}

func NewVerificationCache(rds *redis.Client) *VerificationCache {
	return &VerificationCache{redis: rds}
}

// AcquireVerdictLock 投票短锁，挡掉同一用户同一商品的并发重复提交
func (c *VerificationCache) AcquireVerdictLock(ctx context.Context, userID, barcode string) bool {
	key := fmt.Sprintf(verdictLockKey, userID, barcode)
	ok, err := c.redis.SetNX(ctx, key, 1, 5*time.Second).Result()
	return err == nil && ok
}

func (c *VerificationCache) ReleaseVerdictLock(ctx context.Context, userID, barcode string) {
	key := fmt.Sprintf(verdictLockKey, userID, barcode)
	c.redis.Del(ctx, key)
}

// GetTally 读计票缓存，未命中返回 nil
func (c *VerificationCache) GetTally(ctx context.Context, barcode string) *dao.TallyResult {
	val, err := c.redis.Get(ctx, fmt.Sprintf(tallyKey, barcode)).Result()
	if err != nil {
		return nil
	}

	var res dao.TallyResult
	if json.Unmarshal([]byte(val), &res) != nil {
		return nil
	}
	return &res
}

// SetTally 写计票缓存，失败不影响主流程
func (c *VerificationCache) SetTally(ctx context.Context, barcode string, res *dao.TallyResult) {
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	c.redis.Set(ctx, fmt.Sprintf(tallyKey, barcode), data, tallyTTL)
}

// InvalidateTally 有新票进来时删除缓存
func (c *VerificationCache) InvalidateTally(ctx context.Context, barcode string) {
	c.redis.Del(ctx, fmt.Sprintf(tallyKey, barcode))
}
