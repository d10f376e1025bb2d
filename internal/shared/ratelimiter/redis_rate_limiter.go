package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter は複数プロセスで共有する固定ウィンドウ方式のリミッターです。
//
// Key schema:
//
//	ratelimit:{name}:{windowStartUnixMilli} - ウィンドウ内の呼び出し回数 (INCR)
type RedisRateLimiter struct {
	rdb      *redis.Client
	name     string
	limit    int
	interval time.Duration
	now      func() time.Time
}

var _ Limiter = (*RedisRateLimiter)(nil)

// NewRedisRateLimiter はnameで識別されるリミッターを生成します。
// 同じnameを使うプロセス同士で上限を共有します。
func NewRedisRateLimiter(rdb *redis.Client, name string, limit int, interval time.Duration) *RedisRateLimiter {
	if limit <= 0 {
		limit = 1
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &RedisRateLimiter{rdb: rdb, name: name, limit: limit, interval: interval, now: time.Now}
}

func (rl *RedisRateLimiter) key(windowStart time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", rl.name, windowStart.UnixMilli())
}

// Wait は現在のウィンドウのカウンタを進め、上限を超えていれば次のウィンドウまで待機して再試行します。
func (rl *RedisRateLimiter) Wait(ctx context.Context) error {
	for {
		now := rl.now()
		windowStart := now.Truncate(rl.interval)
		key := rl.key(windowStart)

		n, err := rl.rdb.Incr(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("redis: rate limit incr %s: %w", key, err)
		}
		if n == 1 {
			// ウィンドウの最初の呼び出しで期限を設定する
			if err := rl.rdb.Expire(ctx, key, 2*rl.interval).Err(); err != nil {
				return fmt.Errorf("redis: rate limit expire %s: %w", key, err)
			}
		}
		if n <= int64(rl.limit) {
			return nil
		}

		if err := sleepCtx(ctx, windowStart.Add(rl.interval).Sub(now)); err != nil {
			return err
		}
	}
}
