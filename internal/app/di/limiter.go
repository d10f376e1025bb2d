package di

import (
	"context"
	"log/slog"

	"eve_market/internal/config"
	infraredis "eve_market/internal/platform/redis"
	"eve_market/internal/shared/ratelimiter"

	"github.com/redis/go-redis/v9"
)

// redisConnector はテストで差し替えるためのRedis接続関数です。
type redisConnector func(ctx context.Context, cfg infraredis.Config) (*redis.Client, error)

// NewLimiter はRATE_LIMIT_BACKENDに応じたレートリミッターを生成します。
// Redisを選択していても接続できない場合はプロセス内のリミッターにフォールバックします。
// 返されるRedisクライアントはフォールバック時とmemory選択時にnilです。
func NewLimiter(ctx context.Context, cfg *config.AppConfig) (ratelimiter.Limiter, *redis.Client) {
	return newLimiter(ctx, cfg, infraredis.NewRedisClient)
}

func newLimiter(ctx context.Context, cfg *config.AppConfig, connect redisConnector) (ratelimiter.Limiter, *redis.Client) {
	rl := cfg.RateLimit
	if rl.Backend != config.BackendRedis {
		return ratelimiter.NewRateLimiter(rl.Requests, rl.Interval), nil
	}

	rdb, err := connect(ctx, cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, falling back to in-process rate limiter", "error", err)
		return ratelimiter.NewRateLimiter(rl.Requests, rl.Interval), nil
	}
	return ratelimiter.NewRedisRateLimiter(rdb, "esi", rl.Requests, rl.Interval), rdb
}
