// Package ratelimiter は外部API呼び出しの頻度を制限するリミッターを提供します。
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Limiter は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type Limiter interface {
	// Wait は呼び出しが許可されるまで待機します。ctxがキャンセルされた場合はctx.Err()を返します。
	Wait(ctx context.Context) error
}

// RateLimiterは、プロセス内でAPI呼び出しの頻度を固定ウィンドウ方式で制限します。
// 複数のgoroutineから同時に呼び出しても安全です。
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // interval あたりの上限
	interval  time.Duration // どの単位でリセットするか
	count     int
	lastReset time.Time
	now       func() time.Time
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 1
	}
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
		now:       time.Now,
	}
}

// Waitはレートリミットの上限に達しているかを確認し、必要であれば次のウィンドウまで待機します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	for {
		rl.mu.Lock()
		now := rl.now()
		// interval を過ぎたらカウントリセット
		if now.Sub(rl.lastReset) >= rl.interval {
			rl.count = 0
			rl.lastReset = now
		}
		if rl.count < rl.limit {
			rl.count++
			rl.mu.Unlock()
			return nil
		}
		sleep := rl.interval - now.Sub(rl.lastReset)
		rl.mu.Unlock()

		slog.Debug("rate limit reached", "limit", rl.limit, "sleep", sleep)
		if err := sleepCtx(ctx, sleep); err != nil {
			return err
		}
	}
}

// sleepCtx はdだけ待機します。途中でctxが終了した場合はctx.Err()を返します。
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
