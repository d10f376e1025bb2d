package di

import (
	"context"
	"errors"
	"testing"
	"time"

	"eve_market/internal/config"
	"eve_market/internal/feature/marketsnapshot/domain/entity"
	infraredis "eve_market/internal/platform/redis"
	"eve_market/internal/shared/ratelimiter"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(backend string) *config.AppConfig {
	return &config.AppConfig{
		RateLimit: config.RateLimitConfig{Requests: 5, Interval: time.Second, Backend: backend},
	}
}

func TestNewLimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		backend   string
		connect   redisConnector
		wantRedis bool
	}{
		{
			name:    "success: memory backend never connects",
			backend: config.BackendMemory,
			connect: func(context.Context, infraredis.Config) (*redis.Client, error) {
				t.Fatal("connect must not be called")
				return nil, nil
			},
		},
		{
			name:    "success: redis backend",
			backend: config.BackendRedis,
			connect: func(context.Context, infraredis.Config) (*redis.Client, error) {
				return redis.NewClient(&redis.Options{Addr: "localhost:0"}), nil
			},
			wantRedis: true,
		},
		{
			name:    "success: redis unavailable falls back to memory",
			backend: config.BackendRedis,
			connect: func(context.Context, infraredis.Config) (*redis.Client, error) {
				return nil, errors.New("connection refused")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			limiter, rdb := newLimiter(context.Background(), testConfig(tt.backend), tt.connect)
			require.NotNil(t, limiter)

			if tt.wantRedis {
				require.NotNil(t, rdb)
				t.Cleanup(func() { _ = rdb.Close() })
				assert.IsType(t, &ratelimiter.RedisRateLimiter{}, limiter)
				return
			}
			assert.Nil(t, rdb)
			assert.IsType(t, &ratelimiter.RateLimiter{}, limiter)
		})
	}
}

func TestSnapshotOptions(t *testing.T) {
	t.Parallel()

	opts := SnapshotOptions(config.MarketConfig{RegionID: 10000002, LocationID: 60003760, WindowSize: 14})
	assert.Equal(t, int64(10000002), opts.RegionID)
	assert.Equal(t, entity.AllLocations(), opts.DefaultScope)
	assert.Equal(t, 14, opts.WindowSize)

	opts = SnapshotOptions(config.MarketConfig{RegionID: 10000002, LocationID: 60003760, ScopeToLocation: true})
	assert.Equal(t, entity.AtLocation(60003760), opts.DefaultScope)
}
