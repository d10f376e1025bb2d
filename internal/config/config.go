// Package config はアプリケーション全体の設定を環境変数から読み込みます。
package config

import (
	"fmt"
	"time"

	"eve_market/internal/platform/db"
	"eve_market/internal/platform/externalapi/esi"
	"eve_market/internal/platform/redis"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Rate limit backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// MarketConfig は対象マーケットの設定です。
type MarketConfig struct {
	RegionID        int64 `envconfig:"MARKET_REGION_ID" default:"10000002"`   // The Forge
	LocationID      int64 `envconfig:"MARKET_LOCATION_ID" default:"60003760"` // Jita IV - Moon 4
	ScopeToLocation bool  `envconfig:"MARKET_SCOPE_TO_LOCATION" default:"false"`
	WindowSize      int   `envconfig:"MARKET_WINDOW_SIZE" default:"30"`
}

// RateLimitConfig はESIへのリクエスト制限の設定です。
type RateLimitConfig struct {
	Requests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"20"`
	Interval time.Duration `envconfig:"RATE_LIMIT_INTERVAL" default:"1s"`
	Backend  string        `envconfig:"RATE_LIMIT_BACKEND" default:"memory"`
}

// HTTPConfig はHTTPサーバーの設定です。
type HTTPConfig struct {
	Addr            string        `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s"`
}

// LogConfig はslogの設定です。
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// AppConfig はシステム全体の設定です。
// ネストされた構造体もタグに従って読み込まれます。
type AppConfig struct {
	ESI       esi.Config
	Market    MarketConfig
	RateLimit RateLimitConfig
	Redis     redis.Config
	DB        db.Config
	HTTP      HTTPConfig
	Log       LogConfig
}

// Load は.envがあれば読み込んだうえで、環境変数から設定を返します。
func Load() (*AppConfig, error) {
	// .envが存在しない環境もあるためエラーは無視する
	_ = godotenv.Load()

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate は値の組み合わせを検証します。
func (c *AppConfig) Validate() error {
	if c.Market.RegionID <= 0 {
		return fmt.Errorf("MARKET_REGION_ID must be positive, got %d", c.Market.RegionID)
	}
	if c.Market.ScopeToLocation && c.Market.LocationID <= 0 {
		return fmt.Errorf("MARKET_LOCATION_ID must be positive when MARKET_SCOPE_TO_LOCATION is set")
	}
	if c.Market.WindowSize < 0 {
		return fmt.Errorf("MARKET_WINDOW_SIZE must not be negative, got %d", c.Market.WindowSize)
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Interval <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_INTERVAL must be positive")
	}
	switch c.RateLimit.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("unsupported RATE_LIMIT_BACKEND %q", c.RateLimit.Backend)
	}
	switch c.DB.Driver {
	case db.DriverSQLite, db.DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	return nil
}
