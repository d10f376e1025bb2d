// Package db はgormによるデータベース接続の初期化を提供します。
package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"eve_market/internal/feature/marketsnapshot/adapters"
	"eve_market/internal/feature/marketsnapshot/domain/entity"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// retryInterval は接続失敗時の再試行間隔です。
	retryInterval = 3 * time.Second
)

// Config はデータベース接続設定です。
type Config struct {
	Driver        string `envconfig:"DB_DRIVER" default:"sqlite"`
	Path          string `envconfig:"DB_PATH" default:"./market.db"` // sqliteのファイルパス
	Host          string `envconfig:"DB_HOST" default:"localhost"`
	Port          string `envconfig:"DB_PORT" default:"5432"`
	User          string `envconfig:"DB_USER"`
	Password      string `envconfig:"DB_PASSWORD"`
	Name          string `envconfig:"DB_NAME" default:"eve_market"`
	SSLMode       string `envconfig:"DB_SSLMODE" default:"disable"`
	RunMigrations bool   `envconfig:"RUN_MIGRATIONS" default:"true"`
	// ConnectTimeout は接続リトライを諦めるまでの時間です。
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"60s"`
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BuildDSN はドライバーに応じた接続文字列を生成します。
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
	}
	return cfg.Path
}

// Opener はDSNからgorm.DBを開く関数です。
type Opener func(dsn string) (*gorm.DB, error)

// OpenerFor はドライバー名に対応するOpenerを返します。
func OpenerFor(driver string) (Opener, error) {
	switch driver {
	case DriverSQLite, "":
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		}, nil
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), &gorm.Config{})
		}, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// ConnectWithRetry はtimeoutまで一定間隔で接続を再試行します。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	return connectWithRetry(dsn, timeout, retryInterval, opener)
}

func connectWithRetry(dsn string, timeout, interval time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(interval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "interval", interval)
		time.Sleep(interval)
	}
}

// OpenDB は設定に従ってデータベースに接続し、必要であればマイグレーションを実行します。
func OpenDB(cfg Config) (*gorm.DB, error) {
	opener, err := OpenerFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	db, err := ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, opener)
	if err != nil {
		return nil, err
	}

	if cfg.Driver != DriverPostgres {
		// SQLiteは書き込みを直列化する
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	slog.Info("database ready", "driver", cfg.Driver)
	return db, nil
}

// Migrate はテーブルを作成・更新します。
func Migrate(db *gorm.DB) error {
	// マイグレーション（TrackedItem, SnapshotRecord）
	if err := db.AutoMigrate(
		&entity.TrackedItem{},
		&adapters.SnapshotRecordModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
