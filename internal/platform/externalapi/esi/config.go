// Package esi provides a client for the EVE Swagger Interface (ESI) market endpoints.
package esi

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds configuration for the ESI client.
type Config struct {
	BaseURL    string        `envconfig:"ESI_BASE_URL" default:"https://esi.evetech.net/latest"`
	Datasource string        `envconfig:"ESI_DATASOURCE" default:"tranquility"`
	UserAgent  string        `envconfig:"ESI_USER_AGENT" default:"eve_market/1.0"`
	Timeout    time.Duration `envconfig:"ESI_TIMEOUT" default:"10s"`
	// MaxPages は注文一覧のページ取得の上限です。
	MaxPages int `envconfig:"ESI_MAX_PAGES" default:"50"`
}

// LoadConfig loads ESI configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
