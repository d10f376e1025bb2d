// Package di provides dependency injection factories for creating application components.
package di

import (
	"eve_market/internal/config"
	"eve_market/internal/feature/marketsnapshot/domain/entity"
	"eve_market/internal/feature/marketsnapshot/usecase"
	"eve_market/internal/platform/externalapi/esi"
	infrahttp "eve_market/internal/platform/http"
	"eve_market/internal/shared/ratelimiter"
)

// NewMarket creates a fully configured ESI market client with HTTP client.
func NewMarket(cfg esi.Config, limiter ratelimiter.Limiter) *esi.Market {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout, 0)
	return esi.NewMarket(cfg, httpClient, limiter)
}

// SnapshotOptions converts market configuration into snapshot usecase options.
func SnapshotOptions(cfg config.MarketConfig) usecase.Options {
	scope := entity.AllLocations()
	if cfg.ScopeToLocation {
		scope = entity.AtLocation(cfg.LocationID)
	}
	return usecase.Options{
		RegionID:     cfg.RegionID,
		DefaultScope: scope,
		WindowSize:   cfg.WindowSize,
	}
}

// NewSnapshotUsecase wires the ESI client into a snapshot usecase.
func NewSnapshotUsecase(cfg *config.AppConfig, limiter ratelimiter.Limiter) *usecase.SnapshotUsecase {
	return usecase.NewSnapshotUsecase(NewMarket(cfg.ESI, limiter), SnapshotOptions(cfg.Market))
}
