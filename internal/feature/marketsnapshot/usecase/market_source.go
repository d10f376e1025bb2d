// Package usecase はマーケットスナップショットの集計ロジックを実装します。
package usecase

import (
	"context"

	"eve_market/internal/feature/marketsnapshot/domain/entity"
)

// MarketSource は外部のマーケットデータAPIを抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketSource interface {
	// SearchExact は表示名に完全一致するアイテムIDをデータソースの順序で返します。
	SearchExact(ctx context.Context, name string) ([]int64, error)
	GetItemMetadata(ctx context.Context, id int64) (entity.ItemMetadata, error)
	ListActiveOrders(ctx context.Context, regionID, id int64) ([]entity.Order, error)
	// ListDailyHistory は日足を古い順に返します。
	ListDailyHistory(ctx context.Context, regionID, id int64) ([]entity.DailyBar, error)
}
