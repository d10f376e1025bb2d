package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"eve_market/internal/feature/marketsnapshot/domain"
	"eve_market/internal/feature/marketsnapshot/domain/entity"
)

// Options はスナップショット取得の既定値です。
type Options struct {
	RegionID     int64                // 対象リージョン (The Forge = 10000002)
	DefaultScope entity.LocationScope // Queryでスコープを指定しない場合に使うスコープ
	WindowSize   int                  // 0以下ならDefaultWindowSize
}

// Query は1回のスナップショット取得の条件です。
type Query struct {
	Name string
	// Scopeを使うかどうか。falseの場合はOptions.DefaultScopeを使います。
	OverrideScope bool
	Scope         entity.LocationScope
	// 0以下ならOptions.WindowSize
	WindowSize int
}

// SnapshotUsecase は名前解決・データ取得・集計をまとめてMarketSnapshotを組み立てます。
type SnapshotUsecase struct {
	source MarketSource
	opts   Options
}

// NewSnapshotUsecase は新しいSnapshotUsecaseを生成します。
func NewSnapshotUsecase(source MarketSource, opts Options) *SnapshotUsecase {
	if opts.WindowSize <= 0 {
		opts.WindowSize = DefaultWindowSize
	}
	return &SnapshotUsecase{source: source, opts: opts}
}

// ResolveItemID は表示名に完全一致するアイテムIDを返します。
// データソースが複数のIDを返した場合は先頭を採用します。
func (u *SnapshotUsecase) ResolveItemID(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: empty name", domain.ErrItemNotFound)
	}
	ids, err := u.source.SearchExact(ctx, name)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrItemNotFound, name)
	}
	return ids[0], nil
}

// Compose は既定の条件でnameのスナップショットを取得します。
func (u *SnapshotUsecase) Compose(ctx context.Context, name string) (entity.MarketSnapshot, error) {
	return u.ComposeQuery(ctx, Query{Name: name})
}

// ComposeQuery は名前解決を行ってからスナップショットを組み立てます。
// 名前解決に失敗した場合、注文や履歴の取得は行いません。
func (u *SnapshotUsecase) ComposeQuery(ctx context.Context, q Query) (entity.MarketSnapshot, error) {
	id, err := u.ResolveItemID(ctx, q.Name)
	if err != nil {
		return entity.MarketSnapshot{}, err
	}
	return u.ComposeByID(ctx, id, q)
}

// ComposeByID はメタデータ・注文・日足の3つを並行に取得し、全て揃ってから集計します。
//
// いずれかの取得が失敗した場合は共有コンテキストをキャンセルし、最初のエラーをそのまま返します。
// 部分的なスナップショットは返しません。
// 失敗後もWaitは全ての取得の終了を待つため、MarketSourceの各メソッドはctxのキャンセルに従う必要があります。
func (u *SnapshotUsecase) ComposeByID(ctx context.Context, id int64, q Query) (entity.MarketSnapshot, error) {
	scope := u.opts.DefaultScope
	if q.OverrideScope {
		scope = q.Scope
	}
	window := q.WindowSize
	if window <= 0 {
		window = u.opts.WindowSize
	}

	var (
		meta   entity.ItemMetadata
		orders []entity.Order
		bars   []entity.DailyBar
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := u.source.GetItemMetadata(gctx, id)
		if err != nil {
			return err
		}
		meta = m
		return nil
	})
	g.Go(func() error {
		list, err := u.source.ListActiveOrders(gctx, u.opts.RegionID, id)
		if err != nil {
			return err
		}
		orders = list
		return nil
	})
	g.Go(func() error {
		bs, err := u.source.ListDailyHistory(gctx, u.opts.RegionID, id)
		if err != nil {
			return err
		}
		bars = bs
		return nil
	})
	if err := g.Wait(); err != nil {
		return entity.MarketSnapshot{}, err
	}

	book, err := AggregateOrderBook(orders, scope)
	if err != nil {
		return entity.MarketSnapshot{}, err
	}
	hist := AggregateHistory(bars, window)

	item := entity.Item{ID: id, Name: meta.Name, Volume: meta.Volume}
	if item.Name == "" {
		item.Name = strings.TrimSpace(q.Name)
	}
	return entity.NewMarketSnapshot(item, u.opts.RegionID, scope, window, book, hist), nil
}
