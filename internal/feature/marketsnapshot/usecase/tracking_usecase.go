package usecase

import (
	"context"
	"strings"

	"eve_market/internal/feature/marketsnapshot/domain/entity"
)

// TrackedItemRepository は記録対象アイテムの永続化レイヤーを抽象化します。
type TrackedItemRepository interface {
	ListActive(ctx context.Context) ([]entity.TrackedItem, error)
	Upsert(ctx context.Context, item entity.TrackedItem) error
}

// ItemResolver resolves a display name to an item id.
type ItemResolver interface {
	ResolveItemID(ctx context.Context, name string) (int64, error)
}

// TrackingUsecase は記録対象アイテムの一覧と登録を扱います。
type TrackingUsecase struct {
	repo     TrackedItemRepository
	resolver ItemResolver
}

// NewTrackingUsecase は新しいTrackingUsecaseを生成します。
func NewTrackingUsecase(repo TrackedItemRepository, resolver ItemResolver) *TrackingUsecase {
	return &TrackingUsecase{repo: repo, resolver: resolver}
}

// ListTracked はsort_key順のアクティブな記録対象を返します。
func (u *TrackingUsecase) ListTracked(ctx context.Context) ([]entity.TrackedItem, error) {
	return u.repo.ListActive(ctx)
}

// Track は名前を解決して記録対象に登録します。登録済みのIDであれば名前を更新します。
func (u *TrackingUsecase) Track(ctx context.Context, name string) (entity.TrackedItem, error) {
	id, err := u.resolver.ResolveItemID(ctx, name)
	if err != nil {
		return entity.TrackedItem{}, err
	}
	item := entity.TrackedItem{TypeID: id, Name: strings.TrimSpace(name), IsActive: true}
	if err := u.repo.Upsert(ctx, item); err != nil {
		return entity.TrackedItem{}, err
	}
	return item, nil
}
