package usecase

import (
	"context"
	"log/slog"
	"time"

	"eve_market/internal/feature/marketsnapshot/domain/entity"
)

const (
	// DefaultRecordLimit はレコード一覧のデフォルト返却件数です。
	DefaultRecordLimit = 30
	// MaxRecordLimit はレコード一覧の最大返却件数です。
	MaxRecordLimit = 365
)

// RecordRepository はスナップショットレコードの永続化レイヤーを抽象化します。
type RecordRepository interface {
	UpsertBatch(ctx context.Context, records []entity.SnapshotRecord) error
	// Find は新しい日付順にlimit件まで返します。
	Find(ctx context.Context, typeID int64, limit int) ([]entity.SnapshotRecord, error)
}

// SnapshotComposer builds a snapshot for an already resolved item id.
type SnapshotComposer interface {
	ComposeByID(ctx context.Context, id int64, q Query) (entity.MarketSnapshot, error)
}

// RecordUsecase は記録対象アイテムのスナップショットを取得し、日次レコードとして保存します。
type RecordUsecase struct {
	tracked  TrackedItemRepository
	records  RecordRepository
	composer SnapshotComposer
	now      func() time.Time
}

// NewRecordUsecase は新しいRecordUsecaseを生成します。
func NewRecordUsecase(tracked TrackedItemRepository, records RecordRepository, composer SnapshotComposer) *RecordUsecase {
	return &RecordUsecase{tracked: tracked, records: records, composer: composer, now: time.Now}
}

// RecordAll は全てのアクティブな記録対象のスナップショットを取得して保存し、保存件数を返します。
// 1つのアイテムで取得に失敗しても処理を止めずにログに出力し、次のアイテムへ進みます。
func (u *RecordUsecase) RecordAll(ctx context.Context) (int, error) {
	items, err := u.tracked.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	records := make([]entity.SnapshotRecord, 0, len(items))
	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		snap, err := u.composer.ComposeByID(ctx, it.TypeID, Query{Name: it.Name})
		if err != nil {
			slog.Error("failed to compose snapshot", "type_id", it.TypeID, "name", it.Name, "error", err)
			continue
		}
		records = append(records, entity.NewSnapshotRecord(snap, u.now()))
	}

	if err := u.records.UpsertBatch(ctx, records); err != nil {
		return 0, err
	}
	slog.Info("snapshot records saved", "tracked", len(items), "saved", len(records))
	return len(records), nil
}

// ListRecords はtypeIDの記録を新しい順に返します。limitが範囲外の場合はデフォルト値を使います。
func (u *RecordUsecase) ListRecords(ctx context.Context, typeID int64, limit int) ([]entity.SnapshotRecord, error) {
	if limit <= 0 || limit > MaxRecordLimit {
		limit = DefaultRecordLimit
	}
	return u.records.Find(ctx, typeID, limit)
}
