package adapters

import (
	"context"

	"eve_market/internal/feature/marketsnapshot/domain/entity"
	"eve_market/internal/feature/marketsnapshot/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// trackedItemGorm はTrackedItemRepositoryインターフェースのgorm実装です。
type trackedItemGorm struct {
	db *gorm.DB
}

var _ usecase.TrackedItemRepository = (*trackedItemGorm)(nil)

// NewTrackedItemRepository は指定されたDB接続でリポジトリを生成します。
func NewTrackedItemRepository(db *gorm.DB) *trackedItemGorm {
	return &trackedItemGorm{db: db}
}

// ListActive はsort_key順にすべてのアクティブな記録対象を返します。
func (r *trackedItemGorm) ListActive(ctx context.Context) ([]entity.TrackedItem, error) {
	var items []entity.TrackedItem
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Order("type_id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert はtype_idが既存なら名前と有効フラグを更新し、なければ追加します。
func (r *trackedItemGorm) Upsert(ctx context.Context, item entity.TrackedItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "type_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "is_active", "updated_at"}),
	}).Create(&item).Error
}
