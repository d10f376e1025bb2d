// Package adapters はmarketsnapshotフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"eve_market/internal/feature/marketsnapshot/domain/entity"
	"eve_market/internal/feature/marketsnapshot/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type recordGorm struct {
	db *gorm.DB
}

var _ usecase.RecordRepository = (*recordGorm)(nil)

// NewRecordRepository は日次スナップショットレコードのリポジトリを生成します。
func NewRecordRepository(db *gorm.DB) *recordGorm {
	return &recordGorm{db: db}
}

// SnapshotRecordModel は(type_id, region_id, location_id, date)で一意な日次レコードです。
type SnapshotRecordModel struct {
	ID         uint      `gorm:"primaryKey"`
	TypeID     int64     `gorm:"not null;uniqueIndex:record_type_region_loc_date,priority:1"`
	RegionID   int64     `gorm:"not null;uniqueIndex:record_type_region_loc_date,priority:2"`
	LocationID int64     `gorm:"not null;default:0;uniqueIndex:record_type_region_loc_date,priority:3"`
	Date       time.Time `gorm:"not null;uniqueIndex:record_type_region_loc_date,priority:4"`
	Name       string    `gorm:"size:255;not null"`

	HighestBuy      *float64
	LowestSell      *float64
	BuyOrderCount   int       `gorm:"not null;default:0"`
	SellOrderCount  int       `gorm:"not null;default:0"`
	TotalBuyVolume  int64     `gorm:"not null;default:0"`
	TotalSellVolume int64     `gorm:"not null;default:0"`
	AvgPrice        float64   `gorm:"not null;default:0"`
	HighestPrice    float64   `gorm:"not null;default:0"`
	LowestPrice     float64   `gorm:"not null;default:0"`
	AvgVolume       float64   `gorm:"not null;default:0"`
	TotalVolume     int64     `gorm:"not null;default:0"`
	DataPoints      int       `gorm:"not null;default:0"`
	CapturedAt      time.Time `gorm:"not null"`
}

func (SnapshotRecordModel) TableName() string {
	return "snapshot_records"
}

func toRecordModel(e entity.SnapshotRecord) SnapshotRecordModel {
	return SnapshotRecordModel{
		TypeID:          e.TypeID,
		RegionID:        e.RegionID,
		LocationID:      e.LocationID,
		Date:            e.Date,
		Name:            e.Name,
		HighestBuy:      e.HighestBuy,
		LowestSell:      e.LowestSell,
		BuyOrderCount:   e.BuyOrderCount,
		SellOrderCount:  e.SellOrderCount,
		TotalBuyVolume:  e.TotalBuyVolume,
		TotalSellVolume: e.TotalSellVolume,
		AvgPrice:        e.AvgPrice,
		HighestPrice:    e.HighestPrice,
		LowestPrice:     e.LowestPrice,
		AvgVolume:       e.AvgVolume,
		TotalVolume:     e.TotalVolume,
		DataPoints:      e.DataPoints,
		CapturedAt:      e.CapturedAt,
	}
}

func (m SnapshotRecordModel) toEntity() entity.SnapshotRecord {
	return entity.SnapshotRecord{
		TypeID:          m.TypeID,
		Name:            m.Name,
		RegionID:        m.RegionID,
		LocationID:      m.LocationID,
		Date:            m.Date.UTC(),
		HighestBuy:      m.HighestBuy,
		LowestSell:      m.LowestSell,
		BuyOrderCount:   m.BuyOrderCount,
		SellOrderCount:  m.SellOrderCount,
		TotalBuyVolume:  m.TotalBuyVolume,
		TotalSellVolume: m.TotalSellVolume,
		AvgPrice:        m.AvgPrice,
		HighestPrice:    m.HighestPrice,
		LowestPrice:     m.LowestPrice,
		AvgVolume:       m.AvgVolume,
		TotalVolume:     m.TotalVolume,
		DataPoints:      m.DataPoints,
		CapturedAt:      m.CapturedAt.UTC(),
	}
}

// UpsertBatch は同じ日付・場所のレコードを最新の値で上書きします。
func (r *recordGorm) UpsertBatch(ctx context.Context, records []entity.SnapshotRecord) error {
	if len(records) == 0 {
		return nil
	}
	ms := make([]SnapshotRecordModel, 0, len(records))
	for _, e := range records {
		ms = append(ms, toRecordModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "type_id"}, {Name: "region_id"}, {Name: "location_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "highest_buy", "lowest_sell",
			"buy_order_count", "sell_order_count", "total_buy_volume", "total_sell_volume",
			"avg_price", "highest_price", "lowest_price", "avg_volume", "total_volume",
			"data_points", "captured_at",
		}),
	}).Create(&ms).Error
}

// Find はtypeIDのレコードを新しい日付順にlimit件まで返します。limitが0以下なら全件です。
func (r *recordGorm) Find(ctx context.Context, typeID int64, limit int) ([]entity.SnapshotRecord, error) {
	var rows []SnapshotRecordModel
	q := r.db.WithContext(ctx).
		Where("type_id = ?", typeID).
		Order("date DESC").
		Order("location_id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.SnapshotRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}
