package entity

import "time"

// SnapshotRecord はスナップショットを日次で永続化するためのダイジェストです。
// 最良気配はポインタで保持し、nilは「その側に注文なし」を意味します。
type SnapshotRecord struct {
	TypeID          int64
	Name            string
	RegionID        int64
	LocationID      int64 // 0はリージョン全体
	Date            time.Time
	HighestBuy      *float64
	LowestSell      *float64
	BuyOrderCount   int
	SellOrderCount  int
	TotalBuyVolume  int64
	TotalSellVolume int64
	AvgPrice        float64
	HighestPrice    float64
	LowestPrice     float64
	AvgVolume       float64
	TotalVolume     int64
	DataPoints      int
	CapturedAt      time.Time
}

// NewSnapshotRecord はスナップショットからcapturedAtの日付（UTC）のレコードを作ります。
func NewSnapshotRecord(s MarketSnapshot, capturedAt time.Time) SnapshotRecord {
	book := s.OrderBook()
	hist := s.history
	r := SnapshotRecord{
		TypeID:          s.item.ID,
		Name:            s.item.Name,
		RegionID:        s.regionID,
		Date:            truncateDay(capturedAt),
		BuyOrderCount:   book.BuyOrderCount,
		SellOrderCount:  book.SellOrderCount,
		TotalBuyVolume:  book.TotalBuyVolume,
		TotalSellVolume: book.TotalSellVolume,
		AvgPrice:        hist.AvgPrice,
		HighestPrice:    hist.HighestPrice,
		LowestPrice:     hist.LowestPrice,
		AvgVolume:       hist.AvgVolume,
		TotalVolume:     hist.TotalVolume,
		DataPoints:      hist.DataPoints,
		CapturedAt:      capturedAt.UTC(),
	}
	if s.scope.Set {
		r.LocationID = s.scope.ID
	}
	if v, ok := book.BestBid(); ok {
		r.HighestBuy = &v
	}
	if v, ok := book.BestAsk(); ok {
		r.LowestSell = &v
	}
	return r
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
