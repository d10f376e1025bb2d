// Package dto はmarketsnapshotフィーチャーのHTTPリクエスト/レスポンスDTOを定義します。
package dto

// ErrorResponse はエラーレスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// ItemResponse はアイテム情報です。
type ItemResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Volume float64 `json:"volume"` // m3
}

// OrderBookResponse は板の集計です。注文がない側の価格はnullになります。
type OrderBookResponse struct {
	HasBuyOrders    bool     `json:"hasBuyOrders"`
	HasSellOrders   bool     `json:"hasSellOrders"`
	HighestBuy      *float64 `json:"highestBuy"`
	LowestSell      *float64 `json:"lowestSell"`
	Spread          *float64 `json:"spread"`
	BuyOrderCount   int      `json:"buyOrderCount"`
	SellOrderCount  int      `json:"sellOrderCount"`
	TotalBuyVolume  int64    `json:"totalBuyVolume"`
	TotalSellVolume int64    `json:"totalSellVolume"`
}

// DailyBarResponse は日足1本分です。
type DailyBarResponse struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	Average    float64 `json:"average"`
	Highest    float64 `json:"highest"`
	Lowest     float64 `json:"lowest"`
	Volume     int64   `json:"volume"`
	OrderCount int64   `json:"orderCount"`
}

// HistoryResponse は直近ウィンドウの統計です。
type HistoryResponse struct {
	WindowSize   int                `json:"windowSize"`
	DataPoints   int                `json:"dataPoints"`
	AvgPrice     float64            `json:"avgPrice"`
	HighestPrice float64            `json:"highestPrice"`
	LowestPrice  float64            `json:"lowestPrice"`
	AvgVolume    float64            `json:"avgVolume"`
	TotalVolume  int64              `json:"totalVolume"`
	Bars         []DailyBarResponse `json:"bars"`
}

// SnapshotResponse はGET /snapshots/:name のレスポンスです。
type SnapshotResponse struct {
	Item       ItemResponse      `json:"item"`
	RegionID   int64             `json:"regionId"`
	LocationID *int64            `json:"locationId"` // nullはリージョン全体
	OrderBook  OrderBookResponse `json:"orderBook"`
	History    HistoryResponse   `json:"history"`
}

// TrackRequest はPOST /items のリクエストです。
type TrackRequest struct {
	Name string `json:"name" binding:"required"`
}

// TrackedItemResponse は記録対象アイテムです。
type TrackedItemResponse struct {
	TypeID   int64  `json:"typeId"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	SortKey  int    `json:"sortKey"`
}

// RecordResponse は日次スナップショットレコードです。
type RecordResponse struct {
	Date           string   `json:"date"`
	RegionID       int64    `json:"regionId"`
	LocationID     int64    `json:"locationId"`
	HighestBuy     *float64 `json:"highestBuy"`
	LowestSell     *float64 `json:"lowestSell"`
	BuyOrderCount  int      `json:"buyOrderCount"`
	SellOrderCount int      `json:"sellOrderCount"`
	AvgPrice       float64  `json:"avgPrice"`
	AvgVolume      float64  `json:"avgVolume"`
	DataPoints     int      `json:"dataPoints"`
	CapturedAt     string   `json:"capturedAt"` // RFC3339
}
