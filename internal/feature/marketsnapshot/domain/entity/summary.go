package entity

// OrderBookSummary はオーダーブックから導出した統計値です。
//
// 片側に注文が無い場合、価格フィールドは0のままHasBuy/HasSellがfalseになります。
// 0 ISKの実在する注文と「注文なし」を区別するため、価格は必ずフラグと組で参照してください。
type OrderBookSummary struct {
	HighestBuy      float64
	HasBuy          bool
	LowestSell      float64
	HasSell         bool
	BuyOrderCount   int
	SellOrderCount  int
	TotalBuyVolume  int64
	TotalSellVolume int64
}

// BestBid は最高買い注文価格と、その値が存在するかを返します。
func (s OrderBookSummary) BestBid() (float64, bool) {
	return s.HighestBuy, s.HasBuy
}

// BestAsk は最低売り注文価格と、その値が存在するかを返します。
func (s OrderBookSummary) BestAsk() (float64, bool) {
	return s.LowestSell, s.HasSell
}

// Spread returns LowestSell - HighestBuy when both sides have orders.
func (s OrderBookSummary) Spread() (float64, bool) {
	if !s.HasBuy || !s.HasSell {
		return 0, false
	}
	return s.LowestSell - s.HighestBuy, true
}

// HistorySummary は直近N日分の日足から導出した統計値です。
// DataPointsは常にlen(WindowBars)と等しく、0件の場合は全ての数値が0です。
type HistorySummary struct {
	AvgPrice     float64
	HighestPrice float64
	LowestPrice  float64
	AvgVolume    float64
	TotalVolume  int64
	DataPoints   int
	WindowBars   []DailyBar
}
