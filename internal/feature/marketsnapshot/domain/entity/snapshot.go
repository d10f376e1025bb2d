package entity

// MarketSnapshot is the immutable result of one market query.
// Construct it with NewMarketSnapshot; the zero value is an empty snapshot.
type MarketSnapshot struct {
	item       Item
	regionID   int64
	scope      LocationScope
	windowSize int
	orderBook  OrderBookSummary
	history    HistorySummary
}

// NewMarketSnapshot は集計結果をまとめたスナップショットを生成します。
// historyのWindowBarsはコピーして保持するため、呼び出し元が後から変更しても影響しません。
func NewMarketSnapshot(item Item, regionID int64, scope LocationScope, windowSize int, book OrderBookSummary, history HistorySummary) MarketSnapshot {
	history.WindowBars = copyBars(history.WindowBars)
	return MarketSnapshot{
		item:       item,
		regionID:   regionID,
		scope:      scope,
		windowSize: windowSize,
		orderBook:  book,
		history:    history,
	}
}

func (s MarketSnapshot) Item() Item                  { return s.item }
func (s MarketSnapshot) RegionID() int64             { return s.regionID }
func (s MarketSnapshot) Scope() LocationScope        { return s.scope }
func (s MarketSnapshot) WindowSize() int             { return s.windowSize }
func (s MarketSnapshot) OrderBook() OrderBookSummary { return s.orderBook }

// History returns the history summary. Its WindowBars slice is a copy.
func (s MarketSnapshot) History() HistorySummary {
	h := s.history
	h.WindowBars = copyBars(h.WindowBars)
	return h
}

// WindowBars returns a copy of the bars used for the rolling-window statistics.
func (s MarketSnapshot) WindowBars() []DailyBar {
	return copyBars(s.history.WindowBars)
}

func copyBars(in []DailyBar) []DailyBar {
	if in == nil {
		return nil
	}
	out := make([]DailyBar, len(in))
	copy(out, in)
	return out
}
