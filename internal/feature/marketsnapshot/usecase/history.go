package usecase

import "eve_market/internal/feature/marketsnapshot/domain/entity"

// DefaultWindowSize はトレンド統計に使う日足の本数のデフォルトです。
const DefaultWindowSize = 30

// AggregateHistory は直近windowSize本の日足から価格・出来高の統計を計算します。
//
// windowSizeが0以下の場合はDefaultWindowSizeを使います。
// 日足がwindowSize本に満たない場合は全件を使い、平均の分母は実際の本数です。
// 入力が空でもエラーにはならず、全ての値が0のサマリーを返します。
func AggregateHistory(bars []entity.DailyBar, windowSize int) entity.HistorySummary {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	start := 0
	if len(bars) > windowSize {
		start = len(bars) - windowSize
	}
	window := make([]entity.DailyBar, len(bars)-start)
	copy(window, bars[start:])

	if len(window) == 0 {
		return entity.HistorySummary{WindowBars: window}
	}

	s := entity.HistorySummary{
		HighestPrice: window[0].Highest,
		LowestPrice:  window[0].Lowest,
		DataPoints:   len(window),
		WindowBars:   window,
	}
	var priceSum float64
	for _, b := range window {
		priceSum += b.Average
		s.TotalVolume += b.Volume
		if b.Highest > s.HighestPrice {
			s.HighestPrice = b.Highest
		}
		if b.Lowest < s.LowestPrice {
			s.LowestPrice = b.Lowest
		}
	}
	n := float64(len(window))
	s.AvgPrice = priceSum / n
	s.AvgVolume = float64(s.TotalVolume) / n
	return s
}
