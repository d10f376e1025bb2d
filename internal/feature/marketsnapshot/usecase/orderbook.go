package usecase

import (
	"eve_market/internal/feature/marketsnapshot/domain"
	"eve_market/internal/feature/marketsnapshot/domain/entity"
)

// AggregateOrderBook は注文一覧から最良気配と板の厚みを集計します。
//
// scopeが設定されている場合はそのロケーションの注文のみを対象にします。
// 買い・売りの両方が空の場合のみdomain.ErrNoActiveOrdersを返し、
// 片側だけ空の場合はHasBuy/HasSellをfalseにして正常に返します。
// 同値の最良価格が複数あっても価格のみを報告するため、どの注文を採用しても結果は同じです。
func AggregateOrderBook(orders []entity.Order, scope entity.LocationScope) (entity.OrderBookSummary, error) {
	var s entity.OrderBookSummary
	for _, o := range orders {
		if !scope.Includes(o.LocationID) {
			continue
		}
		if o.IsBuy {
			if !s.HasBuy || o.Price > s.HighestBuy {
				s.HighestBuy = o.Price
				s.HasBuy = true
			}
			s.BuyOrderCount++
			s.TotalBuyVolume += o.RemainingVolume
			continue
		}
		if !s.HasSell || o.Price < s.LowestSell {
			s.LowestSell = o.Price
			s.HasSell = true
		}
		s.SellOrderCount++
		s.TotalSellVolume += o.RemainingVolume
	}

	if !s.HasBuy && !s.HasSell {
		return entity.OrderBookSummary{}, domain.ErrNoActiveOrders
	}
	return s, nil
}
