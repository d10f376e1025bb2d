package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderBookSummary_BestPrices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		summary    OrderBookSummary
		wantBid    float64
		wantHasBid bool
		wantAsk    float64
		wantHasAsk bool
		wantSpread float64
		wantHasSpr bool
	}{
		{
			name:       "both sides present",
			summary:    OrderBookSummary{HighestBuy: 5, HasBuy: true, LowestSell: 7, HasSell: true},
			wantBid:    5,
			wantHasBid: true,
			wantAsk:    7,
			wantHasAsk: true,
			wantSpread: 2,
			wantHasSpr: true,
		},
		{
			name:       "zero price buy is still present",
			summary:    OrderBookSummary{HighestBuy: 0, HasBuy: true},
			wantBid:    0,
			wantHasBid: true,
		},
		{
			name:    "empty summary",
			summary: OrderBookSummary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bid, ok := tt.summary.BestBid()
			assert.Equal(t, tt.wantBid, bid)
			assert.Equal(t, tt.wantHasBid, ok)

			ask, ok := tt.summary.BestAsk()
			assert.Equal(t, tt.wantAsk, ask)
			assert.Equal(t, tt.wantHasAsk, ok)

			spread, ok := tt.summary.Spread()
			assert.Equal(t, tt.wantSpread, spread)
			assert.Equal(t, tt.wantHasSpr, ok)
		})
	}
}

func TestLocationScope_Includes(t *testing.T) {
	t.Parallel()

	assert.True(t, AllLocations().Includes(1))
	assert.True(t, LocationScope{}.Includes(42))
	assert.True(t, AtLocation(60003760).Includes(60003760))
	assert.False(t, AtLocation(60003760).Includes(60008494))
}
