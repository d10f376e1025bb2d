package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eve_market/internal/feature/marketsnapshot/domain"
	"eve_market/internal/feature/marketsnapshot/domain/entity"
	"eve_market/internal/feature/marketsnapshot/transport/handler"
	"eve_market/internal/feature/marketsnapshot/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const jita = int64(60003760)

// mockSnapshotUsecase はSnapshotUsecaseインターフェースのモック実装です。
type mockSnapshotUsecase struct {
	ComposeQueryFunc func(ctx context.Context, q usecase.Query) (entity.MarketSnapshot, error)
}

func (m *mockSnapshotUsecase) ComposeQuery(ctx context.Context, q usecase.Query) (entity.MarketSnapshot, error) {
	return m.ComposeQueryFunc(ctx, q)
}

func sampleSnapshot(scope entity.LocationScope) entity.MarketSnapshot {
	bars := []entity.DailyBar{
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Average: 4, Highest: 4.5, Lowest: 3.5, Volume: 10, OrderCount: 3},
		{Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Average: 6, Highest: 6.5, Lowest: 5.5, Volume: 10, OrderCount: 5},
	}
	return entity.NewMarketSnapshot(
		entity.Item{ID: 34, Name: "Tritanium", Volume: 0.01},
		10000002,
		scope,
		2,
		entity.OrderBookSummary{HighestBuy: 4.5, HasBuy: true, BuyOrderCount: 1, TotalBuyVolume: 100},
		entity.HistorySummary{AvgPrice: 5, HighestPrice: 6.5, LowestPrice: 3.5, AvgVolume: 10, TotalVolume: 20, DataPoints: 2, WindowBars: bars},
	)
}

// TestSnapshotHandler_GetSnapshot はGetSnapshotのHTTPリクエスト/レスポンス処理をテストします。
func TestSnapshotHandler_GetSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		mockCompose    func(ctx context.Context, q usecase.Query) (entity.MarketSnapshot, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: station scope with missing sell side",
			url:  "/snapshots/Tritanium?scope=location&window=2",
			mockCompose: func(ctx context.Context, q usecase.Query) (entity.MarketSnapshot, error) {
				assert.Equal(t, "Tritanium", q.Name)
				assert.True(t, q.OverrideScope)
				assert.Equal(t, entity.AtLocation(jita), q.Scope)
				assert.Equal(t, 2, q.WindowSize)
				return sampleSnapshot(q.Scope), nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"item": {"id": 34, "name": "Tritanium", "volume": 0.01},
				"regionId": 10000002,
				"locationId": 60003760,
				"orderBook": {
					"hasBuyOrders": true, "hasSellOrders": false,
					"highestBuy": 4.5, "lowestSell": null, "spread": null,
					"buyOrderCount": 1, "sellOrderCount": 0,
					"totalBuyVolume": 100, "totalSellVolume": 0
				},
				"history": {
					"windowSize": 2, "dataPoints": 2,
					"avgPrice": 5, "highestPrice": 6.5, "lowestPrice": 3.5,
					"avgVolume": 10, "totalVolume": 20,
					"bars": [
						{"date": "2025-01-01", "average": 4, "highest": 4.5, "lowest": 3.5, "volume": 10, "orderCount": 3},
						{"date": "2025-01-02", "average": 6, "highest": 6.5, "lowest": 5.5, "volume": 10, "orderCount": 5}
					]
				}
			}`,
		},
		{
			name: "success: no scope keeps the configured default",
			url:  "/snapshots/Tritanium",
			mockCompose: func(ctx context.Context, q usecase.Query) (entity.MarketSnapshot, error) {
				assert.False(t, q.OverrideScope)
				assert.Equal(t, 0, q.WindowSize)
				return sampleSnapshot(entity.AllLocations()), nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "success: explicit location id and url-encoded name",
			url:  "/snapshots/Large%20Skill%20Injector?scope=60008494",
			mockCompose: func(ctx context.Context, q usecase.Query) (entity.MarketSnapshot, error) {
				assert.Equal(t, "Large Skill Injector", q.Name)
				assert.Equal(t, entity.AtLocation(60008494), q.Scope)
				return sampleSnapshot(q.Scope), nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "success: scope=all overrides to region-wide",
			url:  "/snapshots/Tritanium?scope=all",
			mockCompose: func(ctx context.Context, q usecase.Query) (entity.MarketSnapshot, error) {
				assert.True(t, q.OverrideScope)
				assert.False(t, q.Scope.Set)
				return sampleSnapshot(q.Scope), nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error: invalid scope",
			url:            "/snapshots/Tritanium?scope=jita",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"scope must be all, location or a positive location id"}`,
		},
		{
			name:           "error: negative window",
			url:            "/snapshots/Tritanium?window=-1",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"window must be a non-negative integer"}`,
		},
		{
			name: "error: item not found",
			url:  "/snapshots/Nope",
			mockCompose: func(ctx context.Context, q usecase.Query) (entity.MarketSnapshot, error) {
				return entity.MarketSnapshot{}, domain.ErrItemNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"item not found"}`,
		},
		{
			name: "error: no active orders",
			url:  "/snapshots/Tritanium",
			mockCompose: func(ctx context.Context, q usecase.Query) (entity.MarketSnapshot, error) {
				return entity.MarketSnapshot{}, domain.ErrNoActiveOrders
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "error: source unavailable",
			url:  "/snapshots/Tritanium",
			mockCompose: func(ctx context.Context, q usecase.Query) (entity.MarketSnapshot, error) {
				return entity.MarketSnapshot{}, domain.NewSourceError("list orders", errors.New("esi http 503"))
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name: "error: source timeout",
			url:  "/snapshots/Tritanium",
			mockCompose: func(ctx context.Context, q usecase.Query) (entity.MarketSnapshot, error) {
				return entity.MarketSnapshot{}, domain.NewSourceError("list orders", context.DeadlineExceeded)
			},
			expectedStatus: http.StatusGatewayTimeout,
			expectedBody:   `{"error":"market data source unavailable: list orders: context deadline exceeded"}`,
		},
		{
			name: "error: unexpected error",
			url:  "/snapshots/Tritanium",
			mockCompose: func(ctx context.Context, q usecase.Query) (entity.MarketSnapshot, error) {
				return entity.MarketSnapshot{}, errors.New("boom")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockSnapshotUsecase{ComposeQueryFunc: tt.mockCompose}
			if tt.mockCompose == nil {
				mockUC.ComposeQueryFunc = func(ctx context.Context, q usecase.Query) (entity.MarketSnapshot, error) {
					t.Fatal("usecase must not be called")
					return entity.MarketSnapshot{}, nil
				}
			}

			h := handler.NewSnapshotHandler(mockUC, jita)
			router := gin.New()
			router.GET("/snapshots/:name", h.GetSnapshot)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
