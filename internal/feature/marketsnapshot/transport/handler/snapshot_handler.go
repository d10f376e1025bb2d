// Package handler はmarketsnapshotフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"eve_market/internal/feature/marketsnapshot/domain"
	"eve_market/internal/feature/marketsnapshot/domain/entity"
	"eve_market/internal/feature/marketsnapshot/transport/http/dto"
	"eve_market/internal/feature/marketsnapshot/usecase"

	"github.com/gin-gonic/gin"
)

// SnapshotUsecase はスナップショット生成のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SnapshotUsecase interface {
	ComposeQuery(ctx context.Context, q usecase.Query) (entity.MarketSnapshot, error)
}

// SnapshotHandler はスナップショットのHTTPリクエストを処理します。
type SnapshotHandler struct {
	uc         SnapshotUsecase
	locationID int64 // scope=location で使う拠点ID
}

// NewSnapshotHandler は新しいSnapshotHandlerを生成します。
func NewSnapshotHandler(uc SnapshotUsecase, locationID int64) *SnapshotHandler {
	return &SnapshotHandler{uc: uc, locationID: locationID}
}

// GetSnapshot はアイテム名からマーケットスナップショットを生成してJSONで返します。
//
// エンドポイント例:
// GET /snapshots/Tritanium?scope=location&window=30
func (h *SnapshotHandler) GetSnapshot(c *gin.Context) {
	q, err := h.parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	snap, err := h.uc.ComposeQuery(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSnapshotResponse(snap))
}

func (h *SnapshotHandler) parseQuery(c *gin.Context) (usecase.Query, error) {
	q := usecase.Query{Name: c.Param("name")}

	switch scope := c.Query("scope"); scope {
	case "":
	case "all":
		q.OverrideScope, q.Scope = true, entity.AllLocations()
	case "location":
		q.OverrideScope, q.Scope = true, entity.AtLocation(h.locationID)
	default:
		id, err := strconv.ParseInt(scope, 10, 64)
		if err != nil || id <= 0 {
			return usecase.Query{}, errors.New("scope must be all, location or a positive location id")
		}
		q.OverrideScope, q.Scope = true, entity.AtLocation(id)
	}

	if w := c.Query("window"); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil || n < 0 {
			return usecase.Query{}, errors.New("window must be a non-negative integer")
		}
		q.WindowSize = n
	}
	return q, nil
}

// writeError はドメインエラーをHTTPステータスに変換して書き込みます。
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrItemNotFound), errors.Is(err, domain.ErrNoActiveOrders):
		status = http.StatusNotFound
	// SourceErrorはErrSourceUnavailableにも一致するため、タイムアウトを先に判定する
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrSourceUnavailable):
		status = http.StatusBadGateway
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

func toSnapshotResponse(s entity.MarketSnapshot) dto.SnapshotResponse {
	item := s.Item()
	book := s.OrderBook()
	hist := s.History()

	out := dto.SnapshotResponse{
		Item:     dto.ItemResponse{ID: item.ID, Name: item.Name, Volume: item.Volume},
		RegionID: s.RegionID(),
		OrderBook: dto.OrderBookResponse{
			HasBuyOrders:    book.HasBuy,
			HasSellOrders:   book.HasSell,
			BuyOrderCount:   book.BuyOrderCount,
			SellOrderCount:  book.SellOrderCount,
			TotalBuyVolume:  book.TotalBuyVolume,
			TotalSellVolume: book.TotalSellVolume,
		},
		History: dto.HistoryResponse{
			WindowSize:   s.WindowSize(),
			DataPoints:   hist.DataPoints,
			AvgPrice:     hist.AvgPrice,
			HighestPrice: hist.HighestPrice,
			LowestPrice:  hist.LowestPrice,
			AvgVolume:    hist.AvgVolume,
			TotalVolume:  hist.TotalVolume,
			Bars:         make([]dto.DailyBarResponse, 0, len(hist.WindowBars)),
		},
	}
	if scope := s.Scope(); scope.Set {
		id := scope.ID
		out.LocationID = &id
	}
	if v, ok := book.BestBid(); ok {
		out.OrderBook.HighestBuy = &v
	}
	if v, ok := book.BestAsk(); ok {
		out.OrderBook.LowestSell = &v
	}
	if v, ok := book.Spread(); ok {
		out.OrderBook.Spread = &v
	}
	for _, b := range hist.WindowBars {
		out.History.Bars = append(out.History.Bars, dto.DailyBarResponse{
			Date:       b.Date.UTC().Format("2006-01-02"),
			Average:    b.Average,
			Highest:    b.Highest,
			Lowest:     b.Lowest,
			Volume:     b.Volume,
			OrderCount: b.OrderCount,
		})
	}
	return out
}

// isBlank は空白のみの文字列かどうかを返します。
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
