package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"eve_market/internal/feature/marketsnapshot/domain/entity"
	"eve_market/internal/feature/marketsnapshot/transport/http/dto"

	"github.com/gin-gonic/gin"
)

// TrackingUsecase は記録対象アイテムのユースケースインターフェースです。
type TrackingUsecase interface {
	ListTracked(ctx context.Context) ([]entity.TrackedItem, error)
	Track(ctx context.Context, name string) (entity.TrackedItem, error)
}

// RecordLister は日次レコード参照のユースケースインターフェースです。
type RecordLister interface {
	ListRecords(ctx context.Context, typeID int64, limit int) ([]entity.SnapshotRecord, error)
}

// ItemsHandler は記録対象アイテムと日次レコードのHTTPリクエストを処理します。
type ItemsHandler struct {
	tracking TrackingUsecase
	records  RecordLister
}

// NewItemsHandler は新しいItemsHandlerを生成します。
func NewItemsHandler(tracking TrackingUsecase, records RecordLister) *ItemsHandler {
	return &ItemsHandler{tracking: tracking, records: records}
}

// ListItems はアクティブな記録対象を返します。
//
// GET /items
func (h *ItemsHandler) ListItems(c *gin.Context) {
	items, err := h.tracking.ListTracked(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]dto.TrackedItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.TrackedItemResponse{TypeID: it.TypeID, Name: it.Name, IsActive: it.IsActive, SortKey: it.SortKey})
	}
	c.JSON(http.StatusOK, out)
}

// TrackItem は名前を解決して記録対象に追加します。
//
// POST /items {"name": "Tritanium"}
func (h *ItemsHandler) TrackItem(c *gin.Context) {
	var req dto.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil || isBlank(req.Name) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "name is required"})
		return
	}

	it, err := h.tracking.Track(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.TrackedItemResponse{TypeID: it.TypeID, Name: it.Name, IsActive: it.IsActive, SortKey: it.SortKey})
}

// ListRecords はアイテムIDの日次レコードを新しい順に返します。
//
// GET /items/:id/records?limit=30
func (h *ItemsHandler) ListRecords(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "id must be a positive integer"})
		return
	}
	// 不正なlimitは0として渡し、usecase側でデフォルト値に変換する
	limit, _ := strconv.Atoi(c.Query("limit"))

	records, err := h.records.ListRecords(c.Request.Context(), id, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]dto.RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.RecordResponse{
			Date:           r.Date.UTC().Format("2006-01-02"),
			RegionID:       r.RegionID,
			LocationID:     r.LocationID,
			HighestBuy:     r.HighestBuy,
			LowestSell:     r.LowestSell,
			BuyOrderCount:  r.BuyOrderCount,
			SellOrderCount: r.SellOrderCount,
			AvgPrice:       r.AvgPrice,
			AvgVolume:      r.AvgVolume,
			DataPoints:     r.DataPoints,
			CapturedAt:     r.CapturedAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, out)
}
