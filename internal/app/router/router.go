// Package router はHTTPルーティングを組み立てます。
package router

import (
	"log/slog"

	snapshothandler "eve_market/internal/feature/marketsnapshot/transport/handler"
	"eve_market/internal/platform/http/handler"
	"eve_market/internal/platform/http/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter はミドルウェアとハンドラーを登録したgin.Engineを返します。
func NewRouter(logger *slog.Logger, health *handler.HealthHandler,
	snapshots *snapshothandler.SnapshotHandler, items *snapshothandler.ItemsHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(logger))

	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	r.OPTIONS("/healthz", health.Health)

	// マーケットスナップショット
	r.GET("/snapshots/:name", snapshots.GetSnapshot)

	// 記録対象と日次レコード
	r.GET("/items", items.ListItems)
	r.POST("/items", items.TrackItem)
	r.GET("/items/:id/records", items.ListRecords)

	return r
}
