// Package middleware はginの共通ミドルウェアを提供します。
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID はリクエストIDを受け渡すヘッダー名です。
	HeaderRequestID = "X-Request-ID"
	// ContextRequestID はgin.Contextに保存するキーです。
	ContextRequestID = "requestID"
)

// RequestID はリクエストごとにIDを付与するミドルウェアを返します。
// クライアントがX-Request-IDを送った場合はその値を引き継ぎます。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.New().String()
		}
		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// AccessLog はslogでアクセスログを出力するミドルウェアを返します。
func AccessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", c.GetString(ContextRequestID),
		}
		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request", attrs...)
		case c.Writer.Status() >= 400:
			logger.Warn("request", attrs...)
		default:
			logger.Info("request", attrs...)
		}
	}
}
