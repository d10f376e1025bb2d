// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// CheckFunc は依存先の疎通を確認する関数です。
type CheckFunc func(ctx context.Context) error

// HealthHandler は /healthz エンドポイントを処理します。
type HealthHandler struct {
	checks  map[string]CheckFunc
	timeout time.Duration
}

// NewHealthHandler は依存先チェックを持つHealthHandlerを生成します。checksはnilでも構いません。
func NewHealthHandler(checks map[string]CheckFunc, timeout time.Duration) *HealthHandler {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthHandler{checks: checks, timeout: timeout}
}

// Health はHTTPメソッドに応じてレスポンスし、キャッシュを防止します。
// いずれかの依存先チェックが失敗した場合は503を返します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}

	status, results := h.run(c.Request.Context())
	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}

	if c.Request.Method == http.MethodHead {
		c.Status(code)
		return
	}
	body := gin.H{"status": status}
	if len(results) > 0 {
		body["checks"] = results
	}
	c.JSON(code, body)
}

func (h *HealthHandler) run(ctx context.Context) (string, map[string]string) {
	if len(h.checks) == 0 {
		return "ok", nil
	}
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := "ok"
	results := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			results[name] = err.Error()
			status = "degraded"
			continue
		}
		results[name] = "ok"
	}
	return status, results
}
