package esi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"eve_market/internal/feature/marketsnapshot/domain"
	"eve_market/internal/feature/marketsnapshot/domain/entity"
	"eve_market/internal/feature/marketsnapshot/usecase"
	"eve_market/internal/platform/externalapi/esi/dto"
)

const (
	// errorLimitWarnThreshold を下回るとESIのエラーリミット残量を警告ログに出します。
	errorLimitWarnThreshold = 10
	// pageConcurrency は2ページ目以降を同時に取得する最大数です。
	pageConcurrency = 4
)

// Limiter は外部API呼び出しの頻度を制限します。
type Limiter interface {
	Wait(ctx context.Context) error
}

// Market はESIからマーケットデータを取得するMarketSource実装です。
type Market struct {
	cfg     Config
	client  *http.Client
	limiter Limiter
}

// MarketがMarketSourceを実装していることをコンパイル時に検証します。
var _ usecase.MarketSource = (*Market)(nil)

// NewMarket は指定された設定とHTTPクライアントでMarketを生成します。limiterはnilでも構いません。
func NewMarket(cfg Config, client *http.Client, limiter Limiter) *Market {
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 50
	}
	return &Market{cfg: cfg, client: client, limiter: limiter}
}

// SearchExact は名前に完全一致するtype_idを返します。
func (m *Market) SearchExact(ctx context.Context, name string) ([]int64, error) {
	body, err := json.Marshal([]string{name})
	if err != nil {
		return nil, domain.NewSourceError("search item", err)
	}

	var res dto.IDsResponse
	if _, err := m.do(ctx, http.MethodPost, "/universe/ids/", nil, body, &res); err != nil {
		return nil, domain.NewSourceError("search item", err)
	}

	ids := make([]int64, 0, len(res.InventoryTypes))
	for _, t := range res.InventoryTypes {
		ids = append(ids, t.ID)
	}
	return ids, nil
}

// GetItemMetadata はアイテムの名前と体積を取得します。
func (m *Market) GetItemMetadata(ctx context.Context, id int64) (entity.ItemMetadata, error) {
	var res dto.TypeResponse
	path := fmt.Sprintf("/universe/types/%d/", id)
	if _, err := m.do(ctx, http.MethodGet, path, nil, nil, &res); err != nil {
		return entity.ItemMetadata{}, domain.NewSourceError("get item metadata", err)
	}
	return entity.ItemMetadata{
		Name:           res.Name,
		Volume:         res.Volume,
		PackagedVolume: res.PackagedVolume,
	}, nil
}

// ListActiveOrders はリージョン内の買い・売り両方の注文を全ページ分取得します。
// 1ページ目のX-Pagesヘッダーで総ページ数を知り、残りのページは並行に取得します。
func (m *Market) ListActiveOrders(ctx context.Context, regionID, id int64) ([]entity.Order, error) {
	path := fmt.Sprintf("/markets/%d/orders/", regionID)
	query := func(page int) url.Values {
		q := url.Values{}
		q.Set("type_id", strconv.FormatInt(id, 10))
		q.Set("order_type", "all")
		q.Set("page", strconv.Itoa(page))
		return q
	}

	var first []dto.MarketOrder
	header, err := m.do(ctx, http.MethodGet, path, query(1), nil, &first)
	if err != nil {
		return nil, domain.NewSourceError("list orders", err)
	}

	pages := 1
	if v, err := strconv.Atoi(header.Get("X-Pages")); err == nil && v > 1 {
		pages = v
	}
	// 一部のページだけで集計すると最良気配や板の厚みが誤るため、切り詰めずに失敗させる
	if pages > m.cfg.MaxPages {
		return nil, domain.NewSourceError("list orders",
			fmt.Errorf("order pages %d exceed ESI_MAX_PAGES %d", pages, m.cfg.MaxPages))
	}

	results := make([][]dto.MarketOrder, pages)
	results[0] = first
	if pages > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(pageConcurrency)
		for p := 2; p <= pages; p++ {
			g.Go(func() error {
				var rows []dto.MarketOrder
				if _, err := m.do(gctx, http.MethodGet, path, query(p), nil, &rows); err != nil {
					return fmt.Errorf("page %d: %w", p, err)
				}
				results[p-1] = rows
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, domain.NewSourceError("list orders", err)
		}
	}

	var n int
	for _, rows := range results {
		n += len(rows)
	}
	orders := make([]entity.Order, 0, n)
	for _, rows := range results {
		for _, o := range rows {
			orders = append(orders, entity.Order{
				Price:           o.Price,
				RemainingVolume: o.VolumeRemain,
				IsBuy:           o.IsBuyOrder,
				LocationID:      o.LocationID,
			})
		}
	}
	return orders, nil
}

// ListDailyHistory はリージョンの日足を古い順に返します。
func (m *Market) ListDailyHistory(ctx context.Context, regionID, id int64) ([]entity.DailyBar, error) {
	q := url.Values{}
	q.Set("type_id", strconv.FormatInt(id, 10))

	var rows []dto.HistoryEntry
	path := fmt.Sprintf("/markets/%d/history/", regionID)
	if _, err := m.do(ctx, http.MethodGet, path, q, nil, &rows); err != nil {
		return nil, domain.NewSourceError("list history", err)
	}

	bars := make([]entity.DailyBar, 0, len(rows))
	for _, r := range rows {
		// 日付をパース
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, domain.NewSourceError("list history", fmt.Errorf("parse date %q: %w", r.Date, err))
		}
		bars = append(bars, entity.DailyBar{
			Date:       d,
			Average:    r.Average,
			Highest:    r.Highest,
			Lowest:     r.Lowest,
			Volume:     r.Volume,
			OrderCount: r.OrderCount,
		})
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

// do はESIにリクエストを送り、成功時はレスポンスJSONをoutにデコードしてヘッダーを返します。
func (m *Market) do(ctx context.Context, method, path string, q url.Values, body []byte, out any) (http.Header, error) {
	if q == nil {
		q = url.Values{}
	}
	if m.cfg.Datasource != "" {
		q.Set("datasource", m.cfg.Datasource)
	}
	u := strings.TrimRight(m.cfg.BaseURL, "/") + path
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if m.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", m.cfg.UserAgent)
	}

	if m.limiter != nil {
		if err := m.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	res, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if v, err := strconv.Atoi(res.Header.Get("X-ESI-Error-Limit-Remain")); err == nil && v < errorLimitWarnThreshold {
		slog.Warn("esi error limit is running low", "remain", v, "reset", res.Header.Get("X-ESI-Error-Limit-Reset"))
	}

	if res.StatusCode >= 400 {
		var e dto.ErrorResponse
		if b, err := io.ReadAll(io.LimitReader(res.Body, 4096)); err == nil && json.Unmarshal(b, &e) == nil && e.Error != "" {
			return nil, fmt.Errorf("esi http %d: %s", res.StatusCode, e.Error)
		}
		return nil, fmt.Errorf("esi http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return res.Header, nil
}
